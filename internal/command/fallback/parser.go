package fallback

import (
	"regexp"
	"strings"
	"time"

	"voice-task-management/internal/command"
	"voice-task-management/internal/command/lexicon"
	"voice-task-management/internal/command/resolver"
	"voice-task-management/internal/model"
)

// builder turns a regexp match into a command. ok=false lets the next rule try.
type builder func(m []string, tc command.TaskContext) (command.Command, bool)

type matcher struct {
	re    *regexp.Regexp
	build builder
}

type rule struct {
	tier     Tier
	matchers []matcher
}

// Parser is the deterministic, rule based transcript parser. It needs no
// network and never fails.
type Parser struct {
	rules []rule
}

// New builds a Parser with its rules laid out in TierOrder.
func New() *Parser {
	byTier := map[Tier][]matcher{
		TierCreate:             each(createRes, buildCreate),
		TierDeleteAll:          each(deleteAllRes, buildDeleteAll),
		TierDeleteFiltered:     each(deleteFilteredRes, buildDeleteFiltered),
		TierDeleteSingle:       {{deleteSingleRe, buildDeleteSingle}},
		TierUpdateAllStatus:    {{updateAllStatusRe, buildUpdateAllStatus}, {completeAllRe, buildCompleteAll}, {updateFilteredStatusRe, buildUpdateFilteredStatus}},
		TierUpdateSingleStatus: {{markStatusRe, buildMarkStatus}, {isStatusRe, buildMarkStatus}, {completeSingleRe, withStatus(model.StatusCompleted)}, {finishedRe, withStatus(model.StatusCompleted)}, {startSingleRe, withStatus(model.StatusInProgress)}},
		TierUpdatePriority:     {{updateAllPriorityRe, buildUpdateAllPriority}, {updateFilteredPriorityRe, buildUpdateFilteredPriority}, {markPriorityRe, buildMarkPriority}, {prioritizeRe, buildPrioritize}, {isUrgentRe, buildMarkPriority}},
		TierUpdateDueDate:      each(dueDateRes, buildDueDate),
		TierRead:               {{readRe, buildRead}},
	}

	p := &Parser{}
	for _, t := range TierOrder {
		p.rules = append(p.rules, rule{tier: t, matchers: byTier[t]})
	}
	return p
}

func each(res []*regexp.Regexp, b builder) []matcher {
	out := make([]matcher, 0, len(res))
	for _, re := range res {
		out = append(out, matcher{re: re, build: b})
	}
	return out
}

// Tiers returns the tier precedence the parser was built with.
func (p *Parser) Tiers() []Tier {
	out := make([]Tier, 0, len(p.rules))
	for _, r := range p.rules {
		out = append(out, r.tier)
	}
	return out
}

// Parse splits transcript into clauses on " and " and parses each clause.
// When no clause matches a rule, one inferred command is returned, so the
// result always holds at least one command.
func (p *Parser) Parse(transcript string, tc command.TaskContext) command.ParsedResult {
	var cmds []command.Command
	for _, clause := range SplitClauses(transcript) {
		if c, _, ok := p.ParseClause(clause, tc); ok {
			cmds = append(cmds, c)
		}
	}
	if len(cmds) == 0 {
		cmds = []command.Command{Infer(transcript, tc)}
	}

	return command.ParsedResult{
		Commands:       cmds,
		RawTranscript:  transcript,
		Interpretation: command.Interpret(cmds),
		ParserUsed:     command.ParserFallback,
		Confidence:     command.MinConfidence(cmds),
	}
}

// ParseClause runs one clause through the tiers and reports the tier that matched.
func (p *Parser) ParseClause(clause string, tc command.TaskContext) (command.Command, Tier, bool) {
	clause = normalizeClause(clause)
	if clause == "" {
		return command.Command{}, "", false
	}
	for _, r := range p.rules {
		for _, m := range r.matchers {
			sub := m.re.FindStringSubmatch(clause)
			if sub == nil {
				continue
			}
			if c, ok := m.build(sub, tc); ok {
				return c, r.tier, true
			}
		}
	}
	return command.Command{}, "", false
}

// SplitClauses lowercases transcript and splits it on the word "and".
// Empty clauses are dropped.
func SplitClauses(transcript string) []string {
	text := strings.ToLower(strings.Join(strings.Fields(transcript), " "))
	var out []string
	for _, part := range clauseSplitRe.Split(text, -1) {
		if part = normalizeClause(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func normalizeClause(clause string) string {
	c := strings.ToLower(strings.Join(strings.Fields(clause), " "))
	c = strings.Trim(c, " .,!?;:")
	c = danglingAndRe.ReplaceAllString(c, "")
	c = politeRe.ReplaceAllString(c, "")
	return strings.Trim(c, " .,!?;:")
}

// Infer guesses an action from keywords alone. Its confidence is always
// below the auto-execute floor.
func Infer(transcript string, tc command.TaskContext) command.Command {
	text := normalizeClause(transcript)
	switch {
	case inferDeleteRe.MatchString(text):
		c := inferredReference(inferDeleteRe.ReplaceAllString(text, " "), tc)
		c.Action, c.Confidence = command.ActionDelete, ConfidenceInferDelete
		return c
	case inferUpdateRe.MatchString(text):
		c := inferredReference(inferUpdateRe.ReplaceAllString(text, " "), tc)
		c.Action, c.Confidence = command.ActionUpdate, ConfidenceInferUpdate
		return c
	case inferCreateRe.MatchString(text):
		return command.Command{
			Action:     command.ActionCreate,
			Target:     command.TargetSingle,
			TaskTitle:  lexicon.CleanTaskTitle(inferCreateRe.ReplaceAllString(text, " ")),
			Confidence: ConfidenceInferCreate,
		}
	}
	return command.Command{Action: command.ActionUnknown, Confidence: 0}
}

func inferredReference(fragment string, tc command.TaskContext) command.Command {
	c := command.Command{Target: command.TargetSingle}
	if m, ok := resolver.Resolve(fragment, tc.Tasks); ok {
		c.TaskID, c.TaskTitle = m.Task.ID, m.Task.Title
		return c
	}
	c.TaskTitle = resolver.SearchText(fragment)
	return c
}

// reference resolves fragment against the task list and scores the result.
func reference(fragment string, tc command.TaskContext, conf confidenceSet) command.Command {
	c := command.Command{Target: command.TargetSingle}
	m, ok := resolver.Resolve(fragment, tc.Tasks)
	switch {
	case ok && m.Precise():
		c.TaskID, c.TaskTitle, c.Confidence = m.Task.ID, m.Task.Title, conf.precise
	case ok:
		c.TaskID, c.TaskTitle, c.Confidence = m.Task.ID, m.Task.Title, conf.resolved
	default:
		c.TaskTitle = resolver.SearchText(fragment)
		if c.TaskTitle == "" {
			c.TaskTitle = strings.TrimSpace(fragment)
		}
		c.Confidence = conf.unresolved
	}
	return c
}

func datePtr(text string, tc command.TaskContext) *time.Time {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	if t, ok := lexicon.ExtractDate(text, tc.Clock()); ok {
		return &t
	}
	return nil
}

func buildCreate(m []string, tc command.TaskContext) (command.Command, bool) {
	title := lexicon.CleanTaskTitle(m[1])
	if title == "" {
		return command.Command{}, false
	}
	return command.Command{
		Action:    command.ActionCreate,
		Target:    command.TargetSingle,
		TaskTitle: title,
		Updates: command.Updates{
			Priority: lexicon.ExtractPriority(m[1]),
			DueDate:  datePtr(m[1], tc),
		},
		Confidence: ConfidenceCreate,
	}, true
}

func buildDeleteAll(_ []string, _ command.TaskContext) (command.Command, bool) {
	return command.Command{Action: command.ActionDeleteAll, Target: command.TargetAll, Confidence: ConfidenceDeleteAll}, true
}

func buildDeleteFiltered(m []string, _ command.TaskContext) (command.Command, bool) {
	f := lexicon.ParseFilter(m[1])
	if f.IsEmpty() {
		return command.Command{}, false
	}
	return command.Command{Action: command.ActionDeleteAll, Target: command.TargetFiltered, Filters: f, Confidence: ConfidenceFiltered}, true
}

func buildDeleteSingle(m []string, tc command.TaskContext) (command.Command, bool) {
	c := reference(m[1], tc, singleConfidence)
	c.Action = command.ActionDelete
	return c, true
}

func buildUpdateAllStatus(m []string, _ command.TaskContext) (command.Command, bool) {
	status := lexicon.NormalizeStatus(m[1])
	if status == "" {
		return command.Command{}, false
	}
	return command.Command{
		Action:     command.ActionUpdateAll,
		Target:     command.TargetAll,
		Updates:    command.Updates{Status: status},
		Confidence: ConfidenceUpdateAll,
	}, true
}

func buildCompleteAll(_ []string, _ command.TaskContext) (command.Command, bool) {
	return command.Command{
		Action:     command.ActionUpdateAll,
		Target:     command.TargetAll,
		Updates:    command.Updates{Status: model.StatusCompleted},
		Confidence: ConfidenceUpdateAll,
	}, true
}

func buildUpdateFilteredStatus(m []string, _ command.TaskContext) (command.Command, bool) {
	f := lexicon.ParseFilter(m[1])
	status := lexicon.NormalizeStatus(m[2])
	if f.IsEmpty() || status == "" {
		return command.Command{}, false
	}
	return command.Command{
		Action:     command.ActionUpdateAll,
		Target:     command.TargetFiltered,
		Filters:    f,
		Updates:    command.Updates{Status: status},
		Confidence: ConfidenceFiltered,
	}, true
}

// buildMarkStatus handles "<verb> <ref> as <status> [date]" and "<ref> is <status>".
func buildMarkStatus(m []string, tc command.TaskContext) (command.Command, bool) {
	status := lexicon.NormalizeStatus(m[2])
	if status == "" {
		return command.Command{}, false
	}
	c := reference(m[1], tc, singleConfidence)
	c.Action = command.ActionUpdate
	c.Updates.Status = status
	if len(m) > 3 {
		c.Updates.DueDate = datePtr(m[3], tc)
	}
	return c, true
}

func withStatus(status model.Status) builder {
	return func(m []string, tc command.TaskContext) (command.Command, bool) {
		c := reference(m[1], tc, singleConfidence)
		c.Action = command.ActionUpdate
		c.Updates.Status = status
		return c, true
	}
}

func buildUpdateAllPriority(m []string, _ command.TaskContext) (command.Command, bool) {
	return command.Command{
		Action:     command.ActionUpdateAll,
		Target:     command.TargetAll,
		Updates:    command.Updates{Priority: lexicon.NormalizePriority(m[1])},
		Confidence: ConfidenceUpdateAll,
	}, true
}

func buildUpdateFilteredPriority(m []string, _ command.TaskContext) (command.Command, bool) {
	f := lexicon.ParseFilter(m[1])
	if f.IsEmpty() {
		return command.Command{}, false
	}
	return command.Command{
		Action:     command.ActionUpdateAll,
		Target:     command.TargetFiltered,
		Filters:    f,
		Updates:    command.Updates{Priority: lexicon.NormalizePriority(m[2])},
		Confidence: ConfidenceFiltered,
	}, true
}

// buildMarkPriority handles "<verb> <ref> as <priority> [date]" and "<ref> is urgent".
func buildMarkPriority(m []string, tc command.TaskContext) (command.Command, bool) {
	c := reference(m[1], tc, singleConfidence)
	c.Action = command.ActionUpdate
	c.Updates.Priority = lexicon.NormalizePriority(m[2])
	if len(m) > 3 {
		c.Updates.DueDate = datePtr(m[3], tc)
	}
	return c, true
}

func buildPrioritize(m []string, tc command.TaskContext) (command.Command, bool) {
	c := reference(m[1], tc, singleConfidence)
	c.Action = command.ActionUpdate
	c.Updates.Priority = model.PriorityHigh
	return c, true
}

func buildDueDate(m []string, tc command.TaskContext) (command.Command, bool) {
	due := datePtr(m[2], tc)
	if due == nil {
		return command.Command{}, false
	}
	c := reference(m[1], tc, dueDateConfidence)
	c.Action = command.ActionUpdate
	c.Updates.DueDate = due
	return c, true
}

func buildRead(m []string, _ command.TaskContext) (command.Command, bool) {
	if !readSubjectRe.MatchString(m[0]) {
		return command.Command{}, false
	}
	c := command.Command{Action: command.ActionRead, Target: command.TargetAll, Confidence: ConfidenceRead}
	if f := lexicon.ParseFilter(m[1]); !f.IsEmpty() {
		c.Target, c.Filters = command.TargetFiltered, f
	}
	return c, true
}
