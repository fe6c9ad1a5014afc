package llmparser

import (
	"fmt"
	"strings"
	"time"

	"voice-task-management/internal/command"
	"voice-task-management/internal/command/lexicon"
	"voice-task-management/internal/command/resolver"
	"voice-task-management/internal/model"
)

var actionAliases = map[string]command.Action{
	"BULK_DELETE": command.ActionDeleteAll,
	"BULK_UPDATE": command.ActionUpdateAll,
	"ADD":         command.ActionCreate,
	"REMOVE":      command.ActionDelete,
	"LIST":        command.ActionRead,
}

// normalize canonicalises one model command and checks its invariants.
func normalize(rc rawCommand, tc command.TaskContext) (command.Command, error) {
	action, err := parseAction(string(rc.Action))
	if err != nil {
		return command.Command{}, err
	}

	c := command.Command{
		Action:    action,
		TaskID:    string(rc.TaskID),
		TaskTitle: string(rc.TaskTitle),
		Filters: command.Filters{
			Status:   parseStatus(string(rc.Filters.Status)),
			Priority: parsePriority(string(rc.Filters.Priority)),
		},
		Updates: command.Updates{
			Status:   parseStatus(string(rc.Updates.Status)),
			Priority: parsePriority(string(rc.Updates.Priority)),
			DueDate:  parseDueDate(string(rc.Updates.DueDate), tc.Clock()),
		},
		Confidence: DefaultConfidence,
	}
	if rc.Confidence.Set {
		c.Confidence = clamp(rc.Confidence.Value)
	}
	c.Target = deriveTarget(c)

	if c.Target == command.TargetSingle && action != command.ActionCreate {
		resolveReference(&c, tc.Tasks)
	}
	if action == command.ActionCreate {
		c.TaskID = ""
	}

	if err := c.Validate(); err != nil {
		return command.Command{}, err
	}
	return c, nil
}

func parseAction(s string) (command.Action, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	s = strings.NewReplacer("-", "_", " ", "_").Replace(s)
	if a, ok := actionAliases[s]; ok {
		return a, nil
	}
	if a, ok := command.ParseAction(s); ok {
		return a, nil
	}
	return "", fmt.Errorf("%w: %q", command.ErrUnknownAction, s)
}

// deriveTarget picks the target from the action and filters. The model's own
// target field is not trusted.
func deriveTarget(c command.Command) command.Target {
	switch c.Action {
	case command.ActionCreate, command.ActionUpdate, command.ActionDelete:
		return command.TargetSingle
	case command.ActionDeleteAll, command.ActionUpdateAll, command.ActionRead:
		if c.Filters.IsEmpty() {
			return command.TargetAll
		}
		return command.TargetFiltered
	}
	return ""
}

func parseStatus(s string) model.Status {
	if s == "" {
		return ""
	}
	if st, ok := model.ParseStatus(s); ok {
		return st
	}
	return lexicon.NormalizeStatus(s)
}

func parsePriority(s string) model.Priority {
	if s == "" {
		return ""
	}
	if p, ok := model.ParsePriority(s); ok {
		return p
	}
	return lexicon.ExtractPriority(s)
}

// parseDueDate accepts RFC 3339, a bare YYYY-MM-DD in now's location, or a
// spoken expression such as "next friday".
func parseDueDate(s string, now time.Time) *time.Time {
	if s == "" {
		return nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return &t
	}
	if t, err := time.ParseInLocation(dateLayout, s, now.Location()); err == nil {
		return &t
	}
	if t, ok := lexicon.ExtractDate(s, now); ok {
		return &t
	}
	return nil
}

// resolveReference verifies the model's task id, falling back to title
// resolution. Unresolved references are capped at the unresolved ceiling.
func resolveReference(c *command.Command, tasks []model.Task) {
	if c.TaskID != "" {
		for _, t := range tasks {
			if t.ID == c.TaskID {
				if c.TaskTitle == "" {
					c.TaskTitle = t.Title
				}
				return
			}
		}
		if m, ok := resolver.Resolve(c.TaskID, tasks); ok && c.TaskTitle == "" {
			c.TaskID, c.TaskTitle = m.Task.ID, m.Task.Title
			return
		}
		c.TaskID = ""
	}

	if c.TaskTitle != "" {
		if m, ok := resolver.Resolve(c.TaskTitle, tasks); ok {
			c.TaskID, c.TaskTitle = m.Task.ID, m.Task.Title
			return
		}
	}

	if c.Confidence > command.UnresolvedConfidenceCeiling {
		c.Confidence = command.UnresolvedConfidenceCeiling
	}
}

func clamp(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}
