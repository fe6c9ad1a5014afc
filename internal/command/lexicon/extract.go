package lexicon

import (
	"strings"
	"time"

	"voice-task-management/internal/command"
	"voice-task-management/internal/model"
	"voice-task-management/pkg/datemath"
)

// ExtractPriority returns the priority implied by keywords in text, or "" when
// none is present. HIGH keywords win over LOW ones, so "not urgent" reads HIGH.
func ExtractPriority(text string) model.Priority {
	text = strings.ToLower(text)
	switch {
	case highPriorityRe.MatchString(text):
		return model.PriorityHigh
	case lowPriorityRe.MatchString(text):
		return model.PriorityLow
	case mediumPriorityRe.MatchString(text):
		return model.PriorityMedium
	}
	return ""
}

// NormalizePriority maps a single spoken word to a priority, defaulting to MEDIUM.
func NormalizePriority(word string) model.Priority {
	if p, ok := model.ParsePriority(word); ok {
		return p
	}
	if p := ExtractPriority(word); p != "" {
		return p
	}
	return model.PriorityMedium
}

// NormalizeStatus folds status aliases. It returns "" when text names no status.
func NormalizeStatus(text string) model.Status {
	text = strings.ToLower(text)
	switch {
	case statusNegatedRe.MatchString(text):
		return model.StatusPending
	case statusCompletedRe.MatchString(text):
		return model.StatusCompleted
	case statusInProgressRe.MatchString(text):
		return model.StatusInProgress
	case statusPendingRe.MatchString(text):
		return model.StatusPending
	}
	return ""
}

// ParseFilter reads the status and priority keywords used by bulk commands.
func ParseFilter(text string) command.Filters {
	text = strings.ToLower(text)
	var f command.Filters
	f.Status = NormalizeStatus(text)
	switch {
	case filterHighRe.MatchString(text):
		f.Priority = model.PriorityHigh
	case filterMediumRe.MatchString(text):
		f.Priority = model.PriorityMedium
	case filterLowRe.MatchString(text):
		f.Priority = model.PriorityLow
	}
	return f
}

// ExtractDate finds a date expression in text relative to now, in now's location.
func ExtractDate(text string, now time.Time) (time.Time, bool) {
	res, ok := datemath.NewParserInLocation(now.Location()).Extract(text, now)
	if !ok {
		return time.Time{}, false
	}
	return res.Time, true
}

// CleanTaskTitle strips priority words, date expressions and command verbs
// from text and collapses whitespace.
func CleanTaskTitle(text string) string {
	out := strings.ToLower(strings.TrimSpace(text))
	out = commandVerbRe.ReplaceAllString(out, "")
	out = priorityPhraseRe.ReplaceAllString(out, " ")
	out = priorityPrefixRe.ReplaceAllString(out, " ")
	out = priorityWordRe.ReplaceAllString(out, " ")
	out = datemath.StripExpressions(out)
	out = strings.Trim(out, " .,!?;:")

	for {
		trimmed := trailingConnector.ReplaceAllString(out, "")
		trimmed = leadingConnector.ReplaceAllString(trimmed, "")
		trimmed = strings.Trim(trimmed, " .,!?;:")
		if trimmed == out {
			break
		}
		out = trimmed
	}
	return strings.Join(strings.Fields(out), " ")
}
