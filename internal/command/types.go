package command

import (
	"time"

	"voice-task-management/internal/model"
)

// Action is the kind of mutation or query a Command asks for.
type Action string

const (
	ActionCreate    Action = "CREATE"
	ActionUpdate    Action = "UPDATE"
	ActionDelete    Action = "DELETE"
	ActionDeleteAll Action = "DELETE_ALL"
	ActionUpdateAll Action = "UPDATE_ALL"
	ActionRead      Action = "READ"
	ActionUnknown   Action = "UNKNOWN"
)

// ParseAction returns false for anything outside the known set.
func ParseAction(s string) (Action, bool) {
	switch a := Action(s); a {
	case ActionCreate, ActionUpdate, ActionDelete, ActionDeleteAll, ActionUpdateAll, ActionRead, ActionUnknown:
		return a, true
	}
	return "", false
}

// Target is the scope a Command applies to.
type Target string

const (
	TargetSingle   Target = "single"
	TargetAll      Target = "all"
	TargetFiltered Target = "filtered"
)

// ParserUsed names the engine that produced a ParsedResult.
type ParserUsed string

const (
	ParserLLM      ParserUsed = "llm"
	ParserFallback ParserUsed = "fallback"
	ParserNone     ParserUsed = "none"
)

// Filters narrows the tasks affected by an all/filtered command.
// Empty fields are unset.
type Filters struct {
	Status   model.Status   `json:"status,omitempty"`
	Priority model.Priority `json:"priority,omitempty"`
}

// IsEmpty reports whether no filter is set.
func (f Filters) IsEmpty() bool {
	return f.Status == "" && f.Priority == ""
}

// Matches reports whether t passes every set filter.
func (f Filters) Matches(t model.Task) bool {
	if f.Status != "" && t.Status != f.Status {
		return false
	}
	if f.Priority != "" {
		p, _ := model.ParsePriority(string(t.Priority))
		if p != f.Priority {
			return false
		}
	}
	return true
}

// Updates holds the new field values a command applies.
type Updates struct {
	Status   model.Status   `json:"status,omitempty"`
	Priority model.Priority `json:"priority,omitempty"`
	DueDate  *time.Time     `json:"dueDate,omitempty"`
}

// IsEmpty reports whether no update is set.
func (u Updates) IsEmpty() bool {
	return u.Status == "" && u.Priority == "" && u.DueDate == nil
}

// Command is one executable instruction derived from a transcript.
// TaskID wins over TaskTitle when both are set.
type Command struct {
	Action     Action  `json:"action"`
	Target     Target  `json:"target,omitempty"`
	TaskID     string  `json:"taskId,omitempty"`
	TaskTitle  string  `json:"taskTitle,omitempty"`
	Filters    Filters `json:"filters"`
	Updates    Updates `json:"updates"`
	Confidence float64 `json:"confidence"`
}

// IsLowConfidence reports whether c must not run without confirmation.
func (c Command) IsLowConfidence() bool {
	return c.Confidence < MinAutoExecuteConfidence
}

// Validate checks the target invariants: single needs a task reference and
// filtered needs at least one filter.
func (c Command) Validate() error {
	if _, ok := ParseAction(string(c.Action)); !ok {
		return ErrUnknownAction
	}
	if c.Confidence < 0 || c.Confidence > 1 {
		return ErrConfidenceOutOfRange
	}
	switch c.Target {
	case TargetSingle:
		if c.TaskID == "" && c.TaskTitle == "" {
			return ErrMissingTaskReference
		}
	case TargetFiltered:
		if c.Filters.IsEmpty() {
			return ErrMissingFilters
		}
	}
	return nil
}

// ParsedResult is the output of one parse call.
type ParsedResult struct {
	Commands       []Command  `json:"commands"`
	RawTranscript  string     `json:"rawTranscript"`
	Interpretation string     `json:"interpretation"`
	ParserUsed     ParserUsed `json:"parserUsed"`
	FallbackReason string     `json:"fallbackReason,omitempty"`
	Confidence     float64    `json:"confidence"`
}

// TaskContext is the per-call view of the task list. Now is the clock every
// date computation uses; the zero value means time.Now().
type TaskContext struct {
	Tasks []model.Task
	Now   time.Time
}

// Clock returns Now, or the wall clock when Now is unset.
func (tc TaskContext) Clock() time.Time {
	if tc.Now.IsZero() {
		return time.Now()
	}
	return tc.Now
}
