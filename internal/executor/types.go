package executor

import (
	"strings"

	"voice-task-management/internal/command"
)

// OutcomeStatus is the result of running one command.
type OutcomeStatus string

const (
	OutcomeSuccess OutcomeStatus = "success"
	OutcomeFailed  OutcomeStatus = "failed"
	OutcomeSkipped OutcomeStatus = "skipped"
)

// Outcome records what happened to one command of a batch.
type Outcome struct {
	Index    int             `json:"index"`
	Command  command.Command `json:"command"`
	Status   OutcomeStatus   `json:"status"`
	Affected int             `json:"affected"`
	TaskIDs  []string        `json:"taskIds,omitempty"`
	Message  string          `json:"message"`
	Error    string          `json:"error,omitempty"`
}

// Report is the result of a whole batch.
type Report struct {
	Outcomes  []Outcome `json:"outcomes"`
	Succeeded int       `json:"succeeded"`
	Failed    int       `json:"failed"`
	Skipped   int       `json:"skipped"`
	Speech    string    `json:"speech"`
}

// Success reports whether at least one command ran and none failed.
func (r Report) Success() bool {
	return r.Succeeded > 0 && r.Failed == 0
}

// Actions lists the actions that succeeded, in order, joined by commas.
func (r Report) Actions() string {
	var out []string
	for _, o := range r.Outcomes {
		if o.Status == OutcomeSuccess {
			out = append(out, string(o.Command.Action))
		}
	}
	return strings.Join(out, ",")
}

// Options tunes the executor.
type Options struct {
	// MinConfidence is the floor below which commands are skipped.
	// Zero uses command.MinAutoExecuteConfidence.
	MinConfidence float64
}
