package command

import (
	"fmt"
	"strings"
)

// Interpret builds the human readable summary of cmds.
func Interpret(cmds []Command) string {
	if len(cmds) == 0 {
		return InterpretationNoSpeech
	}
	lines := make([]string, 0, len(cmds))
	for _, c := range cmds {
		lines = append(lines, Describe(c))
	}
	return strings.Join(lines, InterpretationSeparator)
}

// Describe renders a single command as one line.
func Describe(c Command) string {
	switch c.Action {
	case ActionCreate:
		s := fmt.Sprintf("Create task %q", c.TaskTitle)
		if !c.Updates.IsEmpty() {
			s += " with " + describeUpdates(c.Updates)
		}
		return s
	case ActionUpdate:
		return fmt.Sprintf("Update %s: %s", describeRef(c), describeUpdates(c.Updates))
	case ActionDelete:
		return "Delete " + describeRef(c)
	case ActionDeleteAll:
		return "Delete " + describeScope(c.Filters)
	case ActionUpdateAll:
		return fmt.Sprintf("Update %s: %s", describeScope(c.Filters), describeUpdates(c.Updates))
	case ActionRead:
		return "Show " + describeScope(c.Filters)
	default:
		return "Unknown command"
	}
}

func describeRef(c Command) string {
	switch {
	case c.TaskTitle != "" && c.TaskID != "":
		return fmt.Sprintf("task %q (%s)", c.TaskTitle, c.TaskID)
	case c.TaskTitle != "":
		return fmt.Sprintf("task %q", c.TaskTitle)
	case c.TaskID != "":
		return "task " + c.TaskID
	}
	return "task"
}

func describeScope(f Filters) string {
	parts := []string{"all"}
	if f.Status != "" {
		parts = append(parts, strings.ReplaceAll(string(f.Status), "_", " "))
	}
	if f.Priority != "" {
		parts = append(parts, strings.ToLower(string(f.Priority))+" priority")
	}
	return strings.Join(parts, " ") + " tasks"
}

func describeUpdates(u Updates) string {
	var parts []string
	if u.Status != "" {
		parts = append(parts, "status="+string(u.Status))
	}
	if u.Priority != "" {
		parts = append(parts, "priority="+string(u.Priority))
	}
	if u.DueDate != nil {
		parts = append(parts, "due="+u.DueDate.Format("2006-01-02"))
	}
	if len(parts) == 0 {
		return "no changes"
	}
	return strings.Join(parts, ", ")
}

// MinConfidence returns the lowest confidence in cmds, or 0 when empty.
func MinConfidence(cmds []Command) float64 {
	if len(cmds) == 0 {
		return 0
	}
	lowest := cmds[0].Confidence
	for _, c := range cmds[1:] {
		if c.Confidence < lowest {
			lowest = c.Confidence
		}
	}
	return lowest
}
