package executor

import (
	"fmt"
	"strings"

	"voice-task-management/internal/model"
)

// Summarize renders tasks grouped by status for read-back, for example
// "You have 3 tasks. 2 pending: Pay bills, Call mom. 1 completed."
func Summarize(tasks []model.Task) string {
	if len(tasks) == 0 {
		return noTasksMessage
	}

	var pending, inProgress []string
	completed := 0
	for _, t := range tasks {
		switch t.Status {
		case model.StatusInProgress:
			inProgress = append(inProgress, t.Title)
		case model.StatusCompleted:
			completed++
		default:
			pending = append(pending, t.Title)
		}
	}

	parts := []string{fmt.Sprintf("You have %s.", countTasks(len(tasks)))}
	if len(pending) > 0 {
		parts = append(parts, fmt.Sprintf("%d pending: %s.", len(pending), listTitles(pending, readPendingLimit)))
	}
	if len(inProgress) > 0 {
		parts = append(parts, fmt.Sprintf("%d in progress: %s.", len(inProgress), listTitles(inProgress, readInProgressLimit)))
	}
	if completed > 0 {
		parts = append(parts, fmt.Sprintf("%d completed.", completed))
	}
	return strings.Join(parts, " ")
}

func listTitles(titles []string, limit int) string {
	if len(titles) <= limit {
		return strings.Join(titles, ", ")
	}
	return fmt.Sprintf("%s and %d more", strings.Join(titles[:limit], ", "), len(titles)-limit)
}

func countTasks(n int) string {
	if n == 1 {
		return "1 task"
	}
	return fmt.Sprintf("%d tasks", n)
}

func statusWords(s model.Status) string {
	return strings.ReplaceAll(string(s), "_", " ")
}

// speech joins the outcome messages into one utterance.
func speech(outcomes []Outcome) string {
	parts := make([]string, 0, len(outcomes))
	for _, o := range outcomes {
		msg := strings.TrimRight(strings.TrimSpace(o.Message), ".")
		if msg != "" {
			parts = append(parts, msg+".")
		}
	}
	return strings.Join(parts, " ")
}
