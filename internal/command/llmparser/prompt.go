package llmparser

import (
	"encoding/json"
	"fmt"
	"strings"

	"voice-task-management/internal/command"
)

type promptTask struct {
	ID       string  `json:"id"`
	Title    string  `json:"title"`
	Status   string  `json:"status"`
	Priority string  `json:"priority"`
	DueDate  *string `json:"dueDate"`
}

// BuildPrompt renders the instruction prompt for transcript with up to
// MaxPromptTasks existing tasks as context.
func BuildPrompt(transcript string, tc command.TaskContext) string {
	return buildPrompt(transcript, tc, MaxPromptTasks)
}

func buildPrompt(transcript string, tc command.TaskContext, limit int) string {
	now := tc.Clock()
	day := func(offset int) string { return now.AddDate(0, 0, offset).Format(dateLayout) }

	if limit <= 0 || limit > MaxPromptTasks {
		limit = MaxPromptTasks
	}
	tasks := tc.Tasks
	if len(tasks) > limit {
		tasks = tasks[:limit]
	}
	list := make([]promptTask, 0, len(tasks))
	for _, t := range tasks {
		pt := promptTask{ID: t.ID, Title: t.Title, Status: string(t.Status), Priority: string(t.Priority)}
		if t.DueDate != nil {
			d := t.DueDate.Format(dateLayout)
			pt.DueDate = &d
		}
		list = append(list, pt)
	}
	taskJSON, _ := json.Marshal(list)

	var b strings.Builder
	b.WriteString(`Convert the spoken request below into JSON commands for a task manager.

RULES
- Output only a JSON object. No markdown, no prose.
- One request can hold several commands ("delete all pending tasks and mark grocery as high priority" is two commands).
- Bulk requests ("mark all tasks as done", "clear completed tasks") use UPDATE_ALL or DELETE_ALL.
- Refer to existing tasks by their id when you can tell which one is meant, otherwise by a short title.

`)
	fmt.Fprintf(&b, "CONTEXT\nToday: %s (%s)\nTime: %s\nTasks: %s\n\n", day(0), now.Weekday(), now.Format("15:04"), taskJSON)
	b.WriteString(`SCHEMA
{"commands":[{"action":"CREATE|UPDATE|DELETE|DELETE_ALL|UPDATE_ALL|READ",
  "target":"single|all|filtered",
  "taskId":"string or null","taskTitle":"string or null",
  "filters":{"status":"pending|in_progress|completed or null","priority":"LOW|MEDIUM|HIGH or null"},
  "updates":{"status":"pending|in_progress|completed or null","priority":"LOW|MEDIUM|HIGH or null","dueDate":"YYYY-MM-DD or null"},
  "confidence":0.0}],
 "interpretation":"short summary"}

VOCABULARY
- done, finished = completed; todo = pending; working, started = in_progress
- urgent, important, critical = HIGH; normal = MEDIUM; low, later = LOW
`)
	fmt.Fprintf(&b, "- today = %s, tomorrow = %s, day after tomorrow = %s, next week = %s\n\n", day(0), day(1), day(2), day(7))
	b.WriteString(`EXAMPLES
"add buy milk tomorrow" -> {"commands":[{"action":"CREATE","target":"single","taskTitle":"buy milk","updates":{"dueDate":"`)
	b.WriteString(day(1))
	b.WriteString(`"},"confidence":0.9}]}
"clear all completed tasks and show what is left" -> {"commands":[{"action":"DELETE_ALL","target":"filtered","filters":{"status":"completed"},"confidence":0.95},{"action":"READ","target":"all","confidence":0.9}]}
"mark grocery as high priority" -> {"commands":[{"action":"UPDATE","target":"single","taskTitle":"grocery","updates":{"priority":"HIGH"},"confidence":0.85}]}

`)
	fmt.Fprintf(&b, "REQUEST\n%q\n", transcript)
	return b.String()
}
