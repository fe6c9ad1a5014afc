package executor

import (
	"context"
	"fmt"
	"strings"

	"voice-task-management/internal/command"
	"voice-task-management/internal/command/resolver"
	"voice-task-management/internal/model"
)

// Execute runs res.Commands one after another. A failing command is recorded
// and the batch continues.
func (e *Executor) Execute(ctx context.Context, res command.ParsedResult) Report {
	report := Report{Outcomes: make([]Outcome, 0, len(res.Commands))}

	for i, c := range res.Commands {
		o := Outcome{Index: i, Command: c}

		if c.Confidence < e.minConfidence {
			o.Status = OutcomeSkipped
			o.Message = fmt.Sprintf("Skipped %q: %s", command.Describe(c), reasonLowConfidence)
			o.Error = reasonLowConfidence
			report.Skipped++
			report.Outcomes = append(report.Outcomes, o)
			continue
		}

		if err := e.run(ctx, c, &o); err != nil {
			e.l.Warnf(ctx, "%s: command %d (%s): %v", logPrefixExecute, i, c.Action, err)
			o.Status = OutcomeFailed
			o.Error = err.Error()
			if o.Message == "" {
				o.Message = fmt.Sprintf("Could not %s: %v", lowerFirst(command.Describe(c)), err)
			}
			report.Failed++
		} else {
			o.Status = OutcomeSuccess
			report.Succeeded++
		}
		report.Outcomes = append(report.Outcomes, o)
	}

	report.Speech = speech(report.Outcomes)
	return report
}

func (e *Executor) run(ctx context.Context, c command.Command, o *Outcome) error {
	switch c.Action {
	case command.ActionCreate:
		return e.create(ctx, c, o)
	case command.ActionUpdate:
		return e.update(ctx, c, o)
	case command.ActionDelete:
		return e.delete(ctx, c, o)
	case command.ActionDeleteAll:
		return e.deleteAll(ctx, c, o)
	case command.ActionUpdateAll:
		return e.updateAll(ctx, c, o)
	case command.ActionRead:
		return e.read(ctx, c, o)
	}
	return ErrUnknownCommand
}

func (e *Executor) create(ctx context.Context, c command.Command, o *Outcome) error {
	title := strings.TrimSpace(c.TaskTitle)
	if title == "" {
		return ErrMissingTitle
	}
	t, err := e.store.CreateTask(ctx, title, c.Updates)
	if err != nil {
		return err
	}
	o.Affected = 1
	o.TaskIDs = []string{t.ID}
	o.Message = fmt.Sprintf("Created task %q", t.Title)
	return nil
}

func (e *Executor) update(ctx context.Context, c command.Command, o *Outcome) error {
	if c.Updates.IsEmpty() {
		return ErrNothingToUpdate
	}
	t, err := e.resolve(ctx, c)
	if err != nil {
		return err
	}
	updated, err := e.store.UpdateTask(ctx, t.ID, c.Updates)
	if err != nil {
		return err
	}
	o.Affected = 1
	o.TaskIDs = []string{updated.ID}
	o.Message = fmt.Sprintf("Updated task %q", updated.Title)
	return nil
}

func (e *Executor) delete(ctx context.Context, c command.Command, o *Outcome) error {
	t, err := e.resolve(ctx, c)
	if err != nil {
		return err
	}
	if err := e.store.DeleteTask(ctx, t.ID); err != nil {
		return err
	}
	o.Affected = 1
	o.TaskIDs = []string{t.ID}
	o.Message = fmt.Sprintf("Deleted task %q", t.Title)
	return nil
}

// deleteAll uses the bulk delete when no filter is set and falls back to one
// delete per task when the bulk call fails.
func (e *Executor) deleteAll(ctx context.Context, c command.Command, o *Outcome) error {
	matched, err := e.matching(ctx, c.Filters)
	if err != nil {
		return err
	}

	if c.Filters.IsEmpty() {
		n, err := e.store.DeleteAllTasks(ctx)
		if err == nil {
			o.Affected = n
			o.TaskIDs = ids(matched)
			o.Message = "Deleted " + countTasks(n)
			return nil
		}
		e.l.Warnf(ctx, "%s: bulk delete failed, deleting one by one: %v", logPrefixExecute, err)
	}

	for _, t := range matched {
		if err := e.store.DeleteTask(ctx, t.ID); err != nil {
			e.l.Warnf(ctx, "%s: delete %s: %v", logPrefixExecute, t.ID, err)
			continue
		}
		o.Affected++
		o.TaskIDs = append(o.TaskIDs, t.ID)
	}
	if o.Affected == 0 {
		return ErrAllDeletionFailed
	}
	o.Message = "Deleted " + countTasks(o.Affected)
	return nil
}

// updateAll marks tasks complete through MarkComplete and applies any other
// field through UpdateTask.
func (e *Executor) updateAll(ctx context.Context, c command.Command, o *Outcome) error {
	if c.Updates.IsEmpty() {
		return ErrNothingToUpdate
	}
	matched, err := e.matching(ctx, c.Filters)
	if err != nil {
		return err
	}

	rest := c.Updates
	complete := rest.Status == model.StatusCompleted
	if complete {
		rest.Status = ""
	}

	for _, t := range matched {
		if err := e.updateOne(ctx, t.ID, complete, rest); err != nil {
			e.l.Warnf(ctx, "%s: update %s: %v", logPrefixExecute, t.ID, err)
			continue
		}
		o.Affected++
		o.TaskIDs = append(o.TaskIDs, t.ID)
	}
	if o.Affected == 0 {
		return ErrAllUpdatesFailed
	}

	if c.Updates.Status != "" {
		o.Message = fmt.Sprintf("Marked %s as %s", countTasks(o.Affected), statusWords(c.Updates.Status))
	} else {
		o.Message = "Updated " + countTasks(o.Affected)
	}
	return nil
}

func (e *Executor) updateOne(ctx context.Context, id string, complete bool, rest command.Updates) error {
	if complete {
		if _, err := e.store.MarkComplete(ctx, id); err != nil {
			return err
		}
	}
	if rest.IsEmpty() {
		return nil
	}
	_, err := e.store.UpdateTask(ctx, id, rest)
	return err
}

func (e *Executor) read(ctx context.Context, c command.Command, o *Outcome) error {
	tasks, err := e.store.ListTasks(ctx)
	if err != nil {
		return err
	}
	if !c.Filters.IsEmpty() {
		tasks = filter(tasks, c.Filters)
	}
	o.Affected = len(tasks)
	o.Message = Summarize(tasks)
	return nil
}

// resolve finds the task c refers to in the current task list. The id wins
// when it still exists; otherwise the title is resolved again.
func (e *Executor) resolve(ctx context.Context, c command.Command) (model.Task, error) {
	tasks, err := e.store.ListTasks(ctx)
	if err != nil {
		return model.Task{}, err
	}
	if c.TaskID != "" {
		for _, t := range tasks {
			if t.ID == c.TaskID {
				return t, nil
			}
		}
	}
	if c.TaskTitle != "" {
		if m, ok := resolver.Resolve(c.TaskTitle, tasks); ok {
			return m.Task, nil
		}
	}
	return model.Task{}, fmt.Errorf("%w: %s", ErrTaskNotFound, reference(c))
}

func (e *Executor) matching(ctx context.Context, f command.Filters) ([]model.Task, error) {
	tasks, err := e.store.ListTasks(ctx)
	if err != nil {
		return nil, err
	}
	matched := filter(tasks, f)
	if len(matched) == 0 {
		return nil, ErrNoMatchingTasks
	}
	return matched, nil
}

func filter(tasks []model.Task, f command.Filters) []model.Task {
	var out []model.Task
	for _, t := range tasks {
		if f.Matches(t) {
			out = append(out, t)
		}
	}
	return out
}

func ids(tasks []model.Task) []string {
	out := make([]string, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, t.ID)
	}
	return out
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}

func reference(c command.Command) string {
	if c.TaskTitle != "" {
		return fmt.Sprintf("%q", c.TaskTitle)
	}
	return c.TaskID
}
