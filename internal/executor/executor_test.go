package executor

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"voice-task-management/internal/command"
	"voice-task-management/internal/model"
	"voice-task-management/pkg/log"
)

type fakeStore struct {
	tasks  []model.Task
	nextID int
	calls  []string

	deleteAllErr error
	failDelete   map[string]bool
	failUpdate   map[string]bool
}

func newFakeStore(tasks ...model.Task) *fakeStore {
	return &fakeStore{tasks: tasks, nextID: len(tasks) + 1}
}

func (s *fakeStore) record(format string, args ...interface{}) {
	s.calls = append(s.calls, fmt.Sprintf(format, args...))
}

func (s *fakeStore) ListTasks(ctx context.Context) ([]model.Task, error) {
	out := make([]model.Task, len(s.tasks))
	copy(out, s.tasks)
	return out, nil
}

func (s *fakeStore) CreateTask(ctx context.Context, title string, u command.Updates) (model.Task, error) {
	s.record("create %s", title)
	t := model.Task{ID: fmt.Sprint(s.nextID), Title: title, Status: model.StatusPending, Priority: model.PriorityMedium, DueDate: u.DueDate}
	if u.Priority != "" {
		t.Priority = u.Priority
	}
	s.nextID++
	s.tasks = append(s.tasks, t)
	return t, nil
}

func (s *fakeStore) UpdateTask(ctx context.Context, id string, u command.Updates) (model.Task, error) {
	s.record("update %s", id)
	if s.failUpdate[id] {
		return model.Task{}, errors.New("update rejected")
	}
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			if u.Status != "" {
				s.tasks[i].Status = u.Status
			}
			if u.Priority != "" {
				s.tasks[i].Priority = u.Priority
			}
			if u.DueDate != nil {
				s.tasks[i].DueDate = u.DueDate
			}
			return s.tasks[i], nil
		}
	}
	return model.Task{}, errors.New("missing")
}

func (s *fakeStore) DeleteTask(ctx context.Context, id string) error {
	s.record("delete %s", id)
	if s.failDelete[id] {
		return errors.New("delete rejected")
	}
	for i, t := range s.tasks {
		if t.ID == id {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			return nil
		}
	}
	return errors.New("missing")
}

func (s *fakeStore) MarkComplete(ctx context.Context, id string) (model.Task, error) {
	s.record("complete %s", id)
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks[i].Status = model.StatusCompleted
			return s.tasks[i], nil
		}
	}
	return model.Task{}, errors.New("missing")
}

func (s *fakeStore) DeleteAllTasks(ctx context.Context) (int, error) {
	s.record("delete all")
	if s.deleteAllErr != nil {
		return 0, s.deleteAllErr
	}
	n := len(s.tasks)
	s.tasks = nil
	return n, nil
}

func sampleTasks() []model.Task {
	return []model.Task{
		{ID: "1", Title: "Pay bills", Status: model.StatusPending, Priority: model.PriorityHigh},
		{ID: "2", Title: "Call mom", Status: model.StatusCompleted, Priority: model.PriorityLow},
		{ID: "3", Title: "Buy groceries", Status: model.StatusPending, Priority: model.PriorityLow},
	}
}

func run(store *fakeStore, cmds ...command.Command) Report {
	e := New(log.NewNop(), store, Options{})
	return e.Execute(context.Background(), command.ParsedResult{Commands: cmds})
}

func TestExecuteSingleCommands(t *testing.T) {
	due := time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		cmd       command.Command
		wantCalls []string
		wantMsg   string
		wantErr   error
	}{
		{
			name:      "create",
			cmd:       command.Command{Action: command.ActionCreate, Target: command.TargetSingle, TaskTitle: "buy milk", Updates: command.Updates{DueDate: &due}, Confidence: 0.8},
			wantCalls: []string{"create buy milk"},
			wantMsg:   `Created task "buy milk"`,
		},
		{
			name:    "create without title",
			cmd:     command.Command{Action: command.ActionCreate, Target: command.TargetSingle, TaskTitle: " ", Confidence: 0.8},
			wantErr: ErrMissingTitle,
		},
		{
			name:      "update by id",
			cmd:       command.Command{Action: command.ActionUpdate, Target: command.TargetSingle, TaskID: "3", Updates: command.Updates{Priority: model.PriorityHigh}, Confidence: 0.95},
			wantCalls: []string{"update 3"},
			wantMsg:   `Updated task "Buy groceries"`,
		},
		{
			name:      "update re-resolved by title",
			cmd:       command.Command{Action: command.ActionUpdate, Target: command.TargetSingle, TaskID: "gone", TaskTitle: "groceries", Updates: command.Updates{Status: model.StatusInProgress}, Confidence: 0.85},
			wantCalls: []string{"update 3"},
		},
		{
			name:    "update unknown task",
			cmd:     command.Command{Action: command.ActionUpdate, Target: command.TargetSingle, TaskTitle: "dentist", Updates: command.Updates{Status: model.StatusCompleted}, Confidence: 0.6},
			wantErr: ErrTaskNotFound,
		},
		{
			name:    "update with nothing to change",
			cmd:     command.Command{Action: command.ActionUpdate, Target: command.TargetSingle, TaskID: "1", Confidence: 0.9},
			wantErr: ErrNothingToUpdate,
		},
		{
			name:      "delete",
			cmd:       command.Command{Action: command.ActionDelete, Target: command.TargetSingle, TaskTitle: "call mom", Confidence: 0.95},
			wantCalls: []string{"delete 2"},
			wantMsg:   `Deleted task "Call mom"`,
		},
		{
			name:    "unknown action",
			cmd:     command.Command{Action: command.ActionUnknown, Confidence: 0.9},
			wantErr: ErrUnknownCommand,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newFakeStore(sampleTasks()...)
			report := run(store, tt.cmd)
			o := report.Outcomes[0]

			if tt.wantErr != nil {
				if o.Status != OutcomeFailed || !strings.Contains(o.Error, tt.wantErr.Error()) {
					t.Errorf("outcome = %+v, want failure %v", o, tt.wantErr)
				}
				if report.Failed != 1 || report.Success() {
					t.Errorf("report counts = %+v", report)
				}
				return
			}
			if o.Status != OutcomeSuccess {
				t.Fatalf("outcome = %+v, want success", o)
			}
			if strings.Join(store.calls, ";") != strings.Join(tt.wantCalls, ";") {
				t.Errorf("store calls = %v, want %v", store.calls, tt.wantCalls)
			}
			if tt.wantMsg != "" && o.Message != tt.wantMsg {
				t.Errorf("Message = %q, want %q", o.Message, tt.wantMsg)
			}
		})
	}
}

func TestExecuteDeleteAll(t *testing.T) {
	t.Run("unfiltered uses bulk delete", func(t *testing.T) {
		store := newFakeStore(sampleTasks()...)
		report := run(store, command.Command{Action: command.ActionDeleteAll, Target: command.TargetAll, Confidence: 1})

		if got := strings.Join(store.calls, ";"); got != "delete all" {
			t.Errorf("calls = %q", got)
		}
		if o := report.Outcomes[0]; o.Affected != 3 || o.Message != "Deleted 3 tasks" {
			t.Errorf("outcome = %+v", o)
		}
	})

	t.Run("bulk failure deletes one by one", func(t *testing.T) {
		store := newFakeStore(sampleTasks()...)
		store.deleteAllErr = errors.New("bulk unsupported")
		store.failDelete = map[string]bool{"2": true}
		report := run(store, command.Command{Action: command.ActionDeleteAll, Target: command.TargetAll, Confidence: 1})

		o := report.Outcomes[0]
		if o.Status != OutcomeSuccess || o.Affected != 2 {
			t.Errorf("outcome = %+v, want 2 deleted", o)
		}
		if len(store.tasks) != 1 || store.tasks[0].ID != "2" {
			t.Errorf("remaining = %+v", store.tasks)
		}
	})

	t.Run("filtered deletes matches only", func(t *testing.T) {
		store := newFakeStore(sampleTasks()...)
		report := run(store, command.Command{
			Action:     command.ActionDeleteAll,
			Target:     command.TargetFiltered,
			Filters:    command.Filters{Status: model.StatusPending},
			Confidence: 0.9,
		})

		if got := strings.Join(store.calls, ";"); got != "delete 1;delete 3" {
			t.Errorf("calls = %q", got)
		}
		if report.Outcomes[0].Message != "Deleted 2 tasks" {
			t.Errorf("Message = %q", report.Outcomes[0].Message)
		}
	})

	t.Run("nothing matches", func(t *testing.T) {
		store := newFakeStore(sampleTasks()...)
		report := run(store, command.Command{
			Action:     command.ActionDeleteAll,
			Target:     command.TargetFiltered,
			Filters:    command.Filters{Status: model.StatusInProgress},
			Confidence: 0.9,
		})
		if o := report.Outcomes[0]; o.Status != OutcomeFailed || o.Error != ErrNoMatchingTasks.Error() {
			t.Errorf("outcome = %+v", o)
		}
	})
}

func TestExecuteUpdateAll(t *testing.T) {
	t.Run("completed uses mark complete", func(t *testing.T) {
		store := newFakeStore(sampleTasks()...)
		report := run(store, command.Command{
			Action:     command.ActionUpdateAll,
			Target:     command.TargetFiltered,
			Filters:    command.Filters{Status: model.StatusPending},
			Updates:    command.Updates{Status: model.StatusCompleted},
			Confidence: 0.9,
		})

		if got := strings.Join(store.calls, ";"); got != "complete 1;complete 3" {
			t.Errorf("calls = %q", got)
		}
		if msg := report.Outcomes[0].Message; msg != "Marked 2 tasks as completed" {
			t.Errorf("Message = %q", msg)
		}
	})

	t.Run("completed plus priority", func(t *testing.T) {
		store := newFakeStore(sampleTasks()...)
		run(store, command.Command{
			Action:     command.ActionUpdateAll,
			Target:     command.TargetFiltered,
			Filters:    command.Filters{Priority: model.PriorityHigh},
			Updates:    command.Updates{Status: model.StatusCompleted, Priority: model.PriorityLow},
			Confidence: 0.9,
		})
		if got := strings.Join(store.calls, ";"); got != "complete 1;update 1" {
			t.Errorf("calls = %q", got)
		}
	})

	t.Run("other status uses update", func(t *testing.T) {
		store := newFakeStore(sampleTasks()...)
		store.failUpdate = map[string]bool{"2": true}
		report := run(store, command.Command{
			Action:     command.ActionUpdateAll,
			Target:     command.TargetAll,
			Updates:    command.Updates{Status: model.StatusInProgress},
			Confidence: 0.95,
		})

		o := report.Outcomes[0]
		if o.Affected != 2 || o.Message != "Marked 2 tasks as in progress" {
			t.Errorf("outcome = %+v", o)
		}
	})
}

func TestExecuteBatch(t *testing.T) {
	store := newFakeStore(sampleTasks()...)
	report := run(store,
		command.Command{Action: command.ActionDeleteAll, Target: command.TargetAll, Confidence: 1},
		command.Command{Action: command.ActionDelete, Target: command.TargetSingle, TaskTitle: "pay bills", Confidence: 0.95},
		command.Command{Action: command.ActionUpdate, Target: command.TargetSingle, TaskTitle: "x", Updates: command.Updates{Status: model.StatusCompleted}, Confidence: 0.3},
		command.Command{Action: command.ActionCreate, Target: command.TargetSingle, TaskTitle: "buy milk", Confidence: 0.8},
		command.Command{Action: command.ActionRead, Target: command.TargetAll, Confidence: 0.9},
	)

	if report.Succeeded != 3 || report.Failed != 1 || report.Skipped != 1 {
		t.Fatalf("counts = %d/%d/%d, want 3/1/1", report.Succeeded, report.Failed, report.Skipped)
	}
	if report.Outcomes[1].Status != OutcomeFailed {
		t.Errorf("delete after delete-all should fail, got %+v", report.Outcomes[1])
	}
	if report.Outcomes[2].Status != OutcomeSkipped || report.Outcomes[2].Error != "low confidence" {
		t.Errorf("low confidence command should be skipped, got %+v", report.Outcomes[2])
	}
	if report.Outcomes[4].Message != "You have 1 task. 1 pending: buy milk." {
		t.Errorf("read message = %q", report.Outcomes[4].Message)
	}
	if got := report.Actions(); got != "DELETE_ALL,CREATE,READ" {
		t.Errorf("Actions() = %q", got)
	}
	if !strings.HasPrefix(report.Speech, "Deleted 3 tasks. Could not delete task") {
		t.Errorf("Speech = %q", report.Speech)
	}
}

func TestMinConfidenceOption(t *testing.T) {
	store := newFakeStore(sampleTasks()...)
	e := New(log.NewNop(), store, Options{MinConfidence: 0.9})
	report := e.Execute(context.Background(), command.ParsedResult{Commands: []command.Command{
		{Action: command.ActionCreate, Target: command.TargetSingle, TaskTitle: "buy milk", Confidence: 0.8},
	}})
	if report.Skipped != 1 || len(store.calls) != 0 {
		t.Errorf("report = %+v, calls = %v", report, store.calls)
	}
}

func TestSummarize(t *testing.T) {
	var many []model.Task
	for i := 1; i <= 7; i++ {
		many = append(many, model.Task{ID: fmt.Sprint(i), Title: fmt.Sprintf("t%d", i), Status: model.StatusPending})
	}
	many = append(many,
		model.Task{ID: "a", Title: "a", Status: model.StatusInProgress},
		model.Task{ID: "b", Title: "b", Status: model.StatusInProgress},
		model.Task{ID: "c", Title: "c", Status: model.StatusInProgress},
		model.Task{ID: "d", Title: "d", Status: model.StatusInProgress},
		model.Task{ID: "e", Title: "e", Status: model.StatusCompleted},
	)

	tests := []struct {
		name  string
		tasks []model.Task
		want  string
	}{
		{name: "empty", want: "You have no tasks"},
		{
			name:  "mixed",
			tasks: sampleTasks(),
			want:  "You have 3 tasks. 2 pending: Pay bills, Buy groceries. 1 completed.",
		},
		{
			name:  "truncated",
			tasks: many,
			want:  "You have 12 tasks. 7 pending: t1, t2, t3, t4, t5 and 2 more. 4 in progress: a, b, c and 1 more. 1 completed.",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Summarize(tt.tasks); got != tt.want {
				t.Errorf("Summarize() = %q, want %q", got, tt.want)
			}
		})
	}
}
