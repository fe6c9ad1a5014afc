package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"voice-task-management/internal/model"
	repo "voice-task-management/internal/task/repository"
)

const taskColumns = `id, title, description, status, priority, due_date, completed_at, calendar_event_id, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

// CreateTask inserts a task with a new uuid and returns it.
func (r *Repository) CreateTask(ctx context.Context, opt repo.CreateTaskOptions) (model.Task, error) {
	const query = `
		INSERT INTO tasks (id, title, description, status, priority, due_date, completed_at, calendar_event_id, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	now := r.now()
	t := model.Task{
		ID:              uuid.NewString(),
		Title:           opt.Title,
		Description:     opt.Description,
		Status:          opt.Status,
		Priority:        opt.Priority,
		DueDate:         opt.DueDate,
		CalendarEventID: opt.CalendarEventID,
		CreatedAt:       now.UTC(),
		UpdatedAt:       now.UTC(),
	}
	if t.Status == "" {
		t.Status = model.StatusPending
	}
	if t.Priority == "" {
		t.Priority = model.PriorityMedium
	}
	if t.Status == model.StatusCompleted {
		completed := t.CreatedAt
		t.CompletedAt = &completed
	}

	_, err := r.db.ExecContext(ctx, query,
		t.ID, t.Title, t.Description, string(t.Status), string(t.Priority),
		formatDue(t.DueDate), formatDue(t.CompletedAt), t.CalendarEventID,
		formatTime(t.CreatedAt), formatTime(t.UpdatedAt),
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateTask"), err)
		return model.Task{}, repo.ErrFailedToInsert
	}
	return t, nil
}

// GetTask returns a zero Task when id is unknown.
func (r *Repository) GetTask(ctx context.Context, id string) (model.Task, error) {
	query := fmt.Sprintf(`SELECT %s FROM tasks WHERE id = ? LIMIT 1`, taskColumns)

	t, err := scanTask(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return model.Task{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetTask"), err)
		return model.Task{}, repo.ErrFailedToGet
	}
	return t, nil
}

// ListTasks returns tasks oldest first.
func (r *Repository) ListTasks(ctx context.Context, opt repo.ListTasksOptions) ([]model.Task, error) {
	mods, args := buildListQuery(opt)
	query := fmt.Sprintf(`SELECT %s FROM tasks %s`, taskColumns, mods)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListTasks"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	tasks := make([]model.Task, 0)
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListTasks"), err)
			return nil, repo.ErrFailedToList
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListTasks"), err)
		return nil, repo.ErrFailedToList
	}
	return tasks, nil
}

// UpdateTask overwrites the mutable fields and returns the stored task.
// A zero Task is returned when the id is unknown.
func (r *Repository) UpdateTask(ctx context.Context, opt repo.UpdateTaskOptions) (model.Task, error) {
	const query = `
		UPDATE tasks
		SET title = ?, description = ?, status = ?, priority = ?, due_date = ?,
		    completed_at = ?, calendar_event_id = ?, updated_at = ?
		WHERE id = ?`

	res, err := r.db.ExecContext(ctx, query,
		opt.Title, opt.Description, string(opt.Status), string(opt.Priority),
		formatDue(opt.DueDate), formatDue(opt.CompletedAt), opt.CalendarEventID,
		formatTime(r.now()), opt.ID,
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateTask"), err)
		return model.Task{}, repo.ErrFailedToUpdate
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return model.Task{}, nil
	}
	return r.GetTask(ctx, opt.ID)
}

// DeleteTask reports whether a row was removed.
func (r *Repository) DeleteTask(ctx context.Context, id string) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteTask"), err)
		return false, repo.ErrFailedToDelete
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}

// DeleteAllTasks empties the table and returns how many rows were removed.
func (r *Repository) DeleteAllTasks(ctx context.Context) (int, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM tasks`)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteAllTasks"), err)
		return 0, repo.ErrFailedToDelete
	}
	n, _ := res.RowsAffected()
	return int(n), nil
}

func scanTask(s rowScanner) (model.Task, error) {
	var (
		t                    model.Task
		status, priority     string
		due, completed       sql.NullString
		createdAt, updatedAt string
	)
	err := s.Scan(&t.ID, &t.Title, &t.Description, &status, &priority, &due, &completed, &t.CalendarEventID, &createdAt, &updatedAt)
	if err != nil {
		return model.Task{}, err
	}
	t.Status = model.Status(status)
	t.Priority = model.Priority(priority)
	t.DueDate = parseNullTime(due)
	t.CompletedAt = parseNullTime(completed)
	t.CreatedAt = parseTime(createdAt)
	t.UpdatedAt = parseTime(updatedAt)
	return t, nil
}
