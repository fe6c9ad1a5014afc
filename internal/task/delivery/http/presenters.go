package http

import (
	"strings"
	"time"

	"voice-task-management/internal/model"
	"voice-task-management/internal/task"
	"voice-task-management/pkg/response"
)

// --- Request DTOs ---

type createReq struct {
	Title       string `json:"title"       binding:"required,max=255"`
	Description string `json:"description" binding:"max=1000"`
	Status      string `json:"status"`
	Priority    string `json:"priority"`
	DueDate     string `json:"due_date"`

	dueDate *time.Time
}

func (r *createReq) validate() error {
	due, err := parseDueDate(r.DueDate)
	if err != nil {
		return err
	}
	r.dueDate = due
	return nil
}

func (r createReq) toInput() task.CreateInput {
	return task.CreateInput{
		Title:       r.Title,
		Description: r.Description,
		Status:      model.Status(r.Status),
		Priority:    model.Priority(r.Priority),
		DueDate:     r.dueDate,
	}
}

// ---

type listReq struct {
	Status   string `form:"status"`
	Priority string `form:"priority"`
	Limit    int    `form:"limit"`
	Offset   int    `form:"offset"`
}

func (r listReq) validate() error { return nil }

func (r listReq) toInput() task.ListInput {
	if r.Limit < 0 || r.Limit > 500 {
		r.Limit = 0
	}
	if r.Offset < 0 {
		r.Offset = 0
	}
	return task.ListInput{
		Status:   model.Status(r.Status),
		Priority: model.Priority(r.Priority),
		Limit:    r.Limit,
		Offset:   r.Offset,
	}
}

// ---

// updateReq is a partial update. Absent fields are left alone and an empty
// due_date clears the due date.
type updateReq struct {
	ID          string  `json:"-"`
	Title       *string `json:"title"       binding:"omitempty,max=255"`
	Description *string `json:"description" binding:"omitempty,max=1000"`
	Status      string  `json:"status"`
	Priority    string  `json:"priority"`
	DueDate     *string `json:"due_date"`

	dueDate  *time.Time
	clearDue bool
}

func (r *updateReq) validate() error {
	if r.ID == "" {
		return errIDRequired
	}
	if r.DueDate == nil {
		return nil
	}
	if strings.TrimSpace(*r.DueDate) == "" {
		r.clearDue = true
		return nil
	}
	due, err := parseDueDate(*r.DueDate)
	if err != nil {
		return err
	}
	r.dueDate = due
	return nil
}

func (r updateReq) toInput() task.UpdateInput {
	return task.UpdateInput{
		ID:           r.ID,
		Title:        r.Title,
		Description:  r.Description,
		Status:       model.Status(r.Status),
		Priority:     model.Priority(r.Priority),
		DueDate:      r.dueDate,
		ClearDueDate: r.clearDue,
	}
}

func parseDueDate(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return &t, nil
	}
	t, err := time.Parse(response.DateFormat, s)
	if err != nil {
		return nil, errInvalidDueDate
	}
	return &t, nil
}

// --- Response DTOs ---

type taskResp struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Status      string     `json:"status"`
	Priority    string     `json:"priority"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func newTaskResp(t model.Task) taskResp {
	return taskResp{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Status:      string(t.Status),
		Priority:    string(t.Priority),
		DueDate:     t.DueDate,
		CompletedAt: t.CompletedAt,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

type detailResp struct {
	Task taskResp `json:"task"`
}

func (h *handler) newDetailResp(t model.Task) detailResp {
	return detailResp{Task: newTaskResp(t)}
}

type listResp struct {
	Tasks []taskResp `json:"tasks"`
	Total int        `json:"total"`
}

func (h *handler) newListResp(tasks []model.Task) listResp {
	out := make([]taskResp, len(tasks))
	for i, t := range tasks {
		out[i] = newTaskResp(t)
	}
	return listResp{Tasks: out, Total: len(out)}
}

type deleteAllResp struct {
	Deleted int `json:"deleted"`
}
