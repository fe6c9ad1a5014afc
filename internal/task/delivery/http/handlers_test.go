package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"voice-task-management/internal/task/repository/sqlite"
	"voice-task-management/internal/task/usecase"
	"voice-task-management/pkg/log"
)

type envelope struct {
	ErrorCode int             `json:"error_code"`
	Message   string          `json:"message"`
	Data      json.RawMessage `json:"data"`
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	l := log.NewNop()
	db, err := sqlite.Open(context.Background(), ":memory:", l)
	if err != nil {
		t.Fatalf("sqlite.Open() error = %v", err)
	}
	t.Cleanup(func() { db.Close() })

	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r.Group("/api/v1/tasks"), New(l, usecase.New(l, sqlite.New(db, l), nil, "primary", "UTC")))
	return r
}

func call(t *testing.T, r http.Handler, method, path, body string) (int, envelope) {
	t.Helper()
	var rd *bytes.Reader
	if body == "" {
		rd = bytes.NewReader(nil)
	} else {
		rd = bytes.NewReader([]byte(body))
	}
	req := httptest.NewRequest(method, path, rd)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("%s %s: bad body %q: %v", method, path, w.Body.String(), err)
	}
	return w.Code, env
}

func decodeTask(t *testing.T, env envelope) taskResp {
	t.Helper()
	var out detailResp
	if err := json.Unmarshal(env.Data, &out); err != nil {
		t.Fatalf("decode task: %v", err)
	}
	return out.Task
}

func TestTaskLifecycle(t *testing.T) {
	r := newTestRouter(t)

	code, env := call(t, r, http.MethodPost, "/api/v1/tasks", `{"title":"Buy groceries","priority":"HIGH","due_date":"2025-06-20"}`)
	if code != http.StatusOK {
		t.Fatalf("create status = %d, body %+v", code, env)
	}
	created := decodeTask(t, env)
	if created.ID == "" || created.Status != "pending" || created.Priority != "HIGH" || created.DueDate == nil {
		t.Fatalf("created = %+v", created)
	}

	code, env = call(t, r, http.MethodGet, "/api/v1/tasks/"+created.ID, "")
	if code != http.StatusOK || decodeTask(t, env).Title != "Buy groceries" {
		t.Errorf("detail status = %d, body %+v", code, env)
	}

	code, env = call(t, r, http.MethodPatch, "/api/v1/tasks/"+created.ID, `{"title":"Buy milk","due_date":""}`)
	if code != http.StatusOK {
		t.Fatalf("update status = %d, body %+v", code, env)
	}
	updated := decodeTask(t, env)
	if updated.Title != "Buy milk" || updated.DueDate != nil {
		t.Errorf("updated = %+v, want new title and no due date", updated)
	}

	code, env = call(t, r, http.MethodPost, "/api/v1/tasks/"+created.ID+"/complete", "")
	if code != http.StatusOK {
		t.Fatalf("complete status = %d, body %+v", code, env)
	}
	if done := decodeTask(t, env); done.Status != "completed" || done.CompletedAt == nil {
		t.Errorf("completed = %+v", done)
	}

	code, env = call(t, r, http.MethodGet, "/api/v1/tasks?status=completed", "")
	if code != http.StatusOK {
		t.Fatalf("list status = %d", code)
	}
	var list listResp
	if err := json.Unmarshal(env.Data, &list); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if list.Total != 1 {
		t.Errorf("list total = %d, want 1", list.Total)
	}

	if code, _ = call(t, r, http.MethodDelete, "/api/v1/tasks/"+created.ID, ""); code != http.StatusOK {
		t.Errorf("delete status = %d", code)
	}
	if code, _ = call(t, r, http.MethodGet, "/api/v1/tasks/"+created.ID, ""); code != http.StatusNotFound {
		t.Errorf("detail after delete status = %d, want 404", code)
	}
}

func TestTaskErrors(t *testing.T) {
	r := newTestRouter(t)

	tests := []struct {
		name   string
		method string
		path   string
		body   string
		want   int
	}{
		{name: "missing title", method: http.MethodPost, path: "/api/v1/tasks", body: `{"description":"x"}`, want: http.StatusBadRequest},
		{name: "bad due date", method: http.MethodPost, path: "/api/v1/tasks", body: `{"title":"a","due_date":"soon"}`, want: http.StatusBadRequest},
		{name: "bad priority", method: http.MethodPost, path: "/api/v1/tasks", body: `{"title":"a","priority":"URGENT"}`, want: http.StatusBadRequest},
		{name: "update unknown", method: http.MethodPatch, path: "/api/v1/tasks/nope", body: `{"title":"a"}`, want: http.StatusNotFound},
		{name: "complete unknown", method: http.MethodPost, path: "/api/v1/tasks/nope/complete", want: http.StatusNotFound},
		{name: "delete unknown", method: http.MethodDelete, path: "/api/v1/tasks/nope", want: http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, env := call(t, r, tt.method, tt.path, tt.body)
			if code != tt.want {
				t.Errorf("status = %d, want %d (body %+v)", code, tt.want, env)
			}
		})
	}
}

func TestDeleteAll(t *testing.T) {
	r := newTestRouter(t)
	for _, title := range []string{"a", "b", "c"} {
		if code, _ := call(t, r, http.MethodPost, "/api/v1/tasks", `{"title":"`+title+`"}`); code != http.StatusOK {
			t.Fatalf("create %s status = %d", title, code)
		}
	}

	code, env := call(t, r, http.MethodDelete, "/api/v1/tasks", "")
	if code != http.StatusOK {
		t.Fatalf("delete all status = %d", code)
	}
	var out deleteAllResp
	if err := json.Unmarshal(env.Data, &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out.Deleted != 3 {
		t.Errorf("Deleted = %d, want 3", out.Deleted)
	}
}
