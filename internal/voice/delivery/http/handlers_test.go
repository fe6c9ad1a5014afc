package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"voice-task-management/internal/command"
	"voice-task-management/internal/executor"
	"voice-task-management/internal/middleware"
	"voice-task-management/internal/model"
	"voice-task-management/internal/voice"
	"voice-task-management/pkg/log"
)

type fakeUseCase struct {
	parseIn    voice.ParseInput
	processIn  voice.ProcessInput
	logsLimit  int
	processErr error
}

func (f *fakeUseCase) Parse(ctx context.Context, in voice.ParseInput) (voice.ParseOutput, error) {
	f.parseIn = in
	if in.Engine == "bogus" {
		return voice.ParseOutput{}, voice.ErrInvalidEngine
	}
	return voice.ParseOutput{Result: command.ParsedResult{
		Commands:   []command.Command{{Action: command.ActionRead, Target: command.TargetAll, Confidence: 0.9}},
		ParserUsed: command.ParserFallback,
	}}, nil
}

func (f *fakeUseCase) Process(ctx context.Context, in voice.ProcessInput) (voice.ProcessOutput, error) {
	f.processIn = in
	if f.processErr != nil {
		return voice.ProcessOutput{Result: command.ParsedResult{Commands: []command.Command{}}}, f.processErr
	}
	return voice.ProcessOutput{
		Result: command.ParsedResult{ParserUsed: command.ParserFallback},
		Report: executor.Report{Succeeded: 1, Speech: "Created task \"Buy milk\""},
	}, nil
}

func (f *fakeUseCase) ListLogs(ctx context.Context, limit int) ([]model.VoiceLog, error) {
	f.logsLimit = limit
	return []model.VoiceLog{{ID: 7, RawCommand: "add buy milk", Success: true, CreatedAt: time.Now()}}, nil
}

func newTestRouter(uc voice.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r.Group("/api/v1/voice"), New(log.NewNop(), uc), middleware.New(log.NewNop(), 0))
	return r
}

func serve(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestParseHandler(t *testing.T) {
	uc := &fakeUseCase{}
	r := newTestRouter(uc)

	w := serve(r, http.MethodPost, "/api/v1/voice/parse?engine=fallback", `{"transcript":"show tasks","now":"2025-06-15T09:00:00Z"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	if uc.parseIn.Engine != "fallback" || uc.parseIn.Transcript != "show tasks" {
		t.Errorf("input = %+v", uc.parseIn)
	}
	if uc.parseIn.Now == nil || !uc.parseIn.Now.Equal(time.Date(2025, 6, 15, 9, 0, 0, 0, time.UTC)) {
		t.Errorf("Now = %v", uc.parseIn.Now)
	}

	var body struct {
		Data parseResp `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(body.Data.Result.Commands) != 1 || body.Data.Result.Commands[0].Action != command.ActionRead {
		t.Errorf("result = %+v", body.Data.Result)
	}
}

func TestParseHandlerErrors(t *testing.T) {
	r := newTestRouter(&fakeUseCase{})

	tests := []struct {
		name string
		path string
		body string
		want int
	}{
		{name: "bad engine", path: "/api/v1/voice/parse?engine=bogus", body: `{"transcript":"x"}`, want: http.StatusBadRequest},
		{name: "bad now", path: "/api/v1/voice/parse", body: `{"transcript":"x","now":"yesterday"}`, want: http.StatusBadRequest},
		{name: "bad json", path: "/api/v1/voice/parse", body: `{`, want: http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if w := serve(r, http.MethodPost, tt.path, tt.body); w.Code != tt.want {
				t.Errorf("status = %d, want %d", w.Code, tt.want)
			}
		})
	}
}

func TestProcessHandler(t *testing.T) {
	uc := &fakeUseCase{}
	r := newTestRouter(uc)

	w := serve(r, http.MethodPost, "/api/v1/voice/commands", `{"transcript":"add buy milk"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	var body struct {
		Data processResp `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Data.Speech != `Created task "Buy milk"` || body.Data.Report.Succeeded != 1 {
		t.Errorf("data = %+v", body.Data)
	}

	uc.processErr = voice.ErrEmptyCommand
	if w := serve(r, http.MethodPost, "/api/v1/voice/commands", `{"transcript":""}`); w.Code != http.StatusUnprocessableEntity {
		t.Errorf("empty transcript status = %d, want 422", w.Code)
	}

	uc.processErr = errors.New("disk full")
	if w := serve(r, http.MethodPost, "/api/v1/voice/commands", `{"transcript":"x"}`); w.Code != http.StatusInternalServerError {
		t.Errorf("store failure status = %d, want 500", w.Code)
	}
}

func TestListLogsHandler(t *testing.T) {
	uc := &fakeUseCase{}
	r := newTestRouter(uc)

	w := serve(r, http.MethodGet, "/api/v1/voice/logs?limit=5", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if uc.logsLimit != 5 {
		t.Errorf("limit = %d, want 5", uc.logsLimit)
	}
	var body struct {
		Data listLogsResp `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(body.Data.Logs) != 1 || body.Data.Logs[0].ID != 7 {
		t.Errorf("logs = %+v", body.Data.Logs)
	}
}
