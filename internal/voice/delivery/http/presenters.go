package http

import (
	"time"

	"voice-task-management/internal/command"
	"voice-task-management/internal/executor"
	"voice-task-management/internal/model"
	"voice-task-management/internal/voice"
)

// --- Request DTOs ---

type parseReq struct {
	Transcript string `json:"transcript"`
	Engine     string `form:"engine" json:"-"`
	Now        string `json:"now"`

	now *time.Time
}

func (r *parseReq) validate() error {
	if r.Now == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339, r.Now)
	if err != nil {
		return errInvalidNow
	}
	r.now = &t
	return nil
}

func (r parseReq) toInput() voice.ParseInput {
	return voice.ParseInput{Transcript: r.Transcript, Engine: r.Engine, Now: r.now}
}

type processReq struct {
	Transcript string `json:"transcript"`
	Engine     string `form:"engine" json:"-"`
}

func (r processReq) validate() error { return nil }

func (r processReq) toInput() voice.ProcessInput {
	return voice.ProcessInput{Transcript: r.Transcript, Engine: r.Engine}
}

type listLogsReq struct {
	Limit int `form:"limit"`
}

// --- Response DTOs ---

type parseResp struct {
	Result command.ParsedResult `json:"result"`
}

func (h *handler) newParseResp(out voice.ParseOutput) parseResp {
	return parseResp{Result: out.Result}
}

type processResp struct {
	Result command.ParsedResult `json:"result"`
	Report executor.Report      `json:"report"`
	Speech string               `json:"speech"`
}

func (h *handler) newProcessResp(out voice.ProcessOutput) processResp {
	return processResp{Result: out.Result, Report: out.Report, Speech: out.Report.Speech}
}

type voiceLogResp struct {
	ID                int64     `json:"id"`
	RawCommand        string    `json:"raw_command"`
	InterpretedIntent string    `json:"interpreted_intent"`
	ActionTriggered   string    `json:"action_triggered"`
	ParserUsed        string    `json:"parser_used"`
	Success           bool      `json:"success"`
	CreatedAt         time.Time `json:"created_at"`
}

type listLogsResp struct {
	Logs []voiceLogResp `json:"logs"`
}

func (h *handler) newListLogsResp(logs []model.VoiceLog) listLogsResp {
	out := make([]voiceLogResp, len(logs))
	for i, l := range logs {
		out[i] = voiceLogResp{
			ID:                l.ID,
			RawCommand:        l.RawCommand,
			InterpretedIntent: l.InterpretedIntent,
			ActionTriggered:   l.ActionTriggered,
			ParserUsed:        l.ParserUsed,
			Success:           l.Success,
			CreatedAt:         l.CreatedAt,
		}
	}
	return listLogsResp{Logs: out}
}
