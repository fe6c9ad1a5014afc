package usecase

import (
	"context"
	"strings"
	"time"

	"voice-task-management/internal/command"
	"voice-task-management/internal/model"
)

// Parse tries the LLM engine first and falls back to the rule based parser
// on any error. It never fails.
func (uc *implUseCase) Parse(ctx context.Context, transcript string, tc command.TaskContext) command.ParsedResult {
	tc = uc.withClock(tc)
	if r, ok := emptyResult(transcript); ok {
		return r
	}

	if uc.llm == nil {
		return uc.parseFallback(transcript, tc, reasonLLMNotConfigured)
	}

	res, err := uc.llm.Parse(ctx, transcript, tc)
	if err == nil && len(res.Commands) > 0 {
		res.ParserUsed = command.ParserLLM
		res.RawTranscript = transcript
		return res
	}
	if err == nil {
		err = errNoCommands
	}

	uc.l.Warnf(ctx, "%s: llm engine failed, using fallback: %v", logPrefixParse, err)
	return uc.parseFallback(transcript, tc, err.Error())
}

// ParseWithEngine forces one engine. Forcing the LLM still degrades to the
// fallback parser when the LLM fails, so the result is never empty.
func (uc *implUseCase) ParseWithEngine(ctx context.Context, transcript string, tc command.TaskContext, engine command.ParserUsed) command.ParsedResult {
	switch engine {
	case command.ParserFallback:
		tc = uc.withClock(tc)
		if r, ok := emptyResult(transcript); ok {
			return r
		}
		return uc.fallback.Parse(transcript, tc)
	default:
		return uc.Parse(ctx, transcript, tc)
	}
}

// ParseCurrent parses against the last snapshot passed to UpdateContext.
func (uc *implUseCase) ParseCurrent(ctx context.Context, transcript string) command.ParsedResult {
	return uc.Parse(ctx, transcript, command.TaskContext{Tasks: uc.tasks()})
}

// UpdateContext replaces the task snapshot. Last writer wins.
func (uc *implUseCase) UpdateContext(tasks []model.Task) {
	cp := make([]model.Task, len(tasks))
	copy(cp, tasks)

	uc.mu.Lock()
	uc.snapshot = cp
	uc.mu.Unlock()
}

func (uc *implUseCase) tasks() []model.Task {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return uc.snapshot
}

func (uc *implUseCase) withClock(tc command.TaskContext) command.TaskContext {
	if tc.Now.IsZero() {
		tc.Now = time.Now().In(uc.location)
	}
	return tc
}

func (uc *implUseCase) parseFallback(transcript string, tc command.TaskContext, reason string) command.ParsedResult {
	res := uc.fallback.Parse(transcript, tc)
	res.ParserUsed = command.ParserFallback
	res.FallbackReason = reason
	return res
}

func emptyResult(transcript string) (command.ParsedResult, bool) {
	if strings.TrimSpace(transcript) != "" {
		return command.ParsedResult{}, false
	}
	return command.ParsedResult{
		Commands:       []command.Command{},
		RawTranscript:  transcript,
		Interpretation: command.InterpretationNoSpeech,
		ParserUsed:     command.ParserNone,
		Confidence:     0,
	}, true
}
