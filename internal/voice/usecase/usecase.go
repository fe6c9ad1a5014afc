package usecase

import (
	"context"

	"voice-task-management/internal/command"
	"voice-task-management/internal/model"
	"voice-task-management/internal/task"
	"voice-task-management/internal/task/repository"
	"voice-task-management/internal/voice"
)

// Parse refreshes the interpreter's task snapshot and interprets the
// transcript without touching the task list.
func (uc *implUseCase) Parse(ctx context.Context, input voice.ParseInput) (voice.ParseOutput, error) {
	engine, err := parseEngine(input.Engine)
	if err != nil {
		return voice.ParseOutput{}, err
	}
	tc, err := uc.refresh(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "%s: load tasks: %v", logPrefixParse, err)
		return voice.ParseOutput{}, err
	}
	if input.Now != nil {
		tc.Now = *input.Now
	}
	return voice.ParseOutput{Result: uc.parse(ctx, input.Transcript, tc, engine)}, nil
}

// Process parses, executes and logs a transcript. Command failures are
// reported in the output, not as an error.
func (uc *implUseCase) Process(ctx context.Context, input voice.ProcessInput) (voice.ProcessOutput, error) {
	engine, err := parseEngine(input.Engine)
	if err != nil {
		return voice.ProcessOutput{}, err
	}
	tc, err := uc.refresh(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "%s: load tasks: %v", logPrefixProcess, err)
		return voice.ProcessOutput{}, err
	}

	res := uc.parse(ctx, input.Transcript, tc, engine)
	if len(res.Commands) == 0 {
		uc.record(ctx, res, "", false)
		return voice.ProcessOutput{Result: res}, voice.ErrEmptyCommand
	}

	report := uc.executor.Execute(ctx, res)
	uc.l.Infof(ctx, "%s: parser=%s commands=%d succeeded=%d failed=%d skipped=%d",
		logPrefixProcess, res.ParserUsed, len(res.Commands), report.Succeeded, report.Failed, report.Skipped)

	uc.record(ctx, res, report.Actions(), report.Success())
	if _, err := uc.refresh(ctx); err != nil {
		uc.l.Warnf(ctx, "%s: refresh snapshot: %v", logPrefixProcess, err)
	}
	return voice.ProcessOutput{Result: res, Report: report}, nil
}

// ListLogs returns the most recent voice commands, newest first.
func (uc *implUseCase) ListLogs(ctx context.Context, limit int) ([]model.VoiceLog, error) {
	if limit <= 0 {
		limit = defaultLogLimit
	}
	if limit > maxLogLimit {
		limit = maxLogLimit
	}
	return uc.logs.ListVoiceLogs(ctx, repository.ListVoiceLogsOptions{Limit: limit})
}

func (uc *implUseCase) parse(ctx context.Context, transcript string, tc command.TaskContext, engine command.ParserUsed) command.ParsedResult {
	if engine == "" {
		return uc.interpreter.Parse(ctx, transcript, tc)
	}
	return uc.interpreter.ParseWithEngine(ctx, transcript, tc, engine)
}

// refresh loads the task list and hands it to the interpreter.
func (uc *implUseCase) refresh(ctx context.Context) (command.TaskContext, error) {
	tasks, err := uc.tasks.List(ctx, task.ListInput{})
	if err != nil {
		return command.TaskContext{}, err
	}
	uc.interpreter.UpdateContext(tasks)
	return command.TaskContext{Tasks: tasks}, nil
}

func (uc *implUseCase) record(ctx context.Context, res command.ParsedResult, actions string, success bool) {
	if uc.logs == nil {
		return
	}
	_, err := uc.logs.CreateVoiceLog(ctx, repository.CreateVoiceLogOptions{
		RawCommand:        res.RawTranscript,
		InterpretedIntent: res.Interpretation,
		ActionTriggered:   actions,
		ParserUsed:        string(res.ParserUsed),
		Success:           success,
	})
	if err != nil {
		uc.l.Warnf(ctx, "%s: voice log not saved: %v", logPrefixProcess, err)
	}
}

func parseEngine(s string) (command.ParserUsed, error) {
	switch command.ParserUsed(s) {
	case "":
		return "", nil
	case command.ParserLLM, command.ParserFallback:
		return command.ParserUsed(s), nil
	}
	return "", voice.ErrInvalidEngine
}
