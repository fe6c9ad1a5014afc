package voice

import (
	"context"

	"voice-task-management/internal/model"
)

// UseCase turns transcripts into task list changes.
//
//go:generate mockery --name UseCase
type UseCase interface {
	// Parse interprets a transcript against the current tasks without running it.
	Parse(ctx context.Context, input ParseInput) (ParseOutput, error)
	// Process interprets, executes and records a transcript.
	Process(ctx context.Context, input ProcessInput) (ProcessOutput, error)
	ListLogs(ctx context.Context, limit int) ([]model.VoiceLog, error)
}
