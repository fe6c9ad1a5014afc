package command

import (
	"context"

	"voice-task-management/internal/model"
)

// Engine turns a transcript into commands. Engines may fail; the caller
// decides how to degrade.
type Engine interface {
	Parse(ctx context.Context, transcript string, tc TaskContext) (ParsedResult, error)
}

// UseCase is the interpreter entry point. Parse never fails.
type UseCase interface {
	Parse(ctx context.Context, transcript string, tc TaskContext) ParsedResult
	ParseWithEngine(ctx context.Context, transcript string, tc TaskContext, engine ParserUsed) ParsedResult
	ParseCurrent(ctx context.Context, transcript string) ParsedResult
	UpdateContext(tasks []model.Task)
}
