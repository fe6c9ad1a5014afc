package usecase

import (
	"sync"
	"time"

	"voice-task-management/internal/command"
	"voice-task-management/internal/command/fallback"
	"voice-task-management/internal/model"
	"voice-task-management/pkg/log"
)

type implUseCase struct {
	l        log.Logger
	llm      command.Engine
	fallback *fallback.Parser
	location *time.Location

	mu       sync.RWMutex
	snapshot []model.Task
}

// New creates the command interpreter. llm may be nil, in which case every
// transcript goes to the rule based parser. timezone is an IANA name used
// when a call carries no clock; unknown names fall back to UTC.
func New(l log.Logger, llm command.Engine, fb *fallback.Parser, timezone string) command.UseCase {
	if fb == nil {
		fb = fallback.New()
	}
	loc, err := time.LoadLocation(timezone)
	if err != nil || timezone == "" {
		loc = time.UTC
	}
	return &implUseCase{
		l:        l,
		llm:      llm,
		fallback: fb,
		location: loc,
	}
}
