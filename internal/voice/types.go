package voice

import (
	"time"

	"voice-task-management/internal/command"
	"voice-task-management/internal/executor"
)

// ParseInput is a transcript plus an optional engine override ("llm" or
// "fallback") and clock override.
type ParseInput struct {
	Transcript string
	Engine     string
	Now        *time.Time
}

type ParseOutput struct {
	Result command.ParsedResult
}

type ProcessInput struct {
	Transcript string
	Engine     string
}

type ProcessOutput struct {
	Result command.ParsedResult
	Report executor.Report
}
