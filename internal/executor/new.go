package executor

import (
	"voice-task-management/internal/command"
	"voice-task-management/pkg/log"
)

// Executor runs parsed commands against a TaskStore.
type Executor struct {
	l             log.Logger
	store         TaskStore
	minConfidence float64
}

// New creates an Executor.
func New(l log.Logger, store TaskStore, opts Options) *Executor {
	if opts.MinConfidence <= 0 {
		opts.MinConfidence = command.MinAutoExecuteConfidence
	}
	return &Executor{
		l:             l,
		store:         store,
		minConfidence: opts.MinConfidence,
	}
}
