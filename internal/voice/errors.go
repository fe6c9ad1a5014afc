package voice

import "errors"

var (
	ErrInvalidEngine = errors.New("engine must be llm or fallback")
	ErrEmptyCommand  = errors.New("no speech detected")
)
