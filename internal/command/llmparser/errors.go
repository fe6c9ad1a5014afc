package llmparser

import "errors"

var (
	// ErrLLMUnavailable means no backend produced a reply.
	ErrLLMUnavailable = errors.New("llm unavailable")
	// ErrMalformedResponse means the reply held no parseable JSON object.
	ErrMalformedResponse = errors.New("malformed llm response")
	// ErrNoCommands means the reply parsed but carried no usable command.
	ErrNoCommands = errors.New("llm returned no commands")
)
