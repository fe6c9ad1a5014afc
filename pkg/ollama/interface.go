package ollama

import "context"

// IOllama is a client for the Ollama generate endpoint.
// Implementations are safe for concurrent use.
type IOllama interface {
	// Generate runs a single non-streaming completion.
	Generate(ctx context.Context, req *Request) (*Response, error)

	// Model returns the model being used
	Model() string
}

// New creates a new Ollama client with the given configuration
func New(cfg Config) (IOllama, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newOllamaImpl(cfg), nil
}
