package ollama

import "time"

const (
	// DefaultBaseURL is the local Ollama daemon.
	DefaultBaseURL = "http://localhost:11434"

	// DefaultModel is a small instruction model that runs on a laptop.
	DefaultModel = "llama3.2:3b"

	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 30 * time.Second

	// FormatJSON asks the daemon to constrain output to a JSON value.
	FormatJSON = "json"

	generatePath = "/api/generate"
)
