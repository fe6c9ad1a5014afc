package openaicompat

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrMissingAPIKey  = errors.New("openaicompat: api key is required")
	ErrUnknownBackend = errors.New("openaicompat: unknown backend")
	ErrEmptyResponse  = errors.New("openaicompat: no choices in response")
)

// Config selects a backend. BaseURL and Model default per backend.
type Config struct {
	Backend    string
	APIKey     string
	BaseURL    string
	Model      string
	HTTPClient *http.Client
}

// Validate fills per-backend defaults.
func (c *Config) Validate() error {
	d, ok := defaults[c.Backend]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownBackend, c.Backend)
	}
	if c.APIKey == "" {
		return ErrMissingAPIKey
	}
	if c.BaseURL == "" {
		c.BaseURL = d.baseURL
	}
	if c.Model == "" {
		c.Model = d.model
	}
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: DefaultTimeout}
	}
	return nil
}

// Message is one chat turn.
type Message struct {
	Role    string
	Content string
}

// Request is a chat completion call.
type Request struct {
	System      string
	Messages    []Message
	Temperature float64
	TopP        float64
	MaxTokens   int
	JSONMode    bool
}

// Response carries the first choice and token usage.
type Response struct {
	Content      string
	Model        string
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
