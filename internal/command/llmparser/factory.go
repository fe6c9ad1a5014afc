package llmparser

import (
	"context"

	"voice-task-management/config"
	"voice-task-management/pkg/llmprovider"
	"voice-task-management/pkg/log"
)

// NewFromConfig builds a parser over every enabled provider in cfg. It
// returns llmprovider.ErrNoProvidersConfigured when none is enabled, so the
// caller can run on the rule based parser alone.
func NewFromConfig(ctx context.Context, l log.Logger, cfg *config.LLMConfig, maxContextTasks int) (*Parser, error) {
	providers, err := llmprovider.InitializeProviders(ctx, cfg, l)
	if err != nil {
		return nil, err
	}
	for _, p := range providers {
		l.Infof(ctx, "LLM provider ready: %s (%s)", p.Name(), p.Model())
	}

	manager := llmprovider.NewManager(providers, llmprovider.NewManagerConfig(cfg), l)
	return New(l, manager, Options{
		Temperature:     cfg.Temperature,
		TopP:            cfg.TopP,
		MaxTokens:       cfg.MaxTokens,
		MaxContextTasks: maxContextTasks,
	}), nil
}
