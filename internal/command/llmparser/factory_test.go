package llmparser_test

import (
	"context"
	"errors"
	"testing"

	"voice-task-management/config"
	"voice-task-management/internal/command/llmparser"
	"voice-task-management/pkg/llmprovider"
	"voice-task-management/pkg/log"
)

func TestNewFromConfigWithoutProviders(t *testing.T) {
	cfg := &config.LLMConfig{Providers: []config.ProviderConfig{{Name: "groq", Enabled: false, Priority: 1}}}
	p, err := llmparser.NewFromConfig(context.Background(), log.NewNop(), cfg, 0)
	if !errors.Is(err, llmprovider.ErrNoProvidersConfigured) {
		t.Fatalf("NewFromConfig() error = %v, want ErrNoProvidersConfigured", err)
	}
	if p != nil {
		t.Errorf("NewFromConfig() parser = %v, want nil", p)
	}
}

func TestNewFromConfigOllama(t *testing.T) {
	cfg := &config.LLMConfig{Providers: []config.ProviderConfig{
		{Name: "ollama", Enabled: true, Priority: 1, BaseURL: "http://127.0.0.1:11434", Model: "llama3.2"},
	}}
	p, err := llmparser.NewFromConfig(context.Background(), log.NewNop(), cfg, 5)
	if err != nil {
		t.Fatalf("NewFromConfig() error = %v", err)
	}
	if p == nil {
		t.Fatal("NewFromConfig() returned nil parser")
	}
}
