package llmprovider_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"voice-task-management/config"
	"voice-task-management/pkg/llmprovider"
	"voice-task-management/pkg/log"
)

func TestInitializeProviders(t *testing.T) {
	tests := []struct {
		name      string
		cfg       *config.LLMConfig
		wantNames []string
		wantErr   error
		anyErr    bool
	}{
		{
			name:   "nil config",
			cfg:    nil,
			anyErr: true,
		},
		{
			name:    "no providers",
			cfg:     &config.LLMConfig{},
			wantErr: llmprovider.ErrNoProvidersConfigured,
		},
		{
			name: "all providers disabled",
			cfg: &config.LLMConfig{Providers: []config.ProviderConfig{
				{Name: "groq", Enabled: false, Priority: 1, APIKey: "k"},
			}},
			wantErr: llmprovider.ErrNoProvidersConfigured,
		},
		{
			name: "sorted by priority",
			cfg: &config.LLMConfig{Providers: []config.ProviderConfig{
				{Name: "gemini", Enabled: true, Priority: 10, APIKey: "g"},
				{Name: "groq", Enabled: true, Priority: 2, APIKey: "k"},
				{Name: "ollama", Enabled: true, Priority: 1},
			}},
			wantNames: []string{"ollama", "groq", "gemini"},
		},
		{
			name: "failed provider is skipped",
			cfg: &config.LLMConfig{Providers: []config.ProviderConfig{
				{Name: "openai", Enabled: true, Priority: 1},
				{Name: "alibaba", Enabled: true, Priority: 2, APIKey: "k"},
				{Name: "mystery", Enabled: true, Priority: 3, APIKey: "k"},
			}},
			wantNames: []string{"qwen"},
		},
		{
			name: "cloud providers without keys are skipped",
			cfg: &config.LLMConfig{Providers: []config.ProviderConfig{
				{Name: "ollama", Enabled: true, Priority: 1},
				{Name: "groq", Enabled: true, Priority: 2},
				{Name: "gemini", Enabled: true, Priority: 3},
			}},
			wantNames: []string{"ollama"},
		},
		{
			name: "every provider fails",
			cfg: &config.LLMConfig{Providers: []config.ProviderConfig{
				{Name: "deepseek", Enabled: true, Priority: 1},
				{Name: "ollama", Enabled: true, Priority: 2, Timeout: "soon"},
			}},
			anyErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			providers, err := llmprovider.InitializeProviders(context.Background(), tt.cfg, log.NewNop())
			switch {
			case tt.wantErr != nil:
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("err = %v, want %v", err, tt.wantErr)
				}
				return
			case tt.anyErr:
				if err == nil {
					t.Fatal("expected an error")
				}
				return
			case err != nil:
				t.Fatalf("unexpected error: %v", err)
			}

			if len(providers) != len(tt.wantNames) {
				t.Fatalf("got %d providers, want %d", len(providers), len(tt.wantNames))
			}
			for i, p := range providers {
				if p.Name() != tt.wantNames[i] {
					t.Errorf("providers[%d] = %s, want %s", i, p.Name(), tt.wantNames[i])
				}
			}
		})
	}
}

func TestOllamaProviderEndToEnd(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/generate" {
			w.Write([]byte(`{"response":"{\"commands\":[]}","done":true,"prompt_eval_count":3,"eval_count":2}`))
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	defer ts.Close()

	cfg := &config.LLMConfig{
		Providers: []config.ProviderConfig{
			{Name: "ollama", Enabled: true, Priority: 1, BaseURL: ts.URL, Timeout: "2s"},
		},
		RetryAttempts: 1,
		RetryDelay:    "10ms",
	}
	providers, err := llmprovider.InitializeProviders(context.Background(), cfg, log.NewNop())
	if err != nil {
		t.Fatalf("InitializeProviders() error = %v", err)
	}

	manager := llmprovider.NewManager(providers, llmprovider.NewManagerConfig(cfg), log.NewNop())
	resp, err := manager.GenerateContent(context.Background(), &llmprovider.Request{
		Messages: []llmprovider.Message{{Role: llmprovider.RoleUser, Content: "delete all tasks"}},
		JSONMode: true,
	})
	if err != nil {
		t.Fatalf("GenerateContent() error = %v", err)
	}
	if resp.Content != `{"commands":[]}` || resp.ProviderName != "ollama" {
		t.Errorf("resp = %+v", resp)
	}
	if resp.Usage.TotalTokens != 5 {
		t.Errorf("TotalTokens = %d, want 5", resp.Usage.TotalTokens)
	}
}

func TestProviderErrorWrapping(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer ts.Close()

	providers, err := llmprovider.InitializeProviders(context.Background(), &config.LLMConfig{
		Providers: []config.ProviderConfig{{Name: "ollama", Enabled: true, Priority: 1, BaseURL: ts.URL}},
	}, log.NewNop())
	if err != nil {
		t.Fatalf("InitializeProviders() error = %v", err)
	}

	_, err = providers[0].GenerateContent(context.Background(), &llmprovider.Request{})
	var perr *llmprovider.ProviderError
	if !errors.As(err, &perr) || perr.Provider != "ollama" {
		t.Fatalf("err = %v, want *ProviderError for ollama", err)
	}
}

func TestNewManagerConfig(t *testing.T) {
	mc := llmprovider.NewManagerConfig(&config.LLMConfig{
		FallbackEnabled: true,
		RetryDelay:      "250ms",
		MaxTotalTimeout: "bogus",
	})
	if mc.RetryAttempts != 1 {
		t.Errorf("RetryAttempts = %d, want 1", mc.RetryAttempts)
	}
	if mc.RetryDelay != 250*time.Millisecond {
		t.Errorf("RetryDelay = %v", mc.RetryDelay)
	}
	if mc.MaxTotalTimeout != llmprovider.DefaultMaxTotalTimeout {
		t.Errorf("MaxTotalTimeout = %v, want default", mc.MaxTotalTimeout)
	}
	if !mc.FallbackEnabled {
		t.Error("FallbackEnabled lost")
	}
}
