package openaicompat_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"voice-task-management/pkg/openaicompat"
)

func TestComplete(t *testing.T) {
	var got map[string]any
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if r.Header.Get("Authorization") != "Bearer test-key" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"id": "chatcmpl-1",
			"object": "chat.completion",
			"model": "llama-3.1-8b-instant",
			"choices": [{"index": 0, "message": {"role": "assistant", "content": "{\"commands\":[]}"}, "finish_reason": "stop"}],
			"usage": {"prompt_tokens": 20, "completion_tokens": 5, "total_tokens": 25}
		}`))
	}))
	defer ts.Close()

	client, err := openaicompat.New(openaicompat.Config{Backend: openaicompat.BackendGroq, APIKey: "test-key", BaseURL: ts.URL})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if client.Model() != "llama-3.1-8b-instant" {
		t.Errorf("Model() = %q, want groq default", client.Model())
	}

	resp, err := client.Complete(context.Background(), &openaicompat.Request{
		System:      "parse commands",
		Messages:    []openaicompat.Message{{Role: "user", Content: "delete all tasks"}},
		Temperature: 0.1,
		MaxTokens:   500,
		JSONMode:    true,
	})
	if err != nil {
		t.Fatalf("Complete() error = %v", err)
	}
	if resp.Content != `{"commands":[]}` {
		t.Errorf("Content = %q", resp.Content)
	}
	if resp.TotalTokens != 25 {
		t.Errorf("TotalTokens = %d, want 25", resp.TotalTokens)
	}

	msgs, _ := got["messages"].([]any)
	if len(msgs) != 2 {
		t.Fatalf("sent %d messages, want system + user", len(msgs))
	}
	if first, _ := msgs[0].(map[string]any); first["role"] != "system" {
		t.Errorf("first message role = %v, want system", first["role"])
	}
	format, _ := got["response_format"].(map[string]any)
	if format["type"] != "json_object" {
		t.Errorf("response_format = %v, want json_object", got["response_format"])
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     openaicompat.Config
		wantErr error
	}{
		{name: "unknown backend", cfg: openaicompat.Config{Backend: "mystery", APIKey: "k"}, wantErr: openaicompat.ErrUnknownBackend},
		{name: "missing key", cfg: openaicompat.Config{Backend: openaicompat.BackendOpenAI}, wantErr: openaicompat.ErrMissingAPIKey},
		{name: "ok", cfg: openaicompat.Config{Backend: openaicompat.BackendDeepSeek, APIKey: "k"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
