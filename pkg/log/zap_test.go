package log

import (
	"context"
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"WARN", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
		{"", zapcore.InfoLevel},
		{"verbose", zapcore.InfoLevel},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := parseLevel(tt.in); got != tt.want {
				t.Errorf("parseLevel(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestLogw(t *testing.T) {
	var structuredCalls, plainCalls int
	structured := func(string, ...any) { structuredCalls++ }
	plain := func(...any) { plainCalls++ }

	logw(structured, plain, []any{"LLM generation successful", "provider", "ollama"})
	logw(structured, plain, []any{"Failed to run server: ", context.Canceled})
	logw(structured, plain, []any{"only message"})

	if structuredCalls != 1 {
		t.Errorf("expected 1 structured call, got %d", structuredCalls)
	}
	if plainCalls != 2 {
		t.Errorf("expected 2 plain calls, got %d", plainCalls)
	}
}

func TestInitDoesNotPanic(t *testing.T) {
	ctx := context.WithValue(context.Background(), ContextKeyRequestID, "req-1")
	for _, enc := range []string{EncodingConsole, EncodingJSON} {
		l := Init(ZapConfig{Level: "error", Mode: ModeProduction, Encoding: enc})
		l.Infof(ctx, "hidden %d", 1)
		l.Debug(ctx, "hidden")
	}
	NewNop().Error(context.Background(), "discarded")
}
