package llmparser

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"voice-task-management/internal/command"
	"voice-task-management/pkg/llmprovider"
	"voice-task-management/pkg/log"
)

// Generator is the slice of llmprovider.Manager the parser needs.
type Generator interface {
	GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}

// Options tunes sampling and prompt size. Zero values use the defaults.
type Options struct {
	Temperature     float64
	TopP            float64
	MaxTokens       int
	MaxContextTasks int
}

// Parser turns transcripts into commands with a language model.
type Parser struct {
	l    log.Logger
	gen  Generator
	opts Options
}

// New creates an LLM parser.
func New(l log.Logger, gen Generator, opts Options) *Parser {
	if opts.Temperature <= 0 {
		opts.Temperature = DefaultTemperature
	}
	if opts.TopP <= 0 {
		opts.TopP = DefaultTopP
	}
	if opts.MaxTokens <= 0 {
		opts.MaxTokens = DefaultMaxTokens
	}
	if opts.MaxContextTasks <= 0 {
		opts.MaxContextTasks = MaxPromptTasks
	}
	return &Parser{l: l, gen: gen, opts: opts}
}

// Parse asks the model for commands. Every failure wraps one of
// ErrLLMUnavailable, ErrMalformedResponse or ErrNoCommands.
func (p *Parser) Parse(ctx context.Context, transcript string, tc command.TaskContext) (command.ParsedResult, error) {
	resp, err := p.gen.GenerateContent(ctx, &llmprovider.Request{
		SystemInstruction: systemInstruction,
		Messages: []llmprovider.Message{
			{Role: llmprovider.RoleUser, Content: buildPrompt(transcript, tc, p.opts.MaxContextTasks)},
		},
		Temperature: p.opts.Temperature,
		TopP:        p.opts.TopP,
		MaxTokens:   p.opts.MaxTokens,
		JSONMode:    true,
	})
	if err != nil {
		return command.ParsedResult{}, fmt.Errorf("%w: %w", ErrLLMUnavailable, err)
	}
	if resp == nil || strings.TrimSpace(resp.Content) == "" {
		return command.ParsedResult{}, fmt.Errorf("%w: empty reply", ErrLLMUnavailable)
	}

	raw, err := decode(resp.Content)
	if err != nil {
		p.l.Warnf(ctx, "%s: decode: %v", LogPrefixParse, err)
		return command.ParsedResult{}, err
	}
	if len(raw.Commands) == 0 {
		return command.ParsedResult{}, ErrNoCommands
	}

	cmds := make([]command.Command, 0, len(raw.Commands))
	for i, rc := range raw.Commands {
		c, err := normalize(rc, tc)
		if err != nil {
			p.l.Warnf(ctx, "%s: dropping command %d: %v", LogPrefixParse, i, err)
			continue
		}
		cmds = append(cmds, c)
	}
	if len(cmds) == 0 {
		return command.ParsedResult{}, fmt.Errorf("%w: all %d commands were invalid", ErrNoCommands, len(raw.Commands))
	}

	return command.ParsedResult{
		Commands:       cmds,
		RawTranscript:  transcript,
		Interpretation: command.Interpret(cmds),
		ParserUsed:     command.ParserLLM,
		Confidence:     command.MinConfidence(cmds),
	}, nil
}

// CleanResponse strips markdown fences and surrounding prose, returning the
// outermost {...} span. ok is false when there is none.
func CleanResponse(s string) (string, bool) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```JSON")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")

	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start < 0 || end <= start {
		return "", false
	}
	return s[start : end+1], true
}

func decode(content string) (rawResult, error) {
	cleaned, ok := CleanResponse(content)
	if !ok {
		return rawResult{}, fmt.Errorf("%w: no JSON object in reply", ErrMalformedResponse)
	}
	var raw rawResult
	if err := json.Unmarshal([]byte(cleaned), &raw); err != nil {
		return rawResult{}, fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}
	return raw, nil
}
