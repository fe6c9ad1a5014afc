package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"voice-task-management/internal/command"
	"voice-task-management/internal/model"
)

// taskFile is one entry of a --tasks JSON file.
type taskFile struct {
	ID       string     `json:"id"`
	Title    string     `json:"title"`
	Status   string     `json:"status"`
	Priority string     `json:"priority"`
	DueDate  *time.Time `json:"dueDate"`
}

func readTasks(path string) ([]model.Task, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read tasks: %w", err)
	}
	var entries []taskFile
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("decode tasks: %w", err)
	}

	tasks := make([]model.Task, 0, len(entries))
	for i, e := range entries {
		t := model.Task{ID: e.ID, Title: e.Title, DueDate: e.DueDate, Status: model.StatusPending, Priority: model.PriorityMedium}
		if t.ID == "" {
			t.ID = fmt.Sprint(i + 1)
		}
		if s, ok := model.ParseStatus(e.Status); ok {
			t.Status = s
		}
		if p, ok := model.ParsePriority(e.Priority); ok {
			t.Priority = p
		}
		tasks = append(tasks, t)
	}
	return tasks, nil
}

func parseEngineFlag(s string) (command.ParserUsed, error) {
	switch command.ParserUsed(s) {
	case "", command.ParserLLM, command.ParserFallback:
		return command.ParserUsed(s), nil
	}
	return "", fmt.Errorf("unknown engine %q (want llm or fallback)", s)
}

func parseNowFlag(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("--now must be RFC3339: %w", err)
	}
	return t, nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
