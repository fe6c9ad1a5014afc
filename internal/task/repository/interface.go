package repository

import (
	"context"

	"voice-task-management/internal/model"
)

// TaskRepository is the persistence contract for tasks.
//
//go:generate mockery --name TaskRepository
type TaskRepository interface {
	CreateTask(ctx context.Context, opt CreateTaskOptions) (model.Task, error)
	// GetTask returns a zero Task (ID == "") when the id is unknown.
	GetTask(ctx context.Context, id string) (model.Task, error)
	ListTasks(ctx context.Context, opt ListTasksOptions) ([]model.Task, error)
	UpdateTask(ctx context.Context, opt UpdateTaskOptions) (model.Task, error)
	DeleteTask(ctx context.Context, id string) (bool, error)
	DeleteAllTasks(ctx context.Context) (int, error)
}

// VoiceLogRepository stores the history of processed voice commands.
type VoiceLogRepository interface {
	CreateVoiceLog(ctx context.Context, opt CreateVoiceLogOptions) (model.VoiceLog, error)
	ListVoiceLogs(ctx context.Context, opt ListVoiceLogsOptions) ([]model.VoiceLog, error)
}
