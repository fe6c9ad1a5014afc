package usecase

import (
	"voice-task-management/internal/command"
	"voice-task-management/internal/executor"
	"voice-task-management/internal/task"
	"voice-task-management/internal/task/repository"
	"voice-task-management/internal/voice"
	pkgLog "voice-task-management/pkg/log"
)

type implUseCase struct {
	l           pkgLog.Logger
	interpreter command.UseCase
	tasks       task.UseCase
	logs        repository.VoiceLogRepository
	executor    *executor.Executor
}

// New creates the voice UseCase. Commands below minConfidence are not executed.
func New(
	l pkgLog.Logger,
	interpreter command.UseCase,
	tasks task.UseCase,
	logs repository.VoiceLogRepository,
	minConfidence float64,
) voice.UseCase {
	return &implUseCase{
		l:           l,
		interpreter: interpreter,
		tasks:       tasks,
		logs:        logs,
		executor:    executor.New(l, NewTaskStore(tasks), executor.Options{MinConfidence: minConfidence}),
	}
}
