package httpserver

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"

	"voice-task-management/internal/task"
	"voice-task-management/internal/voice"
	"voice-task-management/pkg/log"
)

// Pinger reports whether a backing store is reachable.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Domains
	taskUC    task.UseCase
	voiceUC   voice.UseCase
	rateLimit int
	db        Pinger
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	TaskUseCase  task.UseCase
	VoiceUseCase voice.UseCase

	// RateLimitPerMinute caps voice requests per client. Zero disables it.
	RateLimitPerMinute int

	// DB backs the readiness probe. Optional.
	DB Pinger
}

// New creates a new HTTPServer instance and registers its routes.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	if cfg.Mode != "" {
		gin.SetMode(cfg.Mode)
	}

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.New(),
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		taskUC:      cfg.TaskUseCase,
		voiceUC:     cfg.VoiceUseCase,
		rateLimit:   cfg.RateLimitPerMinute,
		db:          cfg.DB,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}
	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.taskUC == nil {
		return errors.New("task usecase is required")
	}
	if srv.voiceUC == nil {
		return errors.New("voice usecase is required")
	}
	return nil
}
