package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"voice-task-management/config"
	_ "voice-task-management/docs" // Swagger docs
	"voice-task-management/internal/command"
	"voice-task-management/internal/command/llmparser"
	commandUC "voice-task-management/internal/command/usecase"
	"voice-task-management/internal/httpserver"
	"voice-task-management/internal/task/repository/sqlite"
	taskUC "voice-task-management/internal/task/usecase"
	voiceUC "voice-task-management/internal/voice/usecase"
	"voice-task-management/pkg/gcalendar"
	"voice-task-management/pkg/log"
)

// @title       Voice Task Management API
// @description Voice command interpretation for a task list, with LLM and rule based parsing.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Voice Task Management...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Storage
	db, err := sqlite.Open(ctx, cfg.Database.Path, logger)
	if err != nil {
		logger.Error(ctx, "Failed to open database: ", err)
		return
	}
	defer db.Close()
	repo := sqlite.New(db, logger)

	// 4. Google Calendar (optional)
	var calendar taskUC.Calendar
	if cfg.GoogleCalendar.CredentialsPath != "" {
		client, calErr := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath, cfg.GoogleCalendar.TokenPath)
		if calErr != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", calErr)
			logger.Warn(ctx, "Run `voicectl calendar-auth` to generate the OAuth token")
		} else {
			calendar = client
			logger.Info(ctx, "Google Calendar initialized")
		}
	}

	// 5. Interpreter: LLM first, rule based parser as fallback
	var engine command.Engine
	if parser, llmErr := llmparser.NewFromConfig(ctx, logger, &cfg.LLM, cfg.Interpreter.MaxContextTasks); llmErr != nil {
		logger.Warnf(ctx, "LLM parser disabled, using rule based parser only: %v", llmErr)
	} else {
		engine = parser
	}
	interpreter := commandUC.New(logger, engine, nil, cfg.Interpreter.Timezone)

	// 6. Use cases
	tasks := taskUC.New(logger, repo, calendar, cfg.GoogleCalendar.CalendarID, cfg.Interpreter.Timezone)
	voice := voiceUC.New(logger, interpreter, tasks, repo, cfg.Interpreter.MinConfidence)

	// 7. HTTP Server
	rateLimit := 0
	if cfg.RateLimit.Enabled {
		rateLimit = cfg.RateLimit.PerMinute
	}
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:             logger,
		Port:               cfg.HTTPServer.Port,
		Mode:               cfg.HTTPServer.Mode,
		Environment:        cfg.Environment.Name,
		TaskUseCase:        tasks,
		VoiceUseCase:       voice,
		RateLimitPerMinute: rateLimit,
		DB:                 db,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 8. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
