package main

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"voice-task-management/internal/task/repository/sqlite"
	taskUC "voice-task-management/internal/task/usecase"
	"voice-task-management/internal/voice"
	voiceUC "voice-task-management/internal/voice/usecase"
)

var dbPath string

func openStore(ctx context.Context) (*sql.DB, voice.UseCase, error) {
	cfg := loadConfig(ctx)
	path := dbPath
	if path == "" {
		path = cfg.Database.Path
	}
	if path == "" {
		path = "voice-tasks.db"
	}

	db, err := sqlite.Open(ctx, path, logger)
	if err != nil {
		return nil, nil, err
	}
	repo := sqlite.New(db, logger)
	tasks := taskUC.New(logger, repo, nil, cfg.GoogleCalendar.CalendarID, cfg.Interpreter.Timezone)
	return db, voiceUC.New(logger, newInterpreter(ctx, cfg), tasks, repo, cfg.Interpreter.MinConfidence), nil
}

func runCmd() *cobra.Command {
	var engine string

	cmd := &cobra.Command{
		Use:   "run <transcript>",
		Short: "Interpret a transcript and apply it to the task database",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if _, err := parseEngineFlag(engine); err != nil {
				return err
			}

			db, uc, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer db.Close()

			out, err := uc.Process(ctx, voice.ProcessInput{Transcript: strings.Join(args, " "), Engine: engine})
			if err != nil && !errors.Is(err, voice.ErrEmptyCommand) {
				return err
			}
			if perr := printJSON(cmd.OutOrStdout(), out); perr != nil {
				return perr
			}
			return err
		},
	}
	cmd.Flags().StringVar(&engine, "engine", "", "force an engine: llm or fallback")
	cmd.Flags().StringVar(&dbPath, "db", "", "SQLite database path (default from config)")
	return cmd
}

func logsCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "logs",
		Short: "Show recent voice commands",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			db, uc, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer db.Close()

			logs, err := uc.ListLogs(ctx, limit)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), logs)
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 20, "number of entries")
	cmd.Flags().StringVar(&dbPath, "db", "", "SQLite database path (default from config)")
	return cmd
}
