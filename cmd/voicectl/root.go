package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"voice-task-management/config"
	"voice-task-management/internal/command"
	"voice-task-management/internal/command/llmparser"
	commandUC "voice-task-management/internal/command/usecase"
	"voice-task-management/pkg/log"
)

var (
	debug    bool
	timezone string
	logger   log.Logger = log.NewNop()
	rootCmd             = &cobra.Command{
		Use:           "voicectl",
		Short:         "voicectl interprets spoken task commands",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

// Execute runs the root command.
func Execute() error {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&timezone, "timezone", "", "IANA timezone for relative dates (default from config)")
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if debug {
			logger = log.Init(log.ZapConfig{Level: "debug", Mode: "development", Encoding: "console", ColorEnabled: true})
		}
	}
	rootCmd.AddCommand(parseCmd())
	rootCmd.AddCommand(runCmd())
	rootCmd.AddCommand(logsCmd())
	rootCmd.AddCommand(calendarAuthCmd())
	return rootCmd.Execute()
}

// loadConfig reads the service config. A missing or broken config is not
// fatal for the CLI; it runs on defaults with the rule based parser.
func loadConfig(ctx context.Context) *config.Config {
	cfg, err := config.Load()
	if err != nil {
		logger.Warnf(ctx, "config not loaded, using defaults: %v", err)
		cfg = &config.Config{}
	}
	if timezone != "" {
		cfg.Interpreter.Timezone = timezone
	}
	if cfg.Interpreter.Timezone == "" {
		cfg.Interpreter.Timezone = "UTC"
	}
	return cfg
}

func newInterpreter(ctx context.Context, cfg *config.Config) command.UseCase {
	var engine command.Engine
	if p, err := llmparser.NewFromConfig(ctx, logger, &cfg.LLM, cfg.Interpreter.MaxContextTasks); err != nil {
		logger.Debugf(ctx, "llm parser disabled: %v", err)
	} else {
		engine = p
	}
	return commandUC.New(logger, engine, nil, cfg.Interpreter.Timezone)
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "voicectl:", err)
}
