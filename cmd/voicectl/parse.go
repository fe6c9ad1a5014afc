package main

import (
	"strings"

	"github.com/spf13/cobra"

	"voice-task-management/internal/command"
)

func parseCmd() *cobra.Command {
	var engine, tasksPath, now string

	cmd := &cobra.Command{
		Use:   "parse <transcript>",
		Short: "Print the commands a transcript maps to",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			eng, err := parseEngineFlag(engine)
			if err != nil {
				return err
			}
			clock, err := parseNowFlag(now)
			if err != nil {
				return err
			}
			tasks, err := readTasks(tasksPath)
			if err != nil {
				return err
			}

			interpreter := newInterpreter(ctx, loadConfig(ctx))
			tc := command.TaskContext{Tasks: tasks, Now: clock}
			transcript := strings.Join(args, " ")

			var res command.ParsedResult
			if eng == "" {
				res = interpreter.Parse(ctx, transcript, tc)
			} else {
				res = interpreter.ParseWithEngine(ctx, transcript, tc, eng)
			}
			return printJSON(cmd.OutOrStdout(), res)
		},
	}
	cmd.Flags().StringVar(&engine, "engine", "", "force an engine: llm or fallback")
	cmd.Flags().StringVar(&tasksPath, "tasks", "", "JSON file with the current task list")
	cmd.Flags().StringVar(&now, "now", "", "reference time (RFC3339) for relative dates")
	return cmd
}
