package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"voice-task-management/pkg/gcalendar"
)

func calendarAuthCmd() *cobra.Command {
	var credentialsPath, tokenPath string

	cmd := &cobra.Command{
		Use:   "calendar-auth",
		Short: "Authorize Google Calendar access and save the OAuth token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg := loadConfig(ctx)
			if credentialsPath == "" {
				credentialsPath = cfg.GoogleCalendar.CredentialsPath
			}
			if tokenPath == "" {
				tokenPath = cfg.GoogleCalendar.TokenPath
			}
			if tokenPath == "" {
				tokenPath = gcalendar.DefaultTokenPath
			}
			if credentialsPath == "" {
				return fmt.Errorf("--credentials is required")
			}

			data, err := os.ReadFile(credentialsPath)
			if err != nil {
				return err
			}
			oauthCfg, err := gcalendar.OAuthConfig(data)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "1. Open this URL and sign in with your Google account:")
			fmt.Fprintln(out)
			fmt.Fprintln(out, gcalendar.AuthURL(oauthCfg))
			fmt.Fprintln(out)
			fmt.Fprint(out, "2. Paste the authorization code: ")

			var code string
			if _, err := fmt.Fscan(cmd.InOrStdin(), &code); err != nil {
				return fmt.Errorf("read authorization code: %w", err)
			}
			if _, err := gcalendar.ExchangeCode(ctx, oauthCfg, code, tokenPath); err != nil {
				return err
			}
			fmt.Fprintf(out, "Token saved to %s\n", tokenPath)
			return nil
		},
	}
	cmd.Flags().StringVar(&credentialsPath, "credentials", "", "OAuth desktop credentials JSON (default from config)")
	cmd.Flags().StringVar(&tokenPath, "token", "", "where to save the token (default from config)")
	return cmd
}
