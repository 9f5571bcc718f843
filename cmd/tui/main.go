package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spacesedan/sentiview/config"
	"github.com/spacesedan/sentiview/internal/clients"
	"github.com/spacesedan/sentiview/internal/logging"
	"github.com/spacesedan/sentiview/internal/tui"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		apiURL  string
		logFile string
	)

	cmd := &cobra.Command{
		Use:   "sentiview",
		Short: "Analyze the sentiment of a review from the terminal",
		PreRun: func(cmd *cobra.Command, args []string) {
			config.LoadEnv(config.AppEnv())
			if !cmd.Flags().Changed("api-url") {
				apiURL = config.APIURL()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := tea.LogToFile(logFile, "")
			if err != nil {
				return fmt.Errorf("failed to open log file: %w", err)
			}
			defer f.Close()
			logging.InitFileLogger(f)

			p := tea.NewProgram(tui.New(clients.NewProxyClient(apiURL)), tea.WithAltScreen())
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("tui exited: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&apiURL, "api-url", config.DEFAULT_API_URL, "base URL of the sentiview server")
	cmd.Flags().StringVar(&logFile, "log-file", "sentiview-tui.log", "file to write logs to")

	return cmd
}
