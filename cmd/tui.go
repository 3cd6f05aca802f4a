package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/xolan/daylog/internal/service"
	"github.com/xolan/daylog/internal/tui"
)

// tuiCmd represents the tui command
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch interactive terminal UI",
	Long: `Launch the interactive Terminal User Interface for daylog.

The TUI shows the current session and lets you log entries, save the
session to the activity log, or discard it, without leaving the view.

Keyboard shortcuts:
  - Type an entry and press Enter to log it
  - ctrl+s: Save the session to the activity log
  - ctrl+d: Discard the session
  - esc or ctrl+c: Quit`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		runTUI()
	},
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

// runTUI initializes and runs the TUI application
func runTUI() {
	services, err := service.NewServices()
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error initializing services: %v\n", err)
		os.Exit(1)
	}

	if err := tui.Run(services); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}
}
