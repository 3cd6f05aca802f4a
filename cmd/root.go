package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/xolan/daylog/internal/cli"
	"github.com/xolan/daylog/internal/service"
)

var rootCmd = &cobra.Command{
	Use:   "daylog",
	Short: "A voice-friendly daily activity logger",
	Long: `daylog is a CLI tool for logging what you did during the day as
timestamped activities. Each entry starts with a time of day; when the
session is saved, each activity's end is inferred from the start of the
next one.

Usage:
  daylog <time> <activity>          Log an entry (e.g., daylog 9h30 studied statistics)
  daylog                            List the current session's entries
  daylog voice <audio-file>         Log an entry from recorded speech
  daylog save                       Write the session to the activity log
  daylog discard                    Drop the session without saving
  daylog history                    Show the saved activity log
  daylog validate                   Check activity log health
  daylog restore [n]                Restore the log from backup (default: most recent)

Time format: 9h30 or 09:30 (24-hour, minutes required)`,
	Args: cobra.ArbitraryArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			// No args: list the current session
			listSession()
			return
		}

		// With args: log a new entry
		addEntry(strings.Join(args, " "))
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

// SetVersionInfo sets the version information for the CLI
func SetVersionInfo(version, commit, date string) {
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(
		"daylog version {{.Version}}\n" +
			"commit: " + commit + "\n" +
			"built: " + date + "\n",
	)
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// addEntry parses the raw input and appends it to the current session
func addEntry(rawInput string) {
	e, err := deps.Services.Entry.Add(rawInput)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyInput):
			_, _ = fmt.Fprintln(deps.Stderr, "Error: Input cannot be empty")
			_, _ = fmt.Fprintln(deps.Stderr, "Usage: daylog <time> <activity>")
			_, _ = fmt.Fprintln(deps.Stderr, "Example: daylog 9h30 studied statistics")
		case errors.Is(err, service.ErrNoTime):
			_, _ = fmt.Fprintf(deps.Stderr, "Error: Could not recognize a time in '%s'\n", rawInput)
			_, _ = fmt.Fprintln(deps.Stderr, "Hint: Start with a time like '9h30' or '09:30' (24-hour, minutes required)")
		default:
			_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to log entry")
			_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		}
		deps.Exit(1)
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Logged: %s\n", cli.FormatEntry(*e))
}

// listSession displays the current session's entries in chronological order
func listSession() {
	entries, err := deps.Services.Entry.List()
	if err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to read session")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		deps.Exit(1)
		return
	}

	if len(entries) == 0 {
		_, _ = fmt.Fprintln(deps.Stdout, "No entries in the current session")
		_, _ = fmt.Fprintln(deps.Stdout, "Log one with: daylog <time> <activity>")
		return
	}

	_, _ = fmt.Fprintln(deps.Stdout, "Current session:")
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("-", 50))
	for _, e := range entries {
		_, _ = fmt.Fprintf(deps.Stdout, "  %s\n", cli.FormatEntry(e))
	}
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("-", 50))
	word := "entries"
	if len(entries) == 1 {
		word = "entry"
	}
	_, _ = fmt.Fprintf(deps.Stdout, "%d unsaved %s. Run 'daylog save' to write them to the activity log.\n",
		len(entries), word)
}
