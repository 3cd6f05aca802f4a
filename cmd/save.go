package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/xolan/daylog/internal/cli"
	"github.com/xolan/daylog/internal/service"
)

// saveCmd represents the save command
var saveCmd = &cobra.Command{
	Use:   "save",
	Short: "Write the current session to the activity log",
	Long: `Convert the current session's entries into activity periods and
append them to the activity log.

Each entry becomes one period: it starts at the entry's time and ends
where the next entry starts. The last period of the session is left
open-ended. The session is cleared after a successful save.

A rotating backup of the activity log is taken before writing, so a
bad save can be undone with 'daylog restore'.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		saveSession()
	},
}

func init() {
	rootCmd.AddCommand(saveCmd)
}

// saveSession writes the current session to the activity log
func saveSession() {
	result, err := deps.Services.Log.Save()
	if err != nil {
		if errors.Is(err, service.ErrEmptySession) {
			_, _ = fmt.Fprintln(deps.Stderr, "Error: No entries to save")
			_, _ = fmt.Fprintln(deps.Stderr, "Hint: Log one with: daylog <time> <activity>")
		} else {
			_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to save session")
			_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		}
		deps.Exit(1)
		return
	}

	_, _ = fmt.Fprintln(deps.Stdout, "Saved periods:")
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("-", 50))
	for _, r := range result.Records {
		_, _ = fmt.Fprintf(deps.Stdout, "  %s\n", cli.FormatRecord(r))
	}
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("-", 50))
	_, _ = fmt.Fprintf(deps.Stdout, "Wrote %d %s to %s\n",
		len(result.Records), cli.Pluralize("period", len(result.Records)), result.StoragePath)
}
