package cmd

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var discardYesFlag bool

// discardCmd represents the discard command
var discardCmd = &cobra.Command{
	Use:   "discard",
	Short: "Drop the current session without saving",
	Long: `Drop all entries in the current session without writing anything to
the activity log. A confirmation prompt will be shown unless --yes is
specified.

Example:
  daylog discard
  daylog discard --yes`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		discardSession()
	},
}

func init() {
	rootCmd.AddCommand(discardCmd)
	discardCmd.Flags().BoolVarP(&discardYesFlag, "yes", "y", false, "skip confirmation prompt")
}

// discardSession drops the current session after confirmation
func discardSession() {
	count, err := deps.Services.Entry.Count()
	if err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to read session")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		deps.Exit(1)
		return
	}

	if count == 0 {
		_, _ = fmt.Fprintln(deps.Stdout, "No entries in the current session")
		return
	}

	if !discardYesFlag {
		if !promptDiscardConfirmation(count) {
			_, _ = fmt.Fprintln(deps.Stdout, "Discard cancelled")
			return
		}
	}

	discarded, err := deps.Services.Entry.Discard()
	if err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to discard session")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		deps.Exit(1)
		return
	}

	word := "entries"
	if discarded == 1 {
		word = "entry"
	}
	_, _ = fmt.Fprintf(deps.Stdout, "Discarded %d %s\n", discarded, word)
}

// promptDiscardConfirmation asks the user to confirm the discard.
// Returns true if user confirms with 'y' or 'Y', false otherwise.
func promptDiscardConfirmation(count int) bool {
	word := "entries"
	if count == 1 {
		word = "entry"
	}
	_, _ = fmt.Fprintf(deps.Stdout, "Discard %d unsaved %s? [y/N]: ", count, word)

	scanner := bufio.NewScanner(deps.Stdin)
	if !scanner.Scan() {
		return false
	}

	response := strings.TrimSpace(scanner.Text())
	return response == "y" || response == "Y"
}
