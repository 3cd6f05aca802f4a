package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/xolan/daylog/internal/cli"
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check activity log health",
	Long:  `Validate the activity log file and report on its health status, including any corrupted rows.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		validateLog()
	},
}

// validateLog checks the activity log health and reports status
func validateLog() {
	storagePath := deps.Services.Log.StoragePath()

	health, err := deps.Services.Log.Validate()
	if err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: Failed to validate activity log: %v\n", err)
		deps.Exit(1)
		return
	}

	// Display storage path
	_, _ = fmt.Fprintf(deps.Stdout, "Activity log: %s\n", storagePath)
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("=", 50))

	// Display health metrics
	_, _ = fmt.Fprintf(deps.Stdout, "Total rows:        %d\n", health.TotalRows)
	_, _ = fmt.Fprintf(deps.Stdout, "Valid records:     %d\n", health.ValidRecords)
	_, _ = fmt.Fprintf(deps.Stdout, "Corrupted records: %d\n", health.CorruptedRecords)

	// Display corrupted row details if any
	if len(health.Warnings) > 0 {
		_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("=", 50))
		_, _ = fmt.Fprintln(deps.Stdout, "Corrupted rows:")
		for _, warning := range health.Warnings {
			_, _ = fmt.Fprintln(deps.Stdout, cli.FormatCorruptionWarning(warning))
		}
	}

	// Overall status message
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("=", 50))
	if health.CorruptedRecords == 0 {
		_, _ = fmt.Fprintln(deps.Stdout, "Status: ✓ Activity log is healthy")
	} else {
		_, _ = fmt.Fprintf(deps.Stdout, "Status: ✗ Found %d corrupted %s\n",
			health.CorruptedRecords, cli.Pluralize("record", health.CorruptedRecords))
		_, _ = fmt.Fprintln(deps.Stdout, "Hint: Corrupted rows are preserved on save but skipped when reading")
	}
}
