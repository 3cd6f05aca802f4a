package cmd

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/xolan/daylog/internal/period"
)

// exportCmd represents the export parent command
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export activity periods to various formats",
	Long: `Export saved activity periods for programmatic use, backup, or
migration.

Available formats:
  json    Export periods as JSON

Examples:
  daylog export json                 Export all periods as JSON
  daylog export json > backup.json   Export to file`,
}

// exportJSONCmd represents the export json command
var exportJSONCmd = &cobra.Command{
	Use:   "json",
	Short: "Export activity periods as JSON",
	Long: `Export saved activity periods to JSON format.

Output includes metadata (export timestamp, total periods, period
description) and an array of period objects.

Date Filtering:
  Use --today to export only periods logged today
  Use --last to export the last N days
  Use --from and --to for an explicit date range

Examples:
  daylog export json                           Export everything
  daylog export json > backup.json             Export to file
  daylog export json --last 7                  Export the last 7 days
  daylog export json --from 2024-01-01 --to 2024-01-31   Export a date range`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		exportJSON(cmd)
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.AddCommand(exportJSONCmd)

	exportJSONCmd.Flags().Bool("today", false, "Export only periods logged today")
	exportJSONCmd.Flags().Int("last", 0, "Export the last N days (e.g., --last 7)")
	exportJSONCmd.Flags().String("from", "", "Start date (YYYY-MM-DD or DD/MM/YYYY)")
	exportJSONCmd.Flags().String("to", "", "End date (YYYY-MM-DD or DD/MM/YYYY)")
}

// exportedPeriod is the JSON shape of a single activity period
type exportedPeriod struct {
	Start    string `json:"start"`
	End      string `json:"end,omitempty"`
	Activity string `json:"activity"`
	Comment  string `json:"comment,omitempty"`
	LoggedAt string `json:"logged_at"`
}

// exportEnvelope is the JSON shape of the export output
type exportEnvelope struct {
	Metadata exportMetadata   `json:"metadata"`
	Periods  []exportedPeriod `json:"periods"`
}

type exportMetadata struct {
	ExportedAt   string `json:"exported_at"`
	TotalPeriods int    `json:"total_periods"`
	Period       string `json:"period"`
}

// exportJSON handles the export json command logic
func exportJSON(cmd *cobra.Command) {
	spec, ok := resolveHistoryRange(cmd)
	if !ok {
		return
	}

	result, err := deps.Services.Log.History(spec)
	if err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to read activity log")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		deps.Exit(1)
		return
	}

	envelope := exportEnvelope{
		Metadata: exportMetadata{
			ExportedAt:   time.Now().Format(time.RFC3339),
			TotalPeriods: len(result.Records),
			Period:       result.Period,
		},
		Periods: make([]exportedPeriod, 0, len(result.Records)),
	}

	for _, r := range result.Records {
		envelope.Periods = append(envelope.Periods, toExportedPeriod(r))
	}

	encoder := json.NewEncoder(deps.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(envelope); err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to encode JSON")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		deps.Exit(1)
		return
	}
}

// toExportedPeriod converts a record into its JSON export shape
func toExportedPeriod(r period.Record) exportedPeriod {
	return exportedPeriod{
		Start:    r.Start.String(),
		End:      r.EndString(),
		Activity: r.Activity,
		Comment:  r.Comment,
		LoggedAt: r.LoggedAt.Format(time.RFC3339),
	}
}
