package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/xolan/daylog/internal/cli"
	"github.com/xolan/daylog/internal/service"
	"github.com/xolan/daylog/internal/timeutil"
)

// dayHeaderStyle highlights day group headers in interactive output
var dayHeaderStyle = lipgloss.NewStyle().Bold(true)

// historyCmd represents the history command
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show saved activity periods",
	Long: `Show activity periods from the persisted activity log.

By default, all saved periods are shown. Use the date flags to narrow
the range; filtering is on the day each period was logged.

Date Filtering:
  Use --today to show only periods logged today
  Use --last to show the last N days (e.g., --last 7)
  Use --from and --to for an explicit date range

Examples:
  daylog history                               Show everything
  daylog history --today                       Show today's periods
  daylog history --last 7                      Show the last 7 days
  daylog history --from 2024-01-01             Show from a specific date
  daylog history --from 2024-01-01 --to 2024-01-31    Show a date range`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		showHistory(cmd)
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)

	historyCmd.Flags().Bool("today", false, "Show only periods logged today")
	historyCmd.Flags().Int("last", 0, "Show the last N days (e.g., --last 7)")
	historyCmd.Flags().String("from", "", "Start date (YYYY-MM-DD or DD/MM/YYYY)")
	historyCmd.Flags().String("to", "", "End date (YYYY-MM-DD or DD/MM/YYYY)")
}

// resolveHistoryRange converts the date flags into a DateRangeSpec.
// Returns false after reporting an error when the flags conflict or
// fail to parse.
func resolveHistoryRange(cmd *cobra.Command) (service.DateRangeSpec, bool) {
	today, _ := cmd.Flags().GetBool("today")
	lastDays, _ := cmd.Flags().GetInt("last")
	fromStr, _ := cmd.Flags().GetString("from")
	toStr, _ := cmd.Flags().GetString("to")

	flagCount := 0
	if today {
		flagCount++
	}
	if lastDays > 0 {
		flagCount++
	}
	if fromStr != "" || toStr != "" {
		flagCount++
	}
	if flagCount > 1 {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Cannot combine --today, --last, and --from/--to")
		_, _ = fmt.Fprintln(deps.Stderr, "Use one date filter at a time")
		deps.Exit(1)
		return service.DateRangeSpec{}, false
	}

	switch {
	case today:
		return service.DateRangeSpec{Type: service.DateRangeToday}, true
	case lastDays > 0:
		return service.DateRangeSpec{Type: service.DateRangeLast, LastDays: lastDays}, true
	case fromStr != "" || toStr != "":
		spec := service.DateRangeSpec{Type: service.DateRangeCustom}

		if fromStr != "" {
			from, err := timeutil.ParseDate(fromStr)
			if err != nil {
				_, _ = fmt.Fprintf(deps.Stderr, "Error: Invalid --from date: %v\n", err)
				deps.Exit(1)
				return service.DateRangeSpec{}, false
			}
			spec.From = from
		}

		if toStr != "" {
			to, err := timeutil.ParseDate(toStr)
			if err != nil {
				_, _ = fmt.Fprintf(deps.Stderr, "Error: Invalid --to date: %v\n", err)
				deps.Exit(1)
				return service.DateRangeSpec{}, false
			}
			spec.To = to
		} else {
			spec.To = timeutil.StartOfDay(time.Now())
		}
		if fromStr == "" {
			spec.From = spec.To.AddDate(-10, 0, 0) // open start: reach far back
		}

		if spec.To.Before(spec.From) {
			_, _ = fmt.Fprintln(deps.Stderr, "Error: --to date is before --from date")
			deps.Exit(1)
			return service.DateRangeSpec{}, false
		}

		return spec, true
	default:
		return service.DateRangeSpec{Type: service.DateRangeAll}, true
	}
}

// showHistory displays persisted activity periods for the chosen range
func showHistory(cmd *cobra.Command) {
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

	// Display warnings about corrupted rows to stderr
	if len(result.Warnings) > 0 {
		_, _ = fmt.Fprintf(deps.Stderr, "Warning: Found %d corrupted %s in the activity log:\n",
			len(result.Warnings), cli.Pluralize("row", len(result.Warnings)))
		for _, warning := range result.Warnings {
			_, _ = fmt.Fprintln(deps.Stderr, cli.FormatCorruptionWarning(warning))
		}
		_, _ = fmt.Fprintln(deps.Stderr)
	}

	if len(result.Records) == 0 {
		_, _ = fmt.Fprintf(deps.Stdout, "No periods found for %s\n", result.Period)
		return
	}

	_, _ = fmt.Fprintf(deps.Stdout, "Periods for %s:\n", result.Period)
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("-", 70))

	// Styled headers only when writing to an interactive terminal
	styled := cli.IsTerminal(deps.Stdout)

	lastDay := ""
	for _, r := range result.Records {
		day := r.LoggedAt.Format("2006-01-02")
		if day != lastDay {
			header := r.LoggedAt.Format("Mon, Jan 2, 2006")
			if styled {
				header = dayHeaderStyle.Render(header)
			}
			_, _ = fmt.Fprintf(deps.Stdout, "%s\n", header)
			lastDay = day
		}
		_, _ = fmt.Fprintf(deps.Stdout, "  %s\n", cli.FormatRecord(r))
	}

	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("-", 70))
	_, _ = fmt.Fprintf(deps.Stdout, "%d %s shown (%d in log)\n",
		len(result.Records), cli.Pluralize("period", len(result.Records)), result.Total)
}
