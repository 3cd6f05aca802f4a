// Package cli provides the CLI presentation layer for the daylog
// application. It handles command-line output formatting and user
// interaction.
package cli

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/mattn/go-runewidth"

	"github.com/xolan/daylog/internal/entry"
	"github.com/xolan/daylog/internal/period"
	"github.com/xolan/daylog/internal/storage"
)

// MaxActivityWidth is the display width activity labels are truncated
// to in tabular output.
const MaxActivityWidth = 40

// timeSpanWidth is the display width of a "HH:MM" boundary.
const timeSpanWidth = 5

// IsTerminal reports whether the writer is an interactive terminal.
// Styled output is only used when this is true; piped output stays
// plain.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// TruncateActivity truncates an activity label to the given display
// width, appending "..." when something was cut. Width is measured in
// terminal cells, so wide (CJK) characters count double.
func TruncateActivity(label string, width int) string {
	return runewidth.Truncate(label, width, "...")
}

// PadActivity pads an activity label to the given display width.
func PadActivity(label string, width int) string {
	return runewidth.FillRight(label, width)
}

// FormatSpan formats a record's start and end boundaries as a fixed
// width "HH:MM - HH:MM" span. Open-ended records leave the end blank.
func FormatSpan(r period.Record) string {
	return fmt.Sprintf("%s - %s", r.Start.String(), runewidth.FillRight(r.EndString(), timeSpanWidth))
}

// FormatEntry formats a session entry for display
func FormatEntry(e entry.Entry) string {
	return fmt.Sprintf("%s  %s", e.Time.String(), e.Activity)
}

// FormatRecord formats an activity log record for display
func FormatRecord(r period.Record) string {
	return fmt.Sprintf("%s  %s", FormatSpan(r), TruncateActivity(r.Activity, MaxActivityWidth))
}

// FormatCorruptionWarning formats a ParseWarning into a human-readable string
func FormatCorruptionWarning(warning storage.ParseWarning) string {
	content := runewidth.Truncate(warning.Content, 50, "...")
	return fmt.Sprintf("  Row %d: %s (error: %s)", warning.RowNumber, content, warning.Error)
}

// FormatDateRangeForDisplay formats a date range for human-readable display.
func FormatDateRangeForDisplay(start, end time.Time) string {
	if start.Format("2006-01-02") == end.Format("2006-01-02") {
		return start.Format("Mon, Jan 2, 2006")
	}
	if start.Year() == end.Year() {
		return fmt.Sprintf("%s - %s", start.Format("Jan 2"), end.Format("Jan 2, 2006"))
	}
	return fmt.Sprintf("%s - %s", start.Format("Jan 2, 2006"), end.Format("Jan 2, 2006"))
}

// Pluralize returns the singular or plural form of a word based on count
func Pluralize(word string, count int) string {
	if count == 1 {
		return word
	}
	return word + "s"
}
