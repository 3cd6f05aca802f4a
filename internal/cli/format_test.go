package cli

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/xolan/daylog/internal/entry"
	"github.com/xolan/daylog/internal/period"
	"github.com/xolan/daylog/internal/storage"
)

func TestIsTerminal(t *testing.T) {
	// A bytes.Buffer is never a terminal
	if IsTerminal(&bytes.Buffer{}) {
		t.Error("IsTerminal(bytes.Buffer) = true, expected false")
	}
}

func TestTruncateActivity(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		width    int
		expected string
	}{
		{"short label untouched", "lunch", 10, "lunch"},
		{"exact width untouched", "0123456789", 10, "0123456789"},
		{"long label truncated", "studied statistics all morning", 10, "studied..."},
		{"wide runes count double", "日本語勉強", 6, "日..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TruncateActivity(tt.input, tt.width); got != tt.expected {
				t.Errorf("TruncateActivity(%q, %d) = %q, expected %q", tt.input, tt.width, got, tt.expected)
			}
		})
	}
}

func TestPadActivity(t *testing.T) {
	if got := PadActivity("lunch", 8); got != "lunch   " {
		t.Errorf("PadActivity = %q, expected %q", got, "lunch   ")
	}
}

func TestFormatSpan(t *testing.T) {
	closed := period.Record{
		Start:    entry.TimeOfDay{Hour: 9, Minute: 30},
		End:      entry.TimeOfDay{Hour: 11, Minute: 0},
		HasEnd:   true,
		Activity: "statistics",
	}
	if got := FormatSpan(closed); got != "09:30 - 11:00" {
		t.Errorf("FormatSpan(closed) = %q, expected %q", got, "09:30 - 11:00")
	}

	open := period.Record{
		Start:    entry.TimeOfDay{Hour: 14, Minute: 0},
		Activity: "lunch",
	}
	if got := FormatSpan(open); got != "14:00 -      " {
		t.Errorf("FormatSpan(open) = %q, expected %q", got, "14:00 -      ")
	}
}

func TestFormatEntry(t *testing.T) {
	e := entry.Entry{
		Time:     entry.TimeOfDay{Hour: 9, Minute: 30},
		Activity: "studied statistics",
	}
	if got := FormatEntry(e); got != "09:30  studied statistics" {
		t.Errorf("FormatEntry = %q", got)
	}
}

func TestFormatRecord_TruncatesLongActivity(t *testing.T) {
	r := period.Record{
		Start:    entry.TimeOfDay{Hour: 9, Minute: 30},
		Activity: strings.Repeat("x", 100),
	}
	got := FormatRecord(r)
	if !strings.HasSuffix(got, "...") {
		t.Errorf("FormatRecord = %q, expected truncation marker", got)
	}
	if len(got) > 60 {
		t.Errorf("FormatRecord length = %d, expected truncated output", len(got))
	}
}

func TestFormatCorruptionWarning(t *testing.T) {
	warning := storage.ParseWarning{
		RowNumber: 3,
		Content:   "bad,row",
		Error:     "invalid Start",
	}
	got := FormatCorruptionWarning(warning)
	if !strings.Contains(got, "Row 3") {
		t.Errorf("FormatCorruptionWarning = %q, expected row number", got)
	}
	if !strings.Contains(got, "bad,row") {
		t.Errorf("FormatCorruptionWarning = %q, expected row content", got)
	}

	long := storage.ParseWarning{
		RowNumber: 4,
		Content:   strings.Repeat("z", 80),
		Error:     "invalid Start",
	}
	if !strings.Contains(FormatCorruptionWarning(long), "...") {
		t.Error("FormatCorruptionWarning did not truncate long content")
	}
}

func TestFormatDateRangeForDisplay(t *testing.T) {
	tests := []struct {
		name     string
		start    time.Time
		end      time.Time
		expected string
	}{
		{
			"same day",
			time.Date(2024, 3, 15, 0, 0, 0, 0, time.Local),
			time.Date(2024, 3, 15, 23, 59, 59, 0, time.Local),
			"Fri, Mar 15, 2024",
		},
		{
			"same year",
			time.Date(2024, 3, 1, 0, 0, 0, 0, time.Local),
			time.Date(2024, 3, 15, 0, 0, 0, 0, time.Local),
			"Mar 1 - Mar 15, 2024",
		},
		{
			"different years",
			time.Date(2023, 12, 25, 0, 0, 0, 0, time.Local),
			time.Date(2024, 1, 5, 0, 0, 0, 0, time.Local),
			"Dec 25, 2023 - Jan 5, 2024",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatDateRangeForDisplay(tt.start, tt.end); got != tt.expected {
				t.Errorf("FormatDateRangeForDisplay = %q, expected %q", got, tt.expected)
			}
		})
	}
}

func TestPluralize(t *testing.T) {
	if got := Pluralize("entry", 1); got != "entry" {
		t.Errorf("Pluralize(entry, 1) = %q", got)
	}
	if got := Pluralize("record", 2); got != "records" {
		t.Errorf("Pluralize(record, 2) = %q", got)
	}
}
