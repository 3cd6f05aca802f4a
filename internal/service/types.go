// Package service provides the business logic layer for the daylog
// application. It wraps the underlying session, period, storage,
// transcribe, and config packages, providing a clean API for both CLI
// and TUI frontends.
package service

import (
	"time"

	"github.com/xolan/daylog/internal/entry"
	"github.com/xolan/daylog/internal/period"
	"github.com/xolan/daylog/internal/storage"
)

// DateRange represents a predefined or custom date range for filtering
// the persisted activity history
type DateRange int

const (
	DateRangeAll DateRange = iota
	DateRangeToday
	DateRangeLast // Last N days (requires LastDays field)
	DateRangeCustom
)

// DateRangeSpec specifies a date range for filtering history records
type DateRangeSpec struct {
	Type     DateRange
	LastDays int       // Used when Type is DateRangeLast
	From     time.Time // Used when Type is DateRangeCustom
	To       time.Time // Used when Type is DateRangeCustom
}

// SaveResult contains the outcome of saving the current session to the
// activity log
type SaveResult struct {
	Records     []period.Record // The inferred periods that were appended
	StoragePath string          // Where they were written
}

// HistoryResult contains the results of querying the activity log
type HistoryResult struct {
	Records  []period.Record
	Warnings []storage.ParseWarning
	Period   string    // Human-readable period description
	Start    time.Time // Start of the date range (zero for DateRangeAll)
	End      time.Time // End of the date range (zero for DateRangeAll)
	Total    int       // Total records in the log before filtering
}

// VoiceResult contains the outcome of a voice capture: the raw
// transcript and the entry parsed from it
type VoiceResult struct {
	Transcript string
	Entry      *entry.Entry
}
