// Package period derives start/end activity periods from an ordered
// sequence of logged entries. Each entry marks the start of a period;
// the next entry's time is the implied end boundary. The final period
// of a session is open-ended.
package period

import (
	"errors"
	"time"

	"github.com/xolan/daylog/internal/entry"
)

// ErrUnsorted is returned when the input entries are not in
// chronological order. Inference requires sorted input; running it on
// an unsorted sequence would silently produce a nonsensical table.
var ErrUnsorted = errors.New("entries are not sorted by time")

// Record represents a single inferred activity period. Records are
// derived from entries and never mutated after creation.
type Record struct {
	Start    entry.TimeOfDay
	End      entry.TimeOfDay
	HasEnd   bool // false for the final, open-ended period
	Activity string
	Comment  string // reserved for manual editing, empty at creation
	LoggedAt time.Time
}

// Infer converts an ordered entry sequence into one Record per entry,
// preserving order. Record i starts at entries[i].Time and ends at
// entries[i+1].Time; the last record has no end. Returns ErrUnsorted
// if any entry is earlier than its predecessor.
//
// Infer is a pure function of its input: it never reads the clock
// (LoggedAt comes from the entries' capture timestamps) and never
// reorders entries.
func Infer(entries []entry.Entry) ([]Record, error) {
	for i := 1; i < len(entries); i++ {
		if entries[i].Time.Before(entries[i-1].Time) {
			return nil, ErrUnsorted
		}
	}

	records := make([]Record, 0, len(entries))
	for i, e := range entries {
		r := Record{
			Start:    e.Time,
			Activity: e.Activity,
			LoggedAt: e.LoggedAt,
		}
		if i+1 < len(entries) {
			r.End = entries[i+1].Time
			r.HasEnd = true
		}
		records = append(records, r)
	}

	return records, nil
}

// EndString returns the end boundary as "HH:MM", or an empty string
// for an open-ended record. This is the form used by the persisted
// activity log.
func (r Record) EndString() string {
	if !r.HasEnd {
		return ""
	}
	return r.End.String()
}
