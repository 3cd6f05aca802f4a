package service

import (
	"fmt"
	"time"

	"github.com/xolan/daylog/internal/period"
	"github.com/xolan/daylog/internal/session"
	"github.com/xolan/daylog/internal/storage"
	"github.com/xolan/daylog/internal/timeutil"
)

// LogService provides operations on the persisted activity log
type LogService struct {
	sessionPath string
	storagePath string
}

// NewLogService creates a new LogService
func NewLogService(sessionPath, storagePath string) *LogService {
	return &LogService{
		sessionPath: sessionPath,
		storagePath: storagePath,
	}
}

// StoragePath returns the path of the activity log file.
func (s *LogService) StoragePath() string {
	return s.storagePath
}

// Save converts the current session's entries into activity periods
// and appends them to the activity log, then clears the session. Each
// entry becomes one period ending where the next entry starts; the
// final period is open-ended.
//
// A backup of the log is rotated in before the append, so a bad save
// can be undone with Restore. Returns ErrEmptySession when there is
// nothing to save.
func (s *LogService) Save() (*SaveResult, error) {
	state, err := session.Load(s.sessionPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	if state.Len() == 0 {
		return nil, ErrEmptySession
	}

	records, err := period.Infer(state.Drain())
	if err != nil {
		return nil, fmt.Errorf("failed to infer periods: %w", err)
	}

	if err := storage.CreateBackup(s.storagePath); err != nil {
		return nil, fmt.Errorf("failed to create backup: %w", err)
	}

	if err := storage.AppendRecords(s.storagePath, records); err != nil {
		return nil, fmt.Errorf("failed to append to activity log: %w", err)
	}

	if err := session.Clear(s.sessionPath); err != nil {
		return nil, fmt.Errorf("saved, but failed to clear session: %w", err)
	}

	return &SaveResult{
		Records:     records,
		StoragePath: s.storagePath,
	}, nil
}

// History returns activity log records for the given date range,
// filtered on the time each record was logged. Records are returned
// in file order along with warnings about any corrupted rows.
func (s *LogService) History(dateRange DateRangeSpec) (*HistoryResult, error) {
	result, err := storage.ReadRecordsWithWarnings(s.storagePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read activity log: %w", err)
	}

	start, end, periodDesc := resolveDateRange(dateRange)

	filtered := result.Records
	if dateRange.Type != DateRangeAll {
		filtered = make([]period.Record, 0, len(result.Records))
		for _, r := range result.Records {
			if timeutil.IsInRange(r.LoggedAt, start, end) {
				filtered = append(filtered, r)
			}
		}
	}

	return &HistoryResult{
		Records:  filtered,
		Warnings: result.Warnings,
		Period:   periodDesc,
		Start:    start,
		End:      end,
		Total:    len(result.Records),
	}, nil
}

// Validate analyzes the activity log and reports its health status.
func (s *LogService) Validate() (storage.StorageHealth, error) {
	return storage.ValidateStorage(s.storagePath)
}

// Backups lists the available backups of the activity log, most
// recent first.
func (s *LogService) Backups() ([]storage.BackupInfo, error) {
	return storage.ListBackupsForStorage(s.storagePath)
}

// Restore replaces the activity log with the given backup. The current
// log is backed up first, so a restore can itself be undone.
func (s *LogService) Restore(backupNum int) error {
	return storage.RestoreBackup(s.storagePath, backupNum)
}

// resolveDateRange converts a DateRangeSpec into concrete start/end
// times and a human-readable period description. DateRangeAll yields
// zero times; callers skip filtering for it.
func resolveDateRange(spec DateRangeSpec) (start, end time.Time, desc string) {
	switch spec.Type {
	case DateRangeToday:
		start, end = timeutil.Today()
		desc = "today"
	case DateRangeLast:
		start, end = timeutil.LastDays(spec.LastDays)
		desc = fmt.Sprintf("last %d days", spec.LastDays)
	case DateRangeCustom:
		start = timeutil.StartOfDay(spec.From)
		end = timeutil.EndOfDay(spec.To)
		desc = fmt.Sprintf("%s to %s", start.Format("2006-01-02"), spec.To.Format("2006-01-02"))
	default:
		desc = "all time"
	}
	return start, end, desc
}
