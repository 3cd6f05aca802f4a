package storage

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/xolan/daylog/internal/entry"
	"github.com/xolan/daylog/internal/osutil"
	"github.com/xolan/daylog/internal/period"
)

const (
	// AppName is the application name used for config directory
	AppName = "daylog"
	// LogFile is the name of the CSV activity log file
	LogFile = "activities.csv"
	// LoggedAtLayout is the timestamp format used in the "Logged at" column
	LoggedAtLayout = "2006-01-02 15:04:05"
)

// header is the column layout of the activity log file.
var header = []string{"Start", "End", "Activity", "Comments", "Logged at"}

// ParseWarning represents a warning about a corrupted or malformed row
type ParseWarning struct {
	RowNumber int    // Row number in the file (1-indexed, header included)
	Content   string // Raw content of the corrupted row
	Error     string // Description of the parsing error
}

// ReadResult contains the results of reading records from the activity
// log, including both successfully parsed records and any warnings
// about corrupted or malformed rows.
type ReadResult struct {
	Records  []period.Record // Successfully parsed records
	Warnings []ParseWarning  // Warnings about corrupted rows
}

// GetStoragePath returns the path to the activity log file.
// Uses the user config dir for cross-platform XDG-compliant placement.
// Creates the config directory if it doesn't exist.
func GetStoragePath() (string, error) {
	configDir, err := osutil.Provider.ConfigRoot()
	if err != nil {
		return "", err
	}

	appDir := filepath.Join(configDir, AppName)

	// Create config directory if it doesn't exist
	if err := osutil.Provider.EnsureDir(appDir, 0755); err != nil {
		return "", err
	}

	return filepath.Join(appDir, LogFile), nil
}

// readRawRows reads all rows from the activity log as raw string
// slices, excluding the header row. Returns an empty slice if the
// file doesn't exist. Rows may have a varying number of fields; no
// parsing or validation is performed.
func readRawRows(filepath string) ([][]string, error) {
	file, err := os.Open(filepath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	defer func() { _ = file.Close() }()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1 // tolerate malformed rows

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}

	if len(rows) == 0 {
		return nil, nil
	}

	// Drop the header row
	return rows[1:], nil
}

// parseRow converts a raw CSV row into a period Record.
func parseRow(row []string) (period.Record, error) {
	if len(row) != len(header) {
		return period.Record{}, fmt.Errorf("expected %d fields, got %d", len(header), len(row))
	}

	start, err := entry.ParseTimeOfDay(row[0])
	if err != nil {
		return period.Record{}, fmt.Errorf("invalid Start: %v", err)
	}

	r := period.Record{
		Start:    start,
		Activity: row[2],
		Comment:  row[3],
	}

	if row[1] != "" {
		end, err := entry.ParseTimeOfDay(row[1])
		if err != nil {
			return period.Record{}, fmt.Errorf("invalid End: %v", err)
		}
		r.End = end
		r.HasEnd = true
	}

	loggedAt, err := time.ParseInLocation(LoggedAtLayout, row[4], time.Local)
	if err != nil {
		return period.Record{}, fmt.Errorf("invalid Logged at: %v", err)
	}
	r.LoggedAt = loggedAt

	return r, nil
}

// formatRecord converts a period Record into a raw CSV row.
func formatRecord(r period.Record) []string {
	return []string{
		r.Start.String(),
		r.EndString(),
		r.Activity,
		r.Comment,
		r.LoggedAt.Format(LoggedAtLayout),
	}
}

// ReadRecordsWithWarnings reads all records from the activity log and
// returns both successfully parsed records and warnings about any
// corrupted rows. Returns an empty ReadResult if the file doesn't
// exist (graceful handling). Records are returned in file order; no
// sorting is applied.
func ReadRecordsWithWarnings(filepath string) (ReadResult, error) {
	result := ReadResult{
		Records:  []period.Record{},
		Warnings: []ParseWarning{},
	}

	rows, err := readRawRows(filepath)
	if err != nil {
		return result, err
	}

	for i, row := range rows {
		record, err := parseRow(row)
		if err != nil {
			// Row numbers are 1-indexed and include the header row
			result.Warnings = append(result.Warnings, ParseWarning{
				RowNumber: i + 2,
				Content:   strings.Join(row, ","),
				Error:     err.Error(),
			})
			continue
		}
		result.Records = append(result.Records, record)
	}

	return result, nil
}

// ReadRecords reads all records from the activity log.
// Returns an empty slice if the file doesn't exist (graceful handling).
// Skips malformed rows for fault tolerance.
func ReadRecords(filepath string) ([]period.Record, error) {
	result, err := ReadRecordsWithWarnings(filepath)
	return result.Records, err
}

// writeRawRows writes a header row followed by the given rows using an
// atomic write pattern (write to temp file, then rename).
func writeRawRows(filepath string, rows [][]string) error {
	tmpFile := filepath + ".tmp"
	file, err := os.OpenFile(tmpFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}

	writer := csv.NewWriter(file)
	if err := writer.Write(header); err != nil {
		_ = file.Close()
		_ = os.Remove(tmpFile)
		return err
	}
	for _, row := range rows {
		if err := writer.Write(row); err != nil {
			_ = file.Close()
			_ = os.Remove(tmpFile)
			return err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		_ = file.Close()
		_ = os.Remove(tmpFile)
		return err
	}

	if err := file.Close(); err != nil {
		_ = os.Remove(tmpFile)
		return err
	}

	// Atomic rename
	return os.Rename(tmpFile, filepath)
}

// AppendRecords appends records to the activity log. Existing rows are
// read in full and the whole file is rewritten atomically, so a
// concurrent reader sees either the old or the new complete file,
// never a partial one. Existing rows are carried over verbatim,
// including rows the parser would warn about.
func AppendRecords(filepath string, records []period.Record) error {
	rows, err := readRawRows(filepath)
	if err != nil {
		return fmt.Errorf("failed to read existing log: %w", err)
	}

	for _, r := range records {
		rows = append(rows, formatRecord(r))
	}

	return writeRawRows(filepath, rows)
}

// StorageHealth contains information about the health status of the
// activity log file. It provides metrics on total rows, valid records,
// corrupted records, and detailed warnings about each corruption.
type StorageHealth struct {
	TotalRows        int            // Total number of data rows (header excluded)
	ValidRecords     int            // Number of successfully parsed records
	CorruptedRecords int            // Number of corrupted/malformed rows
	Warnings         []ParseWarning // Detailed information about each corrupted row
}

// ValidateStorage analyzes the activity log and returns health status
// information. Returns empty health status if the file doesn't exist.
func ValidateStorage(filepath string) (StorageHealth, error) {
	health := StorageHealth{
		Warnings: []ParseWarning{},
	}

	rows, err := readRawRows(filepath)
	if err != nil {
		return health, err
	}
	health.TotalRows = len(rows)

	result, err := ReadRecordsWithWarnings(filepath)
	if err != nil {
		return health, err
	}

	health.ValidRecords = len(result.Records)
	health.CorruptedRecords = len(result.Warnings)
	health.Warnings = result.Warnings

	return health, nil
}
