package session

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/xolan/daylog/internal/entry"
	"github.com/xolan/daylog/internal/osutil"
)

const (
	// AppName is the application name used for config directory
	AppName = "daylog"
	// SessionFile is the name of the JSON session state file
	SessionFile = "session.json"
)

// State holds the unsaved entries accumulated for the current day.
// Entries are kept in chronological order: Append performs an ordered
// insert by time-of-day, so draining always yields a sorted sequence
// regardless of the order entries were logged in.
type State struct {
	Entries []entry.Entry `json:"entries"`
}

// Append inserts an entry at its chronological position. Entries with
// equal times keep their insertion order. No de-duplication or
// validation is performed; callers are expected to have parsed the
// entry already.
func (s *State) Append(e entry.Entry) {
	pos := len(s.Entries)
	for i, existing := range s.Entries {
		if e.Time.Before(existing.Time) {
			pos = i
			break
		}
	}

	s.Entries = append(s.Entries, entry.Entry{})
	copy(s.Entries[pos+1:], s.Entries[pos:])
	s.Entries[pos] = e
}

// Drain returns the accumulated entries and resets the state to empty.
// The returned sequence is in chronological order.
func (s *State) Drain() []entry.Entry {
	drained := s.Entries
	s.Entries = nil
	return drained
}

// Len returns the number of accumulated entries.
func (s *State) Len() int {
	return len(s.Entries)
}

// GetSessionPath returns the path to the session state file.
// Uses the user config dir for cross-platform XDG-compliant placement.
// Creates the config directory if it doesn't exist.
func GetSessionPath() (string, error) {
	configDir, err := osutil.Provider.ConfigRoot()
	if err != nil {
		return "", err
	}

	appDir := filepath.Join(configDir, AppName)

	// Create config directory if it doesn't exist
	if err := osutil.Provider.EnsureDir(appDir, 0755); err != nil {
		return "", err
	}

	return filepath.Join(appDir, SessionFile), nil
}

// Save writes the session state to the session file.
// Overwrites the file if it exists. Creates the file with 0644 permissions.
// Uses atomic write pattern (write to temp file, then rename) for safety.
func Save(filepath string, state *State) error {
	// State contains only JSON-safe types, so Marshal cannot fail
	data, _ := json.MarshalIndent(state, "", "  ")

	// Write to temporary file
	tmpFile := filepath + ".tmp"
	if err := os.WriteFile(tmpFile, data, 0644); err != nil {
		return err
	}

	// Atomic rename
	return os.Rename(tmpFile, filepath)
}

// Load reads the session state from the session file.
// Returns an empty state if the file doesn't exist (no unsaved entries).
// Returns an error if the file exists but cannot be read or parsed.
func Load(filepath string) (*State, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		if os.IsNotExist(err) {
			return &State{}, nil
		}
		return nil, err
	}

	var state State
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, err
	}

	return &state, nil
}

// Clear removes the session state file.
// Returns nil if the file doesn't exist (idempotent operation).
func Clear(filepath string) error {
	err := os.Remove(filepath)
	if err != nil && os.IsNotExist(err) {
		return nil
	}
	return err
}
