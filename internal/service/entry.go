package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/xolan/daylog/internal/entry"
	"github.com/xolan/daylog/internal/session"
)

// Common errors for the entry service
var (
	ErrEmptyInput   = errors.New("input cannot be empty")
	ErrNoTime       = errors.New("could not recognize a time in input")
	ErrEmptySession = errors.New("no entries in the current session")
)

// EntryService provides operations for the current day's unsaved entries
type EntryService struct {
	sessionPath string
}

// NewEntryService creates a new EntryService
func NewEntryService(sessionPath string) *EntryService {
	return &EntryService{
		sessionPath: sessionPath,
	}
}

// Add parses a raw activity line (e.g., "9h30 studied statistics") and
// appends the resulting entry to the current session. The entry is
// inserted at its chronological position, so the session stays sorted
// regardless of input order.
//
// Input without a recognizable leading time is rejected with ErrNoTime
// and nothing is stored.
func (s *EntryService) Add(rawInput string) (*entry.Entry, error) {
	trimmed := strings.TrimSpace(rawInput)
	if trimmed == "" {
		return nil, ErrEmptyInput
	}

	t, activity, ok := entry.Parse(trimmed)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNoTime, trimmed)
	}

	e := entry.Entry{
		Time:     t,
		Activity: activity,
		LoggedAt: time.Now(),
		RawInput: trimmed,
	}

	state, err := session.Load(s.sessionPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	state.Append(e)

	if err := session.Save(s.sessionPath, state); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	return &e, nil
}

// List returns the current session's entries in chronological order.
// Returns an empty slice when no session exists.
func (s *EntryService) List() ([]entry.Entry, error) {
	state, err := session.Load(s.sessionPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	return state.Entries, nil
}

// Count returns the number of entries in the current session.
func (s *EntryService) Count() (int, error) {
	state, err := session.Load(s.sessionPath)
	if err != nil {
		return 0, fmt.Errorf("failed to load session: %w", err)
	}
	return state.Len(), nil
}

// Discard drops the current session without writing anything to the
// activity log. Returns the number of entries that were discarded.
func (s *EntryService) Discard() (int, error) {
	state, err := session.Load(s.sessionPath)
	if err != nil {
		return 0, fmt.Errorf("failed to load session: %w", err)
	}

	count := state.Len()
	if err := session.Clear(s.sessionPath); err != nil {
		return 0, fmt.Errorf("failed to clear session: %w", err)
	}

	return count, nil
}
