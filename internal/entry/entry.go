package entry

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// TimeOfDay is a wall-clock time without a date, in 24-hour form.
type TimeOfDay struct {
	Hour   int
	Minute int
}

// ParseTimeOfDay parses a string shaped like "HH:MM" into a TimeOfDay.
// Hour and minute components may be 1 or 2 digits, but both must be
// present. Hours must be 00-23 and minutes 00-59.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return TimeOfDay{}, fmt.Errorf("invalid time %q: expected HH:MM", s)
	}

	hourStr, minuteStr := parts[0], parts[1]
	if hourStr == "" || minuteStr == "" {
		return TimeOfDay{}, fmt.Errorf("invalid time %q: missing hour or minute", s)
	}
	if len(hourStr) > 2 || len(minuteStr) > 2 {
		return TimeOfDay{}, fmt.Errorf("invalid time %q: expected HH:MM", s)
	}

	hour, err := strconv.Atoi(hourStr)
	if err != nil {
		return TimeOfDay{}, fmt.Errorf("invalid hour in %q", s)
	}

	minute, err := strconv.Atoi(minuteStr)
	if err != nil {
		return TimeOfDay{}, fmt.Errorf("invalid minute in %q", s)
	}

	if hour < 0 || hour > 23 {
		return TimeOfDay{}, fmt.Errorf("invalid time %q: hour must be 00-23", s)
	}
	if minute < 0 || minute > 59 {
		return TimeOfDay{}, fmt.Errorf("invalid time %q: minute must be 00-59", s)
	}

	return TimeOfDay{Hour: hour, Minute: minute}, nil
}

// String formats the time as zero-padded "HH:MM".
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// Before reports whether t is earlier in the day than other.
func (t TimeOfDay) Before(other TimeOfDay) bool {
	if t.Hour != other.Hour {
		return t.Hour < other.Hour
	}
	return t.Minute < other.Minute
}

// MarshalJSON encodes the time as its "HH:MM" string form.
func (t TimeOfDay) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(t.String())), nil
}

// UnmarshalJSON decodes a quoted "HH:MM" string.
func (t *TimeOfDay) UnmarshalJSON(data []byte) error {
	s, err := strconv.Unquote(string(data))
	if err != nil {
		return fmt.Errorf("invalid time value %s", data)
	}

	parsed, err := ParseTimeOfDay(s)
	if err != nil {
		return err
	}

	*t = parsed
	return nil
}

// Entry represents a single activity entry logged for the current day
type Entry struct {
	Time     TimeOfDay `json:"time"`
	Activity string    `json:"activity"`
	LoggedAt time.Time `json:"logged_at"`
	RawInput string    `json:"raw_input"`
}
