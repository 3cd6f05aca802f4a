package entry

import (
	"regexp"
	"strings"
)

// hourNotationPattern matches times written with an 'h' separator
// (e.g., "9h30 lunch", "14h dinner"). Minutes are optional in the
// grammar but required by time validation.
var hourNotationPattern = regexp.MustCompile(`^(\d{1,2}h\d{0,2})\s*(.*)$`)

// colonNotationPattern matches times written with a ':' separator
// (e.g., "09:30 lunch", "9:5 run").
var colonNotationPattern = regexp.MustCompile(`^(\d{1,2}:\d{0,2})\s*(.*)$`)

// Parse converts a free-text activity line into a time-of-day and an
// activity label.
//
// Two notations are recognized at the start of the trimmed, lowercased
// input, tried in priority order:
//
//	9h30 lunch    hour 'h' minutes
//	09:30 lunch   hour ':' minutes
//
// The first notation whose pattern matches wins. A matched time token
// is then validated as a strict 24-hour time; if validation fails
// (e.g., "25h00 run" or the minute-less "9h"), ok is false but the
// label extracted alongside the token is still returned. If neither
// notation matches, Parse returns a zero time, an empty label, and
// ok=false. Parse never fails and performs no I/O.
func Parse(raw string) (t TimeOfDay, label string, ok bool) {
	input := strings.ToLower(strings.TrimSpace(raw))

	if matches := hourNotationPattern.FindStringSubmatch(input); matches != nil {
		// Normalize "9h30" to "9:30" before strict validation
		timeStr := strings.Replace(matches[1], "h", ":", 1)
		label = strings.TrimSpace(matches[2])

		parsed, err := ParseTimeOfDay(timeStr)
		if err != nil {
			return TimeOfDay{}, label, false
		}
		return parsed, label, true
	}

	if matches := colonNotationPattern.FindStringSubmatch(input); matches != nil {
		label = strings.TrimSpace(matches[2])

		parsed, err := ParseTimeOfDay(matches[1])
		if err != nil {
			return TimeOfDay{}, label, false
		}
		return parsed, label, true
	}

	return TimeOfDay{}, "", false
}
