package entry

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParseTimeOfDay_Valid(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected TimeOfDay
	}{
		{"zero padded", "09:30", TimeOfDay{Hour: 9, Minute: 30}},
		{"single digit hour", "9:30", TimeOfDay{Hour: 9, Minute: 30}},
		{"single digit minute", "9:5", TimeOfDay{Hour: 9, Minute: 5}},
		{"midnight", "0:0", TimeOfDay{Hour: 0, Minute: 0}},
		{"end of day", "23:59", TimeOfDay{Hour: 23, Minute: 59}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ParseTimeOfDay(tt.input)
			if err != nil {
				t.Fatalf("ParseTimeOfDay(%q) returned unexpected error: %v", tt.input, err)
			}
			if result != tt.expected {
				t.Errorf("ParseTimeOfDay(%q) = %v, expected %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestParseTimeOfDay_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty string", ""},
		{"no separator", "0930"},
		{"missing minute", "9:"},
		{"missing hour", ":30"},
		{"hour out of range", "24:00"},
		{"minute out of range", "12:60"},
		{"three digit hour", "123:00"},
		{"three digit minute", "12:300"},
		{"non-numeric hour", "ab:30"},
		{"non-numeric minute", "12:xy"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseTimeOfDay(tt.input); err == nil {
				t.Errorf("ParseTimeOfDay(%q) expected error, got nil", tt.input)
			}
		})
	}
}

func TestTimeOfDay_String(t *testing.T) {
	tests := []struct {
		name     string
		time     TimeOfDay
		expected string
	}{
		{"zero padding both", TimeOfDay{Hour: 9, Minute: 5}, "09:05"},
		{"no padding needed", TimeOfDay{Hour: 14, Minute: 30}, "14:30"},
		{"midnight", TimeOfDay{}, "00:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.time.String(); got != tt.expected {
				t.Errorf("String() = %q, expected %q", got, tt.expected)
			}
		})
	}
}

func TestTimeOfDay_Before(t *testing.T) {
	tests := []struct {
		name     string
		a, b     TimeOfDay
		expected bool
	}{
		{"earlier hour", TimeOfDay{Hour: 9}, TimeOfDay{Hour: 10}, true},
		{"later hour", TimeOfDay{Hour: 11}, TimeOfDay{Hour: 10}, false},
		{"same hour earlier minute", TimeOfDay{Hour: 9, Minute: 15}, TimeOfDay{Hour: 9, Minute: 30}, true},
		{"same hour later minute", TimeOfDay{Hour: 9, Minute: 45}, TimeOfDay{Hour: 9, Minute: 30}, false},
		{"equal times", TimeOfDay{Hour: 9, Minute: 30}, TimeOfDay{Hour: 9, Minute: 30}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Before(tt.b); got != tt.expected {
				t.Errorf("%v.Before(%v) = %v, expected %v", tt.a, tt.b, got, tt.expected)
			}
		})
	}
}

func TestEntry_JSONRoundTrip(t *testing.T) {
	original := Entry{
		Time:     TimeOfDay{Hour: 9, Minute: 30},
		Activity: "studied statistics",
		LoggedAt: time.Date(2024, 3, 15, 9, 31, 2, 0, time.UTC),
		RawInput: "9h30 studied statistics",
	}

	data, err := json.Marshal(original)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	var decoded Entry
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}

	if decoded.Time != original.Time {
		t.Errorf("Time = %v, expected %v", decoded.Time, original.Time)
	}
	if decoded.Activity != original.Activity {
		t.Errorf("Activity = %q, expected %q", decoded.Activity, original.Activity)
	}
	if !decoded.LoggedAt.Equal(original.LoggedAt) {
		t.Errorf("LoggedAt = %v, expected %v", decoded.LoggedAt, original.LoggedAt)
	}
	if decoded.RawInput != original.RawInput {
		t.Errorf("RawInput = %q, expected %q", decoded.RawInput, original.RawInput)
	}
}

func TestTimeOfDay_JSONEncodesAsString(t *testing.T) {
	data, err := json.Marshal(TimeOfDay{Hour: 9, Minute: 5})
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if string(data) != `"09:05"` {
		t.Errorf("Marshal = %s, expected %q", data, `"09:05"`)
	}

	var decoded TimeOfDay
	if err := json.Unmarshal([]byte(`"14:30"`), &decoded); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if decoded != (TimeOfDay{Hour: 14, Minute: 30}) {
		t.Errorf("Unmarshal = %v, expected 14:30", decoded)
	}
}
