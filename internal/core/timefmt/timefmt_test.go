package timefmt

import (
	"errors"
	"testing"
	"time"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		input    time.Duration
		expected string
	}{
		{input: 0, expected: "0:00"},
		{input: 999 * time.Millisecond, expected: "0:00"},
		{input: time.Second, expected: "0:01"},
		{input: -time.Second, expected: "0:01"},
		{input: 30 * time.Second, expected: "0:30"},
		{input: 59*time.Second + 999*time.Millisecond, expected: "0:59"},
		{input: time.Minute, expected: "1:00"},
		{input: 125 * time.Minute, expected: "125:00"},
		{input: -(2*time.Minute + 5*time.Second), expected: "2:05"},
		{input: Infinity, expected: "Infinity"},
		{input: -Infinity, expected: "Infinity"},
	}

	for _, tt := range tests {
		if got := Format(tt.input); got != tt.expected {
			t.Errorf("Format(%v) = %q, expected %q", tt.input, got, tt.expected)
		}
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		input    string
		expected time.Duration
	}{
		{input: "0:30", expected: 30 * time.Second},
		{input: "2:00", expected: 2 * time.Minute},
		{input: "1:30.5", expected: 90*time.Second + 500*time.Millisecond},
		{input: "0:90", expected: 90 * time.Second},
		{input: " 3 : 07 ", expected: 3*time.Minute + 7*time.Second},
		{input: "infinity", expected: Infinity},
		{input: "INFINITY", expected: Infinity},
		{input: "Infinity", expected: Infinity},
		{input: "99999999999:00", expected: Infinity},
	}

	for _, tt := range tests {
		got, err := Parse(tt.input)
		if err != nil {
			t.Errorf("Parse(%q) returned error: %v", tt.input, err)
			continue
		}
		if got != tt.expected {
			t.Errorf("Parse(%q) = %v, expected %v", tt.input, got, tt.expected)
		}
	}
}

func TestParse_Failures(t *testing.T) {
	inputs := []string{"", "30", "not-a-time", "1:2:3", "a:30", "1:b", "1.5:00", "1:NaN", "1:Inf"}
	for _, input := range inputs {
		if _, err := Parse(input); !errors.Is(err, ErrParse) {
			t.Errorf("Parse(%q) error = %v, expected ErrParse", input, err)
		}
	}
}

func TestFormat_Property_RoundTrip(t *testing.T) {
	for minutes := 0; minutes <= 120; minutes += 7 {
		for seconds := 0; seconds < 60; seconds++ {
			text := Format(time.Duration(minutes)*time.Minute + time.Duration(seconds)*time.Second)
			parsed, err := Parse(text)
			if err != nil {
				t.Fatalf("Parse(%q) returned error: %v", text, err)
			}
			if again := Format(parsed); again != text {
				t.Fatalf("Format(Parse(%q)) = %q", text, again)
			}
		}
	}

	parsed, _ := Parse(Format(Infinity))
	if parsed != Infinity {
		t.Errorf("Infinity did not round-trip, got %v", parsed)
	}
}
