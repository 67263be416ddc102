// Package timefmt converts between durations and the "M:SS" clock text.
package timefmt

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// Infinity is a stop time that is never reached.
const Infinity = time.Duration(math.MaxInt64)

const infinityText = "Infinity"

// ErrParse indicates the text is not "minutes:seconds" or "infinity".
var ErrParse = errors.New("malformed clock time")

// Format renders the magnitude of d as minutes and zero-padded seconds.
// Sub-second precision is dropped and no sign is written.
func Format(d time.Duration) string {
	abs := d.Abs()
	if abs == Infinity {
		return infinityText
	}
	totalSeconds := int64(abs / time.Second)
	minutes := totalSeconds / 60
	seconds := totalSeconds % 60
	return strconv.FormatInt(minutes, 10) + ":" + leftpadSeconds(strconv.FormatInt(seconds, 10))
}

// Parse reads "minutes:seconds" text; seconds may carry a fraction.
// "infinity" in any case yields Infinity. Failures wrap ErrParse.
func Parse(text string) (time.Duration, error) {
	if strings.EqualFold(strings.TrimSpace(text), "infinity") {
		return Infinity, nil
	}

	parts := strings.Split(text, ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("parse %q: expected minutes:seconds: %w", text, ErrParse)
	}

	minutes, err := strconv.ParseInt(strings.TrimSpace(parts[0]), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse minutes %q: %w", parts[0], ErrParse)
	}
	seconds, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil || math.IsNaN(seconds) || math.IsInf(seconds, 0) {
		return 0, fmt.Errorf("parse seconds %q: %w", parts[1], ErrParse)
	}

	total := (float64(minutes)*60 + seconds) * float64(time.Second)
	switch {
	case total >= float64(Infinity):
		return Infinity, nil
	case total <= -float64(Infinity):
		return -Infinity, nil
	}
	return time.Duration(math.Round(total)), nil
}

func leftpadSeconds(text string) string {
	if len(text) == 2 {
		return text
	}
	return "0" + text
}
