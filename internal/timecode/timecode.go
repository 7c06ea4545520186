// Package timecode implements the HH:MM:SS.mmm timestamp codec and the
// rational rescaling arithmetic shared by chapter and subtitle correction.
//
// All math is exact 64-bit integer arithmetic. The largest representable
// input (thousands of hours in milliseconds) multiplied by any realistic
// factor numerator stays far below the int64 range, so no big-number
// library is needed and repeated rescaling cannot drift.
package timecode

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
)

// Sentinel errors for codec failures.
var (
	ErrMalformed = errors.New("malformed timecode")
	ErrNegative  = errors.New("negative duration")
)

// Pattern matches an embedded HH:MM:SS.mmm timestamp. Hours are at least
// two digits but unbounded in width so formatted long-runtime values
// round-trip.
var Pattern = regexp.MustCompile(`\d{2,}:\d{2}:\d{2}\.\d{3}`)

// parse-time shape check: the full string, nothing more.
var reExact = regexp.MustCompile(`^(\d{2,}):(\d{2}):(\d{2})\.(\d{3})$`)

// Milliseconds per field.
const (
	msPerSecond = 1000
	msPerMinute = 60 * msPerSecond
	msPerHour   = 60 * msPerMinute
)

// Parse converts an HH:MM:SS.mmm string into a millisecond count. Minutes
// and seconds above 59 are rejected, not normalized: an out-of-range field
// means the document is damaged, and silently reinterpreting it would move
// the cue.
func Parse(s string) (int64, error) {
	m := reExact.FindStringSubmatch(s)
	if m == nil {
		return 0, fmt.Errorf("%w: %q", ErrMalformed, s)
	}
	hrs, err := strconv.ParseInt(m[1], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrMalformed, s)
	}
	mins, _ := strconv.ParseInt(m[2], 10, 64)
	secs, _ := strconv.ParseInt(m[3], 10, 64)
	ms, _ := strconv.ParseInt(m[4], 10, 64)
	if mins > 59 || secs > 59 {
		return 0, fmt.Errorf("%w: %q", ErrMalformed, s)
	}
	return hrs*msPerHour + mins*msPerMinute + secs*msPerSecond + ms, nil
}

// Format renders a millisecond count as zero-padded HH:MM:SS.mmm. Hours
// grow beyond two digits as needed.
func Format(ms int64) (string, error) {
	if ms < 0 {
		return "", fmt.Errorf("%w: %d ms", ErrNegative, ms)
	}
	hrs := ms / msPerHour
	ms -= hrs * msPerHour
	mins := ms / msPerMinute
	ms -= mins * msPerMinute
	secs := ms / msPerSecond
	ms -= secs * msPerSecond
	return fmt.Sprintf("%02d:%02d:%02d.%03d", hrs, mins, secs, ms), nil
}

// Rounding selects how fractional milliseconds are resolved when rescaling.
type Rounding string

const (
	// RoundHalfUp rounds half away from zero (default). On this
	// always-positive domain that is plain half-up.
	RoundHalfUp Rounding = "half-up"
	// RoundTruncate drops the fraction, matching tools that floor.
	RoundTruncate Rounding = "truncate"
)

// Valid reports whether r is a known rounding mode.
func (r Rounding) Valid() bool {
	return r == RoundHalfUp || r == RoundTruncate
}

// Rescale multiplies a millisecond count by the factor using exact integer
// arithmetic. ms must be non-negative.
func Rescale(ms int64, f Factor, mode Rounding) int64 {
	product := ms * f.Num
	if mode == RoundTruncate {
		return product / f.Den
	}
	return (product + f.Den/2) / f.Den
}

// RescaleText parses, rescales, and reformats a single textual timestamp.
func RescaleText(s string, f Factor, mode Rounding) (string, error) {
	ms, err := Parse(s)
	if err != nil {
		return "", err
	}
	return Format(Rescale(ms, f, mode))
}
