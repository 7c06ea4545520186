package timecode

import (
	"fmt"
	"strconv"
	"strings"
)

// Factor is a rational timing multiplier (numerator/denominator). The
// default corrects PAL speedup: 24fps film sped up to 25fps PAL plays
// 25025/24000 too fast, so every timestamp is stretched by that ratio.
type Factor struct {
	Num int64
	Den int64
}

// DefaultFactor is the PAL speedup correction ratio 25025/24000.
var DefaultFactor = Factor{Num: 25025, Den: 24000}

// ParseFactor parses "N/D" (e.g. "25025/24000") into a Factor. Both parts
// must be positive integers.
func ParseFactor(s string) (Factor, error) {
	num, den, ok := strings.Cut(strings.TrimSpace(s), "/")
	if !ok {
		return Factor{}, fmt.Errorf("invalid factor %q (use N/D, e.g. 25025/24000)", s)
	}
	n, err := strconv.ParseInt(strings.TrimSpace(num), 10, 64)
	if err != nil || n <= 0 {
		return Factor{}, fmt.Errorf("invalid factor numerator %q", num)
	}
	d, err := strconv.ParseInt(strings.TrimSpace(den), 10, 64)
	if err != nil || d <= 0 {
		return Factor{}, fmt.Errorf("invalid factor denominator %q", den)
	}
	return Factor{Num: n, Den: d}, nil
}

// String returns the "N/D" form, which is also the form mkvmerge's --sync
// option accepts for its linear factor.
func (f Factor) String() string {
	return strconv.FormatInt(f.Num, 10) + "/" + strconv.FormatInt(f.Den, 10)
}

// Inverse returns the reciprocal factor. Audio sample-rate scaling runs in
// the opposite direction from timestamp scaling: timestamps are multiplied
// by Num/Den while the playback rate is multiplied by Den/Num.
func (f Factor) Inverse() Factor {
	return Factor{Num: f.Den, Den: f.Num}
}

// Float returns the factor as a float64 for display purposes only. All
// rescaling arithmetic stays in integers.
func (f Factor) Float() float64 {
	return float64(f.Num) / float64(f.Den)
}
