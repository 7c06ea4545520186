// Package config holds runtime configuration: defaults, the optional YAML
// config file, CLI flag parsing, and validation.
package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/backmassage/palfix/internal/timecode"
)

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stdout is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// Config holds all runtime settings. It is populated by [DefaultConfig],
// optionally overlaid by a YAML config file, and then mutated by
// [ParseFlags] before being passed (by pointer) to packages that need it.
// Once the pipeline starts it is read-only.
type Config struct {
	// Paths (set from positional args). OutputPath is empty in batch mode.
	InputPath  string
	OutputPath string

	// Correction settings.
	Factor   timecode.Factor   // Default: 25025/24000.
	Rounding timecode.Rounding // Default: half-up.
	Language string            // Optional track language filter (e.g. "eng").

	// Audio re-encode settings for the resample stage.
	AudioCodec   string // Default: "aac".
	AudioBitrate string // Default: "256k".

	// Behavior flags.
	AssumeYes bool // Skip the overwrite prompt, answering yes.
	DryRun    bool

	// Display and logging.
	Verbose   bool
	ColorMode ColorMode // Default: "auto".
	LogFile   string    // Optional log file path.
	CheckOnly bool      // Run --check diagnostics and exit.

	// Config file path (from --config).
	ConfigFile string
}

// DefaultConfig returns a Config with the stock PAL correction defaults.
func DefaultConfig() Config {
	return Config{
		Factor:       timecode.DefaultFactor,
		Rounding:     timecode.RoundHalfUp,
		AudioCodec:   "aac",
		AudioBitrate: "256k",
		ColorMode:    ColorAuto,
	}
}

// Validate checks the factor invariant and enum fields. A correction factor
// at or below 1 would speed playback up instead of slowing it down.
func (c *Config) Validate() error {
	if c.Factor.Num <= 0 || c.Factor.Den <= 0 {
		return errors.New("factor numerator and denominator must be positive")
	}
	if c.Factor.Num <= c.Factor.Den {
		return fmt.Errorf("factor %s must be greater than 1 (speedup correction slows playback down)", c.Factor)
	}

	if !c.Rounding.Valid() {
		return errors.New("invalid rounding mode (use 'half-up' or 'truncate')")
	}

	switch c.ColorMode {
	case ColorAuto, ColorAlways, ColorNever:
		// valid
	default:
		return errors.New("invalid color mode (use 'auto', 'always' or 'never')")
	}

	if c.AudioCodec == "" {
		return errors.New("audio codec must not be empty")
	}
	normalized, err := normalizeAudioBitrate(c.AudioBitrate)
	if err != nil {
		return err
	}
	c.AudioBitrate = normalized

	if c.CheckOnly {
		return nil
	}
	if c.InputPath == "" {
		return errors.New("need an input file and output file, or a directory")
	}
	return nil
}

// BatchMode reports whether the run processes a directory of files rather
// than a single input/output pair.
func (c *Config) BatchMode() bool {
	return c.OutputPath == ""
}

// normalizeAudioBitrate validates and canonicalizes user bitrate input.
// Accepted forms: "256", "256k", "256K", "256kbps". Output is "<n>k".
func normalizeAudioBitrate(raw string) (string, error) {
	s := strings.ToLower(strings.TrimSpace(raw))
	if s == "" {
		return "", errors.New("audio bitrate must not be empty")
	}
	if strings.HasSuffix(s, "kbps") {
		s = strings.TrimSpace(strings.TrimSuffix(s, "kbps"))
	} else if strings.HasSuffix(s, "k") {
		s = strings.TrimSpace(strings.TrimSuffix(s, "k"))
	}
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return "", fmt.Errorf("invalid audio bitrate %q (use positive Kbps value, e.g. 256k)", raw)
	}
	return fmt.Sprintf("%dk", n), nil
}

// NormalizePathArg strips trailing slashes from a path argument. The
// filesystem root "/" is returned unchanged so we don't produce an empty
// string.
func NormalizePathArg(path string) string {
	if path == "/" {
		return "/"
	}
	return strings.TrimRight(path, "/")
}
