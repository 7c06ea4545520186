package config

// This file implements CLI flag parsing and help text. String overrides are
// captured during Parse and applied afterwards, so the layering order
// defaults -> config file -> flags holds: a flag the user did not pass
// never clobbers a value the file set.

import (
	"flag"
	"fmt"
	"os"

	"github.com/backmassage/palfix/internal/timecode"
)

// usageVersion is shown in --version and help; ParseFlags sets it from the
// version main injects at build time.
var usageVersion = "dev"

// ParseFlags parses os.Args into cfg. On --help or --version it prints and
// exits. On error it returns non-nil (unknown flag, bad factor, wrong
// positional shape).
func ParseFlags(cfg *Config, version string) error {
	usageVersion = version
	fs := flag.NewFlagSet("palfix", flag.ContinueOnError)
	fs.Usage = func() { printUsage(fs) }

	var ov overrides

	defineCorrectionFlags(fs, &ov)
	defineBehaviorFlags(fs, cfg, &ov)
	defineDisplayFlags(fs, cfg, &ov)
	defineUtilityFlags(fs, &ov)

	if err := fs.Parse(os.Args[1:]); err != nil {
		return err
	}

	if ov.showHelp {
		printUsage(fs)
		os.Exit(0)
	}
	if ov.showVersion {
		fmt.Fprintln(os.Stdout, "palfix v"+version)
		os.Exit(0)
	}

	if ov.configFile != "" {
		cfg.ConfigFile = ov.configFile
		if err := LoadFile(cfg, ov.configFile); err != nil {
			return err
		}
	}

	if err := applyOverrides(cfg, &ov); err != nil {
		return err
	}

	return parsePositionalArgs(fs, cfg)
}

// overrides holds flag values that are applied after Parse (and after the
// config file, for the settings both can carry).
type overrides struct {
	factor     string
	rounding   string
	language   string
	audioCodec string
	bitrate    string
	configFile string

	languageSet bool

	forceColor  bool
	noColor     bool
	showVersion bool
	showHelp    bool
}

// defineCorrectionFlags registers --factor, --rounding, --language, --config.
func defineCorrectionFlags(fs *flag.FlagSet, ov *overrides) {
	fs.StringVar(&ov.factor, "factor", "", "Correction factor as N/D (default: 25025/24000)")
	fs.StringVar(&ov.rounding, "rounding", "", "Millisecond rounding: half-up | truncate")
	fs.Func("language", "Keep only audio/subtitle tracks with this language tag", func(s string) error {
		ov.language = s
		ov.languageSet = true
		return nil
	})
	fs.StringVar(&ov.configFile, "config", "", "Path to YAML config file")
}

// defineBehaviorFlags registers --yes, --dry-run, audio settings.
func defineBehaviorFlags(fs *flag.FlagSet, cfg *Config, ov *overrides) {
	fs.BoolVar(&cfg.AssumeYes, "yes", false, "Overwrite existing outputs without asking")
	fs.BoolVar(&cfg.AssumeYes, "y", false, "Same as --yes")
	fs.BoolVar(&cfg.DryRun, "dry-run", false, "Preview only; do not remux or resample")
	fs.BoolVar(&cfg.DryRun, "d", false, "Same as --dry-run")
	fs.StringVar(&ov.audioCodec, "audio-codec", "", "Audio encoder for the resample stage (default: aac)")
	fs.StringVar(&ov.bitrate, "audio-bitrate", "", "Audio bitrate for the resample stage (default: 256k)")
}

// defineDisplayFlags registers --color, --no-color, verbose, --check, --log.
func defineDisplayFlags(fs *flag.FlagSet, cfg *Config, ov *overrides) {
	fs.BoolVar(&ov.forceColor, "color", false, "Force colored logs")
	fs.BoolVar(&ov.noColor, "no-color", false, "Disable colored logs")
	fs.BoolVar(&cfg.Verbose, "verbose", false, "Verbose output (includes live tool output)")
	fs.BoolVar(&cfg.Verbose, "v", false, "Same as --verbose")
	fs.BoolVar(&cfg.CheckOnly, "check", false, "Run system diagnostics and exit")
	fs.BoolVar(&cfg.CheckOnly, "c", false, "Same as --check")
	fs.StringVar(&cfg.LogFile, "log", "", "Append logs to file")
	fs.StringVar(&cfg.LogFile, "l", "", "Same as --log")
}

// defineUtilityFlags registers --version and --help (exit after printing).
func defineUtilityFlags(fs *flag.FlagSet, ov *overrides) {
	fs.BoolVar(&ov.showVersion, "version", false, "Print version and exit")
	fs.BoolVar(&ov.showVersion, "V", false, "Same as --version")
	fs.BoolVar(&ov.showHelp, "help", false, "Show this help and exit")
	fs.BoolVar(&ov.showHelp, "h", false, "Same as --help")
}

// applyOverrides copies flag values into cfg where the user passed them.
func applyOverrides(cfg *Config, ov *overrides) error {
	if ov.factor != "" {
		f, err := timecode.ParseFactor(ov.factor)
		if err != nil {
			return err
		}
		cfg.Factor = f
	}
	if ov.rounding != "" {
		cfg.Rounding = timecode.Rounding(ov.rounding)
	}
	if ov.languageSet {
		cfg.Language = ov.language
	}
	if ov.audioCodec != "" {
		cfg.AudioCodec = ov.audioCodec
	}
	if ov.bitrate != "" {
		cfg.AudioBitrate = ov.bitrate
	}
	if ov.noColor {
		cfg.ColorMode = ColorNever
	} else if ov.forceColor {
		cfg.ColorMode = ColorAlways
	}
	return nil
}

// parsePositionalArgs accepts either <input-file> <output-file> or a single
// <input-directory> (batch mode, OutputPath left empty). Whether the single
// argument really is a directory is checked at startup, not here.
func parsePositionalArgs(fs *flag.FlagSet, cfg *Config) error {
	args := fs.Args()
	if cfg.CheckOnly {
		return nil
	}
	switch len(args) {
	case 1:
		cfg.InputPath = NormalizePathArg(args[0])
	case 2:
		cfg.InputPath = NormalizePathArg(args[0])
		cfg.OutputPath = NormalizePathArg(args[1])
	default:
		return fmt.Errorf("need <input-file> <output-file> or <input-directory>")
	}
	return nil
}

// printUsage writes the help text to stderr. Column-aligned for readability.
func printUsage(fs *flag.FlagSet) {
	const col1 = 28 // width of "  -x, --long-name <arg>  "
	lines := []struct {
		flags string
		desc  string
	}{
		{"", "palfix v" + usageVersion + " - PAL speedup correction for Matroska files"},
		{"", ""},
		{"  palfix [OPTIONS] <input-file> <output-file>", ""},
		{"  palfix [OPTIONS] <input-directory>     (outputs under Fixed/)", ""},
		{"", ""},
		{"Correction", ""},
		{"  --factor <N/D>", "Correction factor (default: 25025/24000)"},
		{"  --rounding <mode>", "Millisecond rounding: half-up | truncate"},
		{"  --language <tag>", "Keep only matching audio/subtitle tracks"},
		{"  --config <path>", "YAML config file"},
		{"", ""},
		{"Audio", ""},
		{"  --audio-codec <name>", "Encoder for the resample stage (default: aac)"},
		{"  --audio-bitrate <rate>", "Bitrate for the resample stage (default: 256k)"},
		{"", ""},
		{"Behavior", ""},
		{"  -y, --yes", "Overwrite existing outputs without asking"},
		{"  -d, --dry-run", "Preview only; do not remux or resample"},
		{"", ""},
		{"Display", ""},
		{"  --color", "Force colored logs"},
		{"  --no-color", "Disable colored logs"},
		{"  -v, --verbose", "Verbose output"},
		{"", ""},
		{"Utility", ""},
		{"  -l, --log <path>", "Append logs to file"},
		{"  -c, --check", "System diagnostics (mkvmerge, mkvextract, ffmpeg)"},
		{"  -V, --version", "Print version and exit"},
		{"  -h, --help", "Show this help and exit"},
	}

	for _, l := range lines {
		switch {
		case l.flags == "" && l.desc == "":
			fmt.Fprintln(os.Stderr)
		case l.desc == "":
			fmt.Fprintln(os.Stderr, l.flags)
		case l.flags == "":
			fmt.Fprintln(os.Stderr, l.desc)
		default:
			padding := col1 - len(l.flags)
			if padding < 1 {
				padding = 1
			}
			fmt.Fprintf(os.Stderr, "%s%*s%s\n", l.flags, padding, "", l.desc)
		}
	}
}
