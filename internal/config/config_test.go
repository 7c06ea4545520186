package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/backmassage/palfix/internal/timecode"
)

func validCfg() Config {
	cfg := DefaultConfig()
	cfg.InputPath = "in.mkv"
	cfg.OutputPath = "out.mkv"
	return cfg
}

func TestNormalizePathArg(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"no trailing slash", "/media/library", "/media/library"},
		{"single trailing slash", "/media/library/", "/media/library"},
		{"multiple trailing slashes", "/media/library///", "/media/library"},
		{"root path", "/", "/"},
		{"relative path", "input", "input"},
		{"empty string", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizePathArg(tt.in); got != tt.want {
				t.Errorf("NormalizePathArg(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestValidate_FactorInvariant(t *testing.T) {
	tests := []struct {
		name    string
		factor  timecode.Factor
		wantErr bool
	}{
		{"default is valid", timecode.DefaultFactor, false},
		{"plain 25/24 is valid", timecode.Factor{Num: 25, Den: 24}, false},
		{"identity is invalid", timecode.Factor{Num: 1, Den: 1}, true},
		{"speedup is invalid", timecode.Factor{Num: 24000, Den: 25025}, true},
		{"zero numerator is invalid", timecode.Factor{Num: 0, Den: 24000}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validCfg()
			cfg.Factor = tt.factor
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidate_Rounding(t *testing.T) {
	cfg := validCfg()
	cfg.Rounding = "banker"
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for unknown rounding mode")
	}
}

func TestValidate_RequiresInput(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for missing input path")
	}
	cfg.CheckOnly = true
	if err := cfg.Validate(); err != nil {
		t.Errorf("check-only must not require paths: %v", err)
	}
}

func TestValidate_NormalizesBitrate(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"256", "256k", false},
		{"256k", "256k", false},
		{"192K", "192k", false},
		{"128kbps", "128k", false},
		{"", "", true},
		{"abc", "", true},
		{"-5k", "", true},
	}
	for _, tt := range tests {
		cfg := validCfg()
		cfg.AudioBitrate = tt.in
		err := cfg.Validate()
		if (err != nil) != tt.wantErr {
			t.Errorf("bitrate %q: error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if err == nil && cfg.AudioBitrate != tt.want {
			t.Errorf("bitrate %q: got %q, want %q", tt.in, cfg.AudioBitrate, tt.want)
		}
	}
}

func TestBatchMode(t *testing.T) {
	cfg := validCfg()
	if cfg.BatchMode() {
		t.Error("with output path set, BatchMode should be false")
	}
	cfg.OutputPath = ""
	if !cfg.BatchMode() {
		t.Error("without output path, BatchMode should be true")
	}
}

// --- Config file ---

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "palfix.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadFile_Overrides(t *testing.T) {
	path := writeConfigFile(t, `
factor: "25/24"
language: eng
rounding: truncate
audio_bitrate: 192k
`)
	cfg := DefaultConfig()
	if err := LoadFile(&cfg, path); err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if cfg.Factor != (timecode.Factor{Num: 25, Den: 24}) {
		t.Errorf("factor: got %v", cfg.Factor)
	}
	if cfg.Language != "eng" {
		t.Errorf("language: got %q", cfg.Language)
	}
	if cfg.Rounding != timecode.RoundTruncate {
		t.Errorf("rounding: got %q", cfg.Rounding)
	}
	if cfg.AudioBitrate != "192k" {
		t.Errorf("bitrate: got %q", cfg.AudioBitrate)
	}
	// Untouched fields keep their defaults.
	if cfg.AudioCodec != "aac" {
		t.Errorf("codec: got %q, want default aac", cfg.AudioCodec)
	}
}

func TestLoadFile_PartialFile(t *testing.T) {
	path := writeConfigFile(t, `language: ger`)
	cfg := DefaultConfig()
	if err := LoadFile(&cfg, path); err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if cfg.Factor != timecode.DefaultFactor {
		t.Errorf("factor should keep default, got %v", cfg.Factor)
	}
}

func TestLoadFile_UnknownKey(t *testing.T) {
	path := writeConfigFile(t, `langauge: eng`)
	cfg := DefaultConfig()
	if err := LoadFile(&cfg, path); err == nil {
		t.Error("expected error for misspelled key")
	}
}

func TestLoadFile_BadFactor(t *testing.T) {
	path := writeConfigFile(t, `factor: "fast"`)
	cfg := DefaultConfig()
	if err := LoadFile(&cfg, path); err == nil {
		t.Error("expected error for unparseable factor")
	}
}

func TestLoadFile_Missing(t *testing.T) {
	cfg := DefaultConfig()
	if err := LoadFile(&cfg, filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}
