package config

// This file implements the optional YAML config file. The file only carries
// correction and audio settings; paths and one-shot behavior flags are CLI
// territory. Layering order is defaults -> file -> flags, so anything given
// on the command line wins.

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/backmassage/palfix/internal/timecode"
)

// fileConfig is the YAML wire shape. Pointer fields distinguish "absent"
// from a zero value so the file can override only what it names.
type fileConfig struct {
	Factor       *string `yaml:"factor"`
	Rounding     *string `yaml:"rounding"`
	Language     *string `yaml:"language"`
	AudioCodec   *string `yaml:"audio_codec"`
	AudioBitrate *string `yaml:"audio_bitrate"`
}

// LoadFile overlays the YAML file at path onto cfg. Unknown keys are
// rejected so a typo does not silently fall back to defaults.
func LoadFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	var fc fileConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&fc); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}

	if fc.Factor != nil {
		f, err := timecode.ParseFactor(*fc.Factor)
		if err != nil {
			return fmt.Errorf("config file %s: %w", path, err)
		}
		cfg.Factor = f
	}
	if fc.Rounding != nil {
		cfg.Rounding = timecode.Rounding(*fc.Rounding)
	}
	if fc.Language != nil {
		cfg.Language = *fc.Language
	}
	if fc.AudioCodec != nil {
		cfg.AudioCodec = *fc.AudioCodec
	}
	if fc.AudioBitrate != nil {
		cfg.AudioBitrate = *fc.AudioBitrate
	}
	return nil
}
