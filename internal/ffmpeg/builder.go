// Package ffmpeg builds and runs the final transcode stage: audio is
// resampled to the corrected rate (the one re-encode in the whole pipeline)
// while every other selected stream is copied bit-exact.
package ffmpeg

import (
	"fmt"

	"github.com/backmassage/palfix/internal/config"
	"github.com/backmassage/palfix/internal/planner"
)

// Build constructs the complete ffmpeg argument slice for the resample
// stage. The input is the sync-corrected intermediate container; sourceRate
// and targetRate come from the conversion plan.
//
// The asetrate filter reinterprets the samples at the lower corrected rate,
// which slows playback and drops the pitch together, and aresample brings
// the stream back to the source rate so players see a standard frequency.
func Build(cfg *config.Config, plan *planner.ConversionPlan, input, output string) []string {
	args := make([]string, 0, 32)

	args = append(args, "ffmpeg", "-hide_banner", "-nostdin", "-y")
	if cfg.Verbose {
		args = append(args, "-loglevel", "info", "-stats")
	} else {
		args = append(args, "-loglevel", "error")
	}

	args = append(args, "-i", input)

	// Stream maps. The ? suffix tolerates kinds the source lacks; the
	// m:language specifier applies the fail-open selection from the plan.
	args = append(args, "-map", "0:v?")
	if plan.Selection.AudioLanguage != "" {
		args = append(args, "-map", "0:a:m:language:"+plan.Selection.AudioLanguage)
	} else {
		args = append(args, "-map", "0:a?")
	}
	if plan.Selection.SubtitleLanguage != "" {
		args = append(args, "-map", "0:s:m:language:"+plan.Selection.SubtitleLanguage)
	} else {
		args = append(args, "-map", "0:s?")
	}

	// Copy everything except audio.
	args = append(args, "-c:v", "copy", "-c:s", "copy")

	if plan.TargetRate > 0 {
		args = append(args,
			"-c:a", cfg.AudioCodec,
			"-b:a", cfg.AudioBitrate,
			"-filter:a", fmt.Sprintf("asetrate=%d,aresample=%d", plan.TargetRate, plan.SourceRate),
		)
	}

	// Chapters were already rescaled during remux; carry them through.
	args = append(args, "-map_metadata", "0", "-map_chapters", "0")

	return append(args, output)
}
