package pipeline

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/backmassage/palfix/internal/config"
	"github.com/backmassage/palfix/internal/logging"
	"github.com/backmassage/palfix/internal/planner"
	"github.com/backmassage/palfix/internal/rescale"
	"github.com/backmassage/palfix/internal/ui"
)

// Sentinel errors for conversion outcomes the runner treats specially.
var (
	// ErrOverwriteDeclined means the user kept the existing output. A
	// deliberate abort, not a failure.
	ErrOverwriteDeclined = errors.New("overwrite declined")
	// ErrNoAudioRate means no audio track reported a sample rate, so the
	// resample target cannot be computed.
	ErrNoAudioRate = errors.New("no audio sample rate discoverable")
)

const minFileSize = 1000

// Convert runs the full correction state machine for one input/output pair:
// confirm overwrite, inspect, extract and rescale chapters, compute the
// sync plan, remux, resample audio. The workspace is removed on every exit
// path, and no partial final output survives a failure.
func Convert(
	ctx context.Context,
	cfg *config.Config,
	log *logging.Logger,
	confirm ui.Confirmer,
	tools Tools,
	input, output string,
) error {
	fi, err := os.Stat(input)
	if err != nil {
		return fmt.Errorf("input not found: %s", input)
	}
	if fi.Size() < minFileSize {
		return fmt.Errorf("file too small (possibly corrupt): %s", input)
	}

	ws, err := NewWorkspace()
	if err != nil {
		return err
	}
	defer ws.Remove()

	// Overwrite confirmation: only an explicit yes touches an existing
	// output. --yes answers for the user.
	if _, err := os.Stat(output); err == nil {
		ok := cfg.AssumeYes
		if !ok {
			ok, err = confirm.ConfirmOverwrite(output)
			if err != nil {
				return err
			}
		}
		if !ok {
			return ErrOverwriteDeclined
		}
	}

	res, err := tools.Inspect(ctx, input)
	if err != nil {
		return fmt.Errorf("inspect: %w", err)
	}
	log.Debug("  %d tracks, chapters: %v", len(res.Tracks), res.HasChapters)

	plan := planner.BuildPlan(res, cfg.Factor, cfg.Language)
	if len(res.AudioTracks()) > 0 && plan.SourceRate == 0 {
		return fmt.Errorf("%w: %s", ErrNoAudioRate, input)
	}
	if _, mismatch := res.AudioSampleRate(); mismatch {
		log.Warn("  Audio tracks disagree on sample rate; using first (%d Hz)", plan.SourceRate)
	}

	logPlan(log, cfg, plan, res.HasChapters)

	if cfg.DryRun {
		log.Success("[DRY] Would fix: %s", filepath.Base(output))
		return nil
	}

	// Chapters: extract, rescale, park the corrected document in the
	// workspace for the remux stage. Absence is a no-op, not an error.
	chapterFile := ""
	if res.HasChapters {
		if err := ctx.Err(); err != nil {
			return err
		}
		doc, err := tools.ExtractChapters(ctx, input)
		if err != nil {
			return fmt.Errorf("extract chapters: %w", err)
		}
		rescaled, err := rescale.String(doc, cfg.Factor, cfg.Rounding)
		if err != nil {
			return fmt.Errorf("rescale chapters: %w", err)
		}
		chapterFile = ws.Path("chapters.txt")
		if err := os.WriteFile(chapterFile, []byte(rescaled), 0o644); err != nil {
			return fmt.Errorf("write rescaled chapters: %w", err)
		}
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	// Remux into the workspace: non-audio clocks stretched, audio untouched.
	intermediate := ws.Path("remux" + filepath.Ext(input))
	if err := tools.Remux(ctx, input, intermediate, chapterFile, plan.Sync); err != nil {
		return fmt.Errorf("remux: %w", err)
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(output), 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	// Resample audio into the final output. A failed transcode must not
	// leave a half-written file at the destination.
	if err := tools.Resample(ctx, plan, intermediate, output); err != nil {
		os.Remove(output)
		return fmt.Errorf("resample audio: %w", err)
	}
	return nil
}

func logPlan(log *logging.Logger, cfg *config.Config, plan *planner.ConversionPlan, hasChapters bool) {
	log.Debug("  Sync plan: %d directive(s) at %s", len(plan.Sync), cfg.Factor)
	if hasChapters {
		log.Debug("  Chapters: rescale at %s", cfg.Factor)
	}
	if plan.TargetRate > 0 {
		log.Info("  Audio: %d Hz -> resample via %d Hz (%s)",
			plan.SourceRate, plan.TargetRate, cfg.AudioCodec)
	} else {
		log.Info("  Audio: none")
	}
	if plan.Selection.AudioLanguage != "" || plan.Selection.SubtitleLanguage != "" {
		log.Info("  Language filter: audio=%s subtitles=%s",
			orAll(plan.Selection.AudioLanguage), orAll(plan.Selection.SubtitleLanguage))
	}
}

func orAll(lang string) string {
	if lang == "" {
		return "all"
	}
	return lang
}
