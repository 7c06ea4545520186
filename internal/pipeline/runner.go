package pipeline

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/backmassage/palfix/internal/config"
	"github.com/backmassage/palfix/internal/display"
	"github.com/backmassage/palfix/internal/logging"
	"github.com/backmassage/palfix/internal/ui"
)

// Run is the top-level entry point: a single conversion when an output path
// is set, otherwise a batch over the input directory with per-entry failure
// isolation and a summary of outcomes.
func Run(ctx context.Context, cfg *config.Config, log *logging.Logger, confirm ui.Confirmer, tools Tools) RunStats {
	var stats RunStats

	if !cfg.BatchMode() {
		stats.Total = 1
		stats.Current = 1
		processEntry(ctx, cfg, log, confirm, tools, cfg.InputPath, cfg.OutputPath, &stats)
		return stats
	}

	files, err := Discover(cfg.InputPath)
	if err != nil {
		log.Error("File discovery failed: %v", err)
		stats.Failed++
		return stats
	}

	stats.Total = len(files)
	log.Info("Found %d file(s)", stats.Total)
	log.Info("Correction: %s (%s)", cfg.Factor, display.FormatStretch(cfg.Factor.Float()))
	fmt.Println()

	for i, path := range files {
		stats.Current = i + 1

		if ctx.Err() != nil {
			log.Warn("Interrupted")
			break
		}

		processEntry(ctx, cfg, log, confirm, tools, path, OutputPathFor(path), &stats)
	}

	logSummary(log, &stats)
	return stats
}

// processEntry runs one conversion and classifies its outcome. A failed
// entry is recorded and the batch moves on; its workspace is already gone
// by the time Convert returns.
func processEntry(
	ctx context.Context,
	cfg *config.Config,
	log *logging.Logger,
	confirm ui.Confirmer,
	tools Tools,
	input, output string,
	stats *RunStats,
) {
	basename := filepath.Base(input)
	log.Info("[%d/%d] %s", stats.Current, stats.Total, basename)

	start := time.Now()
	err := Convert(ctx, cfg, log, confirm, tools, input, output)
	switch {
	case err == nil:
		if !cfg.DryRun {
			log.Success("Fixed in %s -> %s", display.FormatDuration(time.Since(start)), output)
		}
		stats.record(input, StatusFixed, nil)
	case errors.Is(err, ErrOverwriteDeclined):
		log.Warn("Skipped (existing output kept): %s", output)
		stats.record(input, StatusDeclined, err)
	default:
		log.Error("%s: %v", basename, err)
		stats.record(input, StatusFailed, err)
	}
	fmt.Println()
}

func logSummary(log *logging.Logger, stats *RunStats) {
	log.Info("==============================")
	log.Info("Done: %d fixed, %d skipped, %d failed (of %d)",
		stats.Fixed, stats.Skipped, stats.Failed, stats.Total)
	for _, o := range stats.Outcomes {
		switch o.Status {
		case StatusFixed:
			log.Info("  ok      %s", o.Input)
		case StatusDeclined:
			log.Info("  skipped %s", o.Input)
		case StatusFailed:
			log.Info("  FAILED  %s (%v)", o.Input, o.Err)
		}
	}
}
