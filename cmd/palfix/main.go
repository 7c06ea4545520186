// Command palfix corrects PAL speedup in Matroska files: chapter and
// subtitle timing is stretched by a rational factor at the container level
// and audio is resampled to restore pitch, without re-encoding video.
//
// It parses flags, validates configuration and paths, and either runs
// system diagnostics (--check) or the correction pipeline for a single
// file or a directory batch.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/backmassage/palfix/internal/check"
	"github.com/backmassage/palfix/internal/config"
	"github.com/backmassage/palfix/internal/display"
	"github.com/backmassage/palfix/internal/logging"
	"github.com/backmassage/palfix/internal/pipeline"
	"github.com/backmassage/palfix/internal/ui"
)

// version and commit are injected at build time via -ldflags. When built
// with plain "go build" these retain their defaults.
var (
	version = "1.0.0"
	commit  = "unknown"
)

// Exit codes, one per failure kind.
const (
	exitOK      = 0
	exitUsage   = 1 // wrong arguments or invalid configuration
	exitFailure = 2 // one or more conversions failed
	exitEnv     = 3 // missing tools or unusable environment
)

func main() {
	os.Exit(run())
}

func run() int {
	// Phase 1: Bootstrap. The logger doesn't exist yet, so errors go
	// directly to stderr via fmt. Once NewLogger succeeds, all output
	// goes through the logger for consistent formatting and log-file
	// capture.
	cfg := config.DefaultConfig()
	if err := config.ParseFlags(&cfg, version); err != nil {
		fmt.Fprintf(os.Stderr, "palfix: %v\n", err)
		return exitUsage
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "palfix: %v\n", err)
		return exitUsage
	}

	log, err := logging.NewLogger(&cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "palfix: %v\n", err)
		return exitEnv
	}
	defer log.Close()

	// Phase 2: Logger available.
	display.PrintBanner()

	if cfg.CheckOnly {
		if !check.RunCheck(log) {
			return exitEnv
		}
		return exitOK
	}

	if err := resolveMode(&cfg); err != nil {
		log.Error("%v", err)
		return exitUsage
	}

	log.Info("=== palfix v%s (%s) ===", version, commit)
	log.Info("In:  %s", cfg.InputPath)
	if cfg.BatchMode() {
		log.Info("Out: %s directories alongside sources", pipeline.OutputDirName)
	} else {
		log.Info("Out: %s", cfg.OutputPath)
	}
	log.Info("Correction: %s (%s), rounding: %s",
		cfg.Factor, display.FormatStretch(cfg.Factor.Float()), cfg.Rounding)
	if cfg.Language != "" {
		log.Info("Language filter: %s", cfg.Language)
	}
	if cfg.DryRun {
		log.Warn("DRY RUN - no files will be written")
	}
	fmt.Println()

	// Fail fast if any required binary is unavailable.
	if err := check.CheckDeps(); err != nil {
		log.Error("%v", err)
		return exitEnv
	}

	// Phase 3: Signal handling. Cancel the context on SIGINT/SIGTERM so
	// running tools are killed and every conversion's deferred workspace
	// cleanup still runs before the process exits.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		log.Warn("Received interrupt, cleaning up…")
		cancel()
	}()

	// Phase 4: Run the pipeline.
	var confirm ui.Confirmer = ui.NewTerminal()
	if cfg.AssumeYes {
		confirm = ui.Assume(true)
	}
	stats := pipeline.Run(ctx, &cfg, log, confirm, pipeline.NewTools(&cfg))

	if stats.Failed > 0 {
		return exitFailure
	}
	return exitOK
}

// resolveMode checks the positional-argument shape against the filesystem:
// a single argument must be a directory (batch mode), an input/output pair
// must start from a regular file.
func resolveMode(cfg *config.Config) error {
	fi, err := os.Stat(cfg.InputPath)
	if err != nil {
		return fmt.Errorf("input not found: %s", cfg.InputPath)
	}
	if cfg.BatchMode() {
		if !fi.IsDir() {
			return fmt.Errorf("single-file mode needs an output path: palfix %s <output-file>", cfg.InputPath)
		}
		return nil
	}
	if fi.IsDir() {
		return fmt.Errorf("batch mode takes the directory only: palfix %s", cfg.InputPath)
	}
	return nil
}
