package pipeline

import (
	"context"

	"github.com/backmassage/palfix/internal/config"
	"github.com/backmassage/palfix/internal/ffmpeg"
	"github.com/backmassage/palfix/internal/mkvtool"
	"github.com/backmassage/palfix/internal/planner"
	"github.com/backmassage/palfix/internal/probe"
)

// Tools is the set of external container capabilities the pipeline drives.
// The production implementation shells out to ffprobe, mkvextract,
// mkvmerge, and ffmpeg; tests swap in fakes to exercise the orchestration
// without binaries.
type Tools interface {
	// Inspect returns the track listing and chapter presence for a file.
	Inspect(ctx context.Context, path string) (*probe.Result, error)
	// ExtractChapters returns the file's chapter document in simple/OGM form.
	ExtractChapters(ctx context.Context, path string) (string, error)
	// Remux produces a new container with non-audio track clocks stretched
	// per the plan and chapters replaced by chapterFile when non-empty.
	Remux(ctx context.Context, input, output, chapterFile string, plan planner.SyncPlan) error
	// Resample produces the final output: audio re-encoded at the corrected
	// rate, all other selected streams copied.
	Resample(ctx context.Context, plan *planner.ConversionPlan, input, output string) error
}

// systemTools is the production Tools implementation.
type systemTools struct {
	cfg *config.Config
}

// NewTools returns the Tools implementation backed by the real binaries.
func NewTools(cfg *config.Config) Tools {
	return &systemTools{cfg: cfg}
}

func (s *systemTools) Inspect(ctx context.Context, path string) (*probe.Result, error) {
	return probe.Inspect(ctx, path)
}

func (s *systemTools) ExtractChapters(ctx context.Context, path string) (string, error) {
	res := mkvtool.Execute(ctx, mkvtool.BuildChapterExtract(path))
	if res.Err != nil {
		return "", res.Err
	}
	return res.Stdout, nil
}

func (s *systemTools) Remux(ctx context.Context, input, output, chapterFile string, plan planner.SyncPlan) error {
	res := mkvtool.Execute(ctx, mkvtool.BuildRemux(input, output, chapterFile, plan))
	return res.Err
}

func (s *systemTools) Resample(ctx context.Context, plan *planner.ConversionPlan, input, output string) error {
	res := ffmpeg.Execute(ctx, ffmpeg.Build(s.cfg, plan, input, output), s.cfg.Verbose)
	return res.Err
}
