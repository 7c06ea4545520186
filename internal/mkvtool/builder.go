// Package mkvtool builds and runs the MKVToolNix invocations used by the
// pipeline: mkvextract for chapter text and mkvmerge for the sync-corrected
// remux.
package mkvtool

import (
	"fmt"

	"github.com/backmassage/palfix/internal/planner"
)

// BuildChapterExtract constructs the mkvextract argument slice that prints
// the file's chapters in simple/OGM form (CHAPTERnn=HH:MM:SS.mmm lines) on
// stdout. That is the one chapter format whose timestamps match the codec
// pattern exactly and which mkvmerge accepts back via --chapters.
func BuildChapterExtract(input string) []string {
	return []string{"mkvextract", input, "chapters", "-s"}
}

// BuildRemux constructs the mkvmerge argument slice for the intermediate
// container: video and subtitle clocks stretched per the sync plan, audio
// copied untouched, and the original chapters replaced by the rescaled
// document when one exists.
//
// Per-track options (--sync, --no-chapters) must precede the input file
// they apply to; mkvmerge ignores them otherwise.
func BuildRemux(input, output, chapterFile string, plan planner.SyncPlan) []string {
	args := make([]string, 0, 8+2*len(plan))
	args = append(args, "mkvmerge", "-o", output)

	if chapterFile != "" {
		args = append(args, "--chapters", chapterFile, "--no-chapters")
	}

	for _, d := range plan {
		args = append(args, "--sync", fmt.Sprintf("%d:0,%s", d.TrackID, d.Factor))
	}

	return append(args, input)
}
