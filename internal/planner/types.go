package planner

import "github.com/backmassage/palfix/internal/timecode"

// SyncDirective instructs the remuxer to stretch one track's internal clock
// by the correction factor without touching its payload. Offset is always
// zero: the correction scales time, it never shifts it.
type SyncDirective struct {
	TrackID int
	Factor  timecode.Factor
}

// SyncPlan is the ordered set of directives for one remux invocation.
// Order only shapes the command line; it does not affect correctness.
type SyncPlan []SyncDirective

// Selection describes which audio and subtitle tracks the final transcode
// keeps, as language tags. An empty tag means all tracks of that kind.
type Selection struct {
	AudioLanguage    string
	SubtitleLanguage string
}

// ConversionPlan bundles every decision for one input file: the sync plan
// for the remux stage and the stream selection plus target rate for the
// audio resample stage.
type ConversionPlan struct {
	Sync       SyncPlan
	Selection  Selection
	SourceRate int
	TargetRate int
}
