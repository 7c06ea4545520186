// Package planner turns a probed track listing into the per-file conversion
// decisions: which tracks get a container-level sync directive, which
// streams the final output keeps, and what rate the audio is resampled to.
package planner

import (
	"github.com/backmassage/palfix/internal/probe"
	"github.com/backmassage/palfix/internal/timecode"
)

// BuildSyncPlan emits one directive per non-audio track, all carrying the
// same factor. Audio is deliberately excluded: its timing is corrected by
// actual resampling in the transcode stage, because a metadata-only clock
// stretch would fix duration but leave the pitch wrong.
func BuildSyncPlan(tracks []probe.Track, f timecode.Factor) SyncPlan {
	var plan SyncPlan
	for _, t := range tracks {
		if t.Kind == probe.KindAudio {
			continue
		}
		plan = append(plan, SyncDirective{TrackID: t.ID, Factor: f})
	}
	return plan
}

// BuildSelection resolves the configured language filter against the actual
// tracks, independently for audio and subtitles. The filter only takes
// effect for a kind when at least one track of that kind matches it;
// otherwise all tracks of the kind are kept. Failing open avoids silently
// producing an output with no audio because the filter matched nothing.
func BuildSelection(tracks []probe.Track, language string) Selection {
	if language == "" {
		return Selection{}
	}
	var sel Selection
	if anyMatch(tracks, probe.KindAudio, language) {
		sel.AudioLanguage = language
	}
	if anyMatch(tracks, probe.KindSubtitle, language) {
		sel.SubtitleLanguage = language
	}
	return sel
}

func anyMatch(tracks []probe.Track, kind probe.Kind, language string) bool {
	for _, t := range tracks {
		if t.Kind == kind && t.Language == language {
			return true
		}
	}
	return false
}

// TargetRate computes the corrected audio playback rate:
// source × Den/Num, rounded half-up in integer arithmetic. The rate moves
// in the inverse direction from timestamps: slowing playback down means
// reinterpreting the samples at a lower rate.
func TargetRate(sourceRate int, f timecode.Factor) int {
	inv := f.Inverse()
	return int((int64(sourceRate)*inv.Num + inv.Den/2) / inv.Den)
}

// BuildPlan produces the complete conversion plan for one probed file.
// SourceRate is zero when no audio track reports a sample rate; the caller
// decides whether that is fatal (it is, unless the file has no audio at all).
func BuildPlan(res *probe.Result, f timecode.Factor, language string) *ConversionPlan {
	rate, _ := res.AudioSampleRate()
	plan := &ConversionPlan{
		Sync:       BuildSyncPlan(res.Tracks, f),
		Selection:  BuildSelection(res.Tracks, language),
		SourceRate: rate,
	}
	if rate > 0 {
		plan.TargetRate = TargetRate(rate, f)
	}
	return plan
}
