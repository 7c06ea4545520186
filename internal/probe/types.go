package probe

// Kind classifies a container track.
type Kind string

const (
	KindVideo    Kind = "video"
	KindAudio    Kind = "audio"
	KindSubtitle Kind = "subtitle"
)

// Track holds the parsed properties of a single container track. ID is the
// stream index ffprobe reports; for Matroska this is the same id space
// mkvmerge uses for --sync, so the sync plan and the remux command share one
// authoritative source.
type Track struct {
	ID         int
	Kind       Kind
	Codec      string
	Language   string
	SampleRate int // audio only; 0 when ffprobe reports none
	IsDefault  bool
}

// FormatInfo holds container-level metadata from ffprobe's format section.
type FormatInfo struct {
	Filename   string
	FormatName string
	Duration   float64
	Size       int64
}

// Result is the fully parsed output of a single ffprobe call: the track
// listing plus chapter presence, which decides whether the chapter
// extraction and rescale stages run at all.
type Result struct {
	Format      FormatInfo
	Tracks      []Track
	HasChapters bool
}

// AudioTracks returns the audio tracks in container order.
func (r *Result) AudioTracks() []Track {
	var out []Track
	for _, t := range r.Tracks {
		if t.Kind == KindAudio {
			out = append(out, t)
		}
	}
	return out
}

// HasVideo reports whether the container carries at least one video track.
func (r *Result) HasVideo() bool {
	for _, t := range r.Tracks {
		if t.Kind == KindVideo {
			return true
		}
	}
	return false
}

// AudioSampleRate returns the sample rate of the first audio track carrying
// one, and whether any later audio track disagrees with it. First track wins
// on mismatch; the caller surfaces the disagreement as a warning.
func (r *Result) AudioSampleRate() (rate int, mismatch bool) {
	for _, t := range r.AudioTracks() {
		if t.SampleRate <= 0 {
			continue
		}
		if rate == 0 {
			rate = t.SampleRate
		} else if t.SampleRate != rate {
			mismatch = true
		}
	}
	return rate, mismatch
}
