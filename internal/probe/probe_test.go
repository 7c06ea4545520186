package probe

import (
	"testing"
)

// Realistic ffprobe JSON for a PAL-sped Matroska file with:
//   - 1 H.264 video stream
//   - 2 AC-3 audio streams (German default, English) at 48 kHz
//   - 1 SRT subtitle stream
//   - 1 attachment-like data stream (must be ignored)
//   - chapters present
const samplePAL = `{
  "streams": [
    {
      "index": 0,
      "codec_name": "h264",
      "codec_type": "video",
      "disposition": { "default": 1 },
      "tags": {}
    },
    {
      "index": 1,
      "codec_name": "ac3",
      "codec_type": "audio",
      "sample_rate": "48000",
      "disposition": { "default": 1 },
      "tags": { "language": "ger" }
    },
    {
      "index": 2,
      "codec_name": "ac3",
      "codec_type": "audio",
      "sample_rate": "48000",
      "disposition": { "default": 0 },
      "tags": { "language": "eng" }
    },
    {
      "index": 3,
      "codec_name": "subrip",
      "codec_type": "subtitle",
      "disposition": { "default": 0 },
      "tags": { "language": "ger" }
    },
    {
      "index": 4,
      "codec_name": "ttf",
      "codec_type": "attachment",
      "disposition": {},
      "tags": { "filename": "font.ttf" }
    }
  ],
  "chapters": [
    { "id": 1, "start_time": "0.000000", "end_time": "300.000000", "tags": { "title": "Kapitel 1" } },
    { "id": 2, "start_time": "300.000000", "end_time": "900.000000", "tags": { "title": "Kapitel 2" } }
  ],
  "format": {
    "filename": "/media/test/Film.mkv",
    "format_name": "matroska,webm",
    "duration": "5400.000000",
    "size": "4200000000"
  }
}`

// No chapters, single audio stream without a sample_rate field.
const sampleNoChapters = `{
  "streams": [
    { "index": 0, "codec_name": "h264", "codec_type": "video", "disposition": {}, "tags": {} },
    { "index": 1, "codec_name": "dts", "codec_type": "audio", "disposition": {}, "tags": {} }
  ],
  "chapters": [],
  "format": { "filename": "x.mkv", "format_name": "matroska,webm" }
}`

// Two audio streams disagreeing on sample rate.
const sampleMixedRates = `{
  "streams": [
    { "index": 0, "codec_name": "h264", "codec_type": "video", "disposition": {}, "tags": {} },
    { "index": 1, "codec_name": "ac3", "codec_type": "audio", "sample_rate": "48000", "disposition": {}, "tags": {} },
    { "index": 2, "codec_name": "mp2", "codec_type": "audio", "sample_rate": "44100", "disposition": {}, "tags": {} }
  ],
  "chapters": [],
  "format": { "filename": "y.mkv", "format_name": "matroska,webm" }
}`

func TestParseJSON_Tracks(t *testing.T) {
	res, err := ParseJSON([]byte(samplePAL))
	if err != nil {
		t.Fatalf("ParseJSON: %v", err)
	}

	if len(res.Tracks) != 4 {
		t.Fatalf("got %d tracks, want 4 (attachment must be ignored)", len(res.Tracks))
	}

	want := []Track{
		{ID: 0, Kind: KindVideo, Codec: "h264", IsDefault: true},
		{ID: 1, Kind: KindAudio, Codec: "ac3", Language: "ger", SampleRate: 48000, IsDefault: true},
		{ID: 2, Kind: KindAudio, Codec: "ac3", Language: "eng", SampleRate: 48000},
		{ID: 3, Kind: KindSubtitle, Codec: "subrip", Language: "ger"},
	}
	for i, w := range want {
		if res.Tracks[i] != w {
			t.Errorf("track %d: got %+v, want %+v", i, res.Tracks[i], w)
		}
	}
}

func TestParseJSON_Chapters(t *testing.T) {
	res, err := ParseJSON([]byte(samplePAL))
	if err != nil {
		t.Fatalf("ParseJSON: %v", err)
	}
	if !res.HasChapters {
		t.Error("HasChapters: got false, want true")
	}

	res, err = ParseJSON([]byte(sampleNoChapters))
	if err != nil {
		t.Fatalf("ParseJSON: %v", err)
	}
	if res.HasChapters {
		t.Error("HasChapters: got true, want false")
	}
}

func TestParseJSON_Format(t *testing.T) {
	res, err := ParseJSON([]byte(samplePAL))
	if err != nil {
		t.Fatalf("ParseJSON: %v", err)
	}
	if res.Format.Duration != 5400 {
		t.Errorf("duration: got %v, want 5400", res.Format.Duration)
	}
	if res.Format.Size != 4200000000 {
		t.Errorf("size: got %d", res.Format.Size)
	}
}

func TestParseJSON_Invalid(t *testing.T) {
	if _, err := ParseJSON([]byte("not json")); err == nil {
		t.Error("expected error for invalid JSON")
	}
}

func TestAudioSampleRate_FirstWins(t *testing.T) {
	res, _ := ParseJSON([]byte(samplePAL))
	rate, mismatch := res.AudioSampleRate()
	if rate != 48000 || mismatch {
		t.Errorf("got (%d, %v), want (48000, false)", rate, mismatch)
	}
}

func TestAudioSampleRate_Mismatch(t *testing.T) {
	res, _ := ParseJSON([]byte(sampleMixedRates))
	rate, mismatch := res.AudioSampleRate()
	if rate != 48000 || !mismatch {
		t.Errorf("got (%d, %v), want (48000, true): first track wins", rate, mismatch)
	}
}

func TestAudioSampleRate_None(t *testing.T) {
	res, _ := ParseJSON([]byte(sampleNoChapters))
	rate, _ := res.AudioSampleRate()
	if rate != 0 {
		t.Errorf("got %d, want 0 when ffprobe reports no rate", rate)
	}
}

func TestHasVideo(t *testing.T) {
	res, _ := ParseJSON([]byte(samplePAL))
	if !res.HasVideo() {
		t.Error("HasVideo: got false, want true")
	}
}
