package rescale

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/backmassage/palfix/internal/timecode"
)

var palFactor = timecode.Factor{Num: 25025, Den: 24000}

func rescaleString(t *testing.T, doc string) string {
	t.Helper()
	out, err := String(doc, palFactor, timecode.RoundHalfUp)
	require.NoError(t, err)
	return out
}

func TestDocument_SimpleChapters(t *testing.T) {
	in := "CHAPTER01=00:00:00.000\n" +
		"CHAPTER01NAME=Opening\n" +
		"CHAPTER02=00:00:01.000\n" +
		"CHAPTER02NAME=Part 1\n"

	want := "CHAPTER01=00:00:00.000\n" +
		"CHAPTER01NAME=Opening\n" +
		"CHAPTER02=00:00:01.043\n" +
		"CHAPTER02NAME=Part 1\n"

	assert.Equal(t, want, rescaleString(t, in))
}

func TestDocument_ChapterXML(t *testing.T) {
	in := `    <ChapterTimeStart>01:30:00.000</ChapterTimeStart>` + "\n"
	// 5_400_000 * 25025 / 24000 = 5_630_625 ms = 01:33:50.625
	want := `    <ChapterTimeStart>01:33:50.625</ChapterTimeStart>` + "\n"
	assert.Equal(t, want, rescaleString(t, in))
}

// Two timestamps on one line are rescaled independently, in order.
func TestDocument_TwoTimestampsPerLine(t *testing.T) {
	in := "00:00:01.000 --> 00:00:02.000\n"
	want := "00:00:01.043 --> 00:00:02.085\n"
	assert.Equal(t, want, rescaleString(t, in))
}

// A document with zero matches comes back byte-identical, including CRLF
// terminators and a missing final newline.
func TestDocument_NoMatchesUnchanged(t *testing.T) {
	docs := []string{
		"",
		"no timestamps here\n",
		"line one\r\nline two\r\n",
		"unterminated final line",
		"almost 0:00:01.000 but one-digit hours\n",
	}
	for _, doc := range docs {
		assert.Equal(t, doc, rescaleString(t, doc))
	}
}

// Non-timestamp bytes around a match survive verbatim.
func TestDocument_SurroundingBytesPreserved(t *testing.T) {
	in := "\tDialogue: <b>00:00:01.000</b>,text with 42 numbers\r\n"
	out := rescaleString(t, in)
	assert.Equal(t, "\tDialogue: <b>00:00:01.043</b>,text with 42 numbers\r\n", out)
}

func TestDocument_MalformedAborts(t *testing.T) {
	in := "CHAPTER01=00:00:01.000\nCHAPTER02=99:99:99.999\n"
	_, err := String(in, palFactor, timecode.RoundHalfUp)
	assert.ErrorIs(t, err, timecode.ErrMalformed)
}

func TestDocument_TruncateMode(t *testing.T) {
	out, err := String("00:00:01.000\n", palFactor, timecode.RoundTruncate)
	require.NoError(t, err)
	assert.Equal(t, "00:00:01.042\n", out)
}

func TestFile_RemovesOutputOnError(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "chapters.txt")
	dst := filepath.Join(dir, "rescaled.txt")
	require.NoError(t, os.WriteFile(src, []byte("CHAPTER01=99:99:99.999\n"), 0o644))

	err := File(src, dst, palFactor, timecode.RoundHalfUp)
	assert.ErrorIs(t, err, timecode.ErrMalformed)
	_, statErr := os.Stat(dst)
	assert.True(t, os.IsNotExist(statErr), "partial output must be removed")
}

func TestFile_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "chapters.txt")
	dst := filepath.Join(dir, "rescaled.txt")
	in := strings.Repeat("CHAPTER01=00:10:00.000\nCHAPTER01NAME=x\n", 3)
	require.NoError(t, os.WriteFile(src, []byte(in), 0o644))

	require.NoError(t, File(src, dst, palFactor, timecode.RoundHalfUp))
	got, err := os.ReadFile(dst)
	require.NoError(t, err)
	// 600_000 * 25025 / 24000 = 625_625 ms = 00:10:25.625
	assert.Equal(t, strings.Repeat("CHAPTER01=00:10:25.625\nCHAPTER01NAME=x\n", 3), string(got))
}
