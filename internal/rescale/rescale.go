// Package rescale rewrites embedded timestamps in line-oriented timed-text
// documents (OGM/simple chapters, chapter XML, text subtitles) by a rational
// factor, preserving every non-timestamp byte.
package rescale

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/backmassage/palfix/internal/timecode"
)

// Document streams src to dst line by line, rescaling every substring that
// matches the timecode pattern and copying all other bytes verbatim,
// including line terminators (LF or CRLF) and a missing final newline.
//
// A single malformed timestamp aborts the whole document: partial output may
// have been written to dst, so callers writing to a file should discard it
// on error (see [File]).
func Document(src io.Reader, dst io.Writer, f timecode.Factor, mode timecode.Rounding) error {
	r := bufio.NewReader(src)
	w := bufio.NewWriter(dst)

	for {
		line, readErr := r.ReadString('\n')
		if line != "" {
			out, err := rescaleLine(line, f, mode)
			if err != nil {
				return err
			}
			if _, err := w.WriteString(out); err != nil {
				return fmt.Errorf("write rescaled document: %w", err)
			}
		}
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			return fmt.Errorf("read document: %w", readErr)
		}
	}
	return w.Flush()
}

// rescaleLine substitutes each timestamp match in place. The pattern cannot
// match across the trailing \r or \n, so terminators survive untouched.
func rescaleLine(line string, f timecode.Factor, mode timecode.Rounding) (string, error) {
	var firstErr error
	out := timecode.Pattern.ReplaceAllStringFunc(line, func(match string) string {
		rescaled, err := timecode.RescaleText(match, f, mode)
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			return match
		}
		return rescaled
	})
	if firstErr != nil {
		return "", firstErr
	}
	return out, nil
}

// File rescales srcPath into dstPath. On any failure the destination file is
// removed so no partially rescaled document is left behind.
func File(srcPath, dstPath string, f timecode.Factor, mode timecode.Rounding) error {
	src, err := os.Open(srcPath)
	if err != nil {
		return fmt.Errorf("open %s: %w", srcPath, err)
	}
	defer src.Close()

	dst, err := os.Create(dstPath)
	if err != nil {
		return fmt.Errorf("create %s: %w", dstPath, err)
	}

	if err := Document(src, dst, f, mode); err != nil {
		dst.Close()
		os.Remove(dstPath)
		return err
	}
	if err := dst.Close(); err != nil {
		os.Remove(dstPath)
		return fmt.Errorf("close %s: %w", dstPath, err)
	}
	return nil
}

// String rescales an in-memory document, for callers that captured the
// chapter text from an extractor's stdout.
func String(doc string, f timecode.Factor, mode timecode.Rounding) (string, error) {
	var buf strings.Builder
	if err := Document(strings.NewReader(doc), &buf, f, mode); err != nil {
		return "", err
	}
	return buf.String(), nil
}
