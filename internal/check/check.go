// Package check provides system diagnostics (--check mode) and pre-pipeline
// dependency validation for mkvmerge, mkvextract, ffmpeg, and ffprobe.
package check

import (
	"errors"
	"os/exec"
	"strings"
)

// Sentinel errors returned by CheckDeps when a required tool is missing.
var (
	ErrMkvmergeNotFound   = errors.New("mkvmerge not found on PATH (install mkvtoolnix)")
	ErrMkvextractNotFound = errors.New("mkvextract not found on PATH (install mkvtoolnix)")
	ErrFfmpegNotFound     = errors.New("ffmpeg not found on PATH")
	ErrFfprobeNotFound    = errors.New("ffprobe not found on PATH")
)

// Logger is the minimal logging interface needed by RunCheck. Defined here
// (rather than importing the logging package) so that check remains
// dependency-light and testable with a mock logger.
type Logger interface {
	Info(string, ...interface{})
	Success(string, ...interface{})
	Error(string, ...interface{})
}

// requiredTools maps each binary to the error CheckDeps reports when it is
// absent, in the order the pipeline invokes them.
var requiredTools = []struct {
	name string
	err  error
}{
	{"ffprobe", ErrFfprobeNotFound},
	{"mkvextract", ErrMkvextractNotFound},
	{"mkvmerge", ErrMkvmergeNotFound},
	{"ffmpeg", ErrFfmpegNotFound},
}

// CheckDeps fails fast with the first missing required binary.
func CheckDeps() error {
	for _, tool := range requiredTools {
		if _, err := exec.LookPath(tool.name); err != nil {
			return tool.err
		}
	}
	return nil
}

// RunCheck runs the interactive --check flow: prints availability and
// version of every required tool. Informational only; reports overall
// success so main can set the exit code.
func RunCheck(log Logger) bool {
	log.Info("=== System Check ===")

	ok := true
	for _, tool := range requiredTools {
		path, err := exec.LookPath(tool.name)
		if err != nil {
			log.Error("%-10s missing (%v)", tool.name, tool.err)
			ok = false
			continue
		}
		log.Success("%-10s %s%s", tool.name, path, versionSuffix(tool.name))
	}
	return ok
}

// versionSuffix returns " (version line)" for tools that answer --version.
func versionSuffix(name string) string {
	out, err := exec.Command(name, "-version").Output()
	if err != nil {
		out, err = exec.Command(name, "--version").Output()
	}
	if err != nil {
		return ""
	}
	line, _, _ := strings.Cut(strings.TrimSpace(string(out)), "\n")
	if line == "" {
		return ""
	}
	return " (" + line + ")"
}
