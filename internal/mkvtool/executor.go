package mkvtool

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// ExecResult holds the outcome of a single tool invocation.
type ExecResult struct {
	Stdout string
	Stderr string
	Err    error
}

// Execute runs the given argument slice (args[0] is the binary). Stdout and
// stderr are captured; mkvmerge and mkvextract report their diagnostics on
// both, so failures carry the tail of the combined output.
func Execute(ctx context.Context, args []string) ExecResult {
	cmd := exec.CommandContext(ctx, args[0], args[1:]...)

	var stdoutBuf, stderrBuf bytes.Buffer
	cmd.Stdout = &stdoutBuf
	cmd.Stderr = &stderrBuf

	err := cmd.Run()
	if err != nil {
		err = fmt.Errorf("%s: %w%s", args[0], err, diagnosticTail(&stdoutBuf, &stderrBuf))
	}
	return ExecResult{
		Stdout: stdoutBuf.String(),
		Stderr: stderrBuf.String(),
		Err:    err,
	}
}

// diagnosticTail returns the last few output lines for error context.
// mkvmerge writes errors to stdout, so both buffers are considered.
func diagnosticTail(stdout, stderr *bytes.Buffer) string {
	text := strings.TrimSpace(stderr.String())
	if text == "" {
		text = strings.TrimSpace(stdout.String())
	}
	if text == "" {
		return ""
	}
	lines := strings.Split(text, "\n")
	if len(lines) > 5 {
		lines = lines[len(lines)-5:]
	}
	return ": " + strings.Join(lines, " | ")
}
