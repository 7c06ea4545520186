// Package ui isolates the one interactive surface of the tool, the
// overwrite confirmation prompt, behind a small interface so the pipeline
// can be tested without a terminal.
package ui

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// Confirmer answers the overwrite question for an existing output path.
// Only an explicit yes proceeds; anything else is a deliberate abort.
type Confirmer interface {
	ConfirmOverwrite(path string) (bool, error)
}

// Terminal prompts on stdout and reads the answer from stdin.
type Terminal struct {
	reader *bufio.Reader
}

// NewTerminal returns a Confirmer backed by os.Stdin.
func NewTerminal() *Terminal {
	return &Terminal{reader: bufio.NewReader(os.Stdin)}
}

// ConfirmOverwrite asks once, defaulting to no.
func (t *Terminal) ConfirmOverwrite(path string) (bool, error) {
	fmt.Printf("Output file %s exists. Overwrite? [y/N] ", path)
	input, err := t.reader.ReadString('\n')
	if err != nil {
		return false, fmt.Errorf("read confirmation: %w", err)
	}
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

// Assume is a Confirmer with a fixed answer, used for --yes and in tests.
type Assume bool

// ConfirmOverwrite returns the fixed answer without prompting.
func (a Assume) ConfirmOverwrite(string) (bool, error) {
	return bool(a), nil
}
