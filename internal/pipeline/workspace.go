package pipeline

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// Workspace is the scoped temporary directory owned by one conversion. It
// holds the rescaled chapter document and the remuxed intermediate
// container, and must never outlive its conversion.
type Workspace struct {
	Dir string
}

// NewWorkspace creates a uniquely named directory under the system temp dir.
func NewWorkspace() (*Workspace, error) {
	dir := filepath.Join(os.TempDir(), "palfix-"+uuid.NewString())
	if err := os.Mkdir(dir, 0o700); err != nil {
		return nil, fmt.Errorf("create workspace: %w", err)
	}
	return &Workspace{Dir: dir}, nil
}

// Path returns the path of a named file inside the workspace.
func (w *Workspace) Path(name string) string {
	return filepath.Join(w.Dir, name)
}

// Remove deletes the workspace and everything in it. Safe to call more than
// once; registered with defer so it runs on every exit path.
func (w *Workspace) Remove() {
	if w.Dir != "" {
		os.RemoveAll(w.Dir)
		w.Dir = ""
	}
}
