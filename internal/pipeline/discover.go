package pipeline

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
)

// OutputDirName is the per-directory subdirectory batch outputs land in.
const OutputDirName = "Fixed"

// Matroska file extensions (lowercase, with leading dot). The correction
// relies on mkvmerge track sync, so only Matroska containers qualify.
var matroskaExtensions = map[string]bool{
	".mkv":  true,
	".mka":  true,
	".mk3d": true,
	".mks":  true,
}

// Discover walks inputDir, collects Matroska files, prunes output
// directories from earlier runs, and returns the paths sorted
// lexicographically for deterministic processing order.
func Discover(inputDir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(inputDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if d.Name() == OutputDirName {
				return filepath.SkipDir
			}
			return nil
		}
		ext := strings.ToLower(filepath.Ext(path))
		if matroskaExtensions[ext] {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

// OutputPathFor returns the batch output path for a source file: the same
// filename inside a Fixed directory alongside the source.
func OutputPathFor(input string) string {
	return filepath.Join(filepath.Dir(input), OutputDirName, filepath.Base(input))
}
