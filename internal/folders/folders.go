// Package folders creates generated folder names on disk.
package folders

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/davidrencse/Folder-Generator/internal/model"
)

// OutputDirName is the fixed segment appended to the user's base directory.
const OutputDirName = "output"

// mkdir is swapped in tests to simulate a folder appearing mid-run.
var mkdir = os.Mkdir

// TargetDir returns the directory folders are created in for baseDir.
func TargetDir(baseDir string) string {
	return filepath.Join(baseDir, OutputDirName)
}

// Create ensures targetDir exists and makes one directory per name inside it.
// Existing entries are skipped and never modified. Result.Folders keeps the
// order of names.
func Create(targetDir string, names []string) (model.Result, error) {
	result := model.Result{
		TargetDir: targetDir,
		Requested: len(names),
		Folders:   make([]model.Folder, 0, len(names)),
	}
	if err := os.MkdirAll(targetDir, 0o755); err != nil {
		return result, fmt.Errorf("failed to create target directory: %w", err)
	}
	for _, name := range names {
		path := filepath.Join(targetDir, name)
		if _, err := os.Lstat(path); err == nil {
			result.Folders = append(result.Folders, model.Folder{Name: name})
			continue
		} else if !errors.Is(err, fs.ErrNotExist) {
			return result, fmt.Errorf("failed to stat %s: %w", path, err)
		}
		if err := mkdir(path, 0o755); err != nil {
			if errors.Is(err, fs.ErrExist) {
				result.Folders = append(result.Folders, model.Folder{Name: name})
				continue
			}
			return result, fmt.Errorf("failed to create %s: %w", path, err)
		}
		result.Folders = append(result.Folders, model.Folder{Name: name, Created: true})
	}
	return result, nil
}
