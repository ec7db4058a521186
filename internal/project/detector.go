// Package project finds the directory whose .fitcheckrc applies to a run.
package project

import (
	"os"
	"path/filepath"
)

// ConfigFiles are the config file names recognised in a project root, in
// lookup order.
var ConfigFiles = []string{".fitcheckrc.json", ".fitcheckrc.yaml", ".fitcheckrc.yml"}

// FindRoot climbs from startPath to the nearest directory holding a config
// file or a .git directory. When none is found it returns startPath, made
// absolute.
func FindRoot(startPath string) (string, error) {
	if startPath == "" {
		startPath = "."
	}
	absPath, err := filepath.Abs(startPath)
	if err != nil {
		return "", err
	}

	currentDir := absPath
	for {
		if isRoot(currentDir) {
			return currentDir, nil
		}
		parent := filepath.Dir(currentDir)
		if parent == currentDir {
			break
		}
		currentDir = parent
	}
	return absPath, nil
}

// isRoot reports whether dir holds a config file or is a git checkout.
// A config file wins over .git further up, so nested projects can carry
// their own settings.
func isRoot(dir string) bool {
	for _, name := range ConfigFiles {
		if info, err := os.Stat(filepath.Join(dir, name)); err == nil && !info.IsDir() {
			return true
		}
	}
	_, err := os.Stat(filepath.Join(dir, ".git"))
	return err == nil
}
