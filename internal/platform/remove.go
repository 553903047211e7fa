package platform

import (
	"io/fs"
	"os"
	"path/filepath"
)

// RemoveTree removes path and everything below it. A missing path is not an
// error. If the first attempt fails, write permission is restored on every
// entry and the removal is retried once.
func RemoveTree(path string) error {
	err := os.RemoveAll(path)
	if err == nil {
		return nil
	}

	_ = filepath.WalkDir(path, func(p string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return nil
		}
		mode := os.FileMode(0644)
		if d.IsDir() {
			mode = 0755
		}
		_ = os.Chmod(p, mode)
		return nil
	})

	return os.RemoveAll(path)
}

// Exists reports whether path exists, following symlinks.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// IsDir reports whether path exists and is a directory.
func IsDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
