package scaffold

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/unnarize/uvm/internal/platform"
)

// GitIgnoreFile is the git exclusion file init keeps the modules root out of.
const GitIgnoreFile = ".gitignore"

// ignoreLine returns the exclusion line for a modules root relative to the
// project directory, anchored so nested directories of the same name still
// get tracked.
func ignoreLine(modulesDir string) string {
	return "/" + strings.Trim(filepath.ToSlash(modulesDir), "/") + "/"
}

// IgnoreModules appends an exclusion for modulesDir to dir/.gitignore,
// creating the file if needed. It reports whether a line was added; an
// existing entry, or a modules root outside dir, leaves the file alone.
func IgnoreModules(dir, modulesDir string) (bool, error) {
	rel := modulesDir
	if filepath.IsAbs(modulesDir) {
		var err error
		if rel, err = filepath.Rel(dir, modulesDir); err != nil {
			return false, nil
		}
	}
	rel = filepath.Clean(rel)
	if rel == "." || strings.HasPrefix(rel, "..") {
		return false, nil
	}

	path := filepath.Join(dir, GitIgnoreFile)
	line := ignoreLine(rel)

	content, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return false, fmt.Errorf("reading %s: %w", GitIgnoreFile, err)
	}

	bare := strings.Trim(line, "/")
	for _, l := range strings.Split(string(content), "\n") {
		switch strings.TrimSpace(l) {
		case line, bare, bare + "/", "/" + bare:
			return false, nil
		}
	}

	// Ensure there's a newline before our addition.
	suffix := line + "\n"
	if len(content) > 0 && !strings.HasSuffix(string(content), "\n") {
		suffix = "\n" + suffix
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, platform.FilePerm)
	if err != nil {
		return false, fmt.Errorf("opening %s for append: %w", GitIgnoreFile, err)
	}
	defer f.Close()

	if _, err := f.WriteString(suffix); err != nil {
		return false, fmt.Errorf("writing to %s: %w", GitIgnoreFile, err)
	}
	return true, nil
}
