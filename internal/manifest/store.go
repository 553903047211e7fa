package manifest

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/unnarize/uvm/internal/platform"
)

// tmpSuffix is appended to the manifest path while a new version is written.
const tmpSuffix = ".tmp"

// Load reads and parses the manifest at path. It returns an error wrapping
// ErrNotFound if the file does not exist and ErrMalformed if it cannot be
// parsed.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("reading manifest %s: %w", path, err)
	}

	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing manifest %s: %w", path, err)
	}
	return doc, nil
}

// Save marshals the document and persists it to path.
func (d *Document) Save(path string) error {
	data, err := d.Marshal()
	if err != nil {
		return err
	}
	return Persist(path, data)
}

// Persist writes data to path through a temporary sibling file that is synced
// and renamed into place, so a crash leaves either the old or the new file.
// The existing file's permissions are kept, and a symlinked manifest stays a
// symlink: its target is what gets replaced.
func Persist(path string, data []byte) error {
	if resolved, err := filepath.EvalSymlinks(path); err == nil {
		path = resolved
	}
	mode := platform.FileModeOr(path, platform.FilePerm)
	tmpPath := path + tmpSuffix

	f, err := os.OpenFile(tmpPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, mode)
	if err != nil {
		return fmt.Errorf("creating temporary manifest: %w", err)
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("writing temporary manifest: %w", err)
	}
	if err := f.Sync(); err != nil {
		f.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("syncing temporary manifest: %w", err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("closing temporary manifest: %w", err)
	}

	_ = platform.Chmod(tmpPath, mode)

	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("replacing manifest %s: %w", path, err)
	}
	return nil
}
