package fetcher

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/unnarize/uvm/internal/platform"
)

var (
	// ErrFetchFailed is returned when the repository could not be retrieved.
	ErrFetchFailed = errors.New("fetch failed")

	// ErrFilesystem is returned when a module directory cannot be created or removed.
	ErrFilesystem = errors.New("filesystem error")
)

// Status is the outcome of a successful Fetch.
type Status int

const (
	// StatusInstalled means the dependency was retrieved by this call.
	StatusInstalled Status = iota + 1
	// StatusAlreadyLocal means the module directory already existed.
	StatusAlreadyLocal
)

func (s Status) String() string {
	switch s {
	case StatusInstalled:
		return "installed"
	case StatusAlreadyLocal:
		return "already local"
	default:
		return "unknown"
	}
}

// removeTree is platform.RemoveTree; tests replace it to simulate failures.
var removeTree = platform.RemoveTree

// strippedNames are removed from the root of every fetched tree.
var strippedNames = []string{".git", ".vscode", ".idea"}

// Fetcher places dependencies under ModulesRoot.
type Fetcher struct {
	ModulesRoot string
	BaseURL     string
	Retriever   Retriever
	// Retries is the number of extra attempts after a failed retrieval.
	Retries int
	Logger  *log.Logger
}

// New returns a Fetcher using git to retrieve from baseURL.
func New(modulesRoot, baseURL string, logger *log.Logger) *Fetcher {
	return &Fetcher{
		ModulesRoot: modulesRoot,
		BaseURL:     baseURL,
		Retriever:   GitRetriever{},
		Logger:      logger,
	}
}

func (f *Fetcher) logger() *log.Logger {
	if f.Logger == nil {
		return log.Default()
	}
	return f.Logger
}

// RepoURL returns the remote URL for a dependency name.
func (f *Fetcher) RepoURL(name string) string {
	return strings.TrimSuffix(f.BaseURL, "/") + "/" + name + ".git"
}

// Dir returns the module directory for a dependency name.
func (f *Fetcher) Dir(name string) string {
	return filepath.Join(f.ModulesRoot, name)
}

// IsLocal reports whether the module directory for name exists.
func (f *Fetcher) IsLocal(name string) bool {
	return platform.IsDir(f.Dir(name))
}

// Fetch ensures the dependency is present under the modules root. An
// existing directory short-circuits with StatusAlreadyLocal and no network
// access. A failed retrieval leaves no directory behind.
func (f *Fetcher) Fetch(ctx context.Context, name string) (Status, error) {
	if err := ValidateName(name); err != nil {
		return 0, err
	}

	dest := f.Dir(name)
	if platform.IsDir(dest) {
		f.logger().Debug("module already present", "name", name, "dir", dest)
		return StatusAlreadyLocal, nil
	}
	if platform.Exists(dest) {
		return 0, fmt.Errorf("%w: %s exists and is not a directory", ErrFilesystem, dest)
	}

	if err := os.MkdirAll(f.ModulesRoot, platform.DirPerm); err != nil {
		return 0, fmt.Errorf("%w: creating modules directory %s: %v", ErrFilesystem, f.ModulesRoot, err)
	}

	url := f.RepoURL(name)
	var lastErr error
	for attempt := 0; attempt <= f.Retries; attempt++ {
		if err := ctx.Err(); err != nil {
			lastErr = err
			break
		}
		f.logger().Debug("retrieving", "name", name, "url", url, "attempt", attempt+1)

		lastErr = f.Retriever.Retrieve(ctx, url, dest)
		if lastErr == nil {
			break
		}

		f.logger().Debug("retrieval failed", "name", name, "err", lastErr)
		f.discard(dest)
	}
	if lastErr != nil {
		return 0, fmt.Errorf("%w: %s from %s: %w", ErrFetchFailed, name, url, lastErr)
	}

	if err := sanitize(dest); err != nil {
		// A half-cleaned tree would pass for an installed module next time.
		f.discard(dest)
		return 0, fmt.Errorf("%w: cleaning %s: %v", ErrFilesystem, dest, err)
	}
	return StatusInstalled, nil
}

// discard removes a module directory that must not be left behind.
func (f *Fetcher) discard(dest string) {
	if err := removeTree(dest); err != nil {
		f.logger().Warn("could not remove partial module", "dir", dest, "err", err)
	}
}

// Remove deletes the module directory for name. It reports whether anything
// was removed; a missing directory is not an error.
func (f *Fetcher) Remove(name string) (bool, error) {
	if err := ValidateName(name); err != nil {
		return false, err
	}

	dir := f.Dir(name)
	if !platform.Exists(dir) {
		return false, nil
	}
	if err := platform.RemoveTree(dir); err != nil {
		return false, fmt.Errorf("%w: removing %s: %v", ErrFilesystem, dir, err)
	}
	return true, nil
}

// sanitize strips VCS and editor directories from the root of a fetched tree.
func sanitize(dir string) error {
	for _, name := range strippedNames {
		if err := removeTree(filepath.Join(dir, name)); err != nil {
			return err
		}
	}
	return nil
}
