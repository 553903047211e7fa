package installer

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/unnarize/uvm/internal/fetcher"
	"github.com/unnarize/uvm/internal/manifest"
)

// Status is re-exported so callers need not import fetcher for results.
type Status = fetcher.Status

// Installer runs dependency commands against one manifest.
type Installer struct {
	ManifestPath string
	Fetcher      Fetcher
	// Version is the running uvm version, checked against the manifest's
	// uvm constraint before installing.
	Version string
	Out     io.Writer
	Logger  *log.Logger
}

func (in *Installer) out() io.Writer {
	if in.Out == nil {
		return io.Discard
	}
	return in.Out
}

func (in *Installer) logger() *log.Logger {
	if in.Logger == nil {
		return log.Default()
	}
	return in.Logger
}

func (in *Installer) load() (*manifest.Document, error) {
	doc, err := manifest.Load(in.ManifestPath)
	if err != nil {
		return nil, err
	}
	if err := doc.CheckManager(in.Version); err != nil {
		return nil, err
	}
	return doc, nil
}

// InstallAll fetches every dependency listed in the manifest, in order. A
// failed entry is recorded and the remaining entries are still processed.
// The manifest is never written.
func (in *Installer) InstallAll(ctx context.Context) (*InstallResult, error) {
	doc, err := in.load()
	if err != nil {
		return nil, err
	}

	result := &InstallResult{}
	fmt.Fprintln(in.out(), "Installing dependencies...")

	for name := range doc.All() {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		result.Attempted++

		status, err := in.Fetcher.Fetch(ctx, name)
		if err != nil {
			in.logger().Debug("fetch failed", "name", name, "err", err)
			fmt.Fprintf(in.out(), "  ✗ %s: %v\n", name, err)
			result.Failed = append(result.Failed, Failure{Name: name, Err: err})
			continue
		}

		switch status {
		case fetcher.StatusAlreadyLocal:
			fmt.Fprintf(in.out(), "  ✓ %s (already local)\n", name)
			result.AlreadyLocal = append(result.AlreadyLocal, name)
		default:
			fmt.Fprintf(in.out(), "  ✓ %s\n", name)
			result.Installed = append(result.Installed, name)
		}
	}

	return result, nil
}

// Get fetches name and records it in the manifest. If the manifest already
// lists it, the fetch still runs but the manifest is left alone. A failed
// fetch leaves the manifest untouched.
func (in *Installer) Get(ctx context.Context, name string) (*GetResult, error) {
	if err := fetcher.ValidateName(name); err != nil {
		return nil, err
	}

	// Loading first means a missing manifest aborts before any network work.
	doc, err := in.load()
	if err != nil {
		return nil, err
	}

	status, err := in.Fetcher.Fetch(ctx, name)
	if err != nil {
		return nil, err
	}
	result := &GetResult{Status: status}
	if status == fetcher.StatusAlreadyLocal {
		fmt.Fprintf(in.out(), "Repository '%s' already exists locally. Skipping download.\n", name)
	} else {
		fmt.Fprintf(in.out(), "Installed '%s' into %s\n", name, in.Fetcher.Dir(name))
	}

	if err := doc.Add(name); err != nil {
		if errors.Is(err, manifest.ErrAlreadyPresent) {
			result.AlreadyDependency = true
			fmt.Fprintf(in.out(), "Repository '%s' is already a dependency.\n", name)
			return result, nil
		}
		return nil, err
	}

	if err := doc.Save(in.ManifestPath); err != nil {
		return nil, fmt.Errorf("updating %s: %w", in.ManifestPath, err)
	}
	fmt.Fprintf(in.out(), "Added '%s' to dependencies.\n", name)
	return result, nil
}

// Uninstall removes the module directory for name, if any, and drops name
// from the manifest. A name the manifest does not list is reported but is
// not an error. A listed name that is not a valid directory name never had a
// module directory; it is only dropped from the manifest.
func (in *Installer) Uninstall(_ context.Context, name string) (*UninstallResult, error) {
	nameErr := fetcher.ValidateName(name)

	// The manifest is read before the directory goes so that a missing or
	// malformed manifest leaves the modules tree alone.
	doc, err := manifest.Load(in.ManifestPath)
	if err != nil {
		if nameErr != nil {
			return nil, nameErr
		}
		return nil, err
	}

	result := &UninstallResult{}
	if nameErr != nil {
		if !doc.Contains(name) {
			return nil, nameErr
		}
		in.logger().Debug("skipping module directory for invalid name", "name", name, "err", nameErr)
	} else {
		removed, err := in.Fetcher.Remove(name)
		if err != nil {
			return nil, err
		}
		result.DirRemoved = removed
		if removed {
			fmt.Fprintf(in.out(), "Removed directory '%s'.\n", in.Fetcher.Dir(name))
		} else {
			fmt.Fprintf(in.out(), "Directory for '%s' not found locally.\n", name)
		}
	}

	if err := doc.Remove(name); err != nil {
		if errors.Is(err, manifest.ErrNotListed) {
			result.NotListed = true
			fmt.Fprintf(in.out(), "'%s' is not listed as a dependency. Nothing to do.\n", name)
			return result, nil
		}
		return nil, err
	}

	if err := doc.Save(in.ManifestPath); err != nil {
		return nil, fmt.Errorf("updating %s: %w", in.ManifestPath, err)
	}
	fmt.Fprintf(in.out(), "Removed '%s' from dependencies.\n", name)
	return result, nil
}

// List returns the manifest's dependencies with their local presence.
func (in *Installer) List(_ context.Context) ([]Entry, error) {
	doc, err := manifest.Load(in.ManifestPath)
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, doc.Len())
	for name := range doc.All() {
		entries = append(entries, Entry{
			Name:  name,
			Local: in.Fetcher.IsLocal(name),
			Dir:   in.Fetcher.Dir(name),
		})
	}
	return entries, nil
}
