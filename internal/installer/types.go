package installer

import "context"

// Fetcher is the subset of *fetcher.Fetcher the installer drives.
type Fetcher interface {
	Fetch(ctx context.Context, name string) (Status, error)
	Remove(name string) (bool, error)
	IsLocal(name string) bool
	Dir(name string) string
}

// InstallResult summarizes an InstallAll run.
type InstallResult struct {
	Attempted    int
	Installed    []string
	AlreadyLocal []string
	Failed       []Failure
}

// Succeeded counts entries that were installed or already present.
func (r *InstallResult) Succeeded() int {
	return len(r.Installed) + len(r.AlreadyLocal)
}

// Failure records a dependency that could not be fetched.
type Failure struct {
	Name string
	Err  error
}

// GetResult describes the outcome of Get.
type GetResult struct {
	Status Status
	// AlreadyDependency is set when the manifest already listed the name,
	// in which case it was not rewritten.
	AlreadyDependency bool
}

// UninstallResult describes the outcome of Uninstall.
type UninstallResult struct {
	// DirRemoved is set when a module directory was deleted.
	DirRemoved bool
	// NotListed is set when the manifest did not list the name, in which
	// case it was not rewritten.
	NotListed bool
}

// Entry is one dependency as shown by List.
type Entry struct {
	Name  string `json:"name"`
	Local bool   `json:"local"`
	Dir   string `json:"dir"`
}
