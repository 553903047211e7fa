// Package fetcher materializes dependencies on disk. Each dependency is a
// repository named <base>/<name>.git that is shallow-cloned into
// <modules root>/<name> and then stripped of VCS and editor metadata. An
// existing directory is taken as proof the dependency is already present.
package fetcher
