// Package installer coordinates the manifest and the fetcher for the get,
// install, uninstall and list commands. The manifest is the source of truth;
// module directories are a cache that install and get bring back in line.
package installer
