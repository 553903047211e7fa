// Package cli defines the Cobra command tree for the uvm CLI. Each file in
// this package registers one top-level command (init, get, install, etc.)
// with the root command. Command implementations delegate to internal packages
// for business logic and only handle argument checking and output formatting.
package cli
