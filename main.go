package main

import (
	"os"

	"github.com/unnarize/uvm/internal/cli"
)

// version, commit, and date are set via ldflags at build time.
var (
	version = "0.1.0"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	if err := cli.Execute(version, commit, date); err != nil {
		os.Exit(1)
	}
}
