package main

import (
	"fmt"
	"os"
)

// Set via -ldflags by the stave Build target.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	cmd := newRootCmd()
	cmd.Version = fmt.Sprintf("%s (commit %s, built %s)", version, commit, date)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
