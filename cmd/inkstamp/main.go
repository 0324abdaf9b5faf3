package main

import (
	"fmt"
	"os"

	"github.com/inkstamp/inkstamp/internal/cli"
)

// Version information - set by ldflags during build
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	cli.SetVersion(version, commit, date)
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "inkstamp: %v\n", err)
		os.Exit(1)
	}
}
