// Command actionmap inspects, checks and tries out action bind files.
package main

import (
	"os"

	"github.com/dshills/actionmap/internal/cli"
)

// Version information (set via ldflags during build).
var version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	root := cli.NewRootCommand()
	root.Version = version
	return cli.Execute(root, os.Stderr)
}
