// Package main implements the packq command line entry point.
package main

import "github.com/typepack/typepack/internal/cli"

// Version is set at build time via -ldflags.
var version = "dev"

func main() {
	cli.Version = version
	cli.Execute()
}
