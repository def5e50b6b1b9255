// SPDX-License-Identifier: MIT

// Command linalg is a console calculator for small dense matrices.
//
// Without a subcommand it starts the interactive menu shell. The one-shot
// subcommands take a matrix shape flag and the elements as arguments:
//
//	linalg det --shape 2x2 1 2 3 4
//	linalg solve --shape 2x2 --rhs "3 1" 1 1 1 -1
package main

import (
	"context"
	"os"

	"github.com/charmbracelet/fang"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
)

func main() {
	root := newRootCommand(os.Stdin)
	if err := fang.Execute(
		context.Background(),
		root,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		os.Exit(1)
	}
}

func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}

	return Version + " (commit: " + Commit + ")"
}
