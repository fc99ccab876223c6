// Package main provides the catindex CLI, which loads a category forest from
// a fixture file and queries or scripts it.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/mesh-intelligence/catindex/internal/fixture"
	"github.com/mesh-intelligence/catindex/internal/paths"
	"github.com/mesh-intelligence/catindex/pkg/types"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

func main() {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(exitCode(err))
	}
	os.Exit(exitSuccess)
}

// userErrors are failures caused by the command line or the fixture rather
// than the environment.
var userErrors = []error{
	types.ErrNotFound,
	types.ErrDuplicateKey,
	types.ErrDuplicateEdge,
	types.ErrCycle,
	types.ErrInvalidID,
	types.ErrInvalidFixture,
	fixture.ErrExpectationFailed,
	paths.ErrNoFixture,
	errUsage,
}

// exitCode maps an error returned by a command to the process exit code.
func exitCode(err error) int {
	if err == nil {
		return exitSuccess
	}
	for _, target := range userErrors {
		if errors.Is(err, target) {
			return exitUserError
		}
	}
	return exitSysError
}
