// Package main provides the coinsorter CLI.
//
// coinsorter makes change: it solves an amount against a denomination
// table with the greedy, minimal-count, or weighted solvers, audits
// tables for canonicality, and manages custom tables in a local store.
package main

import (
	"errors"
	"fmt"
	"os"
)

// Exit codes. Audit reports a non-canonical verdict as its own code so
// scripts can branch on it without parsing output.
const (
	exitOK           = 0
	exitError        = 1
	exitNonCanonical = 2
)

func main() {
	os.Exit(run())
}

func run() int {
	if err := rootCmd.Execute(); err != nil {
		if errors.Is(err, errNonCanonical) {
			// The audit command already printed its verdict.
			return exitNonCanonical
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return exitError
	}
	return exitOK
}
