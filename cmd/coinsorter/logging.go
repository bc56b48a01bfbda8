// Logger wiring for the coinsorter CLI.
package main

import (
	"go.uber.org/zap"

	"github.com/Oichkatzelesfrettschen/CoinSorter/registry"
)

// buildLogger returns a development logger when verbose is set and a
// no-op logger otherwise, so normal runs stay quiet on stderr.
func buildLogger(verbose bool) *zap.Logger {
	if !verbose {
		return zap.NewNop()
	}
	logger, err := zap.NewDevelopment()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

// installLogger hands the logger to every library package that accepts
// one.
func installLogger(l *zap.Logger) {
	registry.SetLogger(l)
}
