// Shared helpers for coinsorter CLI commands.
package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/Oichkatzelesfrettschen/CoinSorter/coins"
	"github.com/Oichkatzelesfrettschen/CoinSorter/registry"
)

// parseAmount parses a non-negative integer amount in smallest units.
func parseAmount(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q", s)
	}
	if n < 0 {
		return 0, fmt.Errorf("invalid amount %q: must be non-negative", s)
	}
	return n, nil
}

// openStore resolves the data directory, creates it if needed, and
// opens the custom-table store. The caller must Close it.
func openStore() (*registry.Store, error) {
	dataDir, err := resolveDataDir()
	if err != nil {
		return nil, fmt.Errorf("resolve data dir: %w", err)
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("ensure data dir: %w", err)
	}

	store, err := registry.OpenStore(filepath.Join(dataDir, storeFileName))
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return store, nil
}

// resolveSystem looks a table up by name, builtins first, then the
// custom-table store. An empty name means the configured default.
// The store is only opened when the name is not builtin, so pure
// builtin runs never touch the data directory.
func resolveSystem(name string) (*coins.System, error) {
	if name == "" {
		name = configuredSystem()
	}

	sys, err := registry.Get(name)
	if err == nil {
		return sys, nil
	}
	if !errors.Is(err, registry.ErrUnknownSystem) {
		return nil, err
	}

	store, err := openStore()
	if err != nil {
		return nil, err
	}
	defer store.Close()

	return registry.Resolve(store, name)
}

// resolveObjective parses --opt, falling back to the configured
// default when the flag is empty.
func resolveObjective(flagValue string) (coins.Objective, error) {
	mode := flagValue
	if mode == "" {
		mode = configuredObjective()
	}
	return coins.ParseObjective(mode)
}
