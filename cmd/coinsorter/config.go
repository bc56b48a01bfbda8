// Config loading and directory resolution for the coinsorter CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/spf13/viper"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"

	// Config keys.
	cfgKeyDefaultSystem    = "default_system"
	cfgKeyDefaultObjective = "default_objective"
	cfgKeyDataDir          = "data_dir"

	// Defaults when config.yaml is silent.
	defaultSystemName   = "usd"
	defaultObjectiveStr = "count"

	// storeFileName is the SQLite file holding custom tables.
	storeFileName = "systems.db"

	appDirName = "coinsorter"
)

// Environment variable names for directory overrides.
const (
	envConfigDir = "COINSORTER_CONFIG_DIR"
	envDataDir   = "COINSORTER_DATA_DIR"
)

// defaultConfigYAML is written to config.yaml on first run.
const defaultConfigYAML = `# coinsorter configuration

# Denomination table used when none is given on the command line.
default_system: usd

# Objective used when --opt is not given: count, mass, diam, or area.
default_objective: count

# Directory holding the custom-table store (optional; --data-dir wins).
# data_dir:
`

// cfg holds the loaded configuration. Set by loadConfig in setup so
// every subcommand can read it.
var cfg *viper.Viper

// loadConfig reads config.yaml from the resolved config directory.
// It creates the directory and a default config.yaml on first run;
// a missing file after that is not an error.
func loadConfig(configDir string) error {
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return fmt.Errorf("ensure config dir: %w", err)
	}
	if err := ensureDefaultConfigFile(configDir); err != nil {
		return fmt.Errorf("ensure default config: %w", err)
	}

	v := viper.New()
	v.SetDefault(cfgKeyDefaultSystem, defaultSystemName)
	v.SetDefault(cfgKeyDefaultObjective, defaultObjectiveStr)
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("read config: %w", err)
		}
	}

	cfg = v
	return nil
}

// ensureDefaultConfigFile writes a default config.yaml if the file does
// not exist yet.
func ensureDefaultConfigFile(configDir string) error {
	path := filepath.Join(configDir, configFileExt)

	_, err := os.Stat(path)
	if err == nil {
		return nil
	}
	if !os.IsNotExist(err) {
		return fmt.Errorf("stat config file: %w", err)
	}

	return os.WriteFile(path, []byte(defaultConfigYAML), 0o644)
}

// defaultConfigDir returns the platform default configuration directory.
//
// Linux:   $XDG_CONFIG_HOME/coinsorter (fallback ~/.config/coinsorter)
// macOS:   ~/Library/Application Support/coinsorter
// Windows: %APPDATA%/coinsorter
func defaultConfigDir() (string, error) {
	if runtime.GOOS == "linux" {
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, appDirName), nil
		}
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, ".config", appDirName), nil
	}

	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, appDirName), nil
}

// resolveConfigDir returns the configuration directory following the
// precedence chain: --config-dir flag > COINSORTER_CONFIG_DIR env >
// platform default.
func resolveConfigDir() (string, error) {
	if flagConfigDir != "" {
		return filepath.Abs(flagConfigDir)
	}
	if env := os.Getenv(envConfigDir); env != "" {
		return filepath.Abs(env)
	}
	return defaultConfigDir()
}

// resolveDataDir returns the data directory following the precedence
// chain: --data-dir flag > config.yaml data_dir > COINSORTER_DATA_DIR
// env > the config directory itself.
func resolveDataDir() (string, error) {
	if flagDataDir != "" {
		return filepath.Abs(flagDataDir)
	}
	if cfg != nil {
		if dir := cfg.GetString(cfgKeyDataDir); dir != "" {
			return filepath.Abs(dir)
		}
	}
	if env := os.Getenv(envDataDir); env != "" {
		return filepath.Abs(env)
	}
	return resolveConfigDir()
}

// configuredSystem returns the table name to use when the command line
// does not name one.
func configuredSystem() string {
	if cfg != nil {
		if name := cfg.GetString(cfgKeyDefaultSystem); name != "" {
			return name
		}
	}
	return defaultSystemName
}

// configuredObjective returns the objective string to use when --opt is
// not given.
func configuredObjective() string {
	if cfg != nil {
		if mode := cfg.GetString(cfgKeyDefaultObjective); mode != "" {
			return mode
		}
	}
	return defaultObjectiveStr
}
