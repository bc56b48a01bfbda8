// Root command for the coinsorter CLI.
package main

import (
	"github.com/spf13/cobra"

	coinsorter "github.com/Oichkatzelesfrettschen/CoinSorter"
)

// Global flag values.
var (
	flagConfigDir string
	flagDataDir   string
	flagVerbose   bool

	flagSystem    string
	flagObjective string
	flagJSON      bool
)

var rootCmd = &cobra.Command{
	Use:     "coinsorter [amount] [system]",
	Short:   "Make change with greedy, minimal-count, and weighted solvers",
	Version: coinsorter.Version,
	Long: `coinsorter solves the change-making problem over builtin and custom
denomination tables.

Run with an amount (in the table's smallest unit) to get a coin vector.
Hinted-canonical tables take the greedy fast path; everything else runs
the exact dynamic program. The --opt flag switches to weighted
objectives that minimize physical mass, diameter, or face area.

Example:
  coinsorter 137
  coinsorter 137 eur --json
  coinsorter 30 --opt=mass
  coinsorter audit cad
  coinsorter systems list`,
	Args:              cobra.MaximumNArgs(2),
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	RunE:              runMake,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: platform config dir)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "data directory for custom tables (default: config dir)")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "enable debug logging")

	rootCmd.Flags().StringVar(&flagSystem, "system", "", "denomination table to solve against (default from config)")
	rootCmd.Flags().StringVar(&flagObjective, "opt", "", "objective: count, mass, diam, or area (default from config)")
	rootCmd.Flags().BoolVar(&flagJSON, "json", false, "emit the result as a JSON document")

	rootCmd.AddCommand(auditCmd)
	rootCmd.AddCommand(systemsCmd)
	rootCmd.AddCommand(benchCmd)
	rootCmd.AddCommand(selftestCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(tuiCmd)
}

// setup loads the config file and installs the logger before any
// subcommand runs. The version command works without either.
func setup(cmd *cobra.Command, args []string) error {
	if cmd.Name() == "version" {
		return nil
	}

	configDir, err := resolveConfigDir()
	if err != nil {
		return err
	}
	if err := loadConfig(configDir); err != nil {
		return err
	}

	installLogger(buildLogger(flagVerbose))
	return nil
}
