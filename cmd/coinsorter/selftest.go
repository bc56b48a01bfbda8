// Selftest command cross-checks the solvers against each other.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Oichkatzelesfrettschen/CoinSorter/coins"
	"github.com/Oichkatzelesfrettschen/CoinSorter/registry"
)

var selftestCmd = &cobra.Command{
	Use:   "selftest",
	Short: "Verify greedy matches the exact solver on the usd table",
	Args:  cobra.NoArgs,
	RunE:  runSelftest,
}

// selftestAmounts covers zero, single coins, awkward remainders, and a
// few larger sums.
var selftestAmounts = []int{0, 1, 6, 11, 37, 99, 137, 499}

func runSelftest(cmd *cobra.Command, args []string) error {
	usd, err := registry.Get("usd")
	if err != nil {
		return err
	}

	for _, amount := range selftestAmounts {
		greedy, err := coins.Greedy(usd, amount)
		if err != nil {
			return fmt.Errorf("selftest greedy amount %d: %w", amount, err)
		}
		optimal, err := coins.MinCoins(usd, amount)
		if err != nil {
			return fmt.Errorf("selftest dp amount %d: %w", amount, err)
		}
		for c := range usd.Coins {
			if greedy[c] != optimal[c] {
				return fmt.Errorf("selftest fail amount %d coin %d: greedy %d dp %d",
					amount, c, greedy[c], optimal[c])
			}
		}
	}

	audit, err := coins.AuditCanonical(usd, 0)
	if err != nil {
		return fmt.Errorf("selftest audit: %w", err)
	}
	if !audit.Canonical {
		return fmt.Errorf("selftest audit: unexpected counterexample %d", audit.Counterexample)
	}

	fmt.Fprintln(os.Stderr, "Selftest OK.")
	return nil
}
