package render

import (
	"fmt"
	"io"

	"github.com/Oichkatzelesfrettschen/CoinSorter/coins"
)

// Text writes the console listing for a solve outcome: header, strategy,
// one line per denomination actually used, total coins, and total mass
// when the table knows it. When the canonical hint was demoted the
// listing closes with the first amount where greedy lost.
func Text(w io.Writer, sys *coins.System, amount int, res coins.Result) error {
	if _, err := fmt.Fprintf(w, "System: %s  Amount: %d\n", sys.Name, amount); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Strategy: %s\n", res.Strategy); err != nil {
		return err
	}

	for i, d := range sys.Coins {
		if i >= len(res.Counts) || res.Counts[i] == 0 {
			continue
		}
		if _, err := fmt.Fprintf(w, "  %s (%d): %d\n", d.Name, d.Value, res.Counts[i]); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintf(w, "Total coins: %d\n", coins.TotalCount(res.Counts)); err != nil {
		return err
	}
	if mass, _ := coins.TotalMass(sys, res.Counts); mass > 0 {
		if _, err := fmt.Fprintf(w, "Total mass: %.3f g\n", mass); err != nil {
			return err
		}
	}
	if res.Counterexample > 0 {
		if _, err := fmt.Fprintf(w, "(Greedy suboptimal first at amount %d)\n", res.Counterexample); err != nil {
			return err
		}
	}

	return nil
}
