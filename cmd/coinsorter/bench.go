// Bench command times the dynamic-programming solvers.
package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/Oichkatzelesfrettschen/CoinSorter/coins"
)

var (
	flagBenchAmount int
	flagBenchIters  int
)

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Time the exact solver over repeated runs",
	Long: `Bench runs the dynamic program repeatedly for one amount and reports
average and best wall-clock time. Use --opt to time a weighted
objective instead of minimal count.

Example:
  coinsorter bench --amount 100000 --iters 50
  coinsorter bench --amount 100000 --iters 50 --opt=mass --system eur`,
	Args: cobra.NoArgs,
	RunE: runBench,
}

func init() {
	benchCmd.Flags().IntVar(&flagBenchAmount, "amount", 100000, "amount to solve each iteration")
	benchCmd.Flags().IntVar(&flagBenchIters, "iters", 20, "number of iterations")
	benchCmd.Flags().StringVar(&flagSystem, "system", "", "denomination table to solve against")
	benchCmd.Flags().StringVar(&flagObjective, "opt", "", "objective: count, mass, diam, or area")
}

func runBench(cmd *cobra.Command, args []string) error {
	if flagBenchAmount <= 0 || flagBenchIters <= 0 {
		return fmt.Errorf("bench needs positive --amount and --iters")
	}

	sys, err := resolveSystem(flagSystem)
	if err != nil {
		return err
	}
	objective, err := resolveObjective(flagObjective)
	if err != nil {
		return err
	}

	var best, total time.Duration
	for it := 0; it < flagBenchIters; it++ {
		start := time.Now()
		if _, err := coins.MinWeight(sys, flagBenchAmount, objective); err != nil {
			return fmt.Errorf("bench solve: %w", err)
		}
		dt := time.Since(start)
		total += dt
		if it == 0 || dt < best {
			best = dt
		}
	}

	avg := total.Seconds() / float64(flagBenchIters)
	fmt.Printf("BENCH amount=%d mode=%s iters=%d avg=%.6g s best=%.6g s\n",
		flagBenchAmount, objective, flagBenchIters, avg, best.Seconds())
	return nil
}
