// Package coins - unified dispatcher for the change-making solvers.
//
// Solve routes a request to Greedy, MinCoins or MinWeight:
//
//   - Non-count objectives always use the weighted dynamic program.
//   - Count solves on a table carrying CanonicalHint first probe
//     canonicality up to min(amount, SpotCheckCap); only a clean probe
//     lets Greedy run.
//   - Everything else, including a greedy dead-end past the probed range,
//     falls back to the exact minimal-count program.
//
// Design principles follow the package: strict sentinels, per-call state
// only, deterministic outcomes, no logging.
package coins

import "errors"

// Solve makes change for amount under opts, reporting which strategy
// produced the vector. The canonical hint is purely a performance
// shortcut: when its spot check finds a counterexample the dispatcher
// demotes the solve to the exact dynamic program and records the demoting
// amount in Result.Counterexample.
//
// Errors: ErrNegativeAmount, ErrUnreachableAmount, ErrUnknownObjective,
// and the table-shape sentinels from Validate.
//
// Complexity: greedy path O(spot²·n) for the probe plus O(n) for the
// sweep, spot ≤ SpotCheckCap; dynamic-program paths O(amount·n).
func Solve(sys *System, amount int, opts Options) (Result, error) {
	if err := solvePrologue(sys, amount); err != nil {
		return Result{}, err
	}

	// Weighted objectives bypass the hint entirely.
	if opts.Objective != MinCount {
		counts, err := MinWeight(sys, amount, opts.Objective)
		if err != nil {
			return Result{}, err
		}
		return Result{
			Counts:    counts,
			Objective: opts.Objective,
			Strategy:  weightedStrategy(opts.Objective),
		}, nil
	}

	// Stage 1 - decide whether greedy may run.
	useGreedy := sys.CanonicalHint
	counter := 0
	if useGreedy && amount > 0 {
		spot := opts.SpotCheckCap
		if spot <= 0 {
			spot = DefaultSpotCheckCap
		}
		if amount < spot {
			spot = amount
		}
		probe, err := AuditCanonical(sys, spot)
		if err != nil {
			return Result{}, err
		}
		if !probe.Canonical {
			useGreedy = false
			counter = probe.Counterexample
		}
	}

	// Stage 2 - greedy fast path on a clean probe.
	if useGreedy {
		counts, err := Greedy(sys, amount)
		switch {
		case err == nil:
			return Result{Counts: counts, Objective: MinCount, Strategy: StrategyGreedy}, nil
		case errors.Is(err, ErrInexactChange):
			// The sweep dead-ended; the exact program below settles it.
		default:
			return Result{}, err
		}
	}

	// Stage 3 - exact minimal-count program.
	counts, err := MinCoins(sys, amount)
	if err != nil {
		return Result{}, err
	}
	return Result{
		Counts:         counts,
		Objective:      MinCount,
		Strategy:       StrategyDP,
		Counterexample: counter,
	}, nil
}

// weightedStrategy maps a weighted objective to its strategy label.
func weightedStrategy(o Objective) Strategy {
	switch o {
	case MinMass:
		return StrategyDPMass
	case MinDiameter:
		return StrategyDPDiam
	case MinArea:
		return StrategyDPArea
	default:
		return StrategyDP
	}
}
