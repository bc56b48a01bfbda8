// Package coins_test provides lightweight testing helpers shared across
// *_test.go files in this package: the canonical fixtures every suite
// leans on, and an independent brute-force oracle for optimality checks.
package coins_test

import (
	"testing"

	"github.com/Oichkatzelesfrettschen/CoinSorter/coins"
)

// -----------------------------------------------------------------------------
// Constants - single source of truth for test knobs
// -----------------------------------------------------------------------------

const (
	// epsLoose is a relaxed tolerance for comparing accumulated float totals.
	epsLoose = 1e-9

	// sweepMax bounds the exhaustive agreement sweeps; large enough to cover
	// several quarter multiples, small enough to keep the suite quick.
	sweepMax = 200

	// oracleMax bounds brute-force cross-checks; the oracle is memoized but
	// still the slowest piece of the suite.
	oracleMax = 60
)

// -----------------------------------------------------------------------------
// Fixtures - fresh copies per call so tests may mutate freely
// -----------------------------------------------------------------------------

// usdSystem returns the classic 25/10/5/1 table with real physical
// metadata, the workhorse fixture of these tests. Greedy is optimal here.
func usdSystem() *coins.System {
	return &coins.System{
		Name: "usd",
		Coins: []coins.Denomination{
			{Value: 25, Code: "25c", Name: "quarter", MassGrams: 5.670, DiameterMM: 24.26},
			{Value: 10, Code: "10c", Name: "dime", MassGrams: 2.268, DiameterMM: 17.91},
			{Value: 5, Code: "5c", Name: "nickel", MassGrams: 5.000, DiameterMM: 21.21},
			{Value: 1, Code: "1c", Name: "penny", MassGrams: 2.500, DiameterMM: 19.05},
		},
		SmallestUnit:  1,
		CanonicalHint: true,
	}
}

// nonCanonicalSystem returns the {4,3,1} textbook table: greedy pays 6 as
// 4+1+1 where 3+3 is optimal, so the first counterexample is exactly 6.
func nonCanonicalSystem() *coins.System {
	return &coins.System{
		Name: "weird",
		Coins: []coins.Denomination{
			{Value: 4, Code: "4u", Name: "four"},
			{Value: 3, Code: "3u", Name: "three"},
			{Value: 1, Code: "1u", Name: "one"},
		},
		SmallestUnit: 1,
	}
}

// gapSystem returns {25,10}: amounts that are not multiples of 5 are
// unreachable, and at 30 the greedy sweep dead-ends where 10+10+10 works.
func gapSystem() *coins.System {
	return &coins.System{
		Name: "gap",
		Coins: []coins.Denomination{
			{Value: 25, Code: "25u", Name: "quarter"},
			{Value: 10, Code: "10u", Name: "dime"},
		},
		SmallestUnit: 1,
	}
}

// -----------------------------------------------------------------------------
// Oracle - independent top-down optimality reference
// -----------------------------------------------------------------------------

// bruteForceMinCount finds the fewest coins summing to amount by memoized
// top-down search, independent of the production bottom-up program.
// Returns -1 when the amount is unreachable. Only sane for small amounts.
func bruteForceMinCount(t *testing.T, sys *coins.System, amount int) int {
	t.Helper()
	memo := make(map[int]int, amount+1)
	var walk func(rem int) int
	walk = func(rem int) int {
		if rem == 0 {
			return 0
		}
		if v, ok := memo[rem]; ok {
			return v
		}
		best := -1
		for _, d := range sys.Coins {
			if d.Value > rem {
				continue
			}
			if sub := walk(rem - d.Value); sub >= 0 && (best < 0 || sub+1 < best) {
				best = sub + 1
			}
		}
		memo[rem] = best

		return best
	}

	return walk(amount)
}
