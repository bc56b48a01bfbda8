package coins_test

import (
	"testing"

	"github.com/Oichkatzelesfrettschen/CoinSorter/coins"
)

// benchmarkSolver runs fn against the usd table at the given amount,
// resetting the timer after fixture setup and failing on any error.
func benchmarkSolver(b *testing.B, amount int, fn func(*coins.System, int) ([]int, error)) {
	sys := usdSystem()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := fn(sys, amount); err != nil {
			b.Fatalf("solve failed: %v", err)
		}
	}
}

// BenchmarkGreedy_Classic measures the O(n) sweep at 137.
func BenchmarkGreedy_Classic(b *testing.B) {
	benchmarkSolver(b, 137, coins.Greedy)
}

// BenchmarkMinCoins_Small measures the count program at 137.
func BenchmarkMinCoins_Small(b *testing.B) {
	benchmarkSolver(b, 137, coins.MinCoins)
}

// BenchmarkMinCoins_Large measures the count program at 100_000, where
// table allocation dominates.
func BenchmarkMinCoins_Large(b *testing.B) {
	benchmarkSolver(b, 100_000, coins.MinCoins)
}

// BenchmarkMinWeight_MassSmall measures the weighted program at 137.
func BenchmarkMinWeight_MassSmall(b *testing.B) {
	benchmarkSolver(b, 137, func(sys *coins.System, amount int) ([]int, error) {
		return coins.MinWeight(sys, amount, coins.MinMass)
	})
}

// BenchmarkMinWeight_MassLarge measures the weighted program at 100_000.
func BenchmarkMinWeight_MassLarge(b *testing.B) {
	benchmarkSolver(b, 100_000, func(sys *coins.System, amount int) ([]int, error) {
		return coins.MinWeight(sys, amount, coins.MinMass)
	})
}

// BenchmarkSolve_HintedFastPath measures the dispatcher end to end,
// spot-check probe included.
func BenchmarkSolve_HintedFastPath(b *testing.B) {
	sys := usdSystem()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := coins.Solve(sys, 137, coins.DefaultOptions()); err != nil {
			b.Fatalf("solve failed: %v", err)
		}
	}
}

// BenchmarkAuditCanonical_USD measures a full default-bound audit (250
// amounts, a fresh count table each).
func BenchmarkAuditCanonical_USD(b *testing.B) {
	sys := usdSystem()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := coins.AuditCanonical(sys, 0); err != nil {
			b.Fatalf("audit failed: %v", err)
		}
	}
}
