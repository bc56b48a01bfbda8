// Package coins solves the change-making problem over fixed denomination
// tables: exact decompositions of an integer amount into coin counts under
// a choice of optimization objectives, plus a canonicality audit for the
// greedy shortcut.
//
// 🚀 What lives here?
//
//	• System / Denomination — an immutable currency table, strictly
//	  descending by value, with optional physical metadata (mass,
//	  diameter, derived face area)
//	• Greedy — O(n) largest-first decomposition for canonical tables
//	• MinCoins — dynamic program minimizing the number of coins
//	• MinWeight — dynamic program minimizing total mass, stacked diameter
//	  or face area, tie-breaking on fewest coins
//	• AuditCanonical — bounded brute-force comparison of Greedy against
//	  MinCoins, reporting the first counterexample amount
//	• Solve — dispatcher applying the canonical-hint fast path
//
// ✨ Guarantees:
//
//   - Exactness: counts·values always sums to the requested amount
//   - Optimality: MinCoins totals are minimal; MinWeight objective sums
//     are minimal with a deterministic fewest-coins tie-break
//   - Honest failure: unreachable amounts and malformed inputs surface as
//     distinct sentinel errors, never as silently wrong vectors
//   - Concurrency: solvers share no state; a single System may serve any
//     number of goroutines simultaneously
//
// ⚙️ Usage:
//
//	import "github.com/Oichkatzelesfrettschen/CoinSorter/coins"
//
//	counts, err := coins.MinCoins(sys, 137)
//	if err != nil { ... }
//	total := coins.TotalCount(counts)
//
// Errors: every operation fails with one of the package sentinels
// (ErrNegativeAmount, ErrUnreachableAmount, ErrInexactChange, ...) matched
// via errors.Is; user input never panics.
//
// Complexity: Greedy is O(n); both dynamic programs are O(amount·n) time,
// O(amount) space, with per-call work tables released on return.
//
// See example_test.go for runnable scenarios.
package coins
