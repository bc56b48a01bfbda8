// Package coinsorter is an exact toolkit for the change-making problem —
// decomposing a monetary amount into coin denominations under several
// optimization objectives, and auditing whether a coin system is safe for
// the classic greedy shortcut.
//
// 🚀 What is CoinSorter?
//
//	A small, deterministic change-making engine that brings together:
//		• Greedy solver: largest-first sweep for canonical tables (usd style)
//		• Minimal-count DP: guaranteed fewest coins, honest unreachability
//		• Weighted DP: minimize carried mass, stacked diameter or face area,
//		  with a deterministic fewest-coins tie-break
//		• Canonicality auditor: first amount where greedy loses, if any
//		• Currency registry: six built-in tables with physical metadata,
//		  plus SQLite-backed custom systems
//
// ✨ Why choose CoinSorter?
//
//   - Exact results – value sums always reconstruct the requested amount
//   - Honest failure – unreachable and invalid inputs are distinct sentinel
//     errors, never silently wrong vectors
//   - Concurrency-safe – every solve owns its work table, nothing is shared
//   - Batteries included – JSON/text rendering, a cobra CLI, an interactive
//     terminal mode, and a selftest for quick sanity checks
//
// Under the hood, everything is organized under focused subpackages:
//
//	coins/    — core types and the solver entry points (Greedy, MinCoins,
//	            MinWeight, AuditCanonical, Solve)
//	registry/ — built-in currency systems + persistent custom systems
//	render/   — JSON and plain-text result rendering
//	cmd/      — the coinsorter command-line tool
//
// Quick taste:
//
//	sys, _ := registry.Get("usd")
//	counts, _ := coins.MinCoins(sys, 137) // [5 1 0 2]: quarters..pennies
//
// Dive into each subpackage's doc.go for contracts, complexity notes and
// runnable examples.
//
//	go get github.com/Oichkatzelesfrettschen/CoinSorter
package coinsorter
