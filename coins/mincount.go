package coins

// MinCoins returns the exact decomposition of amount using the fewest
// coins, or ErrUnreachableAmount when no combination of denominations
// sums to it (e.g. a table without a unit coin asked for an odd
// remainder).
//
// Algorithm: bottom-up dynamic program over amounts 0..amount. best[a]
// holds the fewest coins reaching a, seeded with the sentinel amount+1 —
// one more than any achievable count, so it can never collide with a real
// result. last[a] records the denomination taken at a; reconstruction
// walks those back-pointers from amount down to zero.
//
// Contracts:
//   - Amount 0 yields an all-zero vector, not a failure.
//   - The returned vector is freshly allocated; counts·values == amount.
//   - The work table lives and dies inside this call.
//
// Errors: ErrNegativeAmount, ErrUnreachableAmount, and the table-shape
// sentinels from Validate.
//
// Complexity: O(amount·n) time, O(amount) space.
func MinCoins(sys *System, amount int) ([]int, error) {
	if err := solvePrologue(sys, amount); err != nil {
		return nil, err
	}

	n := len(sys.Coins)
	counts := make([]int, n)
	if amount == 0 {
		return counts, nil
	}

	// Stage 1 - allocate and seed the work table.
	unreached := amount + 1 // exceeds any achievable coin count
	best := make([]int, amount+1)
	last := make([]int, amount+1)
	last[0] = backOrigin
	for a := 1; a <= amount; a++ {
		best[a] = unreached
		last[a] = backNone
	}

	// Stage 2 - forward pass over every amount and denomination.
	for a := 1; a <= amount; a++ {
		for i := 0; i < n; i++ {
			v := sys.Coins[i].Value
			if v <= a && best[a-v]+1 < best[a] {
				best[a] = best[a-v] + 1
				last[a] = i
			}
		}
	}
	if best[amount] >= unreached {
		return nil, ErrUnreachableAmount
	}

	// Stage 3 - reconstruct counts by walking the back-pointers.
	// best[amount] is real, so every hop lands on a reached cell.
	for a := amount; a > 0; {
		i := last[a]
		counts[i]++
		a -= sys.Coins[i].Value
	}

	return counts, nil
}
