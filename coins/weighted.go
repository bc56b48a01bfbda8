package coins

import "math"

// WeightEps is the absolute tolerance used when two candidate objective
// sums are compared in MinWeight. It absorbs floating-point accumulation
// noise across many additions and assumes per-coin weights on the order
// of 1–100 units (grams, millimeters, mm²): realistic coin tables differ
// by far more than 1e-12 between distinct decompositions. Tables in far
// smaller or larger units need a different tolerance.
const WeightEps = 1e-12

// FallbackWeight substitutes for unknown or non-positive metadata in a
// weighted solve, so a denomination with incomplete data stays usable
// rather than free or poisonous.
const FallbackWeight = 1.0

// wcell is one entry of the weighted work table: the best objective sum
// reaching the amount, the coin count behind it, and the back-pointer for
// reconstruction.
type wcell struct {
	primary float64 // best objective sum; +Inf until first reached
	coins   int     // coins behind primary; tie-break discriminator
	last    int     // denomination index, or a back* sentinel
}

// MinWeight returns the exact decomposition of amount minimizing the
// objective's per-coin weight sum, tie-breaking on fewest coins. MinCount
// delegates to MinCoins; the remaining objectives derive per-coin weights
// as mass, diameter, or face area, substituting FallbackWeight where the
// table has no datum.
//
// The work table distinguishes three states per amount: not yet reached
// (+Inf sum, backNone), confirmed unreachable after every denomination
// was tried (backUnreachable), and reached (finite sum, denomination
// back-pointer). The explicit unreachable marker keeps dead predecessors
// out of later transitions without inspecting their sums.
//
// Determinism: candidates are scanned in table order and replace the
// incumbent only when strictly better on the objective (beyond WeightEps),
// or tied within WeightEps with strictly fewer coins. Repeated solves
// return identical vectors.
//
// Contracts match MinCoins: amount 0 yields an all-zero vector; the
// returned vector is fresh; the work table is per-call.
//
// Errors: ErrNegativeAmount, ErrUnreachableAmount, ErrUnknownObjective,
// and the table-shape sentinels from Validate.
//
// Complexity: O(amount·n) time, O(amount) space.
func MinWeight(sys *System, amount int, objective Objective) ([]int, error) {
	if objective == MinCount {
		return MinCoins(sys, amount)
	}
	if objective != MinMass && objective != MinDiameter && objective != MinArea {
		return nil, ErrUnknownObjective
	}
	if err := solvePrologue(sys, amount); err != nil {
		return nil, err
	}

	n := len(sys.Coins)
	counts := make([]int, n)
	if amount == 0 {
		return counts, nil
	}

	// Stage 1 - derive per-denomination weights once.
	weights := make([]float64, n)
	for i := range sys.Coins {
		weights[i] = objectiveWeight(sys.Coins[i], objective)
	}

	// Stage 2 - allocate and seed the work table.
	table := make([]wcell, amount+1)
	table[0] = wcell{primary: 0, coins: 0, last: backOrigin}
	for a := 1; a <= amount; a++ {
		table[a] = wcell{primary: math.Inf(1), coins: math.MaxInt, last: backNone}
	}

	// Stage 3 - forward pass with epsilon comparison and count tie-break.
	// Cells below a are already settled, so a predecessor is either a
	// reached cell or a confirmed dead end.
	for a := 1; a <= amount; a++ {
		for i := 0; i < n; i++ {
			v := sys.Coins[i].Value
			if v > a || table[a-v].last == backUnreachable {
				continue
			}
			candidate := table[a-v].primary + weights[i]
			candCoins := table[a-v].coins + 1
			better := candidate < table[a].primary-WeightEps ||
				(math.Abs(candidate-table[a].primary) <= WeightEps && candCoins < table[a].coins)
			if better {
				table[a] = wcell{primary: candidate, coins: candCoins, last: i}
			}
		}
		if table[a].last == backNone {
			table[a].last = backUnreachable
		}
	}
	if table[amount].last < 0 {
		return nil, ErrUnreachableAmount
	}

	// Stage 4 - reconstruct counts by walking the back-pointers.
	for a := amount; a > 0; {
		i := table[a].last
		counts[i]++
		a -= sys.Coins[i].Value
	}

	return counts, nil
}

// objectiveWeight derives the per-coin cost of d under the objective,
// substituting FallbackWeight when the table has no usable datum.
func objectiveWeight(d Denomination, objective Objective) float64 {
	var w float64
	switch objective {
	case MinMass:
		w = d.MassGrams
	case MinDiameter:
		w = d.DiameterMM
	case MinArea:
		w = d.Area()
	}
	if w <= 0 {
		return FallbackWeight
	}
	return w
}
