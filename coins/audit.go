package coins

import "errors"

// Audit is the outcome of AuditCanonical: whether Greedy matched the
// minimal coin count for every reachable amount within the scanned bound,
// and if not, the smallest amount where it lost.
type Audit struct {
	Canonical      bool
	Counterexample int // smallest amount where greedy underperforms; 0 when canonical
	Bound          int // inclusive upper amount actually scanned
}

// AuditCanonical compares Greedy against MinCoins for every amount in
// 1..bound and reports the first amount where greedy uses strictly more
// coins — or finds no exact decomposition at all while one exists. A
// bound of zero or below selects the default heuristic bound: the product
// of the two largest denomination values, or the largest value squared
// for a single-coin table.
//
// The verdict is honest only within the scanned bound: a canonical result
// is evidence up to Audit.Bound, not a proof for all amounts. The default
// bound is change-making folklore, not a completeness guarantee.
//
// Amounts neither solver can reach are skipped — there is no optimum to
// lose against. Any error other than the two expected solver outcomes
// aborts the audit.
//
// Complexity: O(bound²·n) time (a fresh MinCoins table per amount),
// O(bound) space.
func AuditCanonical(sys *System, bound int) (Audit, error) {
	if err := sys.Validate(); err != nil {
		return Audit{}, err
	}

	limit := bound
	if limit <= 0 {
		largest := sys.Coins[0].Value
		second := largest
		if len(sys.Coins) > 1 {
			second = sys.Coins[1].Value
		}
		limit = largest * second
	}

	for amount := 1; amount <= limit; amount++ {
		optimal, err := MinCoins(sys, amount)
		if errors.Is(err, ErrUnreachableAmount) {
			continue
		}
		if err != nil {
			return Audit{}, err
		}

		taken, err := Greedy(sys, amount)
		if errors.Is(err, ErrInexactChange) {
			// An exact decomposition exists but the sweep missed it:
			// greedy is strictly worse than optimal here.
			return Audit{Counterexample: amount, Bound: limit}, nil
		}
		if err != nil {
			return Audit{}, err
		}

		if TotalCount(taken) > TotalCount(optimal) {
			return Audit{Counterexample: amount, Bound: limit}, nil
		}
	}

	return Audit{Canonical: true, Bound: limit}, nil
}
