package coins

// Greedy decomposes amount with the classic largest-first sweep: for each
// denomination in descending order it takes ⌊remaining/value⌋ coins.
//
// It succeeds only when the remainder reaches exactly zero after the
// smallest denomination; otherwise it returns ErrInexactChange. That
// failure does not mean no exact decomposition exists — only that the
// greedy shortcut missed it. MinCoins settles the question exactly, and
// AuditCanonical tells whether a table ever needs it.
//
// The returned vector is freshly allocated and index-aligned with
// sys.Coins; the solver keeps no reference to it.
//
// Errors: ErrNegativeAmount, ErrInexactChange, and the table-shape
// sentinels from Validate. On error the vector is nil.
//
// Complexity: O(n) time, O(n) space, n = len(sys.Coins).
func Greedy(sys *System, amount int) ([]int, error) {
	if err := solvePrologue(sys, amount); err != nil {
		return nil, err
	}

	counts := make([]int, len(sys.Coins))
	remaining := amount
	for i, d := range sys.Coins {
		counts[i] = remaining / d.Value
		remaining -= counts[i] * d.Value
	}
	if remaining != 0 {
		return nil, ErrInexactChange
	}

	return counts, nil
}
