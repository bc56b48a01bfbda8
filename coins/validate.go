package coins

// Validate checks the structural invariants every solver relies on: at
// least one denomination, every value positive, values strictly descending
// (and therefore distinct), physical metadata non-negative.
//
// Contract: a System obtained from the registry is always valid; Validate
// exists for hand-built and store-loaded tables.
//
// Complexity: O(n) over the number of denominations.
func (s *System) Validate() error {
	if s == nil {
		return ErrNilSystem
	}
	if len(s.Coins) == 0 {
		return ErrEmptySystem
	}
	prev := 0 // previous value; 0 never collides with a valid (positive) value
	for i, d := range s.Coins {
		if d.Value <= 0 {
			return ErrNonPositiveValue
		}
		if i > 0 && d.Value >= prev {
			return ErrUnsortedSystem
		}
		if d.MassGrams < 0 || d.DiameterMM < 0 {
			return ErrNegativeWeight
		}
		prev = d.Value
	}
	return nil
}

// solvePrologue runs the shared entry checks of every solver: table shape
// first, then the amount. Negative amounts are rejected before any work
// table is allocated.
func solvePrologue(s *System, amount int) error {
	if err := s.Validate(); err != nil {
		return err
	}
	if amount < 0 {
		return ErrNegativeAmount
	}
	return nil
}
