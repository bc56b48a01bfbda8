package coins

// Totals aggregate a count vector against its originating table. Each
// helper expects counts index-aligned with sys.Coins, exactly as produced
// by the solvers; shorter vectors are summed as far as they reach.

// TotalCount returns the number of coins in the vector.
func TotalCount(counts []int) int {
	total := 0
	for _, c := range counts {
		total += c
	}
	return total
}

// Value returns the monetary sum counts·values in smallest units.
func Value(sys *System, counts []int) int {
	if sys == nil {
		return 0
	}
	total := 0
	for i, c := range counts {
		if i >= len(sys.Coins) {
			break
		}
		total += c * sys.Coins[i].Value
	}
	return total
}

// TotalMass returns the carried mass in grams. ok is false only when no
// denomination in the table carries mass data at all; denominations with
// unknown mass contribute nothing to the sum.
func TotalMass(sys *System, counts []int) (grams float64, ok bool) {
	if sys == nil {
		return 0, false
	}
	for i, d := range sys.Coins {
		if d.MassGrams <= 0 {
			continue
		}
		ok = true
		if i < len(counts) {
			grams += d.MassGrams * float64(counts[i])
		}
	}
	return grams, ok
}

// TotalDiameter returns the summed diameters in millimeters, the length
// of the vector's coins lined up edge to edge. ok follows TotalMass.
func TotalDiameter(sys *System, counts []int) (mm float64, ok bool) {
	if sys == nil {
		return 0, false
	}
	for i, d := range sys.Coins {
		if d.DiameterMM <= 0 {
			continue
		}
		ok = true
		if i < len(counts) {
			mm += d.DiameterMM * float64(counts[i])
		}
	}
	return mm, ok
}

// TotalArea returns the summed face areas in mm², the footprint of the
// vector's coins laid flat without overlap. ok follows TotalMass.
func TotalArea(sys *System, counts []int) (mm2 float64, ok bool) {
	if sys == nil {
		return 0, false
	}
	for i, d := range sys.Coins {
		a := d.Area()
		if a <= 0 {
			continue
		}
		ok = true
		if i < len(counts) {
			mm2 += a * float64(counts[i])
		}
	}
	return mm2, ok
}
