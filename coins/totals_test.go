package coins_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Oichkatzelesfrettschen/CoinSorter/coins"
)

// TestTotals_Classic137 pins the aggregate numbers for the canonical 137
// vector [5 1 0 2] on usd: count, value, mass, diameter, and area.
func TestTotals_Classic137(t *testing.T) {
	sys := usdSystem()
	counts, err := coins.MinCoins(sys, 137)
	require.NoError(t, err)

	assert.Equal(t, 8, coins.TotalCount(counts))
	assert.Equal(t, 137, coins.Value(sys, counts))

	mass, ok := coins.TotalMass(sys, counts)
	assert.True(t, ok)
	assert.InDelta(t, 5*5.670+1*2.268+2*2.500, mass, epsLoose)

	diam, ok := coins.TotalDiameter(sys, counts)
	assert.True(t, ok)
	assert.InDelta(t, 5*24.26+1*17.91+2*19.05, diam, epsLoose)

	area, ok := coins.TotalArea(sys, counts)
	assert.True(t, ok)
	wantArea := 5*math.Pi*(24.26/2)*(24.26/2) +
		1*math.Pi*(17.91/2)*(17.91/2) +
		2*math.Pi*(19.05/2)*(19.05/2)
	assert.InDelta(t, wantArea, area, epsLoose)
}

// TestTotals_MetadataFreeTable verifies the ok flag is a table-level
// statement: no denomination carries the metric, so totals are unknown.
func TestTotals_MetadataFreeTable(t *testing.T) {
	sys := nonCanonicalSystem()
	counts := []int{1, 1, 1}

	mass, ok := coins.TotalMass(sys, counts)
	assert.False(t, ok)
	assert.Zero(t, mass)

	diam, ok := coins.TotalDiameter(sys, counts)
	assert.False(t, ok)
	assert.Zero(t, diam)

	area, ok := coins.TotalArea(sys, counts)
	assert.False(t, ok)
	assert.Zero(t, area)
}

// TestTotals_PartialMetadata verifies one known denomination flips ok to
// true while unknown denominations contribute nothing.
func TestTotals_PartialMetadata(t *testing.T) {
	sys := &coins.System{Name: "partial", Coins: []coins.Denomination{
		{Value: 5, MassGrams: 3.0},
		{Value: 1}, // mass unknown
	}}

	mass, ok := coins.TotalMass(sys, []int{2, 4})
	assert.True(t, ok, "one weighed denomination is enough to report")
	assert.InDelta(t, 6.0, mass, epsLoose, "the four unweighed coins add nothing")
}

// TestTotals_ZeroVector verifies zero counts sum to zero while the ok
// flag still reflects the table.
func TestTotals_ZeroVector(t *testing.T) {
	sys := usdSystem()
	counts := []int{0, 0, 0, 0}

	mass, ok := coins.TotalMass(sys, counts)
	assert.True(t, ok, "usd carries mass data regardless of the vector")
	assert.Zero(t, mass)
	assert.Zero(t, coins.TotalCount(counts))
	assert.Zero(t, coins.Value(sys, counts))
}

// TestTotals_NilSafety verifies nil receivers degrade to zero values
// instead of panicking.
func TestTotals_NilSafety(t *testing.T) {
	assert.Zero(t, coins.Value(nil, []int{1, 2}))
	mass, ok := coins.TotalMass(nil, []int{1})
	assert.False(t, ok)
	assert.Zero(t, mass)
	assert.Zero(t, coins.TotalCount(nil))
}
