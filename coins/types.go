package coins

import (
	"errors"
	"math"
)

// Sentinel errors. Every exported operation in this package fails with one
// of these, matched via errors.Is; user input never panics.
var (
	// ErrNilSystem is returned when a nil *System is supplied.
	ErrNilSystem = errors.New("coins: nil system")

	// ErrEmptySystem is returned when a system carries no denominations.
	ErrEmptySystem = errors.New("coins: system has no denominations")

	// ErrNonPositiveValue is returned when a denomination value is zero or
	// negative.
	ErrNonPositiveValue = errors.New("coins: denomination value must be positive")

	// ErrUnsortedSystem is returned when denomination values are not
	// strictly descending (duplicates included).
	ErrUnsortedSystem = errors.New("coins: denominations must be strictly descending by value")

	// ErrNegativeWeight is returned when physical metadata (mass, diameter)
	// is negative; unknown metadata is encoded as zero, never negative.
	ErrNegativeWeight = errors.New("coins: negative physical metadata")

	// ErrNegativeAmount is returned for amounts below zero, before any work
	// table is allocated.
	ErrNegativeAmount = errors.New("coins: negative amount")

	// ErrInexactChange is returned by Greedy when the largest-first sweep
	// leaves a non-zero remainder. It is an expected outcome, not a fault:
	// an exact decomposition may still exist (see MinCoins).
	ErrInexactChange = errors.New("coins: greedy sweep left a remainder")

	// ErrUnreachableAmount is returned when no combination of denominations
	// sums exactly to the requested amount.
	ErrUnreachableAmount = errors.New("coins: amount not representable by this system")

	// ErrUnknownObjective is returned for an Objective outside the declared
	// enumeration, or an unrecognized objective spelling.
	ErrUnknownObjective = errors.New("coins: unknown objective")
)

// Denomination describes one coin of a currency system: its face value in
// the system's smallest unit, display metadata, and optional physical
// attributes. A zero MassGrams or DiameterMM means "unknown".
type Denomination struct {
	Value       int     // face value in smallest units (e.g. cents); > 0
	Code        string  // short code, e.g. "25c"
	Name        string  // human-readable name, e.g. "quarter"
	MassGrams   float64 // mass in grams; 0 when unknown
	DiameterMM  float64 // diameter in millimeters; 0 when unknown
	Composition string  // optional alloy description
}

// Area returns the face area in mm², derived as π·(DiameterMM/2)², or 0
// when the diameter is unknown. Area is always derived on demand, never
// stored.
func (d Denomination) Area() float64 {
	if d.DiameterMM <= 0 {
		return 0
	}
	r := d.DiameterMM / 2
	return math.Pi * r * r
}

// System is an ordered, fixed table of denominations forming one currency.
// Coins are stored strictly descending by Value (index 0 = largest); the
// solvers rely on that order. Treat a System as immutable once built.
type System struct {
	Name          string         // identifier, e.g. "usd"
	Coins         []Denomination // strictly descending by Value
	SmallestUnit  int            // scaling factor of Value (1 = cents)
	CanonicalHint bool           // greedy believed optimal; a shortcut, not a guarantee
}

// Objective selects the scalar a weighted solve minimizes.
type Objective int

const (
	// MinCount minimizes the number of coins (the classic objective).
	MinCount Objective = iota

	// MinMass minimizes total carried mass in grams.
	MinMass

	// MinDiameter minimizes summed diameters (edge-stacked length).
	MinDiameter

	// MinArea minimizes total face area π·(d/2)² (single-layer footprint).
	MinArea
)

// String returns the canonical lowercase name used in rendered output.
func (o Objective) String() string {
	switch o {
	case MinCount:
		return "count"
	case MinMass:
		return "mass"
	case MinDiameter:
		return "diameter"
	case MinArea:
		return "area"
	default:
		return "unknown"
	}
}

// ParseObjective maps a CLI or config spelling to an Objective. It accepts
// the canonical names plus the short form "diam".
func ParseObjective(s string) (Objective, error) {
	switch s {
	case "count":
		return MinCount, nil
	case "mass":
		return MinMass, nil
	case "diam", "diameter":
		return MinDiameter, nil
	case "area":
		return MinArea, nil
	default:
		return MinCount, ErrUnknownObjective
	}
}

// Strategy names the solver that produced a Result.
type Strategy string

const (
	StrategyGreedy Strategy = "greedy"  // largest-first sweep
	StrategyDP     Strategy = "dp"      // minimal-count dynamic program
	StrategyDPMass Strategy = "dp-mass" // weighted dynamic program, mass
	StrategyDPDiam Strategy = "dp-diam" // weighted dynamic program, diameter
	StrategyDPArea Strategy = "dp-area" // weighted dynamic program, area
)

// Result is the outcome of Solve: the per-denomination count vector
// (index-aligned with the system's Coins), the objective and strategy that
// produced it, and — when the canonical hint was demoted — the first
// amount where greedy lost.
type Result struct {
	Counts         []int
	Objective      Objective
	Strategy       Strategy
	Counterexample int // first greedy-suboptimal amount found by the hint probe; 0 otherwise
}

// Options configures Solve. The zero value minimizes coin count with the
// default spot-check cap.
type Options struct {
	// Objective selects the scalar to minimize. MinCount routes through
	// the minimal-count program (or Greedy on verified hinted tables).
	Objective Objective

	// SpotCheckCap bounds the pre-flight canonicality probe run when a
	// system carries CanonicalHint. 0 applies DefaultSpotCheckCap.
	SpotCheckCap int
}

// DefaultOptions returns the Options used by the CLI when no flags are
// set: minimize coin count, probe hinted tables up to DefaultSpotCheckCap.
func DefaultOptions() Options {
	return Options{Objective: MinCount, SpotCheckCap: DefaultSpotCheckCap}
}

// DefaultSpotCheckCap caps the hint probe in Solve: before trusting a
// CanonicalHint, the dispatcher audits amounts up to
// min(amount, DefaultSpotCheckCap).
const DefaultSpotCheckCap = 500

// Back-pointer sentinels shared by the dynamic-program reconstructions.
// Legitimate entries are denomination indices ≥ 0; the sentinels stay
// strictly negative so the two ranges can never collide.
const (
	backNone        = -1 // no transition has reached this amount yet
	backOrigin      = -2 // amount zero: reconstruction stops here
	backUnreachable = -3 // every denomination was tried; no valid transition
)
