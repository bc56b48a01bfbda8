package registry

import (
	"errors"

	"github.com/Oichkatzelesfrettschen/CoinSorter/coins"
)

// Sentinel errors for lookups and decoding, matched via errors.Is.
var (
	// ErrUnknownSystem is returned when no built-in (and, via Resolve, no
	// stored) system matches the requested name.
	ErrUnknownSystem = errors.New("registry: unknown coin system")

	// ErrUnnamedSystem is returned when a system arrives without a name;
	// the name is the lookup key everywhere in this package.
	ErrUnnamedSystem = errors.New("registry: system name required")
)

// Get returns a deep copy of the built-in system with the given name.
func Get(name string) (*coins.System, error) {
	for i := range builtins {
		if builtins[i].Name == name {
			return copySystem(&builtins[i]), nil
		}
	}

	return nil, ErrUnknownSystem
}

// Names lists the built-in system names in display order.
func Names() []string {
	names := make([]string, len(builtins))
	for i := range builtins {
		names[i] = builtins[i].Name
	}

	return names
}

// All returns deep copies of every built-in system in display order.
func All() []*coins.System {
	out := make([]*coins.System, len(builtins))
	for i := range builtins {
		out[i] = copySystem(&builtins[i])
	}

	return out
}

// Resolve looks the name up among the built-ins first, then in the store.
// A nil store restricts Resolve to the built-ins. Built-ins shadow stored
// systems of the same name.
func Resolve(store *Store, name string) (*coins.System, error) {
	sys, err := Get(name)
	if err == nil {
		return sys, nil
	}
	if store == nil {
		return nil, ErrUnknownSystem
	}

	return store.Load(name)
}

// copySystem clones s deeply so callers can never reach the shared tables.
func copySystem(s *coins.System) *coins.System {
	out := *s
	out.Coins = make([]coins.Denomination, len(s.Coins))
	copy(out.Coins, s.Coins)

	return &out
}
