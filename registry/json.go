package registry

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/Oichkatzelesfrettschen/CoinSorter/coins"
)

// wireSystem mirrors coins.System in the JSON form accepted by the CLI's
// `systems add` and emitted by `systems export`. Physical metadata is
// optional; a missing smallest_unit defaults to 1.
type wireSystem struct {
	Name          string     `json:"name"`
	SmallestUnit  int        `json:"smallest_unit,omitempty"`
	CanonicalHint bool       `json:"canonical_hint,omitempty"`
	Coins         []wireCoin `json:"coins"`
}

type wireCoin struct {
	Value       int     `json:"value"`
	Code        string  `json:"code,omitempty"`
	Name        string  `json:"name,omitempty"`
	MassGrams   float64 `json:"mass_g,omitempty"`
	DiameterMM  float64 `json:"diameter_mm,omitempty"`
	Composition string  `json:"composition,omitempty"`
}

// DecodeSystem reads one JSON system description from r and validates it.
// Unknown fields are rejected so typos fail loudly instead of silently
// dropping metadata.
func DecodeSystem(r io.Reader) (*coins.System, error) {
	var w wireSystem
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&w); err != nil {
		return nil, fmt.Errorf("decode system: %w", err)
	}
	if w.Name == "" {
		return nil, ErrUnnamedSystem
	}

	sys := &coins.System{
		Name:          w.Name,
		SmallestUnit:  w.SmallestUnit,
		CanonicalHint: w.CanonicalHint,
	}
	if sys.SmallestUnit == 0 {
		sys.SmallestUnit = 1
	}
	for _, c := range w.Coins {
		sys.Coins = append(sys.Coins, coins.Denomination{
			Value:       c.Value,
			Code:        c.Code,
			Name:        c.Name,
			MassGrams:   c.MassGrams,
			DiameterMM:  c.DiameterMM,
			Composition: c.Composition,
		})
	}
	if err := sys.Validate(); err != nil {
		return nil, err
	}

	return sys, nil
}

// EncodeSystem writes sys to w as indented JSON, the same form
// DecodeSystem reads back.
func EncodeSystem(w io.Writer, sys *coins.System) error {
	if err := sys.Validate(); err != nil {
		return err
	}
	if sys.Name == "" {
		return ErrUnnamedSystem
	}

	out := wireSystem{
		Name:          sys.Name,
		SmallestUnit:  sys.SmallestUnit,
		CanonicalHint: sys.CanonicalHint,
		Coins:         make([]wireCoin, 0, len(sys.Coins)),
	}
	for _, d := range sys.Coins {
		out.Coins = append(out.Coins, wireCoin{
			Value:       d.Value,
			Code:        d.Code,
			Name:        d.Name,
			MassGrams:   d.MassGrams,
			DiameterMM:  d.DiameterMM,
			Composition: d.Composition,
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(out)
}
