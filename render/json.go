package render

import (
	"encoding/json"

	"github.com/Oichkatzelesfrettschen/CoinSorter/coins"
)

// Change is the JSON document for one solved amount. Physical totals
// render as 0 when the table lacks the metric entirely; every
// denomination of the table appears in Coins, zero counts included, so
// consumers can index by position.
type Change struct {
	System     string     `json:"system"`
	Amount     int        `json:"amount"`
	Strategy   string     `json:"strategy"`
	Version    string     `json:"version"`
	Objective  string     `json:"objective"`
	TotalCoins int        `json:"total_coins"`
	MassGrams  float64    `json:"mass_g"`
	DiameterMM float64    `json:"diameter_mm"`
	AreaMM2    float64    `json:"area_mm2"`
	Coins      []CoinLine `json:"coins"`
}

// CoinLine is one denomination entry of a Change document.
type CoinLine struct {
	Code  string `json:"code"`
	Value int    `json:"value"`
	Count int    `json:"count"`
}

// NewChange assembles the document for a solve outcome.
func NewChange(sys *coins.System, amount int, res coins.Result, version string) Change {
	mass, _ := coins.TotalMass(sys, res.Counts)
	diam, _ := coins.TotalDiameter(sys, res.Counts)
	area, _ := coins.TotalArea(sys, res.Counts)

	doc := Change{
		System:     sys.Name,
		Amount:     amount,
		Strategy:   string(res.Strategy),
		Version:    version,
		Objective:  res.Objective.String(),
		TotalCoins: coins.TotalCount(res.Counts),
		MassGrams:  mass,
		DiameterMM: diam,
		AreaMM2:    area,
		Coins:      make([]CoinLine, 0, len(sys.Coins)),
	}
	for i, d := range sys.Coins {
		count := 0
		if i < len(res.Counts) {
			count = res.Counts[i]
		}
		doc.Coins = append(doc.Coins, CoinLine{Code: d.Code, Value: d.Value, Count: count})
	}

	return doc
}

// JSON renders the document on a single line, ready for pipe consumers.
func JSON(sys *coins.System, amount int, res coins.Result, version string) ([]byte, error) {
	return json.Marshal(NewChange(sys, amount, res, version))
}
