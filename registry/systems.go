package registry

import "github.com/Oichkatzelesfrettschen/CoinSorter/coins"

// Built-in currency tables. Values are in the system's smallest unit
// (cents, jiao); mass is grams, diameter millimeters. Every slice is
// strictly descending by value, as package coins requires.

var usdCoins = []coins.Denomination{
	{Value: 25, Code: "25c", Name: "quarter", MassGrams: 5.670, DiameterMM: 24.26, Composition: "8.33% Ni bal Cu (clad)"},
	{Value: 10, Code: "10c", Name: "dime", MassGrams: 2.268, DiameterMM: 17.91, Composition: "8.33% Ni bal Cu (clad)"},
	{Value: 5, Code: "5c", Name: "nickel", MassGrams: 5.000, DiameterMM: 21.21, Composition: "25% Ni bal Cu"},
	{Value: 1, Code: "1c", Name: "penny", MassGrams: 2.500, DiameterMM: 19.05, Composition: "2.5% Cu 97.5% Zn (plated)"},
}

var eurCoins = []coins.Denomination{
	{Value: 200, Code: "2e", Name: "2 euro", MassGrams: 8.500, DiameterMM: 25.75, Composition: "Bi-metal: Ni brass/Cu-Ni"},
	{Value: 100, Code: "1e", Name: "1 euro", MassGrams: 7.500, DiameterMM: 23.25, Composition: "Bi-metal: Cu-Ni/Ni brass"},
	{Value: 50, Code: "50c", Name: "50 cent", MassGrams: 7.800, DiameterMM: 24.25, Composition: "Nordic gold"},
	{Value: 20, Code: "20c", Name: "20 cent", MassGrams: 5.740, DiameterMM: 22.25, Composition: "Nordic gold"},
	{Value: 10, Code: "10c", Name: "10 cent", MassGrams: 4.100, DiameterMM: 19.75, Composition: "Nordic gold"},
	{Value: 5, Code: "5c", Name: "5 cent", MassGrams: 3.920, DiameterMM: 21.25, Composition: "Cu plated steel"},
	{Value: 2, Code: "2c", Name: "2 cent", MassGrams: 3.060, DiameterMM: 18.75, Composition: "Cu plated steel"},
	{Value: 1, Code: "1c", Name: "1 cent", MassGrams: 2.300, DiameterMM: 16.25, Composition: "Cu plated steel"},
}

// cadCoins includes the discontinued 1c so historic amounts stay exact.
var cadCoins = []coins.Denomination{
	{Value: 200, Code: "2d", Name: "toonie", MassGrams: 6.92, DiameterMM: 28.00, Composition: "Bi-metal Ni/Al-bronze"},
	{Value: 100, Code: "1d", Name: "loonie", MassGrams: 6.27, DiameterMM: 26.50, Composition: "Multi-ply brass plated steel"},
	{Value: 25, Code: "25c", Name: "quarter", MassGrams: 4.40, DiameterMM: 23.88, Composition: "Multi-ply Ni plated steel"},
	{Value: 10, Code: "10c", Name: "dime", MassGrams: 1.75, DiameterMM: 18.03, Composition: "Multi-ply Ni plated steel"},
	{Value: 5, Code: "5c", Name: "nickel", MassGrams: 3.95, DiameterMM: 21.20, Composition: "Multi-ply Ni plated steel"},
	{Value: 1, Code: "1c", Name: "penny", MassGrams: 2.35, DiameterMM: 19.05, Composition: "Cu plated Zn (discontinued)"},
}

var audCoins = []coins.Denomination{
	{Value: 200, Code: "2d", Name: "two dollar", MassGrams: 6.60, DiameterMM: 20.50, Composition: "Al bronze"},
	{Value: 100, Code: "1d", Name: "one dollar", MassGrams: 9.00, DiameterMM: 25.00, Composition: "Al bronze"},
	{Value: 50, Code: "50c", Name: "fifty cent", MassGrams: 15.55, DiameterMM: 31.65, Composition: "Cupronickel"},
	{Value: 20, Code: "20c", Name: "twenty cent", MassGrams: 11.30, DiameterMM: 28.65, Composition: "Cupronickel"},
	{Value: 10, Code: "10c", Name: "ten cent", MassGrams: 5.65, DiameterMM: 23.60, Composition: "Cupronickel"},
	{Value: 5, Code: "5c", Name: "five cent", MassGrams: 2.83, DiameterMM: 19.41, Composition: "Cupronickel"},
}

// nzdCoins reflects the post-2006 reduced-size issue.
var nzdCoins = []coins.Denomination{
	{Value: 200, Code: "2d", Name: "two dollar", MassGrams: 10.00, DiameterMM: 26.50, Composition: "Al bronze"},
	{Value: 100, Code: "1d", Name: "one dollar", MassGrams: 8.00, DiameterMM: 23.00, Composition: "Al bronze"},
	{Value: 50, Code: "50c", Name: "fifty cent", MassGrams: 5.00, DiameterMM: 24.75, Composition: "Ni plated steel"},
	{Value: 20, Code: "20c", Name: "twenty cent", MassGrams: 4.00, DiameterMM: 21.75, Composition: "Ni plated steel"},
	{Value: 10, Code: "10c", Name: "ten cent", MassGrams: 3.30, DiameterMM: 20.50, Composition: "Cu plated steel"},
}

// cnyCoins covers the currently circulating pieces; values are in jiao.
var cnyCoins = []coins.Denomination{
	{Value: 100, Code: "1y", Name: "1 yuan", MassGrams: 6.10, DiameterMM: 25.00, Composition: "Ni plated steel"},
	{Value: 50, Code: "5j", Name: "5 jiao", MassGrams: 3.80, DiameterMM: 20.50, Composition: "Brass alloy"},
	{Value: 10, Code: "1j", Name: "1 jiao", MassGrams: 1.15, DiameterMM: 19.00, Composition: "Aluminum"},
}

// builtins is the lookup table in display order. Only usd carries the
// canonical hint; every other table must earn greedy through an audit.
var builtins = []coins.System{
	{Name: "usd", Coins: usdCoins, SmallestUnit: 1, CanonicalHint: true},
	{Name: "eur", Coins: eurCoins, SmallestUnit: 1},
	{Name: "cad", Coins: cadCoins, SmallestUnit: 1},
	{Name: "aud", Coins: audCoins, SmallestUnit: 1},
	{Name: "nzd", Coins: nzdCoins, SmallestUnit: 1},
	{Name: "cny", Coins: cnyCoins, SmallestUnit: 1},
}
