package analytics

import "strings"

// ToGrams converts a quantity in the given unit to grams using a fixed
// approximation table. Liquids assume a density of 1 g/ml; count-style units
// use average weights. Unknown units fall back to 100 g per unit, so the
// result is always usable even when lossy.
func (t Tables) ToGrams(quantity float64, unit string) float64 {
	multiplier, ok := t.UnitGrams[strings.ToLower(unit)]
	if !ok {
		multiplier = DefaultUnitGrams
	}
	return quantity * multiplier
}
