package conversion

import "github.com/rshade/unitconv/internal/units"

// CommonConversion is a popular from/to pair offered as a shortcut.
type CommonConversion struct {
	From  string `json:"from"`
	To    string `json:"to"`
	Label string `json:"label"`
}

// commonConversions is the static shortcut index keyed by category id.
//
//nolint:gochecknoglobals // Read-only lookup table; callers receive copies.
var commonConversions = map[string][]CommonConversion{
	units.CategoryLength: {
		{From: "cm", To: "in", Label: "cm → inches"},
		{From: "ft", To: "m", Label: "feet → meters"},
		{From: "km", To: "mi", Label: "km → miles"},
		{From: "m", To: "ft", Label: "meters → feet"},
	},
	units.CategoryWeight: {
		{From: "kg", To: "lb", Label: "kg → pounds"},
		{From: "g", To: "oz", Label: "grams → ounces"},
		{From: "lb", To: "kg", Label: "pounds → kg"},
	},
	units.CategoryTemperature: {
		{From: "c", To: "f", Label: "°C → °F"},
		{From: "f", To: "c", Label: "°F → °C"},
		{From: "c", To: "k", Label: "°C → Kelvin"},
	},
	units.CategoryVolume: {
		{From: "l", To: "gal", Label: "liters → gallons"},
		{From: "ml", To: "cup", Label: "ml → cups"},
		{From: "gal", To: "l", Label: "gallons → liters"},
	},
	units.CategoryArea: {
		{From: "m²", To: "ft²", Label: "m² → ft²"},
		{From: "acre", To: "m²", Label: "acres → m²"},
		{From: "cm²", To: "in²", Label: "cm² → in²"},
	},
	units.CategorySpeed: {
		{From: "kmh", To: "mph", Label: "km/h → mph"},
		{From: "ms", To: "kmh", Label: "m/s → km/h"},
		{From: "mph", To: "kmh", Label: "mph → km/h"},
		{From: "knot", To: "kmh", Label: "knots → km/h"},
	},
}

// GetCommonConversions returns the shortcut pairs for categoryID in display
// order, or an empty slice for an unknown id.
func GetCommonConversions(categoryID string) []CommonConversion {
	entries := commonConversions[categoryID]
	out := make([]CommonConversion, len(entries))
	copy(out, entries)
	return out
}
