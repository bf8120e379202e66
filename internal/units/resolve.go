package units

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// foldKey normalizes user-typed unit text for lenient matching.
// NFKC maps compatibility characters onto plain ones ("m²" becomes "m2"),
// and case folding removes case differences ("KM/H" matches "km/h").
func foldKey(s string) string {
	return cases.Fold().String(norm.NFKC.String(strings.TrimSpace(s)))
}

// ResolveUnitID maps user-typed text onto a unit id of the category.
//
// Matching order: exact id, exact symbol, then id and symbol compared after
// Unicode compatibility normalization and case folding. The first match in
// declaration order wins. Conversions themselves always take exact ids; this
// is only for input layers.
func ResolveUnitID(c Category, input string) (string, bool) {
	if c.HasUnit(input) {
		return input, true
	}

	for _, u := range c.units {
		if u.Symbol == input {
			return u.ID, true
		}
	}

	key := foldKey(input)
	if key == "" {
		return "", false
	}

	for _, u := range c.units {
		if foldKey(u.ID) == key {
			return u.ID, true
		}
	}
	for _, u := range c.units {
		if foldKey(u.Symbol) == key {
			return u.ID, true
		}
	}

	return "", false
}

// InferCategory finds the first built-in category, in declaration order, in
// which both inputs resolve to units. It returns the category and the
// resolved unit ids.
func InferCategory(fromInput, toInput string) (Category, string, string, bool) {
	for _, c := range catalog {
		from, ok := ResolveUnitID(c, fromInput)
		if !ok {
			continue
		}
		to, ok := ResolveUnitID(c, toInput)
		if !ok {
			continue
		}
		return c, from, to, true
	}
	return Category{}, "", "", false
}
