// Package conversion converts values between units of one category and
// formats the results for display.
//
// Every conversion is routed through the category's base unit and the result
// is rounded to SignificantDigits significant figures, which removes the noise
// chained float transforms introduce while keeping precision across very
// different scales (millimeters to miles, milligrams to tons).
//
// The package is pure: no I/O, no logging, no shared mutable state.
package conversion

import (
	"math"

	"github.com/rshade/unitconv/internal/units"
)

// SignificantDigits is the number of significant figures Convert keeps.
const SignificantDigits = 10

// Engine converts values between the units of a single category.
// An Engine is immutable and safe for concurrent use.
type Engine struct {
	category units.Category
}

// NewEngine binds an Engine to c. Any valid category is accepted, including
// one with a single unit.
func NewEngine(c units.Category) *Engine {
	return &Engine{category: c}
}

// Category returns the category the engine is bound to.
func (e *Engine) Category() units.Category {
	return e.category
}

// Convert converts value from the unit fromUnitID to the unit toUnitID.
//
// A NaN or infinite value returns 0 with no error: a half-typed number in an
// input field collapses to zero instead of propagating into the display. This
// check runs before the unit ids are validated. A result that overflows to
// infinity is clamped the same way.
//
// An id missing from the category returns an *UnknownUnitError.
func (e *Engine) Convert(value float64, fromUnitID, toUnitID string) (float64, error) {
	if !isFinite(value) {
		return 0, nil
	}

	from, ok := e.category.Unit(fromUnitID)
	if !ok {
		return 0, &UnknownUnitError{CategoryID: e.category.ID, UnitID: fromUnitID}
	}
	to, ok := e.category.Unit(toUnitID)
	if !ok {
		return 0, &UnknownUnitError{CategoryID: e.category.ID, UnitID: toUnitID}
	}

	target := to.FromBase(from.ToBase(value))
	if !isFinite(target) {
		return 0, nil
	}

	return RoundToSignificant(target, SignificantDigits), nil
}

// Evaluate runs Convert and packages the outcome as a Result.
func (e *Engine) Evaluate(value float64, fromUnitID, toUnitID string) (Result, error) {
	out, err := e.Convert(value, fromUnitID, toUnitID)
	if err != nil {
		return Result{}, err
	}
	return Result{
		Category:  e.category.ID,
		FromValue: value,
		FromUnit:  fromUnitID,
		ToValue:   out,
		ToUnit:    toUnitID,
	}, nil
}

// AvailableUnits returns the category's units in declaration order.
func (e *Engine) AvailableUnits() []units.Unit {
	return e.category.Units()
}

// UnitName returns the display name of unitID, or unitID itself when the
// category does not declare it.
func (e *Engine) UnitName(unitID string) string {
	if u, ok := e.category.Unit(unitID); ok && u.Name != "" {
		return u.Name
	}
	return unitID
}

// UnitSymbol returns the display symbol of unitID, or unitID itself when the
// category does not declare it.
func (e *Engine) UnitSymbol(unitID string) string {
	if u, ok := e.category.Unit(unitID); ok && u.Symbol != "" {
		return u.Symbol
	}
	return unitID
}

// RoundToSignificant rounds n to the given number of significant digits.
// Exact halves round toward positive infinity, so -2.5 at one digit is -2.
// Zero and non-finite values are returned unchanged, as are values so small
// that the scaling factor itself would overflow.
func RoundToSignificant(n float64, digits int) float64 {
	if n == 0 || !isFinite(n) {
		return n
	}

	const base = 10
	magnitude := decimalMagnitude(math.Abs(n))
	factor := math.Pow(base, float64(digits-1)-magnitude)

	scaled := n * factor
	if !isFinite(factor) || !isFinite(scaled) {
		return n
	}

	rounded := math.Floor(scaled+0.5) / factor
	if !isFinite(rounded) {
		return n
	}
	return rounded
}

// decimalMagnitude returns floor(log10(abs)) for abs > 0, corrected for the
// last-bit error of math.Log10 at exact powers of ten.
func decimalMagnitude(abs float64) float64 {
	const base = 10
	m := math.Floor(math.Log10(abs))
	if next := math.Pow(base, m+1); isFinite(next) && next <= abs {
		m++
	}
	if cur := math.Pow(base, m); cur > abs {
		m--
	}
	return m
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
