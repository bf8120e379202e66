package units

import (
	"fmt"
	"math"
)

// TransformKind identifies how a unit maps onto its category's base unit.
type TransformKind int

const (
	// TransformIdentity is used by base units: both directions return the value unchanged.
	TransformIdentity TransformKind = iota

	// TransformFactor multiplies into the base unit and divides out of it.
	TransformFactor

	// TransformDivisor divides into the base unit and multiplies out of it.
	// It keeps sub-unit definitions such as "1/1000 of a meter" exact in both directions.
	TransformDivisor

	// TransformOffset subtracts Param going into the base unit and adds it coming back.
	TransformOffset

	// TransformFahrenheit maps Fahrenheit onto Celsius.
	TransformFahrenheit
)

// String returns a human-readable representation of the TransformKind.
func (k TransformKind) String() string {
	switch k {
	case TransformIdentity:
		return "Identity"
	case TransformFactor:
		return "Factor"
	case TransformDivisor:
		return "Divisor"
	case TransformOffset:
		return "Offset"
	case TransformFahrenheit:
		return "Fahrenheit"
	default:
		return fmt.Sprintf("TransformKind(%d)", k)
	}
}

// Transform is an immutable conversion strategy between a unit and its base unit.
// Both directions are derived from the same Kind and Param, so they are inverses
// by construction.
type Transform struct {
	Kind  TransformKind
	Param float64
}

// Identity returns the transform used by base units.
func Identity() Transform {
	return Transform{Kind: TransformIdentity}
}

// Factor returns a transform where one unit equals f base units.
func Factor(f float64) Transform {
	return Transform{Kind: TransformFactor, Param: f}
}

// Divisor returns a transform where d units equal one base unit.
func Divisor(d float64) Transform {
	return Transform{Kind: TransformDivisor, Param: d}
}

// Offset returns a transform where the base reading is the unit reading minus o.
func Offset(o float64) Transform {
	return Transform{Kind: TransformOffset, Param: o}
}

// Fahrenheit returns the Fahrenheit-to-Celsius transform.
func Fahrenheit() Transform {
	return Transform{Kind: TransformFahrenheit}
}

// ToBase converts v from the unit into the base unit.
func (t Transform) ToBase(v float64) float64 {
	switch t.Kind {
	case TransformFactor:
		return v * t.Param
	case TransformDivisor:
		return v / t.Param
	case TransformOffset:
		return v - t.Param
	case TransformFahrenheit:
		return (v - FahrenheitOffset) * 5 / 9
	default:
		return v
	}
}

// FromBase converts v from the base unit into the unit.
func (t Transform) FromBase(v float64) float64 {
	switch t.Kind {
	case TransformFactor:
		return v / t.Param
	case TransformDivisor:
		return v * t.Param
	case TransformOffset:
		return v + t.Param
	case TransformFahrenheit:
		return v*9/5 + FahrenheitOffset
	default:
		return v
	}
}

// IsIdentity reports whether the transform leaves every value unchanged.
func (t Transform) IsIdentity() bool {
	switch t.Kind {
	case TransformIdentity:
		return true
	case TransformFactor, TransformDivisor:
		return t.Param == 1
	case TransformOffset:
		return t.Param == 0
	default:
		return false
	}
}

// validate rejects parameters that would make the transform non-invertible.
func (t Transform) validate() error {
	if math.IsNaN(t.Param) || math.IsInf(t.Param, 0) {
		return fmt.Errorf("%w: %s transform with non-finite parameter", ErrInvalidDefinition, t.Kind)
	}
	switch t.Kind {
	case TransformFactor, TransformDivisor:
		if t.Param == 0 {
			return fmt.Errorf("%w: %s transform with zero parameter", ErrInvalidDefinition, t.Kind)
		}
	case TransformIdentity, TransformOffset, TransformFahrenheit:
	default:
		return fmt.Errorf("%w: unknown transform kind %d", ErrInvalidDefinition, int(t.Kind))
	}
	return nil
}
