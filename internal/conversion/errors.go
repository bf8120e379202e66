package conversion

import "fmt"

// constError is an immutable error type for sentinel errors.
// It implements the error interface and provides compile-time safety.
type constError string

func (e constError) Error() string { return string(e) }

// ErrUnknownUnit indicates a unit id that is not declared in the engine's category.
// It is a configuration defect rather than a user-input error: front ends only
// offer ids drawn from the same category.
const ErrUnknownUnit = constError("unknown unit")

// UnknownUnitError reports which unit id was missing from which category.
// It matches ErrUnknownUnit under errors.Is.
type UnknownUnitError struct {
	CategoryID string
	UnitID     string
}

func (e *UnknownUnitError) Error() string {
	return fmt.Sprintf("%s %q in category %q", ErrUnknownUnit, e.UnitID, e.CategoryID)
}

// Is reports whether target is ErrUnknownUnit.
func (e *UnknownUnitError) Is(target error) bool {
	return target == ErrUnknownUnit
}

// ErrInvalidInput indicates text that does not parse as a number.
const ErrInvalidInput = constError("invalid input")

// ErrEmptyInput indicates blank input. Front ends treat it as "nothing to
// convert yet" rather than a failure.
const ErrEmptyInput = constError("empty input")
