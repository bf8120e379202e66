package conversion

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ParseValue parses user-typed numeric text. Surrounding whitespace is
// ignored. Blank text yields ErrEmptyInput; anything that is not a number
// yields ErrInvalidInput. Magnitudes beyond float64 range parse to ±Inf so
// they reach Convert, which clamps them to zero.
func ParseValue(text string) (float64, error) {
	s := strings.TrimSpace(text)
	if s == "" {
		return 0, ErrEmptyInput
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return v, nil
		}
		return 0, fmt.Errorf("%w: %q is not a number", ErrInvalidInput, s)
	}
	return v, nil
}
