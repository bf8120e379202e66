package conversion

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Display thresholds shared by both formatters.
const (
	// ExponentialUpperBound is the magnitude at or above which values use exponential notation.
	ExponentialUpperBound = 1e9

	// ExponentialLowerBound is the magnitude below which non-zero values use exponential notation.
	ExponentialLowerBound = 0.001

	// PlainIntegerLimit is the magnitude below which whole numbers print without decimals.
	PlainIntegerLimit = 1e6
)

// formatPolicy holds the digit counts that distinguish the formatters.
type formatPolicy struct {
	// mantissaDigits is the number of mantissa decimals in exponential notation.
	mantissaDigits int

	// wholeDecimals is the decimal places kept when |v| >= 1.
	wholeDecimals int

	// fractionDecimals is the decimal places kept when |v| < 1.
	fractionDecimals int
}

//nolint:gochecknoglobals // Immutable formatting policies.
var (
	primaryPolicy = formatPolicy{mantissaDigits: 3, wholeDecimals: 6, fractionDecimals: 8}
	historyPolicy = formatPolicy{mantissaDigits: 2, wholeDecimals: 6, fractionDecimals: 6}
)

// FormatNumber renders a conversion result for the main display.
//
//   - NaN and infinities render as "0".
//   - |v| >= 1e9 or 0 < |v| < 0.001 use exponential notation with a 3-decimal
//     mantissa, e.g. "1.235e+9".
//   - Whole numbers below 1e6 print as plain integers.
//   - Everything else is rounded to 6 decimals (|v| >= 1) or 8 decimals
//     (|v| < 1) and printed in its shortest form, so trailing zeros vanish.
//
// FormatNumber never fails.
func FormatNumber(v float64) string {
	return primaryPolicy.format(v)
}

// FormatHistoryValue renders a value for history listings. It follows
// FormatNumber but uses a 2-decimal mantissa and at most 6 decimal places.
func FormatHistoryValue(v float64) string {
	return historyPolicy.format(v)
}

func (p formatPolicy) format(v float64) string {
	if !isFinite(v) || v == 0 {
		return "0"
	}

	abs := math.Abs(v)
	if abs >= ExponentialUpperBound || abs < ExponentialLowerBound {
		return formatExponential(v, p.mantissaDigits)
	}

	if v == math.Trunc(v) && abs < PlainIntegerLimit {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}

	places := p.wholeDecimals
	if abs < 1 {
		places = p.fractionDecimals
	}

	fixed := strconv.FormatFloat(v, 'f', places, 64)
	rounded, err := strconv.ParseFloat(fixed, 64)
	if err != nil {
		return fixed
	}
	return strconv.FormatFloat(rounded, 'f', -1, 64)
}

// formatExponential renders v as "d.ddde+N": a fixed number of mantissa
// decimals and an exponent with an explicit sign and no zero padding.
func formatExponential(v float64, digits int) string {
	s := strconv.FormatFloat(v, 'e', digits, 64)

	mantissa, exp, found := strings.Cut(s, "e")
	if !found {
		return s
	}

	n, err := strconv.Atoi(exp)
	if err != nil {
		return s
	}
	return fmt.Sprintf("%se%+d", mantissa, n)
}
