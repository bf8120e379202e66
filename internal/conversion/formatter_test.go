package conversion

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		name string
		v    float64
		want string
	}{
		{name: "zero", v: 0, want: "0"},
		{name: "negative zero", v: math.Copysign(0, -1), want: "0"},
		{name: "nan", v: math.NaN(), want: "0"},
		{name: "positive infinity", v: math.Inf(1), want: "0"},
		{name: "negative infinity", v: math.Inf(-1), want: "0"},
		{name: "small integer", v: 5, want: "5"},
		{name: "negative integer", v: -212, want: "-212"},
		{name: "integer below plain limit", v: 999999, want: "999999"},
		{name: "integer at plain limit", v: 1_000_000, want: "1000000"},
		{name: "large integer", v: 123456789, want: "123456789"},
		{name: "rounds to six places", v: 5.123456789, want: "5.123457"},
		{name: "strips trailing zeros", v: 2.5, want: "2.5"},
		{name: "fraction uses eight places", v: 0.123456789123, want: "0.12345679"},
		{name: "fraction at lower bound", v: 0.001, want: "0.001"},
		{name: "negative fraction", v: -0.75, want: "-0.75"},
		{name: "rounding removes noise", v: 0.30000000000000004, want: "0.3"},
		{name: "kg to lb", v: 2.204622622, want: "2.204623"},
		{name: "one billion", v: 1_000_000_000, want: "1.000e+9"},
		{name: "large exponential", v: 1234567890, want: "1.235e+9"},
		{name: "speed of light squared", v: 8.987551787e16, want: "8.988e+16"},
		{name: "negative large", v: -5e12, want: "-5.000e+12"},
		{name: "tiny", v: 0.0001, want: "1.000e-4"},
		{name: "tiny negative", v: -0.00012346, want: "-1.235e-4"},
		{name: "very tiny", v: 6.2137e-11, want: "6.214e-11"},
		{name: "mantissa rounds up", v: 9.9996e9, want: "1.000e+10"},
		{name: "max float", v: math.MaxFloat64, want: "1.798e+308"},
		{name: "smallest subnormal", v: math.SmallestNonzeroFloat64, want: "4.941e-324"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatNumber(tt.v))
		})
	}
}

func TestFormatHistoryValue(t *testing.T) {
	tests := []struct {
		name string
		v    float64
		want string
	}{
		{name: "zero", v: 0, want: "0"},
		{name: "nan", v: math.NaN(), want: "0"},
		{name: "integer", v: 42, want: "42"},
		{name: "two digit mantissa large", v: 1234567890, want: "1.23e+9"},
		{name: "two digit mantissa small", v: 0.00012345, want: "1.23e-4"},
		{name: "six places for fractions", v: 0.123456789, want: "0.123457"},
		{name: "six places for whole part", v: 3.14159265, want: "3.141593"},
		{name: "trailing zeros stripped", v: 1.5, want: "1.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatHistoryValue(tt.v))
		})
	}
}

func TestFormatNumber_NeverEmpty(t *testing.T) {
	values := []float64{
		math.MaxFloat64, -math.MaxFloat64, math.SmallestNonzeroFloat64,
		1e-300, 1e300, 0.999999999, 999999.9999999, 1e6 + 0.5,
	}
	for _, v := range values {
		assert.NotEmpty(t, FormatNumber(v), "value %g", v)
		assert.NotEmpty(t, FormatHistoryValue(v), "value %g", v)
	}
}
