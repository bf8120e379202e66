package units

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransformKind_String(t *testing.T) {
	assert.Equal(t, "Identity", TransformIdentity.String())
	assert.Equal(t, "Factor", TransformFactor.String())
	assert.Equal(t, "Divisor", TransformDivisor.String())
	assert.Equal(t, "Offset", TransformOffset.String())
	assert.Equal(t, "Fahrenheit", TransformFahrenheit.String())
	assert.Equal(t, "TransformKind(99)", TransformKind(99).String())
}

func TestTransform(t *testing.T) {
	tests := []struct {
		name     string
		tr       Transform
		in       float64
		wantBase float64
		identity bool
	}{
		{name: "identity", tr: Identity(), in: 12.5, wantBase: 12.5, identity: true},
		{name: "factor", tr: Factor(0.3048), in: 10, wantBase: 3.048},
		{name: "unit factor is identity", tr: Factor(1), in: 7, wantBase: 7, identity: true},
		{name: "divisor", tr: Divisor(1000), in: 2500, wantBase: 2.5},
		{name: "offset", tr: Offset(273.15), in: 273.15, wantBase: 0},
		{name: "zero offset is identity", tr: Offset(0), in: 3, wantBase: 3, identity: true},
		{name: "fahrenheit freezing", tr: Fahrenheit(), in: 32, wantBase: 0},
		{name: "fahrenheit crossover", tr: Fahrenheit(), in: -40, wantBase: -40},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			base := tt.tr.ToBase(tt.in)
			assert.InDelta(t, tt.wantBase, base, 1e-12)
			assert.InDelta(t, tt.in, tt.tr.FromBase(base), 1e-12)
			assert.Equal(t, tt.identity, tt.tr.IsIdentity())
		})
	}
}

func TestNewCategory(t *testing.T) {
	meter := Unit{ID: "m", Symbol: "m", Name: "Meters", Transform: Identity()}
	foot := Unit{ID: "ft", Symbol: "ft", Name: "Feet", Transform: Factor(0.3048)}

	t.Run("single unit category", func(t *testing.T) {
		c, err := NewCategory("solo", "Solo", "", "", "", "m", meter)
		require.NoError(t, err)
		assert.Equal(t, 1, c.Len())
		from, to := c.DefaultPair()
		assert.Equal(t, "m", from)
		assert.Equal(t, "m", to)
	})

	t.Run("default pair uses first two units", func(t *testing.T) {
		c, err := NewCategory("pair", "Pair", "", "", "", "m", foot, meter)
		require.NoError(t, err)
		from, to := c.DefaultPair()
		assert.Equal(t, "ft", from)
		assert.Equal(t, "m", to)
	})

	errTests := []struct {
		name  string
		id    string
		base  string
		units []Unit
	}{
		{name: "empty id", id: "", base: "m", units: []Unit{meter}},
		{name: "no units", id: "x", base: "m"},
		{name: "duplicate unit", id: "x", base: "m", units: []Unit{meter, meter}},
		{name: "empty unit id", id: "x", base: "m", units: []Unit{meter, {Symbol: "?"}}},
		{name: "missing base", id: "x", base: "km", units: []Unit{meter}},
		{name: "non identity base", id: "x", base: "ft", units: []Unit{meter, foot}},
		{name: "zero factor", id: "x", base: "m", units: []Unit{meter, {ID: "z", Transform: Factor(0)}}},
		{name: "nan factor", id: "x", base: "m", units: []Unit{meter, {ID: "n", Transform: Factor(math.NaN())}}},
		{name: "unknown kind", id: "x", base: "m", units: []Unit{meter, {ID: "u", Transform: Transform{Kind: 42}}}},
	}
	for _, tt := range errTests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCategory(tt.id, "", "", "", "", tt.base, tt.units...)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidDefinition))
		})
	}
}

func TestCategory_Accessors(t *testing.T) {
	c, ok := GetCategoryByID(CategoryWeight)
	require.True(t, ok)

	assert.True(t, c.HasUnit("kg"))
	assert.False(t, c.HasUnit("stone"))

	u, ok := c.Unit("oz")
	require.True(t, ok)
	assert.Equal(t, "Ounces", u.Name)

	_, ok = c.Unit("stone")
	assert.False(t, ok)
}

func TestResolveUnitID(t *testing.T) {
	tests := []struct {
		name     string
		category string
		input    string
		want     string
		wantOK   bool
	}{
		{name: "exact id", category: CategoryLength, input: "km", want: "km", wantOK: true},
		{name: "upper case id", category: CategoryLength, input: "KM", want: "km", wantOK: true},
		{name: "surrounding space", category: CategoryLength, input: "  ft ", want: "ft", wantOK: true},
		{name: "exact symbol", category: CategorySpeed, input: "km/h", want: "kmh", wantOK: true},
		{name: "folded symbol", category: CategorySpeed, input: "M/S", want: "ms", wantOK: true},
		{name: "mach by symbol", category: CategorySpeed, input: "Mach", want: "mach", wantOK: true},
		{name: "superscript id", category: CategoryArea, input: "m²", want: "m²", wantOK: true},
		{name: "ascii square", category: CategoryArea, input: "m2", want: "m²", wantOK: true},
		{name: "ascii square upper", category: CategoryArea, input: "CM2", want: "cm²", wantOK: true},
		{name: "degree symbol", category: CategoryTemperature, input: "°F", want: "f", wantOK: true},
		{name: "kelvin symbol", category: CategoryTemperature, input: "K", want: "k", wantOK: true},
		{name: "unknown", category: CategoryLength, input: "furlong", wantOK: false},
		{name: "empty", category: CategoryLength, input: "", wantOK: false},
		{name: "unit from other category", category: CategoryLength, input: "kg", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, ok := GetCategoryByID(tt.category)
			require.True(t, ok)
			got, ok := ResolveUnitID(c, tt.input)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestInferCategory(t *testing.T) {
	tests := []struct {
		name         string
		from, to     string
		wantCategory string
		wantFrom     string
		wantTo       string
		wantOK       bool
	}{
		{name: "length", from: "mi", to: "km", wantCategory: CategoryLength, wantFrom: "mi", wantTo: "km", wantOK: true},
		{name: "celsius wins over light speed", from: "c", to: "f", wantCategory: CategoryTemperature,
			wantFrom: "c", wantTo: "f", wantOK: true},
		{name: "light speed with speed unit", from: "c", to: "mph", wantCategory: CategorySpeed,
			wantFrom: "c", wantTo: "mph", wantOK: true},
		{name: "area aliases", from: "ft2", to: "acre", wantCategory: CategoryArea,
			wantFrom: "ft²", wantTo: "acre", wantOK: true},
		{name: "mixed categories", from: "kg", to: "m", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, from, to, ok := InferCategory(tt.from, tt.to)
			require.Equal(t, tt.wantOK, ok)
			if !ok {
				return
			}
			assert.Equal(t, tt.wantCategory, c.ID)
			assert.Equal(t, tt.wantFrom, from)
			assert.Equal(t, tt.wantTo, to)
		})
	}
}
