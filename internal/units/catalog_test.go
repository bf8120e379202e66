package units

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllCategories(t *testing.T) {
	categories := AllCategories()
	require.Len(t, categories, 6)

	wantIDs := []string{
		CategoryLength, CategoryWeight, CategoryTemperature,
		CategoryVolume, CategoryArea, CategorySpeed,
	}
	for i, c := range categories {
		assert.Equal(t, wantIDs[i], c.ID)
		assert.NotEmpty(t, c.Name)
		assert.NotEmpty(t, c.Description)
		assert.NotEmpty(t, c.Icon)
		assert.NotEmpty(t, c.Gradient)
		assert.Positive(t, c.Len(), "category %s has no units", c.ID)

		base, ok := c.Unit(c.BaseUnit)
		require.True(t, ok, "base unit %q missing from %s", c.BaseUnit, c.ID)
		assert.True(t, base.Transform.IsIdentity())
		for _, v := range []float64{0, 1, -42.5, 1e12, 3.3e-9} {
			assert.Equal(t, v, base.ToBase(v))
			assert.Equal(t, v, base.FromBase(v))
		}
	}

	assert.Equal(t, wantIDs, CategoryIDs())
}

func TestAllCategories_StableAndIsolated(t *testing.T) {
	first := AllCategories()
	first[0] = Category{ID: "mutated"}

	second := AllCategories()
	assert.Equal(t, CategoryLength, second[0].ID)

	units := second[0].Units()
	units[0].Name = "mutated"
	again, ok := GetCategoryByID(CategoryLength)
	require.True(t, ok)
	u, _ := again.Unit("mm")
	assert.Equal(t, "Millimeters", u.Name)
}

func TestGetCategoryByID(t *testing.T) {
	tests := []struct {
		name   string
		id     string
		wantOK bool
		base   string
	}{
		{name: "length", id: "length", wantOK: true, base: "m"},
		{name: "weight", id: "weight", wantOK: true, base: "g"},
		{name: "temperature", id: "temperature", wantOK: true, base: "c"},
		{name: "volume", id: "volume", wantOK: true, base: "l"},
		{name: "area", id: "area", wantOK: true, base: "m²"},
		{name: "speed", id: "speed", wantOK: true, base: "ms"},
		{name: "unknown", id: "energy", wantOK: false},
		{name: "empty", id: "", wantOK: false},
		{name: "case sensitive", id: "Length", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, ok := GetCategoryByID(tt.id)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.id, c.ID)
				assert.Equal(t, tt.base, c.BaseUnit)
			} else {
				assert.Empty(t, c.ID)
			}
		})
	}
}

func TestCatalogUnitOrder(t *testing.T) {
	tests := map[string][]string{
		CategoryLength:      {"mm", "cm", "m", "km", "in", "ft", "yd", "mi"},
		CategoryWeight:      {"mg", "g", "kg", "oz", "lb", "ton"},
		CategoryTemperature: {"c", "f", "k"},
		CategoryVolume:      {"ml", "l", "cup", "pt", "qt", "gal"},
		CategoryArea:        {"cm²", "m²", "km²", "in²", "ft²", "acre"},
		CategorySpeed:       {"ms", "kmh", "mph", "fts", "knot", "mach", "c"},
	}

	for id, want := range tests {
		t.Run(id, func(t *testing.T) {
			c, ok := GetCategoryByID(id)
			require.True(t, ok)
			assert.Equal(t, want, c.UnitIDs())
		})
	}
}

func TestCatalogSymbols(t *testing.T) {
	temp, _ := GetCategoryByID(CategoryTemperature)
	c, _ := temp.Unit("c")
	f, _ := temp.Unit("f")
	assert.Equal(t, "°C", c.Symbol)
	assert.Equal(t, "°F", f.Symbol)

	area, _ := GetCategoryByID(CategoryArea)
	sq, _ := area.Unit("m²")
	assert.Equal(t, "m²", sq.Symbol)

	speed, _ := GetCategoryByID(CategorySpeed)
	ms, _ := speed.Unit("ms")
	assert.Equal(t, "m/s", ms.Symbol)
}

func TestCatalogRoundTrip(t *testing.T) {
	samples := []float64{0, 1, -1, 37.5, -273.15, 1e-7, 123456.789, 9.81e15, -4.2e-12}

	for _, c := range AllCategories() {
		for _, u := range c.Units() {
			for _, v := range samples {
				base := u.ToBase(v)
				assertClose(t, v, u.FromBase(base), base, "%s/%s fromBase(toBase(%g))", c.ID, u.ID, v)
				unit := u.FromBase(v)
				assertClose(t, v, u.ToBase(unit), unit, "%s/%s toBase(fromBase(%g))", c.ID, u.ID, v)
			}
		}
	}
}

func TestCatalogKnownFactors(t *testing.T) {
	tests := []struct {
		category string
		unit     string
		value    float64
		wantBase float64
	}{
		{CategoryLength, "mm", 1000, 1},
		{CategoryLength, "mi", 1, 1609.344},
		{CategoryWeight, "ton", 1, 1_000_000},
		{CategoryWeight, "lb", 1, 453.592},
		{CategoryTemperature, "f", 212, 100},
		{CategoryTemperature, "k", 0, -273.15},
		{CategoryVolume, "gal", 1, 3.78541},
		{CategoryArea, "acre", 1, 4046.86},
		{CategorySpeed, "kmh", 36, 10},
		{CategorySpeed, "c", 1, 299792458},
	}

	for _, tt := range tests {
		t.Run(tt.category+"/"+tt.unit, func(t *testing.T) {
			c, ok := GetCategoryByID(tt.category)
			require.True(t, ok)
			u, ok := c.Unit(tt.unit)
			require.True(t, ok)
			assert.InDelta(t, tt.wantBase, u.ToBase(tt.value), 1e-9)
		})
	}
}

// assertClose compares within 1e-9 relative to the largest magnitude seen on
// the way, so offset transforms are judged against the offset they add.
func assertClose(t *testing.T, want, got, intermediate float64, msg string, args ...any) {
	t.Helper()
	const tolerance = 1e-9
	scale := math.Max(1, math.Max(math.Abs(want), math.Abs(intermediate)))
	if math.Abs(want-got) > tolerance*scale {
		t.Errorf(msg+": want %g, got %g", append(args, want, got)...)
	}
}
