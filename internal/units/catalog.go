package units

// catalog holds the built-in categories in declaration order.
//
//nolint:gochecknoglobals // Immutable catalog built once at startup; exposed only through accessors.
var catalog = mustBuildCatalog()

// catalogIndex maps category ids to their position in catalog.
//
//nolint:gochecknoglobals // Derived from catalog and never mutated.
var catalogIndex = indexCatalog(catalog)

// GetCategoryByID returns the built-in category with the given id.
// Unknown ids are routine (for example an id taken from user input), so the
// miss is reported through the boolean rather than an error.
func GetCategoryByID(id string) (Category, bool) {
	i, ok := catalogIndex[id]
	if !ok {
		return Category{}, false
	}
	return catalog[i], true
}

// AllCategories returns every built-in category in declaration order:
// length, weight, temperature, volume, area, speed.
func AllCategories() []Category {
	out := make([]Category, len(catalog))
	copy(out, catalog)
	return out
}

// CategoryIDs returns the built-in category ids in declaration order.
func CategoryIDs() []string {
	ids := make([]string, len(catalog))
	for i, c := range catalog {
		ids[i] = c.ID
	}
	return ids
}

func indexCatalog(categories []Category) map[string]int {
	idx := make(map[string]int, len(categories))
	for i, c := range categories {
		idx[c.ID] = i
	}
	return idx
}

// mustBuildCatalog panics if a built-in definition is invalid. The definitions
// are compile-time constants, so a failure here is a programming error.
func mustBuildCatalog() []Category {
	defs := []func() (Category, error){
		lengthCategory,
		weightCategory,
		temperatureCategory,
		volumeCategory,
		areaCategory,
		speedCategory,
	}

	out := make([]Category, 0, len(defs))
	for _, def := range defs {
		c, err := def()
		if err != nil {
			panic(err)
		}
		out = append(out, c)
	}
	return out
}

func lengthCategory() (Category, error) {
	return NewCategory(
		CategoryLength,
		"Length",
		"Convert between different units of length and distance",
		"📏",
		"from-yellow-400 via-orange-400 to-orange-500",
		"m",
		Unit{ID: "mm", Symbol: "mm", Name: "Millimeters", Transform: Divisor(MillimetersPerMeter)},
		Unit{ID: "cm", Symbol: "cm", Name: "Centimeters", Transform: Divisor(CentimetersPerMeter)},
		Unit{ID: "m", Symbol: "m", Name: "Meters", Transform: Identity()},
		Unit{ID: "km", Symbol: "km", Name: "Kilometers", Transform: Factor(MetersPerKilometer)},
		Unit{ID: "in", Symbol: "in", Name: "Inches", Transform: Factor(MetersPerInch)},
		Unit{ID: "ft", Symbol: "ft", Name: "Feet", Transform: Factor(MetersPerFoot)},
		Unit{ID: "yd", Symbol: "yd", Name: "Yards", Transform: Factor(MetersPerYard)},
		Unit{ID: "mi", Symbol: "mi", Name: "Miles", Transform: Factor(MetersPerMile)},
	)
}

func weightCategory() (Category, error) {
	return NewCategory(
		CategoryWeight,
		"Weight",
		"Convert between different units of weight and mass",
		"⚖️",
		"from-amber-400 via-orange-500 to-orange-600",
		"g",
		Unit{ID: "mg", Symbol: "mg", Name: "Milligrams", Transform: Divisor(MilligramsPerGram)},
		Unit{ID: "g", Symbol: "g", Name: "Grams", Transform: Identity()},
		Unit{ID: "kg", Symbol: "kg", Name: "Kilograms", Transform: Factor(GramsPerKilogram)},
		Unit{ID: "oz", Symbol: "oz", Name: "Ounces", Transform: Factor(GramsPerOunce)},
		Unit{ID: "lb", Symbol: "lb", Name: "Pounds", Transform: Factor(GramsPerPound)},
		Unit{ID: "ton", Symbol: "ton", Name: "Tons", Transform: Factor(GramsPerTon)},
	)
}

func temperatureCategory() (Category, error) {
	return NewCategory(
		CategoryTemperature,
		"Temperature",
		"Convert between Celsius, Fahrenheit, and Kelvin",
		"🌡️",
		"from-yellow-500 via-orange-500 to-red-500",
		"c",
		Unit{ID: "c", Symbol: "°C", Name: "Celsius", Transform: Identity()},
		Unit{ID: "f", Symbol: "°F", Name: "Fahrenheit", Transform: Fahrenheit()},
		Unit{ID: "k", Symbol: "K", Name: "Kelvin", Transform: Offset(KelvinOffset)},
	)
}

func volumeCategory() (Category, error) {
	return NewCategory(
		CategoryVolume,
		"Volume",
		"Convert between different units of volume and capacity",
		"🧪",
		"from-amber-400 via-yellow-500 to-orange-500",
		"l",
		Unit{ID: "ml", Symbol: "ml", Name: "Milliliters", Transform: Divisor(MillilitersPerLiter)},
		Unit{ID: "l", Symbol: "l", Name: "Liters", Transform: Identity()},
		Unit{ID: "cup", Symbol: "cup", Name: "Cups", Transform: Factor(LitersPerCup)},
		Unit{ID: "pt", Symbol: "pt", Name: "Pints", Transform: Factor(LitersPerPint)},
		Unit{ID: "qt", Symbol: "qt", Name: "Quarts", Transform: Factor(LitersPerQuart)},
		Unit{ID: "gal", Symbol: "gal", Name: "Gallons", Transform: Factor(LitersPerGallon)},
	)
}

func areaCategory() (Category, error) {
	return NewCategory(
		CategoryArea,
		"Area",
		"Convert between different units of area and surface",
		"📐",
		"from-orange-400 via-amber-500 to-orange-600",
		"m²",
		Unit{ID: "cm²", Symbol: "cm²", Name: "Square Centimeters", Transform: Divisor(SquareCentimetersPerSquareMeter)},
		Unit{ID: "m²", Symbol: "m²", Name: "Square Meters", Transform: Identity()},
		Unit{ID: "km²", Symbol: "km²", Name: "Square Kilometers", Transform: Factor(SquareMetersPerSquareKilometer)},
		Unit{ID: "in²", Symbol: "in²", Name: "Square Inches", Transform: Factor(SquareMetersPerSquareInch)},
		Unit{ID: "ft²", Symbol: "ft²", Name: "Square Feet", Transform: Factor(SquareMetersPerSquareFoot)},
		Unit{ID: "acre", Symbol: "acre", Name: "Acres", Transform: Factor(SquareMetersPerAcre)},
	)
}

func speedCategory() (Category, error) {
	return NewCategory(
		CategorySpeed,
		"Speed",
		"Convert between different units of speed and velocity",
		"🚀",
		"from-amber-500 via-orange-500 to-yellow-500",
		"ms",
		Unit{ID: "ms", Symbol: "m/s", Name: "Meters per Second", Transform: Identity()},
		Unit{ID: "kmh", Symbol: "km/h", Name: "Kilometers per Hour",
			Transform: Divisor(KilometersPerHourPerMeterPerSecond)},
		Unit{ID: "mph", Symbol: "mph", Name: "Miles per Hour", Transform: Factor(MetersPerSecondPerMilePerHour)},
		Unit{ID: "fts", Symbol: "ft/s", Name: "Feet per Second", Transform: Factor(MetersPerSecondPerFootPerSecond)},
		Unit{ID: "knot", Symbol: "knot", Name: "Knots", Transform: Factor(MetersPerSecondPerKnot)},
		Unit{ID: "mach", Symbol: "Mach", Name: "Mach (Speed of Sound)", Transform: Factor(MetersPerSecondPerMach)},
		Unit{ID: "c", Symbol: "c", Name: "Speed of Light", Transform: Factor(MetersPerSecondSpeedOfLight)},
	)
}
