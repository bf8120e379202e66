package units

// Length factors, meters per unit.
const (
	MillimetersPerMeter = 1000.0
	CentimetersPerMeter = 100.0
	MetersPerKilometer  = 1000.0
	MetersPerInch       = 0.0254
	MetersPerFoot       = 0.3048
	MetersPerYard       = 0.9144
	MetersPerMile       = 1609.344
)

// Weight factors, grams per unit.
const (
	MilligramsPerGram = 1000.0
	GramsPerKilogram  = 1000.0
	GramsPerOunce     = 28.3495
	GramsPerPound     = 453.592
	GramsPerTon       = 1_000_000.0
)

// Temperature offsets relative to Celsius.
const (
	// KelvinOffset is subtracted from a Kelvin reading to obtain Celsius.
	KelvinOffset = 273.15

	// FahrenheitOffset is the Fahrenheit reading at 0 °C.
	FahrenheitOffset = 32.0
)

// Volume factors, liters per unit.
const (
	MillilitersPerLiter = 1000.0
	LitersPerCup        = 0.236588
	LitersPerPint       = 0.473176
	LitersPerQuart      = 0.946353
	LitersPerGallon     = 3.78541
)

// Area factors, square meters per unit.
const (
	SquareCentimetersPerSquareMeter = 10_000.0
	SquareMetersPerSquareKilometer  = 1_000_000.0
	SquareMetersPerSquareInch       = 0.00064516
	SquareMetersPerSquareFoot       = 0.092903
	SquareMetersPerAcre             = 4046.86
)

// Speed factors, meters per second per unit.
const (
	KilometersPerHourPerMeterPerSecond = 3.6
	MetersPerSecondPerMilePerHour      = 0.44704
	MetersPerSecondPerFootPerSecond    = 0.3048
	MetersPerSecondPerKnot             = 0.514444
	MetersPerSecondPerMach             = 343.0
	MetersPerSecondSpeedOfLight        = 299_792_458.0
)

// Category identifiers. These are persisted in history entries and must never change.
const (
	CategoryLength      = "length"
	CategoryWeight      = "weight"
	CategoryTemperature = "temperature"
	CategoryVolume      = "volume"
	CategoryArea        = "area"
	CategorySpeed       = "speed"
)
