package domain

// Scale factors to the base unit of each linear domain.
var (
	metersPerUnit = map[DistanceUnit]float64{
		Centimeters: 0.01,
		Feet:        0.3048,
		Inches:      0.0254,
		Meters:      1,
		Miles:       1609.34,
		Yards:       0.9144,
	}

	kilogramsPerUnit = map[WeightUnit]float64{
		Kilograms: 1,
		Pounds:    1 / 2.20462,
		Ounces:    0.0283495,
	}
)

type temperaturePair struct {
	from, to TemperatureUnit
}

var temperatureFormulas = map[temperaturePair]func(float64) float64{
	{Celsius, Fahrenheit}: func(v float64) float64 { return v*1.8 + 32 },
	{Fahrenheit, Celsius}: func(v float64) float64 { return (v - 32) / 1.8 },
	{Celsius, Kelvin}:     func(v float64) float64 { return v + 273.15 },
	{Kelvin, Celsius}:     func(v float64) float64 { return v - 273.15 },
	{Fahrenheit, Kelvin}:  func(v float64) float64 { return (v + 459.67) / 1.8 },
	{Kelvin, Fahrenheit}:  func(v float64) float64 { return v*1.8 - 459.67 },
}

// BaseFactor reports how many base units (meters, kilograms) one u is worth.
// Temperature is affine and has no factor.
func BaseFactor(u Unit) (float64, bool) {
	switch x := u.(type) {
	case DistanceUnit:
		f, ok := metersPerUnit[x]
		return f, ok
	case WeightUnit:
		f, ok := kilogramsPerUnit[x]
		return f, ok
	default:
		return 0, false
	}
}
