package domain

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
)

// Domain is a category of physical quantity with its own closed set of units.
type Domain string

const (
	Weight      Domain = "weight"
	Temperature Domain = "temperature"
	Distance    Domain = "distance"
)

// Domains returns every domain in display order.
func Domains() []Domain {
	return []Domain{Weight, Temperature, Distance}
}

// Title is the capitalized label used by tabs and tables.
func (d Domain) Title() string {
	switch d {
	case Weight:
		return "Weight"
	case Temperature:
		return "Temperature"
	case Distance:
		return "Distance"
	default:
		return string(d)
	}
}

// Unit is one measurement scale within a Domain.
type Unit interface {
	Domain() Domain
	Name() string
	Symbol() string
}

// WeightUnit enumerates units of the Weight domain.
type WeightUnit string

const (
	Kilograms WeightUnit = "KILOGRAMS"
	Pounds    WeightUnit = "POUNDS"
	Ounces    WeightUnit = "OUNCES"
)

func (u WeightUnit) Domain() Domain { return Weight }
func (u WeightUnit) Name() string   { return string(u) }
func (u WeightUnit) String() string { return u.Symbol() }

func (u WeightUnit) Symbol() string {
	switch u {
	case Kilograms:
		return "kg"
	case Pounds:
		return "lb"
	case Ounces:
		return "oz"
	default:
		return string(u)
	}
}

// TemperatureUnit enumerates units of the Temperature domain.
type TemperatureUnit string

const (
	Celsius    TemperatureUnit = "CELSIUS"
	Fahrenheit TemperatureUnit = "FAHRENHEIT"
	Kelvin     TemperatureUnit = "KELVIN"
)

func (u TemperatureUnit) Domain() Domain { return Temperature }
func (u TemperatureUnit) Name() string   { return string(u) }
func (u TemperatureUnit) String() string { return u.Symbol() }

func (u TemperatureUnit) Symbol() string {
	switch u {
	case Celsius:
		return "°C"
	case Fahrenheit:
		return "°F"
	case Kelvin:
		return "K"
	default:
		return string(u)
	}
}

// DistanceUnit enumerates units of the Distance domain.
type DistanceUnit string

const (
	Centimeters DistanceUnit = "CENTIMETERS"
	Feet        DistanceUnit = "FEET"
	Inches      DistanceUnit = "INCHES"
	Meters      DistanceUnit = "METERS"
	Miles       DistanceUnit = "MILES"
	Yards       DistanceUnit = "YARDS"
)

func (u DistanceUnit) Domain() Domain { return Distance }
func (u DistanceUnit) Name() string   { return string(u) }
func (u DistanceUnit) String() string { return u.Symbol() }

func (u DistanceUnit) Symbol() string {
	switch u {
	case Centimeters:
		return "cm"
	case Feet:
		return "ft"
	case Inches:
		return "in"
	case Meters:
		return "m"
	case Miles:
		return "mi"
	case Yards:
		return "yd"
	default:
		return string(u)
	}
}

func WeightUnits() []WeightUnit {
	return []WeightUnit{Kilograms, Pounds, Ounces}
}

func TemperatureUnits() []TemperatureUnit {
	return []TemperatureUnit{Celsius, Fahrenheit, Kelvin}
}

func DistanceUnits() []DistanceUnit {
	return []DistanceUnit{Centimeters, Feet, Inches, Meters, Miles, Yards}
}

// UnitsOf returns the units of d in display order, or nil for an unknown domain.
func UnitsOf(d Domain) []Unit {
	switch d {
	case Weight:
		return toUnits(WeightUnits())
	case Temperature:
		return toUnits(TemperatureUnits())
	case Distance:
		return toUnits(DistanceUnits())
	default:
		return nil
	}
}

func toUnits[U Unit](in []U) []Unit {
	return lo.Map(in, func(u U, _ int) Unit { return u })
}

// ParseDomain resolves a domain name, case-insensitive.
func ParseDomain(s string) (Domain, error) {
	in := strings.ToLower(strings.TrimSpace(s))
	for _, d := range Domains() {
		if string(d) == in {
			return d, nil
		}
	}
	return "", invalidArgument("domain.parse_domain", fmt.Errorf("unknown domain %q: %w", s, ErrInvalidArgument))
}

var unitAliases = map[Domain]map[string]Unit{
	Weight: {
		"kilogram": Kilograms, "kilo": Kilograms, "kgs": Kilograms,
		"pound": Pounds, "lbs": Pounds,
		"ounce": Ounces,
	},
	Temperature: {
		"c": Celsius, "f": Fahrenheit,
		"degc": Celsius, "degf": Fahrenheit,
	},
	Distance: {
		"centimeter": Centimeters,
		"foot": Feet, "'": Feet,
		"inch": Inches, "\"": Inches,
		"meter": Meters, "metre": Meters, "metres": Meters,
		"mile": Miles,
		"yard": Yards,
	},
}

// ParseUnit resolves text to a unit of d. It accepts the enum name, the symbol,
// and a few common aliases, all case-insensitive.
func ParseUnit(d Domain, s string) (Unit, error) {
	in := strings.ToLower(strings.TrimSpace(s))
	if in == "" {
		return nil, invalidArgument("domain.parse_unit", fmt.Errorf("empty %s unit: %w", d, ErrInvalidArgument))
	}

	units := UnitsOf(d)
	if units == nil {
		return nil, invalidArgument("domain.parse_unit", fmt.Errorf("unknown domain %q: %w", d, ErrInvalidArgument))
	}

	if u, ok := lo.Find(units, func(u Unit) bool {
		return strings.ToLower(u.Name()) == in || strings.ToLower(u.Symbol()) == in
	}); ok {
		return u, nil
	}
	if u, ok := unitAliases[d][in]; ok {
		return u, nil
	}

	return nil, invalidArgument("domain.parse_unit", fmt.Errorf("unknown %s unit %q: %w", d, s, ErrInvalidArgument))
}

// IndexOf returns the position of u within its domain's unit list, or -1.
func IndexOf(u Unit) int {
	if u == nil {
		return -1
	}
	return lo.IndexOf(UnitsOf(u.Domain()), u)
}
