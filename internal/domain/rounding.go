package domain

import (
	"math"

	"github.com/shopspring/decimal"
)

// Rounding is the per-domain result precision policy of the Engine.
type Rounding struct {
	Enabled bool
	Places  int32
}

// NoRounding leaves results untouched.
func NoRounding() Rounding { return Rounding{} }

// RoundTo rounds results to places decimals, half away from zero.
func RoundTo(places int32) Rounding { return Rounding{Enabled: true, Places: places} }

// Apply rounds v through decimal arithmetic so 0.125 becomes 0.13 instead of
// whatever the nearest binary float happens to produce. NaN and infinities are
// returned unchanged.
func (r Rounding) Apply(v float64) float64 {
	if !r.Enabled || math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	out, _ := decimal.NewFromFloat(v).Round(r.Places).Float64()
	return out
}

// DefaultRounding rounds weight to two places and leaves the other domains unrounded.
func DefaultRounding() map[Domain]Rounding {
	return map[Domain]Rounding{
		Weight:      RoundTo(2),
		Temperature: NoRounding(),
		Distance:    NoRounding(),
	}
}
