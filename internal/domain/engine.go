package domain

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrNegativeWeight = fmt.Errorf("weight value cannot be negative: %w", ErrInvalidArgument)
	ErrNotFinite      = fmt.Errorf("value must be a finite number: %w", ErrInvalidArgument)
	ErrOverflow       = fmt.Errorf("result is out of range: %w", ErrInvalidArgument)
)

// ConversionRequest is a single conversion of Value from one unit to another
// within Domain.
type ConversionRequest struct {
	Domain Domain
	From   Unit
	To     Unit
	Value  float64
}

// Conversion is a completed request, handed to presentation layers.
type Conversion struct {
	Domain Domain
	From   Unit
	To     Unit
	Value  float64
	Result float64
}

// Engine converts magnitudes between units of the same domain.
// It holds no mutable state and is safe for concurrent use.
type Engine struct {
	rounding map[Domain]Rounding
}

type EngineOption func(*Engine)

// WithRounding overrides the rounding policy of one domain.
func WithRounding(d Domain, r Rounding) EngineOption {
	return func(e *Engine) { e.rounding[d] = r }
}

func NewEngine(opts ...EngineOption) *Engine {
	e := &Engine{rounding: DefaultRounding()}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Rounding returns the policy applied to results of d.
func (e *Engine) Rounding(d Domain) Rounding {
	return e.rounding[d]
}

// Convert applies the formula for (req.From, req.To) to req.Value.
//
// Weight values must be non-negative. Identity pairs return the value unchanged.
// Units outside req.Domain are reported as KindUnsupportedPair.
func (e *Engine) Convert(req ConversionRequest) (float64, error) {
	const op = "engine.convert"

	if req.From == nil || req.To == nil ||
		req.From.Domain() != req.Domain || req.To.Domain() != req.Domain {
		return 0, unsupportedPair(op, req.From, req.To)
	}
	if math.IsNaN(req.Value) || math.IsInf(req.Value, 0) {
		return 0, invalidArgument(op, ErrNotFinite)
	}
	if req.Domain == Weight && req.Value < 0 {
		return 0, invalidArgument(op, ErrNegativeWeight)
	}
	if req.From == req.To {
		return req.Value, nil
	}

	var (
		out float64
		err error
	)
	switch from := req.From.(type) {
	case TemperatureUnit:
		to, ok := req.To.(TemperatureUnit)
		if !ok {
			return 0, unsupportedPair(op, req.From, req.To)
		}
		out, err = convertTemperature(from, to, req.Value)
	case DistanceUnit:
		to, ok := req.To.(DistanceUnit)
		if !ok {
			return 0, unsupportedPair(op, req.From, req.To)
		}
		out, err = convertScaled(metersPerUnit, from, to, req.Value)
	case WeightUnit:
		to, ok := req.To.(WeightUnit)
		if !ok {
			return 0, unsupportedPair(op, req.From, req.To)
		}
		out, err = convertScaled(kilogramsPerUnit, from, to, req.Value)
	default:
		err = errUnknownPair
	}
	if errors.Is(err, errUnknownPair) {
		return 0, unsupportedPair(op, req.From, req.To)
	}
	if err != nil {
		return 0, invalidArgument(op, err)
	}

	if math.IsNaN(out) || math.IsInf(out, 0) {
		return 0, invalidArgument(op, ErrOverflow)
	}
	return e.rounding[req.Domain].Apply(out), nil
}

var errUnknownPair = errors.New("no formula for pair")

func convertTemperature(from, to TemperatureUnit, v float64) (float64, error) {
	f, ok := temperatureFormulas[temperaturePair{from, to}]
	if !ok {
		return 0, errUnknownPair
	}
	return f(v), nil
}

func convertScaled[U comparable](perUnit map[U]float64, from, to U, v float64) (float64, error) {
	fromFactor, ok := perUnit[from]
	if !ok {
		return 0, errUnknownPair
	}
	toFactor, ok := perUnit[to]
	if !ok || toFactor == 0 {
		return 0, errUnknownPair
	}
	return v * (fromFactor / toFactor), nil
}

// UnitKind is the set of concrete unit types. Pairing units of different
// domains through Convert does not compile.
type UnitKind interface {
	WeightUnit | TemperatureUnit | DistanceUnit
	Unit
}

// Convert is the statically typed entry point: from and to always share a domain.
func Convert[U UnitKind](e *Engine, from, to U, v float64) (float64, error) {
	return e.Convert(ConversionRequest{
		Domain: from.Domain(),
		From:   from,
		To:     to,
		Value:  v,
	})
}
