package usecase

import (
	"context"
	"io"
	"log/slog"

	"github.com/bernardopiane/UnitConverter/internal/domain"
	"github.com/bernardopiane/UnitConverter/internal/ports"
)

// ConvertRequest is a conversion described by text, as typed on a command line.
type ConvertRequest struct {
	Domain string
	From   string
	To     string
	Input  string
}

type Convert struct {
	converter ports.Converter
	policy    domain.InputPolicy
	log       *slog.Logger
}

type ConvertOption func(*Convert)

func WithInputPolicy(p domain.InputPolicy) ConvertOption {
	return func(uc *Convert) {
		if p != "" {
			uc.policy = p
		}
	}
}

func WithLogger(l *slog.Logger) ConvertOption {
	return func(uc *Convert) {
		if l != nil {
			uc.log = l
		}
	}
}

func NewConvert(c ports.Converter, opts ...ConvertOption) *Convert {
	uc := &Convert{
		converter: c,
		policy:    domain.InputReject,
		log:       slog.New(slog.NewJSONHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Policy reports how malformed input is treated.
func (uc *Convert) Policy() domain.InputPolicy {
	return uc.policy
}

// Execute parses input and converts it from one unit of d to another.
func (uc *Convert) Execute(ctx context.Context, d domain.Domain, from, to domain.Unit, input string) (domain.Conversion, error) {
	if err := ctx.Err(); err != nil {
		return domain.Conversion{}, err
	}

	value, err := ParseValue(input, uc.policy)
	if err != nil {
		uc.log.Warn("convert.failed", "domain", string(d), "input", input, "err", err)
		return domain.Conversion{}, err
	}

	out, err := uc.converter.Convert(domain.ConversionRequest{
		Domain: d,
		From:   from,
		To:     to,
		Value:  value,
	})
	if err != nil {
		uc.log.Warn("convert.failed",
			"domain", string(d),
			"from", unitName(from),
			"to", unitName(to),
			"value", value,
			"err", err,
		)
		return domain.Conversion{}, err
	}

	uc.log.Debug("convert.ok",
		"domain", string(d),
		"from", unitName(from),
		"to", unitName(to),
		"value", value,
		"result", out,
	)

	return domain.Conversion{
		Domain: d,
		From:   from,
		To:     to,
		Value:  value,
		Result: out,
	}, nil
}

// ExecuteNamed resolves domain and unit names before converting.
func (uc *Convert) ExecuteNamed(ctx context.Context, req ConvertRequest) (domain.Conversion, error) {
	d, err := domain.ParseDomain(req.Domain)
	if err != nil {
		return domain.Conversion{}, err
	}
	from, err := domain.ParseUnit(d, req.From)
	if err != nil {
		return domain.Conversion{}, err
	}
	to, err := domain.ParseUnit(d, req.To)
	if err != nil {
		return domain.Conversion{}, err
	}
	return uc.Execute(ctx, d, from, to, req.Input)
}

func unitName(u domain.Unit) string {
	if u == nil {
		return ""
	}
	return u.Name()
}
