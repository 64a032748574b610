package usecase

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/bernardopiane/UnitConverter/internal/domain"
)

// stubConverter returns a fixed result/error pair and captures the request.
type stubConverter struct {
	out  float64
	err  error
	last domain.ConversionRequest
	n    int
}

func (s *stubConverter) Convert(req domain.ConversionRequest) (float64, error) {
	s.last = req
	s.n++
	return s.out, s.err
}

func TestConvert_EndToEndCelsiusToFahrenheit(t *testing.T) {
	uc := NewConvert(domain.NewEngine())

	got, err := uc.ExecuteNamed(context.Background(), ConvertRequest{
		Domain: "temperature",
		From:   "CELSIUS",
		To:     "FAHRENHEIT",
		Input:  "100",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Result != 212 {
		t.Fatalf("expected 212, got %v", got.Result)
	}
	if got.From != domain.Celsius || got.To != domain.Fahrenheit || got.Value != 100 {
		t.Fatalf("unexpected conversion %+v", got)
	}
}

func TestConvert_PassesRequestToConverter(t *testing.T) {
	stub := &stubConverter{out: 3}
	uc := NewConvert(stub)

	got, err := uc.Execute(context.Background(), domain.Distance, domain.Feet, domain.Yards, " 9 ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Result != 3 {
		t.Fatalf("expected stub result, got %v", got.Result)
	}
	want := domain.ConversionRequest{Domain: domain.Distance, From: domain.Feet, To: domain.Yards, Value: 9}
	if stub.last != want {
		t.Fatalf("expected request %+v, got %+v", want, stub.last)
	}
}

func TestConvert_RejectsMalformedInputByDefault(t *testing.T) {
	stub := &stubConverter{}
	uc := NewConvert(stub)

	_, err := uc.Execute(context.Background(), domain.Weight, domain.Kilograms, domain.Pounds, "12abc")
	if !domain.IsKind(err, domain.KindInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
	if stub.n != 0 {
		t.Fatalf("converter must not be called for malformed input")
	}
}

func TestConvert_ZeroPolicyCoercesMalformedInput(t *testing.T) {
	stub := &stubConverter{out: 0}
	uc := NewConvert(stub, WithInputPolicy(domain.InputZero))

	got, err := uc.Execute(context.Background(), domain.Weight, domain.Kilograms, domain.Pounds, "abc")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stub.last.Value != 0 || got.Value != 0 {
		t.Fatalf("expected value coerced to 0, got %v", stub.last.Value)
	}
	if uc.Policy() != domain.InputZero {
		t.Fatalf("expected zero policy")
	}
}

func TestConvert_PropagatesEngineErrors(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	uc := NewConvert(domain.NewEngine(), WithLogger(log))

	_, err := uc.Execute(context.Background(), domain.Weight, domain.Kilograms, domain.Pounds, "-1")
	if !domain.IsKind(err, domain.KindInvalidArgument) {
		t.Fatalf("expected invalid argument, got %v", err)
	}
	if !strings.Contains(buf.String(), "convert.failed") {
		t.Fatalf("expected failure to be logged, got %q", buf.String())
	}
}

func TestConvert_LogsSuccessAtDebug(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	uc := NewConvert(domain.NewEngine(), WithLogger(log))

	if _, err := uc.Execute(context.Background(), domain.Distance, domain.Miles, domain.Meters, "1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(buf.String(), `"msg":"convert.ok"`) {
		t.Fatalf("expected convert.ok log, got %q", buf.String())
	}
}

func TestConvert_ExecuteNamedRejectsUnknownNames(t *testing.T) {
	uc := NewConvert(domain.NewEngine())
	ctx := context.Background()

	cases := []ConvertRequest{
		{Domain: "volume", From: "l", To: "ml", Input: "1"},
		{Domain: "weight", From: "stone", To: "kg", Input: "1"},
		{Domain: "weight", From: "kg", To: "°C", Input: "1"},
	}
	for _, c := range cases {
		if _, err := uc.ExecuteNamed(ctx, c); !domain.IsKind(err, domain.KindInvalidArgument) {
			t.Errorf("%+v: expected invalid argument, got %v", c, err)
		}
	}
}

func TestConvert_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	stub := &stubConverter{}
	_, err := NewConvert(stub).Execute(ctx, domain.Weight, domain.Kilograms, domain.Pounds, "1")
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestParseValue(t *testing.T) {
	cases := []struct {
		input   string
		policy  domain.InputPolicy
		want    float64
		wantErr bool
	}{
		{"100", domain.InputReject, 100, false},
		{" -40.5 ", domain.InputReject, -40.5, false},
		{"+1e3", domain.InputReject, 1000, false},
		{"", domain.InputReject, 0, true},
		{"NaN", domain.InputReject, 0, true},
		{"Inf", domain.InputReject, 0, true},
		{"1e400", domain.InputReject, 0, true},
		{"1,5", domain.InputReject, 0, true},
		{"1,5", domain.InputZero, 0, false},
		{"", domain.InputZero, 0, false},
	}
	for _, c := range cases {
		got, err := ParseValue(c.input, c.policy)
		if c.wantErr {
			if !domain.IsKind(err, domain.KindInvalidInput) {
				t.Errorf("ParseValue(%q, %s): expected invalid input, got %v", c.input, c.policy, err)
			}
			continue
		}
		if err != nil || got != c.want {
			t.Errorf("ParseValue(%q, %s) = %v, %v; want %v", c.input, c.policy, got, err, c.want)
		}
	}
}
