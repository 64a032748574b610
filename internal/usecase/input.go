package usecase

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/bernardopiane/UnitConverter/internal/domain"
)

// ParseValue turns raw text into a magnitude according to policy.
// Under domain.InputZero malformed text becomes 0; otherwise it is a KindInvalidInput error.
func ParseValue(input string, policy domain.InputPolicy) (float64, error) {
	s := strings.TrimSpace(input)

	v, err := strconv.ParseFloat(s, 64)
	if err == nil && !math.IsNaN(v) && !math.IsInf(v, 0) {
		return v, nil
	}

	if policy == domain.InputZero {
		return 0, nil
	}

	return 0, &domain.OpError{
		Op:   "usecase.parse_value",
		Kind: domain.KindInvalidInput,
		Err:  fmt.Errorf("%q is not a number: %w", s, domain.ErrInvalidInput),
	}
}
