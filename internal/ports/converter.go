package ports

import "github.com/bernardopiane/UnitConverter/internal/domain"

// Converter turns a validated conversion request into a magnitude in the target unit.
type Converter interface {
	Convert(req domain.ConversionRequest) (float64, error)
}
