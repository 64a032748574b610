package tui

import (
	"log/slog"

	"github.com/bernardopiane/UnitConverter/internal/domain"
	"github.com/bernardopiane/UnitConverter/internal/usecase"
)

type Deps struct {
	Converter *usecase.Convert
	Config    domain.Config

	Logger *slog.Logger
	Debug  bool
}
