package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/bernardopiane/UnitConverter/internal/domain"
	"github.com/bernardopiane/UnitConverter/internal/usecase"
)

func cmdConvert(uc *usecase.Convert, seq int, d domain.Domain, from, to domain.Unit, input string) tea.Cmd {
	return func() tea.Msg {
		if uc == nil {
			return convertedMsg{seq: seq, err: errors.New("converter is nil")}
		}
		conv, err := uc.Execute(context.Background(), d, from, to, input)
		return convertedMsg{seq: seq, conv: conv, err: err}
	}
}
