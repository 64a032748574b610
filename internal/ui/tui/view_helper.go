package tui

import (
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"

	"github.com/bernardopiane/UnitConverter/internal/domain"
)

func clampString(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))

	n := 0
	for _, r := range s {
		if n >= maxLen {
			break
		}
		b.WriteRune(r)
		n++
	}
	return b.String() + "…"
}

func renderTabs(t Theme, tabs []domain.Domain, active int) string {
	cells := make([]string, 0, len(tabs))
	for i, d := range tabs {
		style := t.Tab
		if i == active {
			style = t.ActiveTab
		}
		cells = append(cells, style.Render(d.Title()))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}

func unitLabel(u domain.Unit) string {
	if u == nil {
		return "-"
	}
	return u.Name() + " (" + u.Symbol() + ")"
}
