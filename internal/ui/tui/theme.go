package tui

import "github.com/charmbracelet/lipgloss"

type Theme struct {
	Title     lipgloss.Style
	Subtitle  lipgloss.Style
	Help      lipgloss.Style
	Card      lipgloss.Style
	Tab       lipgloss.Style
	ActiveTab lipgloss.Style
	Label     lipgloss.Style
	Focused   lipgloss.Style
	Result    lipgloss.Style
	Error     lipgloss.Style
}

func DefaultTheme() Theme {
	return Theme{
		Title:    lipgloss.NewStyle().Bold(true),
		Subtitle: lipgloss.NewStyle().Faint(true),
		Help:     lipgloss.NewStyle().Faint(true),
		Card: lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")),
		Tab: lipgloss.NewStyle().
			Padding(0, 2).
			Faint(true),
		ActiveTab: lipgloss.NewStyle().
			Padding(0, 2).
			Bold(true).
			Underline(true).
			Foreground(lipgloss.Color("63")),
		Label:   lipgloss.NewStyle().Width(8),
		Focused: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212")),
		Result:  lipgloss.NewStyle().Bold(true),
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
	}
}
