package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Quit      key.Binding
	NextTab   key.Binding
	TabLeft   key.Binding
	TabRight  key.Binding
	NextField key.Binding
	PrevField key.Binding
	Open      key.Binding
	Close     key.Binding
	Swap      key.Binding
	PrevUnit  key.Binding
	NextUnit  key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Quit:      key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
		NextTab:   key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("ctrl+t", "next tab")),
		TabLeft:   key.NewBinding(key.WithKeys("["), key.WithHelp("[", "prev tab")),
		TabRight:  key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "next tab")),
		NextField: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
		PrevField: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev field")),
		Open:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "pick unit")),
		Close:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
		Swap:      key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "swap")),
		PrevUnit:  key.NewBinding(key.WithKeys("left", "up"), key.WithHelp("←/↑", "prev unit")),
		NextUnit:  key.NewBinding(key.WithKeys("right", "down"), key.WithHelp("→/↓", "next unit")),
	}
}

func helpLine(bindings ...key.Binding) string {
	out := ""
	for i, b := range bindings {
		h := b.Help()
		if i > 0 {
			out += " • "
		}
		out += h.Key + " " + h.Desc
	}
	return out
}
