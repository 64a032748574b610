package tui

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/samber/lo"

	"github.com/bernardopiane/UnitConverter/internal/app/template"
	"github.com/bernardopiane/UnitConverter/internal/domain"
)

type field int

const (
	fieldValue field = iota
	fieldFrom
	fieldTo
	fieldCount
)

type unitItem struct {
	unit domain.Unit
}

func (u unitItem) Title() string       { return u.unit.Name() }
func (u unitItem) Description() string { return u.unit.Symbol() }
func (u unitItem) FilterValue() string { return u.unit.Name() }

// tabState is the selection kept per domain tab.
type tabState struct {
	from  int
	to    int
	input string
}

type model struct {
	theme Theme
	deps  Deps
	keys  keyMap

	tabs   []domain.Domain
	active int
	state  []tabState

	input textinput.Model
	focus field

	picker  list.Model
	picking bool

	// seq is bumped on every recompute; only the latest result is shown.
	seq       int
	result    domain.Conversion
	hasResult bool
	errMsg    string

	width  int
	height int
}

func Run(deps Deps) error {
	m := newModel(deps)
	p := tea.NewProgram(wrapSafe(m, deps.Logger), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func newModel(deps Deps) model {
	ti := textinput.New()
	ti.Placeholder = "value"
	ti.CharLimit = 32
	ti.Width = 24
	ti.Focus()

	tabs := domain.Domains()
	state := lo.Map(tabs, func(_ domain.Domain, _ int) tabState {
		return tabState{from: 0, to: 1}
	})

	active := lo.IndexOf(tabs, deps.Config.Defaults.Domain)
	if active < 0 {
		active = 0
	}

	return model{
		theme:  DefaultTheme(),
		deps:   deps,
		keys:   defaultKeys(),
		tabs:   tabs,
		active: active,
		state:  state,
		input:  ti,
		focus:  fieldValue,
	}
}

func (m model) Init() tea.Cmd { return textinput.Blink }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		if m.picking {
			m.picker.SetSize(pickerSize(m.width, m.height))
		}
		return m, nil

	case convertedMsg:
		if msg.seq != m.seq {
			return m, nil
		}
		if msg.err != nil {
			m.hasResult = false
			m.errMsg = userMessage(msg.err)
			return m, nil
		}
		m.result = msg.conv
		m.hasResult = true
		m.errMsg = ""
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		if m.picking {
			return m.updatePicker(msg)
		}
		return m.updateKeys(msg)
	}

	if m.focus == fieldValue {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m model) updatePicker(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Close):
		m.picking = false
		return m, nil

	case key.Matches(msg, m.keys.Open):
		m.picking = false
		i := m.picker.Index()
		m.updateState(func(s *tabState) {
			if m.focus == fieldFrom {
				s.from = i
			} else {
				s.to = i
			}
		})
		return m.recompute()
	}

	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)
	return m, cmd
}

func (m model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.NextTab):
		return m.switchTab(1)

	case key.Matches(msg, m.keys.NextField):
		return m.setFocus((m.focus + 1) % fieldCount)

	case key.Matches(msg, m.keys.PrevField):
		return m.setFocus((m.focus + fieldCount - 1) % fieldCount)

	case key.Matches(msg, m.keys.Swap):
		m.updateState(func(s *tabState) {
			s.from, s.to = s.to, s.from
		})
		return m.recompute()
	}

	if m.focus == fieldValue {
		before := m.input.Value()
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		if m.input.Value() == before {
			return m, cmd
		}
		next, convert := m.recompute()
		return next, tea.Batch(cmd, convert)
	}

	switch {
	case key.Matches(msg, m.keys.TabLeft):
		return m.switchTab(-1)
	case key.Matches(msg, m.keys.TabRight):
		return m.switchTab(1)
	case key.Matches(msg, m.keys.Open):
		m.openPicker()
		return m, nil
	case key.Matches(msg, m.keys.PrevUnit):
		return m.stepUnit(-1)
	case key.Matches(msg, m.keys.NextUnit):
		return m.stepUnit(1)
	case msg.String() == "q":
		return m, tea.Quit
	}
	return m, nil
}

func (m model) setFocus(f field) (tea.Model, tea.Cmd) {
	m.focus = f
	if f == fieldValue {
		return m, m.input.Focus()
	}
	m.input.Blur()
	return m, nil
}

func (m model) switchTab(delta int) (tea.Model, tea.Cmd) {
	n := len(m.tabs)
	value := m.input.Value()
	m.updateState(func(s *tabState) { s.input = value })
	m.active = (m.active + delta + n) % n
	m.input.SetValue(m.state[m.active].input)
	m.input.CursorEnd()
	return m.recompute()
}

func (m model) stepUnit(delta int) (tea.Model, tea.Cmd) {
	n := len(m.units())
	m.updateState(func(s *tabState) {
		if m.focus == fieldFrom {
			s.from = (s.from + delta + n) % n
		} else {
			s.to = (s.to + delta + n) % n
		}
	})
	return m.recompute()
}

// updateState edits the active tab on a private copy of the state slice so
// earlier model values stay untouched.
func (m *model) updateState(fn func(*tabState)) {
	m.state = slices.Clone(m.state)
	fn(&m.state[m.active])
}

func (m *model) openPicker() {
	items := lo.Map(m.units(), func(u domain.Unit, _ int) list.Item {
		return unitItem{unit: u}
	})

	w, h := pickerSize(m.width, m.height)
	l := list.New(items, list.NewDefaultDelegate(), w, h)
	l.Title = "From"
	l.Select(m.state[m.active].from)
	if m.focus == fieldTo {
		l.Title = "To"
		l.Select(m.state[m.active].to)
	}
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)

	m.picker = l
	m.picking = true
}

// recompute schedules a conversion of the current input. Empty input clears
// the card without calling the converter.
func (m model) recompute() (tea.Model, tea.Cmd) {
	m.seq++
	m.errMsg = ""

	input := m.input.Value()
	if strings.TrimSpace(input) == "" {
		m.hasResult = false
		return m, nil
	}

	d := m.domain()
	return m, cmdConvert(m.deps.Converter, m.seq, d, m.fromUnit(), m.toUnit(), input)
}

func (m model) domain() domain.Domain { return m.tabs[m.active] }

func (m model) units() []domain.Unit { return domain.UnitsOf(m.domain()) }

func (m model) fromUnit() domain.Unit { return m.units()[m.state[m.active].from] }

func (m model) toUnit() domain.Unit { return m.units()[m.state[m.active].to] }

func (m model) View() string {
	wrap := lipgloss.NewStyle().Padding(1, 2)
	header := m.theme.Title.Render("unitconv") + "\n" +
		m.theme.Subtitle.Render("Weight, temperature and distance conversions") + "\n"

	body := renderTabs(m.theme, m.tabs, m.active) + "\n\n" + m.renderFields()
	if m.picking {
		body += "\n\n" + m.theme.Card.Render(m.picker.View())
	}
	body += "\n\n" + m.renderCard()

	var help string
	switch {
	case m.picking:
		help = helpLine(m.keys.Open, m.keys.Close)
	case m.focus == fieldValue:
		help = helpLine(m.keys.NextField, m.keys.NextTab, m.keys.Swap, m.keys.Quit)
	default:
		help = helpLine(m.keys.Open, m.keys.PrevUnit, m.keys.NextUnit, m.keys.TabLeft, m.keys.TabRight, m.keys.Swap) + " • q quit"
	}

	return wrap.Render(header + "\n" + body + "\n" + m.theme.Help.Render(help))
}

func (m model) renderFields() string {
	lines := []string{
		m.fieldLine(fieldValue, "Value", m.input.View()),
		m.fieldLine(fieldFrom, "From", unitLabel(m.fromUnit())),
		m.fieldLine(fieldTo, "To", unitLabel(m.toUnit())),
	}
	return strings.Join(lines, "\n")
}

func (m model) fieldLine(f field, label, value string) string {
	l := m.theme.Label.Render(label)
	if f == m.focus {
		l = m.theme.Focused.Render("> ") + m.theme.Focused.Inherit(m.theme.Label).Render(label)
	} else {
		l = "  " + l
	}
	return l + " " + value
}

func (m model) renderCard() string {
	switch {
	case m.errMsg != "":
		return m.theme.Card.Render(m.theme.Error.Render(m.errMsg))

	case m.hasResult:
		precision := m.deps.Config.Display.Precision
		value := template.FormatNumber(m.result.Result, precision) + " " + m.result.To.Symbol()
		content := m.theme.Result.Render(value)

		if line, err := template.RenderConversion(m.deps.Config.Display.Template, m.result, precision); err == nil {
			content += "\n" + m.theme.Subtitle.Render(clampString(line, max(m.width-12, 20)))
		}
		return m.theme.Card.Render(content)

	default:
		return m.theme.Card.Render(m.theme.Subtitle.Render(fmt.Sprintf("Enter a %s value", m.domain())))
	}
}

func pickerSize(width, height int) (int, int) {
	w, h := 32, 14
	if width > 0 && width-8 < w {
		w = max(width-8, 10)
	}
	if height > 0 && height-16 < h {
		h = max(height-16, 6)
	}
	return w, h
}
