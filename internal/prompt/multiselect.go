package prompt

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rcgen/cli/internal/output"
)

type multiSelectState int

const (
	multiSelectActive multiSelectState = iota
	multiSelectDone
	multiSelectAborted
)

type multiSelectKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Toggle  key.Binding
	All     key.Binding
	Confirm key.Binding
	Abort   key.Binding
}

var multiSelectKeys = multiSelectKeyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	Toggle: key.NewBinding(
		key.WithKeys(" ", "space", "x"),
		key.WithHelp("space", "toggle"),
	),
	All: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "toggle all"),
	),
	Confirm: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "submit"),
	),
	Abort: key.NewBinding(
		key.WithKeys("ctrl+c", "esc"),
		key.WithHelp("esc", "cancel"),
	),
}

var (
	cursorStyle   = lipgloss.NewStyle().Foreground(output.ColorCyan)
	selectedStyle = lipgloss.NewStyle().Foreground(output.ColorGreenCheck)
	helpStyle     = output.StyleDim
)

// multiSelectModel is the bubbletea model behind multiselect questions.
type multiSelectModel struct {
	message  string
	choices  []Choice
	selected []bool
	cursor   int
	state    multiSelectState
}

func newMultiSelectModel(message string, choices []Choice) multiSelectModel {
	selected := make([]bool, len(choices))
	for i, c := range choices {
		selected[i] = c.Selected
	}
	return multiSelectModel{
		message:  message,
		choices:  choices,
		selected: selected,
	}
}

func (m multiSelectModel) Init() tea.Cmd { return nil }

func (m multiSelectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, multiSelectKeys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(keyMsg, multiSelectKeys.Down):
		if m.cursor < len(m.choices)-1 {
			m.cursor++
		}
	case key.Matches(keyMsg, multiSelectKeys.Toggle):
		if len(m.choices) > 0 {
			m.selected[m.cursor] = !m.selected[m.cursor]
		}
	case key.Matches(keyMsg, multiSelectKeys.All):
		all := !m.allSelected()
		for i := range m.selected {
			m.selected[i] = all
		}
	case key.Matches(keyMsg, multiSelectKeys.Confirm):
		m.state = multiSelectDone
		return m, tea.Quit
	case key.Matches(keyMsg, multiSelectKeys.Abort):
		m.state = multiSelectAborted
		return m, tea.Quit
	}
	return m, nil
}

func (m multiSelectModel) allSelected() bool {
	for _, s := range m.selected {
		if !s {
			return false
		}
	}
	return true
}

// Values returns the values of the selected choices in choice order.
func (m multiSelectModel) Values() []string {
	values := []string{}
	for i, c := range m.choices {
		if m.selected[i] {
			values = append(values, c.Value)
		}
	}
	return values
}

func (m multiSelectModel) View() string {
	var b strings.Builder

	b.WriteString("? ")
	b.WriteString(m.message)
	b.WriteString("\n")

	if m.state != multiSelectActive {
		return b.String()
	}

	for i, c := range m.choices {
		cursor := "  "
		if i == m.cursor {
			cursor = cursorStyle.Render("❯ ")
		}
		box := "◯ "
		title := c.Title
		if m.selected[i] {
			box = selectedStyle.Render("◉ ")
			title = selectedStyle.Render(title)
		}
		b.WriteString(cursor + box + title + "\n")
	}

	b.WriteString(helpStyle.Render("space toggle • a all • enter submit • esc cancel"))
	b.WriteString("\n")
	return b.String()
}
