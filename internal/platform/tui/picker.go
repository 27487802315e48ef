package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/season-quest/internal/core"
	"github.com/vovakirdan/season-quest/internal/stats"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	subtitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	cursorStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

// pickerKeys returns the picker's subset of the key map.
func pickerKeys(k KeyMap) []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Confirm, k.Quit}
}

// PickerModel lets the player choose which team's season to explore.
type PickerModel struct {
	teams    []stats.Team
	cursor   int
	offset   int
	width    int
	height   int
	keys     KeyMap
	help     help.Model
	quitting bool
	selected *stats.Team
}

// NewPickerModel creates a picker over teams.
func NewPickerModel(teams []stats.Team, cfg core.RuntimeConfig) PickerModel {
	return PickerModel{
		teams:  teams,
		width:  cfg.ScreenW,
		height: cfg.ScreenH,
		keys:   DefaultKeyMap(),
		help:   help.New(),
	}
}

// Init initializes the picker.
func (m PickerModel) Init() tea.Cmd {
	return nil
}

// Update handles navigation.
func (m PickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch m.keys.Action(msg) {
		case core.ActionQuit, core.ActionCancel:
			m.quitting = true
		case core.ActionUp:
			if m.cursor > 0 {
				m.cursor--
			}
		case core.ActionDown:
			if m.cursor < len(m.teams)-1 {
				m.cursor++
			}
		case core.ActionConfirm:
			if len(m.teams) > 0 {
				t := m.teams[m.cursor]
				m.selected = &t
			}
		}
		m.scroll()

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.scroll()
	}
	return m, nil
}

// visibleRows leaves room for the title block and the help line.
func (m PickerModel) visibleRows() int {
	return max(1, m.height-7)
}

func (m *PickerModel) scroll() {
	rows := m.visibleRows()
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+rows {
		m.offset = m.cursor - rows + 1
	}
}

// View renders the team list.
func (m PickerModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("S E A S O N   Q U E S T"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(subtitleStyle.Render("Choose your team"), m.width))
	b.WriteString("\n\n")

	if len(m.teams) == 0 {
		b.WriteString(centerText(errorStyle.Render("No teams in this league."), m.width))
		b.WriteString("\n")
	}

	end := min(len(m.teams), m.offset+m.visibleRows())
	for i := m.offset; i < end; i++ {
		t := m.teams[i]
		line := fmt.Sprintf("  %s", t.Name)
		if i == m.cursor {
			line = cursorStyle.Render("> " + t.Name)
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(m.help.ShortHelpView(pickerKeys(m.keys)), m.width))
	b.WriteString("\n")
	return b.String()
}

// Selected returns the chosen team, or nil.
func (m PickerModel) Selected() *stats.Team {
	return m.selected
}

// IsQuitting returns true if the player backed out.
func (m PickerModel) IsQuitting() bool {
	return m.quitting
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}
