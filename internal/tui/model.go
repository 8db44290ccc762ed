// Package tui runs the explorer inside a Bubble Tea program.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/mandelterm/internal/explorer"
	"github.com/san-kum/mandelterm/internal/mandel"
	"github.com/san-kum/mandelterm/internal/render"
)

var (
	statusStyle = lipgloss.NewStyle().Bold(true)
	helpStyle   = lipgloss.NewStyle().Faint(true)
)

const helpText = "w/a/s/d pan  j/k zoom out/in  q quit"

// Model holds the viewport and the last rendered frame.
type Model struct {
	params   mandel.Params
	frame    string
	frames   int
	quitting bool
}

func New(p mandel.Params) Model {
	m := Model{params: p}
	m.redraw()
	return m
}

func (m Model) Params() mandel.Params { return m.params }
func (m Model) Frames() int           { return m.frames }

func (m Model) Init() tea.Cmd { return nil }

// Update feeds single-rune keys through the explorer's key table.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	if key.Type == tea.KeyCtrlC {
		m.quitting = true
		return m, tea.Quit
	}
	if key.Type != tea.KeyRunes || len(key.Runes) != 1 {
		return m, nil
	}

	before := m.params
	if explorer.Apply(&m.params, key.Runes[0]) == explorer.Quit {
		m.quitting = true
		return m, tea.Quit
	}
	if m.params != before {
		m.redraw()
	}
	return m, nil
}

func (m *Model) redraw() {
	m.frame = strings.Join(render.Lines(mandel.Compute(m.params)), "\n")
	m.frames++
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	status := statusStyle.Render(fmt.Sprintf("re [%.4f, %.4f]  im [%.4f, %.4f]  scale %.2f",
		m.params.XMin, m.params.XMax, m.params.YMin, m.params.YMax, m.params.Scale))
	return lipgloss.JoinVertical(lipgloss.Left, m.frame, status, helpStyle.Render(helpText))
}

// Run blocks until the user quits.
func Run(p mandel.Params) error {
	_, err := tea.NewProgram(New(p), tea.WithAltScreen()).Run()
	return err
}
