// Package help renders the key reference overlay.
package help

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/v2/viewport"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
)

// Binding is one documented key.
type Binding struct {
	Keys string
	Help string
}

// Section groups bindings under a heading.
type Section struct {
	Title    string
	Bindings []Binding
}

// DefaultSections documents the calendar and form keys.
func DefaultSections() []Section {
	return []Section{
		{
			Title: "Calendar",
			Bindings: []Binding{
				{"←/h →/l", "previous / next day"},
				{"↑/k ↓/j", "previous / next week"},
				{"[/p ]/n", "previous / next month"},
				{"t", "jump to today"},
				{"a/+", "add an event on the selected day"},
				{"?", "toggle this help"},
				{"q ctrl+c", "quit"},
			},
		},
		{
			Title: "Event form",
			Bindings: []Binding{
				{"tab shift+tab", "next / previous field"},
				{"← →", "change category"},
				{"enter", "save"},
				{"esc", "cancel"},
			},
		},
	}
}

// Model renders the help overlay inside a bordered viewport.
type Model struct {
	viewport viewport.Model
	sections []Section
	width    int
	height   int

	frame lipgloss.Style
	title lipgloss.Style
	keys  lipgloss.Style
}

// New constructs a help overlay model sized to the provided bounds.
func New(width, height int) *Model {
	vp := viewport.New(
		viewport.WithWidth(max(width, 1)),
		viewport.WithHeight(max(height, 1)),
	)
	model := &Model{
		viewport: vp,
		sections: DefaultSections(),
		frame: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1),
		title: lipgloss.NewStyle().Bold(true).Underline(true),
		keys:  lipgloss.NewStyle().Foreground(lipgloss.Color("212")),
	}
	model.SetSize(width, height)
	return model
}

// Update forwards scrolling keys to the viewport.
func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	vp, cmd := m.viewport.Update(msg)
	m.viewport = vp
	return m, cmd
}

// View renders the help content inside a rounded frame.
func (m *Model) View() string {
	return m.frame.Width(m.width).Render(m.viewport.View())
}

// SetSize configures the overlay dimensions and re-renders the content.
func (m *Model) SetSize(width, height int) {
	minWidth, minHeight := 32, 8
	if width < minWidth {
		width = minWidth
	}
	if height < minHeight {
		height = minHeight
	}
	if m.width == width && m.height == height {
		return
	}
	m.width = width
	m.height = height

	innerWidth := max(width-m.frame.GetHorizontalFrameSize(), 1)
	innerHeight := max(height-m.frame.GetVerticalFrameSize(), 1)
	m.viewport.SetWidth(innerWidth)
	m.viewport.SetHeight(min(innerHeight, m.lineCount()))
	m.viewport.SetContent(m.render())
	m.viewport.SetYOffset(0)
}

func (m *Model) lineCount() int {
	n := 0
	for _, s := range m.sections {
		n += len(s.Bindings) + 2
	}
	return n
}

func (m *Model) render() string {
	var b strings.Builder
	for i, s := range m.sections {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(m.title.Render(s.Title))
		b.WriteString("\n")
		for _, kb := range s.Bindings {
			fmt.Fprintf(&b, "%s %s\n", m.keys.Render(fmt.Sprintf("%-14s", kb.Keys)), kb.Help)
		}
	}
	return strings.TrimRight(b.String(), "\n")
}
