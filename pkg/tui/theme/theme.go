package theme

import (
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/gyoji/pkg/category"
)

// Theme centralizes Lip Gloss styles for the Bubble Tea UI.
type Theme struct {
	Footer FooterTheme
	Grid   GridTheme
	Panel  PanelTheme
	Modal  ModalTheme
}

// FooterTheme groups styles used by the bottom status/help bar.
type FooterTheme struct {
	Help   lipgloss.Style
	Status lipgloss.Style
	Error  lipgloss.Style
}

// GridTheme styles the month grid.
type GridTheme struct {
	Header   lipgloss.Style
	Weekday  lipgloss.Style
	Sunday   lipgloss.Style
	Saturday lipgloss.Style
	Cell     lipgloss.Style
	Outside  lipgloss.Style
	Today    lipgloss.Style
	Selected lipgloss.Style
	More     lipgloss.Style
}

// PanelTheme styles the framed sidebar.
type PanelTheme struct {
	Frame lipgloss.Style
	Title lipgloss.Style
	Body  lipgloss.Style
	Muted lipgloss.Style
}

// ModalTheme styles the event form.
type ModalTheme struct {
	Frame   lipgloss.Style
	Title   lipgloss.Style
	Label   lipgloss.Style
	Focused lipgloss.Style
	Button  lipgloss.Style
}

// Category returns the foreground style for events of c.
func (Theme) Category(c category.Category) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(c.Color()))
}

// Default returns the built-in theme used across the UI.
func Default() Theme {
	muted := lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	focused := lipgloss.NewStyle().
		Foreground(lipgloss.Color("212")).
		Bold(true)

	return Theme{
		Footer: FooterTheme{
			Help:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			Status: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
			Error:  lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		},
		Grid: GridTheme{
			Header:   lipgloss.NewStyle().Bold(true).Padding(0, 1),
			Weekday:  lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Bold(true),
			Sunday:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true),
			Saturday: lipgloss.NewStyle().Foreground(lipgloss.Color("75")).Bold(true),
			Cell:     lipgloss.NewStyle(),
			Outside:  lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
			Today:    lipgloss.NewStyle().Bold(true).Underline(true),
			Selected: lipgloss.NewStyle().Background(lipgloss.Color("63")).Foreground(lipgloss.Color("0")),
			More:     muted,
		},
		Panel: PanelTheme{
			Frame: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				Padding(0, 1),
			Title: lipgloss.NewStyle().Bold(true),
			Body:  lipgloss.NewStyle(),
			Muted: muted,
		},
		Modal: ModalTheme{
			Frame: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("212")).
				Padding(0, 1),
			Title:   lipgloss.NewStyle().Bold(true),
			Label:   muted,
			Focused: focused,
			Button:  lipgloss.NewStyle().Reverse(true).Padding(0, 1),
		},
	}
}
