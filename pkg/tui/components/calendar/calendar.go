// Package calendar renders the month grid for the terminal UI.
package calendar

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/muesli/reflow/truncate"

	"tableflip.dev/gyoji/pkg/app"
	"tableflip.dev/gyoji/pkg/grid"
	"tableflip.dev/gyoji/pkg/locale"
	"tableflip.dev/gyoji/pkg/tui/theme"
)

const (
	// DefaultCellWidth fits "10" plus a short title.
	DefaultCellWidth = 10
	// MaxTitles is how many event titles a cell lists before "+N".
	MaxTitles = 2
)

// Options controls grid layout.
type Options struct {
	CellWidth  int
	MaxTitles  int
	ShowHeader bool
	Theme      theme.Theme
	Labels     locale.Locale
}

// DefaultOptions returns the layout used by the app.
func DefaultOptions(l locale.Locale) Options {
	return Options{
		CellWidth:  DefaultCellWidth,
		MaxTitles:  MaxTitles,
		ShowHeader: true,
		Theme:      theme.Default(),
		Labels:     l,
	}
}

// Render produces the header, weekday row and week rows for rm.
func Render(rm app.RenderModel, opts Options) string {
	if opts.CellWidth < 4 {
		opts.CellWidth = 4
	}
	if opts.MaxTitles < 0 {
		opts.MaxTitles = 0
	}
	t := opts.Theme

	var lines []string
	if opts.ShowHeader {
		lines = append(lines, t.Grid.Header.Render(opts.Labels.MonthHeader(rm.Month)))
	}
	lines = append(lines, weekdayRow(rm.WeekStart, opts))

	for _, week := range rm.Weeks() {
		cells := make([]string, 0, len(week))
		for _, c := range week {
			cells = append(cells, renderCell(c, opts))
		}
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return strings.Join(lines, "\n")
}

func weekdayRow(weekStart time.Weekday, opts Options) string {
	t := opts.Theme
	cells := make([]string, 0, grid.DaysPerWeek)
	for _, wd := range grid.Weekdays(weekStart) {
		style := t.Grid.Weekday
		switch wd {
		case time.Sunday:
			style = t.Grid.Sunday
		case time.Saturday:
			style = t.Grid.Saturday
		}
		cells = append(cells, style.Width(opts.CellWidth).Render(" "+opts.Labels.WeekdayShort(wd)))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}

func renderCell(c app.Cell, opts Options) string {
	t := opts.Theme
	inner := opts.CellWidth - 1

	dayStyle := t.Grid.Cell
	if !c.InViewedMonth {
		dayStyle = t.Grid.Outside
	}
	if c.IsToday {
		dayStyle = dayStyle.Inherit(t.Grid.Today)
	}
	if c.IsSelected {
		dayStyle = t.Grid.Selected.Inherit(dayStyle)
	}

	lines := make([]string, 0, opts.MaxTitles+2)
	lines = append(lines, " "+dayStyle.Render(fmt.Sprintf("%2d", c.Date.Day)))

	shown := c.Events
	if len(shown) > opts.MaxTitles {
		shown = shown[:opts.MaxTitles]
	}
	for _, e := range shown {
		title := truncate.StringWithTail(e.Title, uint(inner), "…")
		style := t.Category(e.Category)
		if !c.InViewedMonth {
			style = style.Faint(true)
		}
		lines = append(lines, " "+style.Render(title))
	}
	if extra := len(c.Events) - len(shown); extra > 0 {
		lines = append(lines, " "+t.Grid.More.Render(fmt.Sprintf("+%d", extra)))
	}
	for len(lines) < opts.MaxTitles+2 {
		lines = append(lines, "")
	}

	return lipgloss.NewStyle().Width(opts.CellWidth).Render(strings.Join(lines, "\n"))
}

// Height is the number of terminal rows Render produces for rm.
func Height(rm app.RenderModel, opts Options) int {
	h := 1 + len(rm.Weeks())*(opts.MaxTitles+2)
	if opts.ShowHeader {
		h++
	}
	return h
}

// Width is the number of terminal columns Render produces.
func Width(opts Options) int {
	return opts.CellWidth * grid.DaysPerWeek
}
