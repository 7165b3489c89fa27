package app

import (
	"strings"

	"github.com/muesli/reflow/truncate"

	core "tableflip.dev/gyoji/pkg/app"
	"tableflip.dev/gyoji/pkg/timeutil"
)

const sidebarWidth = 34

func (m *Model) sidebar(rm core.RenderModel) string {
	p := m.theme.Panel
	inner := sidebarWidth - 4

	var b strings.Builder
	b.WriteString(p.Title.Render(m.labels.DayLong(rm.Selected)))
	b.WriteString("\n\n")

	if len(rm.SidebarEvents) == 0 {
		b.WriteString(p.Muted.Render(m.labels.NoEvents))
	}
	for i, e := range rm.SidebarEvents {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(m.theme.Category(e.Category).Render("● " + m.labels.Category(e.Category)))
		b.WriteString("\n")
		b.WriteString(p.Body.Render(truncate.StringWithTail(e.Title, uint(inner), "…")))
		b.WriteString("\n")
		b.WriteString(p.Muted.Render("◷ " + m.labels.AllDay))
		b.WriteString("\n")
		if e.Location != "" {
			b.WriteString(p.Muted.Render(truncate.StringWithTail("@ "+e.Location, uint(inner), "…")))
			b.WriteString("\n")
		}
		if e.Description != "" {
			b.WriteString(p.Muted.Render(truncate.StringWithTail(e.Description, uint(inner), "…")))
			b.WriteString("\n")
		}
	}

	return p.Frame.Width(sidebarWidth).Render(strings.TrimRight(b.String(), "\n"))
}

func (m *Model) footer() string {
	f := m.theme.Footer
	line := f.Help.Render(helpText)
	if m.status == "" {
		return line
	}
	style := f.Status
	if m.statusErr {
		style = f.Error
	}
	return line + "\n" + style.Render(m.status)
}

// visible reports whether d is one of the cells currently on the grid.
func visible(rm core.RenderModel, d timeutil.Date) bool {
	if len(rm.Cells) == 0 {
		return false
	}
	first, last := rm.Cells[0].Date, rm.Cells[len(rm.Cells)-1].Date
	return !d.Before(first) && !d.After(last)
}
