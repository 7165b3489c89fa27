// Package month implements the month verb: print the grid for one month.
package month

import (
	"context"
	"errors"
	"io"

	"github.com/fatih/color"

	"tableflip.dev/gyoji/pkg/app"
	"tableflip.dev/gyoji/pkg/locale"
	"tableflip.dev/gyoji/pkg/printers"
	"tableflip.dev/gyoji/pkg/timeutil"
)

// Month prints a month grid and the events inside it.
type Month struct {
	Calendar *app.Calendar
	Labels   locale.Locale
	// Month to show; zero keeps the calendar's current month.
	Month timeutil.Month
	// Select moves the selection (and, without Month, the view) to a day.
	Select timeutil.Date
	// Output is "text", "json" or "yaml".
	Output string
	Out    io.Writer
}

// Do renders the requested month.
func (m *Month) Do(_ context.Context) error {
	if m.Calendar == nil {
		return errors.New("month: calendar required")
	}
	if !m.Select.IsZero() {
		m.Calendar.SelectDay(m.Select)
		m.Calendar.ShowMonth(timeutil.MonthOf(m.Select))
	}
	if m.Month != (timeutil.Month{}) {
		m.Calendar.ShowMonth(m.Month)
	}

	rm := m.Calendar.RenderModel()
	out := m.Out
	if out == nil {
		out = color.Output
	}

	switch m.Output {
	case "", "text":
		pp := &printers.PrettyPrint{Out: out, Labels: m.Labels}
		pp.Month(rm)
		return nil
	default:
		return printers.Encode(out, m.Output, printers.NewMonthView(rm, m.Labels))
	}
}
