// Package day implements the day verb: list the events of a single day.
package day

import (
	"context"
	"errors"
	"io"

	"github.com/fatih/color"

	"tableflip.dev/gyoji/pkg/app"
	"tableflip.dev/gyoji/pkg/event"
	"tableflip.dev/gyoji/pkg/locale"
	"tableflip.dev/gyoji/pkg/printers"
	"tableflip.dev/gyoji/pkg/timeutil"
)

// Day prints the sidebar for one day.
type Day struct {
	Calendar *app.Calendar
	Labels   locale.Locale
	// On is the day to show; zero means today.
	On     timeutil.Date
	Output string
	Out    io.Writer
}

// View is the structured output of Day.
type View struct {
	Date   string        `json:"date" yaml:"date"`
	Label  string        `json:"label" yaml:"label"`
	Events []event.Event `json:"events" yaml:"events"`
}

// Do selects the day and prints its events.
func (d *Day) Do(_ context.Context) error {
	if d.Calendar == nil {
		return errors.New("day: calendar required")
	}
	on := d.On
	if on.IsZero() {
		on = d.Calendar.Today()
	}
	d.Calendar.SelectDay(on)
	d.Calendar.ShowMonth(timeutil.MonthOf(on))
	rm := d.Calendar.RenderModel()

	out := d.Out
	if out == nil {
		out = color.Output
	}

	switch d.Output {
	case "", "text":
		pp := &printers.PrettyPrint{Out: out, Labels: d.Labels}
		pp.Day(rm.Selected, rm.SidebarEvents)
		return nil
	default:
		events := rm.SidebarEvents
		if events == nil {
			events = []event.Event{}
		}
		return printers.Encode(out, d.Output, View{
			Date:   rm.Selected.String(),
			Label:  d.Labels.DayLong(rm.Selected),
			Events: events,
		})
	}
}
