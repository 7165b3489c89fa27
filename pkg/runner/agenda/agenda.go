// Package agenda implements the agenda verb: events over a window of days.
package agenda

import (
	"context"
	"errors"
	"io"

	"github.com/fatih/color"

	"tableflip.dev/gyoji/pkg/event"
	"tableflip.dev/gyoji/pkg/locale"
	"tableflip.dev/gyoji/pkg/printers"
	"tableflip.dev/gyoji/pkg/timeutil"
)

// Ranger returns the events dated within an inclusive range.
type Ranger interface {
	EventsBetween(from, to timeutil.Date) []event.Event
}

// Agenda lists upcoming events.
type Agenda struct {
	Events Ranger
	Labels locale.Locale
	From   timeutil.Date
	// Days is the window length; values below one are treated as one.
	Days   int
	Output string
	Out    io.Writer
}

// View is the structured output of Agenda.
type View struct {
	From   string        `json:"from" yaml:"from"`
	To     string        `json:"to" yaml:"to"`
	Events []event.Event `json:"events" yaml:"events"`
}

// Do prints the events from From through From+Days-1.
func (a *Agenda) Do(_ context.Context) error {
	if a.Events == nil {
		return errors.New("agenda: event source required")
	}
	days := a.Days
	if days < 1 {
		days = 1
	}
	to := a.From.AddDays(days - 1)
	events := a.Events.EventsBetween(a.From, to)

	out := a.Out
	if out == nil {
		out = color.Output
	}

	switch a.Output {
	case "", "text":
		pp := &printers.PrettyPrint{Out: out, Labels: a.Labels}
		pp.TitleWithCount(a.Labels.DayFull(a.From)+" ~ "+a.Labels.DayFull(to), len(events))
		pp.Events(events...)
		return nil
	default:
		if events == nil {
			events = []event.Event{}
		}
		return printers.Encode(out, a.Output, View{From: a.From.String(), To: to.String(), Events: events})
	}
}
