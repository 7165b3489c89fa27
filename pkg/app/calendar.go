// Package app holds the calendar state shared by the CLI and the TUI: which
// month is on screen, which day is selected, and the add-event form.
package app

import (
	"time"

	"tableflip.dev/gyoji/pkg/event"
	"tableflip.dev/gyoji/pkg/grid"
	"tableflip.dev/gyoji/pkg/timeutil"
)

// EventSource answers day lookups for the render model.
type EventSource interface {
	EventsOn(d timeutil.Date) []event.Event
}

// Option configures a Calendar.
type Option func(*Calendar)

// WithClock overrides the wall clock. Defaults to time.Now.
func WithClock(now func() time.Time) Option {
	return func(c *Calendar) {
		if now != nil {
			c.now = now
		}
	}
}

// WithWeekStart sets the first column of the grid. Defaults to Sunday.
func WithWeekStart(wd time.Weekday) Option {
	return func(c *Calendar) {
		c.weekStart = wd
	}
}

// WithLocation sets the zone used to decide what "today" is. Defaults to
// time.Local.
func WithLocation(loc *time.Location) Option {
	return func(c *Calendar) {
		if loc != nil {
			c.loc = loc
		}
	}
}

// Calendar tracks the viewed month and the selected day. The two are
// independent: navigating does not move the selection and selecting a day
// does not change the viewed month.
type Calendar struct {
	events    EventSource
	now       func() time.Time
	loc       *time.Location
	weekStart time.Weekday

	viewed   timeutil.Month
	selected timeutil.Date
}

// NewCalendar returns a calendar viewing and selecting today.
func NewCalendar(events EventSource, opts ...Option) *Calendar {
	c := &Calendar{
		events:    events,
		now:       time.Now,
		loc:       time.Local,
		weekStart: time.Sunday,
	}
	for _, opt := range opts {
		opt(c)
	}
	today := c.Today()
	c.viewed = timeutil.MonthOf(today)
	c.selected = today
	return c
}

// Today returns the current date according to the calendar's clock.
func (c *Calendar) Today() timeutil.Date {
	return timeutil.Today(c.now(), c.loc)
}

// WeekStart returns the weekday of the first grid column.
func (c *Calendar) WeekStart() time.Weekday {
	return c.weekStart
}

// ViewedMonth returns the month on screen.
func (c *Calendar) ViewedMonth() timeutil.Month {
	return c.viewed
}

// SelectedDay returns the day whose events fill the sidebar.
func (c *Calendar) SelectedDay() timeutil.Date {
	return c.selected
}

// AdvanceMonth moves the view by delta months and returns the new month.
func (c *Calendar) AdvanceMonth(delta int) timeutil.Month {
	c.viewed = c.viewed.AddMonths(delta)
	return c.viewed
}

// ShowMonth jumps the view to m.
func (c *Calendar) ShowMonth(m timeutil.Month) {
	c.viewed = m.Normalize()
}

// SelectDay selects d, which may lie outside the viewed month. Out of range
// fields roll over, so April 31 selects May 1.
func (c *Calendar) SelectDay(d timeutil.Date) {
	c.selected = d.Normalize()
}

// GoToday views the current month and selects today.
func (c *Calendar) GoToday() {
	today := c.Today()
	c.viewed = timeutil.MonthOf(today)
	c.selected = today
}

// Cell is one day box of the month grid.
type Cell struct {
	Date          timeutil.Date
	InViewedMonth bool
	IsToday       bool
	IsSelected    bool
	Events        []event.Event
}

// RenderModel is everything a front end needs to draw the calendar.
type RenderModel struct {
	Month         timeutil.Month
	WeekStart     time.Weekday
	Today         timeutil.Date
	Selected      timeutil.Date
	Cells         []Cell
	SidebarEvents []event.Event
}

// Weeks returns the cells in rows of seven.
func (r RenderModel) Weeks() [][]Cell {
	return grid.Weeks(r.Cells)
}

// RenderModel recomputes the grid for the viewed month. Today is read from
// the clock on every call.
func (c *Calendar) RenderModel() RenderModel {
	today := c.Today()
	days := grid.Build(c.viewed.First(), c.weekStart)

	cells := make([]Cell, len(days))
	for i, d := range days {
		cells[i] = Cell{
			Date:          d,
			InViewedMonth: c.viewed.Contains(d),
			IsToday:       d == today,
			IsSelected:    d == c.selected,
			Events:        c.eventsOn(d),
		}
	}

	return RenderModel{
		Month:         c.viewed,
		WeekStart:     c.weekStart,
		Today:         today,
		Selected:      c.selected,
		Cells:         cells,
		SidebarEvents: c.eventsOn(c.selected),
	}
}

func (c *Calendar) eventsOn(d timeutil.Date) []event.Event {
	if c.events == nil {
		return nil
	}
	return c.events.EventsOn(d)
}
