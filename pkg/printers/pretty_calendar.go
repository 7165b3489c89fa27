package printers

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"tableflip.dev/gyoji/pkg/app"
	"tableflip.dev/gyoji/pkg/event"
	"tableflip.dev/gyoji/pkg/grid"
	"tableflip.dev/gyoji/pkg/timeutil"
)

const width = len("11* 12  13  14  15  16  17 ") // an example week

// Month prints the grid of rm followed by the events of the viewed month.
// Today is bold, the selected day underlined, days outside the month faint
// and days with events carry a '*' in the color of their first event.
func (pp *PrettyPrint) Month(rm app.RenderModel) {
	pp.MonthGrid(rm)

	var events int
	for _, c := range rm.Cells {
		if c.InViewedMonth {
			events += len(c.Events)
		}
	}
	pp.TitleWithCount(pp.Labels.MonthHeader(rm.Month), events)
	for _, c := range rm.Cells {
		if c.InViewedMonth && len(c.Events) > 0 {
			pp.Events(c.Events...)
		}
	}
	if events == 0 {
		pp.Events()
	}
}

// MonthGrid prints only the header, weekday row and day cells.
func (pp *PrettyPrint) MonthGrid(rm app.RenderModel) {
	tf := color.New(color.FgWhite, color.Italic)

	m := pp.Labels.MonthHeader(rm.Month)
	mid := (width - runewidth.StringWidth(m)) / 2
	if mid < 0 {
		mid = 0
	}
	_, _ = tf.Fprintf(pp.out(), "%s%s\n", strings.Repeat(" ", mid), m)

	hdr := color.New(color.Bold)
	for _, wd := range grid.Weekdays(rm.WeekStart) {
		_, _ = hdr.Fprintf(pp.out(), "%s  ", runewidth.FillLeft(pp.Labels.WeekdayShort(wd), 2))
	}
	_, _ = fmt.Fprintln(pp.out(), "")

	for _, week := range rm.Weeks() {
		for _, c := range week {
			pp.cell(c)
		}
		_, _ = fmt.Fprintln(pp.out(), "")
	}
	_, _ = fmt.Fprintln(pp.out(), "")
}

func (pp *PrettyPrint) cell(c app.Cell) {
	var attrs []color.Attribute
	switch {
	case !c.InViewedMonth:
		attrs = append(attrs, color.Faint)
	case c.IsToday:
		attrs = append(attrs, color.Bold, color.FgHiWhite)
	}
	if c.IsSelected {
		attrs = append(attrs, color.Underline)
	}
	_, _ = color.New(attrs...).Fprintf(pp.out(), "%2d", c.Date.Day)

	if len(c.Events) > 0 {
		_, _ = CategoryColor(c.Events[0].Category).Fprint(pp.out(), "*")
	} else {
		_, _ = fmt.Fprint(pp.out(), " ")
	}
	_, _ = fmt.Fprint(pp.out(), " ")
}

// Day prints the long label for d and its events.
func (pp *PrettyPrint) Day(d timeutil.Date, events []event.Event) {
	pp.TitleWithCount(pp.Labels.DayLong(d), len(events))
	pp.Events(events...)
}
