// Package grid computes the days shown in a month view.
package grid

import (
	"time"

	"tableflip.dev/gyoji/pkg/timeutil"
)

// DaysPerWeek is the number of columns in a month grid.
const DaysPerWeek = 7

// Build returns the contiguous run of days rendered for the month containing
// ref: the month itself, preceded by the days of the previous month needed to
// start on weekStart and followed by the days of the next month needed to
// finish the last week. The result is always a whole number of weeks.
// A weekStart outside Sunday..Saturday is taken modulo 7.
func Build(ref timeutil.Date, weekStart time.Weekday) []timeutil.Date {
	ws := normalize(weekStart)
	month := timeutil.MonthOf(ref)
	first, last := month.First(), month.Last()

	lead := (int(first.Weekday()) - ws + DaysPerWeek) % DaysPerWeek
	trail := (ws + DaysPerWeek - 1 - int(last.Weekday())) % DaysPerWeek

	start := first.AddDays(-lead)
	total := lead + month.Days() + trail

	days := make([]timeutil.Date, total)
	for i := range days {
		days[i] = start.AddDays(i)
	}
	return days
}

// Weeks splits days into rows of seven. A trailing partial row is kept.
func Weeks[T any](days []T) [][]T {
	rows := make([][]T, 0, (len(days)+DaysPerWeek-1)/DaysPerWeek)
	for i := 0; i < len(days); i += DaysPerWeek {
		end := i + DaysPerWeek
		if end > len(days) {
			end = len(days)
		}
		rows = append(rows, days[i:end])
	}
	return rows
}

// Weekdays returns the seven weekdays in column order for weekStart.
func Weekdays(weekStart time.Weekday) []time.Weekday {
	ws := normalize(weekStart)
	out := make([]time.Weekday, DaysPerWeek)
	for i := range out {
		out[i] = time.Weekday((ws + i) % DaysPerWeek)
	}
	return out
}

func normalize(wd time.Weekday) int {
	n := int(wd) % DaysPerWeek
	if n < 0 {
		n += DaysPerWeek
	}
	return n
}
