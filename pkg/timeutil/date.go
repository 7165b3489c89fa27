// Package timeutil holds the calendar value types used across gyoji: a civil
// Date with no time of day, a Month (year+month pair), and parsers for the
// human-friendly forms accepted on the command line.
package timeutil

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

const (
	layoutISO   = "2006-01-02"
	layoutMonth = "2006-01"
	layoutShort = "1/2"
)

// MaxYear and MinYear bound month arithmetic. Day counts for every date
// within a year of the bounds fit in an int64.
const (
	MaxYear = math.MaxInt / 16384
	MinYear = -MaxYear
)

// Date is a calendar day. Two Dates are equal when they name the same day,
// so Date is safe to use as a map key.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// NewDate returns the normalized date for y-m-d. Out of range months and
// days roll over the way time.Date does. Years are limited to one year
// beyond [MinYear, MaxYear].
func NewDate(year int, month time.Month, day int) Date {
	return fromOrdinal(Date{Year: year, Month: month, Day: day}.ordinal())
}

// DateOf returns the calendar day of t in t's own location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// Today returns the current date in loc. A nil loc means time.Local.
func Today(now time.Time, loc *time.Location) Date {
	if loc == nil {
		loc = time.Local
	}
	return DateOf(now.In(loc))
}

// ParseDate parses "2006-01-02", "2006-1-2", or "1/2" (current year).
func ParseDate(raw string) (Date, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return Date{}, fmt.Errorf("timeutil: empty date")
	}
	for _, layout := range []string{layoutISO, "2006-1-2"} {
		if t, err := time.Parse(layout, s); err == nil {
			return DateOf(t), nil
		}
	}
	t, err := time.Parse(layoutShort, s)
	if err != nil {
		return Date{}, fmt.Errorf("timeutil: parse date %q: %w", raw, err)
	}
	return NewDate(time.Now().Year(), t.Month(), t.Day()), nil
}

// MustDate parses raw and panics on error. Intended for tests and fixtures.
func MustDate(raw string) Date {
	d, err := ParseDate(raw)
	if err != nil {
		panic(err)
	}
	return d
}

// Normalize rolls out of range months and days over the way NewDate does.
func (d Date) Normalize() Date {
	return NewDate(d.Year, d.Month, d.Day)
}

// IsZero reports whether d is the zero Date.
func (d Date) IsZero() bool {
	return d == Date{}
}

// AddDays returns d shifted by n days.
func (d Date) AddDays(n int) Date {
	return fromOrdinal(clampOrdinal(satAdd(d.ordinal(), int64(n))))
}

// DaysUntil returns the number of days from d to other (negative if other
// is earlier).
func (d Date) DaysUntil(other Date) int {
	return int(other.ordinal() - d.ordinal())
}

// Weekday returns the day of the week d falls on.
func (d Date) Weekday() time.Weekday {
	// 1970-01-01 was a Thursday.
	return time.Weekday(floorMod(d.ordinal()+int64(time.Thursday), 7))
}

// Compare returns -1, 0 or +1 depending on whether d is before, equal to or
// after other.
func (d Date) Compare(other Date) int {
	a, b := d.ordinal(), other.ordinal()
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Before reports whether d is earlier than other.
func (d Date) Before(other Date) bool { return d.Compare(other) < 0 }

// After reports whether d is later than other.
func (d Date) After(other Date) bool { return d.Compare(other) > 0 }

// String formats d as 2006-01-02.
func (d Date) String() string {
	n := d.Normalize()
	return fmt.Sprintf("%04d-%02d-%02d", n.Year, int(n.Month), n.Day)
}

// MarshalText implements encoding.TextMarshaler.
func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Date) UnmarshalText(b []byte) error {
	parsed, err := ParseDate(string(b))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Month identifies a calendar month.
type Month struct {
	Year  int
	Month time.Month
}

// MonthOf returns the month containing d.
func MonthOf(d Date) Month {
	n := d.Normalize()
	return Month{Year: n.Year, Month: n.Month}
}

// ParseMonth parses "2006-01" or "2006-1".
func ParseMonth(raw string) (Month, error) {
	s := strings.TrimSpace(raw)
	for _, layout := range []string{layoutMonth, "2006-1"} {
		if t, err := time.Parse(layout, s); err == nil {
			return Month{Year: t.Year(), Month: t.Month()}, nil
		}
	}
	return Month{}, fmt.Errorf("timeutil: parse month %q: want YYYY-MM", raw)
}

// AddMonths returns m shifted by delta months. The result saturates at
// MinYear January and MaxYear December.
func (m Month) AddMonths(delta int) Month {
	total := satAdd(satAdd(satMul(int64(m.Year), 12), int64(m.Month)-1), int64(delta))
	year := floorDiv(total, 12)
	switch {
	case year > MaxYear:
		return Month{Year: MaxYear, Month: time.December}
	case year < MinYear:
		return Month{Year: MinYear, Month: time.January}
	}
	return Month{Year: int(year), Month: time.Month(floorMod(total, 12) + 1)}
}

// Normalize folds an out of range Month field into the year and applies the
// same bounds as AddMonths.
func (m Month) Normalize() Month {
	return m.AddMonths(0)
}

// First returns the first day of m.
func (m Month) First() Date {
	n := m.Normalize()
	return Date{Year: n.Year, Month: n.Month, Day: 1}
}

// Last returns the last day of m.
func (m Month) Last() Date {
	n := m.Normalize()
	return NewDate(n.Year, n.Month+1, 0)
}

// Days returns how many days m has.
func (m Month) Days() int {
	return m.Last().Day
}

// Contains reports whether d falls inside m.
func (m Month) Contains(d Date) bool {
	return MonthOf(d) == m.Normalize()
}

// String formats m as 2006-01.
func (m Month) String() string {
	n := m.Normalize()
	return fmt.Sprintf("%04d-%02d", n.Year, int(n.Month))
}

// ParseWeekday accepts English day names ("sunday", "sun") or an index 0..6
// where 0 is Sunday.
func ParseWeekday(raw string) (time.Weekday, error) {
	s := strings.ToLower(strings.TrimSpace(raw))
	if s == "" {
		return time.Sunday, nil
	}
	if n, err := strconv.Atoi(s); err == nil {
		if n < 0 || n > 6 {
			return time.Sunday, fmt.Errorf("timeutil: weekday index %d out of range 0..6", n)
		}
		return time.Weekday(n), nil
	}
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		name := strings.ToLower(wd.String())
		if s == name || s == name[:3] {
			return wd, nil
		}
	}
	return time.Sunday, fmt.Errorf("timeutil: unknown weekday %q", raw)
}
