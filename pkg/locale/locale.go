// Package locale provides the labels used to present months, weekdays and
// categories.
package locale

import (
	"fmt"
	"strings"
	"time"

	"tableflip.dev/gyoji/pkg/category"
	"tableflip.dev/gyoji/pkg/timeutil"
)

// Locale is a set of display labels.
type Locale struct {
	Name string

	monthHeader   func(timeutil.Month) string
	dayLong       func(timeutil.Date) string
	weekdayShort  [7]string
	weekdayLong   [7]string
	categories    map[category.Category]string
	NoEvents      string
	AllDay        string
	AddEventTitle string
	SaveLabel     string

	// Form field labels.
	TitleField       string
	CategoryField    string
	LocationField    string
	DescriptionField string
}

// Japanese is the default label set used by the school calendar.
var Japanese = Locale{
	Name: "ja",
	monthHeader: func(m timeutil.Month) string {
		return fmt.Sprintf("%d年 %d月", m.Year, int(m.Month))
	},
	weekdayShort: [7]string{"日", "月", "火", "水", "木", "金", "土"},
	weekdayLong:  [7]string{"日曜日", "月曜日", "火曜日", "水曜日", "木曜日", "金曜日", "土曜日"},
	categories: map[category.Category]string{
		category.Academic: "学考・行事",
		category.Sport:    "運動",
		category.Holiday:  "祝日・休日",
		category.Exam:     "試験",
		category.Other:    "その他",
	},
	NoEvents:      "予定がありません",
	AllDay:        "終日",
	AddEventTitle: "行事の追加",
	SaveLabel:     "保存する",

	TitleField:       "タイトル",
	CategoryField:    "種類",
	LocationField:    "場所",
	DescriptionField: "詳細",
}

// English is the alternative label set.
var English = Locale{
	Name: "en",
	monthHeader: func(m timeutil.Month) string {
		return fmt.Sprintf("%s %d", m.Month, m.Year)
	},
	weekdayShort: [7]string{"Su", "Mo", "Tu", "We", "Th", "Fr", "Sa"},
	weekdayLong:  [7]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"},
	categories: map[category.Category]string{
		category.Academic: "Academic",
		category.Sport:    "Sport",
		category.Holiday:  "Holiday",
		category.Exam:     "Exam",
		category.Other:    "Other",
	},
	NoEvents:      "No events",
	AllDay:        "All day",
	AddEventTitle: "Add event",
	SaveLabel:     "Save",

	TitleField:       "Title",
	CategoryField:    "Category",
	LocationField:    "Location",
	DescriptionField: "Details",
}

// Lookup returns the locale named name ("ja", "en"); unknown names fall
// back to Japanese and report false.
func Lookup(name string) (Locale, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "ja", "ja-jp", "japanese":
		return Japanese, true
	case "en", "en-us", "en-gb", "english":
		return English, true
	default:
		return Japanese, false
	}
}

// MonthHeader labels a month, e.g. "2026年 4月".
func (l Locale) MonthHeader(m timeutil.Month) string {
	return l.monthHeader(m)
}

// DayLong labels a selected day, e.g. "5月 10日 (日曜日)".
func (l Locale) DayLong(d timeutil.Date) string {
	if l.Name == "ja" {
		return fmt.Sprintf("%d月 %d日 (%s)", int(d.Month), d.Day, l.WeekdayLong(d.Weekday()))
	}
	return fmt.Sprintf("%s, %s %d", l.WeekdayLong(d.Weekday()), d.Month, d.Day)
}

// DayFull labels a day including the year, e.g. "2026年 5月 10日".
func (l Locale) DayFull(d timeutil.Date) string {
	if l.Name == "ja" {
		return fmt.Sprintf("%d年 %d月 %d日", d.Year, int(d.Month), d.Day)
	}
	return fmt.Sprintf("%s %d, %d", d.Month, d.Day, d.Year)
}

// WeekdayShort returns the column header for wd.
func (l Locale) WeekdayShort(wd time.Weekday) string {
	return l.weekdayShort[int(wd)%7]
}

// WeekdayLong returns the full weekday name for wd.
func (l Locale) WeekdayLong(wd time.Weekday) string {
	return l.weekdayLong[int(wd)%7]
}

// Category returns the display label for c.
func (l Locale) Category(c category.Category) string {
	if label, ok := l.categories[c]; ok {
		return label
	}
	return l.categories[category.Other]
}
