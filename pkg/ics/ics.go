// Package ics imports events from iCalendar files.
package ics

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	ical "github.com/arran4/golang-ical"
	"github.com/rs/zerolog/log"

	"tableflip.dev/gyoji/pkg/category"
	"tableflip.dev/gyoji/pkg/event"
	"tableflip.dev/gyoji/pkg/timeutil"
)

// Parse reads every VEVENT in r. Each event is filed under the calendar day
// its start falls on in loc (nil means time.Local). The first CATEGORIES
// value that names a known category is used; anything else is "other".
// VEVENTs that cannot be read are logged and skipped.
func Parse(r io.Reader, loc *time.Location) ([]event.Event, error) {
	if loc == nil {
		loc = time.Local
	}
	cal, err := ical.ParseCalendar(r)
	if err != nil {
		return nil, fmt.Errorf("ics: parse: %w", err)
	}

	out := make([]event.Event, 0, len(cal.Events()))
	for _, ve := range cal.Events() {
		e, err := convert(ve, loc)
		if err != nil {
			log.Warn().Err(err).Msg("ics: skipping vevent")
			continue
		}
		out = append(out, e)
	}
	log.Info().Int("event_count", len(out)).Msg("ics parse completed")
	return out, nil
}

// ReadFile parses the calendar stored at path.
func ReadFile(path string, loc *time.Location) ([]event.Event, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("ics: open: %w", err)
	}
	defer f.Close()
	return Parse(f, loc)
}

func convert(ve *ical.VEvent, loc *time.Location) (event.Event, error) {
	var e event.Event

	uid := propertyValue(ve, ical.ComponentPropertyUniqueId)
	if uid == "" {
		return e, errors.New("missing UID")
	}
	title := strings.TrimSpace(propertyValue(ve, ical.ComponentPropertySummary))
	if title == "" {
		return e, fmt.Errorf("event %s: missing SUMMARY", uid)
	}

	on, err := startDate(ve, loc)
	if err != nil {
		return e, fmt.Errorf("event %s: %w", uid, err)
	}

	e = event.Event{
		ID:          uid,
		Title:       title,
		Date:        on,
		Category:    categoryOf(propertyValue(ve, ical.ComponentPropertyCategories)),
		Location:    strings.TrimSpace(propertyValue(ve, ical.ComponentPropertyLocation)),
		Description: strings.TrimSpace(propertyValue(ve, ical.ComponentPropertyDescription)),
	}
	return e, nil
}

func startDate(ve *ical.VEvent, loc *time.Location) (timeutil.Date, error) {
	prop := ve.GetProperty(ical.ComponentPropertyDtStart)
	if prop == nil {
		return timeutil.Date{}, errors.New("missing DTSTART")
	}
	if isDateValue(prop) {
		start, err := ve.GetAllDayStartAt()
		if err != nil {
			return timeutil.Date{}, fmt.Errorf("DTSTART: %w", err)
		}
		return timeutil.DateOf(start), nil
	}
	start, err := ve.GetStartAt()
	if err != nil {
		return timeutil.Date{}, fmt.Errorf("DTSTART: %w", err)
	}
	return timeutil.DateOf(start.In(loc)), nil
}

// isDateValue reports whether DTSTART is a bare date (VALUE=DATE or no time
// part).
func isDateValue(prop *ical.IANAProperty) bool {
	if vs, ok := prop.ICalParameters["VALUE"]; ok && len(vs) > 0 && strings.EqualFold(vs[0], "DATE") {
		return true
	}
	return !strings.Contains(prop.Value, "T")
}

func propertyValue(ve *ical.VEvent, p ical.ComponentProperty) string {
	if prop := ve.GetProperty(p); prop != nil {
		return prop.Value
	}
	return ""
}

func categoryOf(raw string) category.Category {
	for _, part := range strings.Split(raw, ",") {
		if c, err := category.Parse(part); err == nil && strings.TrimSpace(part) != "" {
			return c
		}
	}
	return category.Other
}
