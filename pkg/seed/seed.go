// Package seed fills an event index at start-up from the demo set, events
// listed in the config file and an optional iCalendar file.
package seed

import (
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"tableflip.dev/gyoji/pkg/category"
	"tableflip.dev/gyoji/pkg/config"
	"tableflip.dev/gyoji/pkg/event"
	"tableflip.dev/gyoji/pkg/ics"
	"tableflip.dev/gyoji/pkg/store"
	"tableflip.dev/gyoji/pkg/timeutil"
)

// Adder receives seeded events.
type Adder interface {
	Add(e event.Event) error
}

// Demo returns the sample school events placed around today: the opening
// ceremony on the first of the month, then a drill, mid-term exams and an
// excursion 5, 10 and 15 days out.
func Demo(today timeutil.Date) []event.Event {
	first := timeutil.MonthOf(today).First()
	return []event.Event{
		{ID: event.NewID(), Title: "始業式", Date: first, Category: category.Academic},
		{ID: event.NewID(), Title: "避難訓練", Date: today.AddDays(5), Category: category.Other},
		{ID: event.NewID(), Title: "中間試験", Date: today.AddDays(10), Category: category.Exam},
		{ID: event.NewID(), Title: "遠足", Date: today.AddDays(15), Category: category.Sport},
	}
}

// FromConfig converts the config file's event list. Entries with a bad date
// or an empty title are skipped with a warning; unknown categories become
// "other".
func FromConfig(entries []config.EventConfig) []event.Event {
	out := make([]event.Event, 0, len(entries))
	for i, ec := range entries {
		on, err := timeutil.ParseDate(ec.Date)
		if err != nil {
			log.Warn().Err(err).Int("entry", i).Msg("seed: skipping config event")
			continue
		}
		if ec.Title == "" {
			log.Warn().Int("entry", i).Msg("seed: skipping config event without title")
			continue
		}
		c, err := category.Parse(ec.Category)
		if err != nil {
			log.Warn().Err(err).Int("entry", i).Msg("seed: using category other")
		}
		e := event.New(ec.Title, on, c)
		e.Location = ec.Location
		e.Description = ec.Description
		out = append(out, e)
	}
	return out
}

// Load adds every event to dst and returns how many were accepted.
// Duplicate IDs are skipped with a warning; any other Add error aborts.
func Load(dst Adder, events []event.Event) (int, error) {
	return load(dst, events, zerolog.WarnLevel)
}

// Reload is Load for a source that was already loaded once. Events whose ID
// is already present are expected and skipped quietly.
func Reload(dst Adder, events []event.Event) (int, error) {
	return load(dst, events, zerolog.DebugLevel)
}

func load(dst Adder, events []event.Event, duplicates zerolog.Level) (int, error) {
	n := 0
	for _, e := range events {
		if err := dst.Add(e); err != nil {
			if errors.Is(err, store.ErrDuplicateID) {
				log.WithLevel(duplicates).Str("id", e.ID).Str("title", e.Title).Msg("seed: duplicate event skipped")
				continue
			}
			return n, fmt.Errorf("seed: %w", err)
		}
		n++
	}
	return n, nil
}

// All seeds dst from cfg: the demo set when cfg.Demo is set, the configured
// events, and cfg.ICS when it names a file. today anchors the demo set.
func All(dst Adder, cfg *config.Config, today timeutil.Date, loc *time.Location) (int, error) {
	var events []event.Event
	if cfg.Demo {
		events = append(events, Demo(today)...)
	}
	events = append(events, FromConfig(cfg.Events)...)
	if cfg.ICS != "" {
		imported, err := ics.ReadFile(cfg.ICS, loc)
		if err != nil {
			return 0, fmt.Errorf("seed: %w", err)
		}
		events = append(events, imported...)
	}
	n, err := Load(dst, events)
	if err != nil {
		return n, err
	}
	log.Debug().Int("count", n).Bool("demo", cfg.Demo).Str("ics", cfg.ICS).Msg("seeded events")
	return n, nil
}
