package store

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/rs/zerolog/log"

	"tableflip.dev/gyoji/pkg/event"
	"tableflip.dev/gyoji/pkg/timeutil"
)

var (
	// ErrDuplicateID is returned by Add when the identifier is already taken.
	ErrDuplicateID = errors.New("store: duplicate event id")
	// ErrMissingID is returned by Add for events without an identifier.
	ErrMissingID = errors.New("store: event id required")
)

// Index is the in-memory collection of every known event. Events are kept in
// insertion order and additionally keyed by date so day lookups do not scan
// the whole collection.
type Index struct {
	mu     sync.RWMutex
	order  []string
	byID   map[string]event.Event
	byDate map[timeutil.Date][]string
}

// NewIndex returns an empty index.
func NewIndex() *Index {
	return &Index{
		byID:   make(map[string]event.Event),
		byDate: make(map[timeutil.Date][]string),
	}
}

// Add appends e, filed under its normalized date. It fails without
// modifying the index when e has no ID or its ID is already present.
func (x *Index) Add(e event.Event) error {
	if e.ID == "" {
		return ErrMissingID
	}
	e.Date = e.Date.Normalize()
	x.mu.Lock()
	defer x.mu.Unlock()
	if _, found := x.byID[e.ID]; found {
		return fmt.Errorf("%w: %s", ErrDuplicateID, e.ID)
	}
	x.byID[e.ID] = e
	x.order = append(x.order, e.ID)
	x.byDate[e.Date] = append(x.byDate[e.Date], e.ID)
	log.Debug().Str("id", e.ID).Str("date", e.Date.String()).Str("category", e.Category.String()).Msg("event indexed")
	return nil
}

// Get returns the event with the given id.
func (x *Index) Get(id string) (event.Event, bool) {
	x.mu.RLock()
	defer x.mu.RUnlock()
	e, ok := x.byID[id]
	return e, ok
}

// EventsOn returns the events dated d in insertion order, or nil.
func (x *Index) EventsOn(d timeutil.Date) []event.Event {
	x.mu.RLock()
	defer x.mu.RUnlock()
	return x.resolve(x.byDate[d.Normalize()])
}

// EventsBetween returns the events dated within [from, to], ordered by date
// and then by insertion. An inverted range yields nil.
func (x *Index) EventsBetween(from, to timeutil.Date) []event.Event {
	from, to = from.Normalize(), to.Normalize()
	if to.Before(from) {
		return nil
	}
	x.mu.RLock()
	defer x.mu.RUnlock()

	span := from.DaysUntil(to) + 1
	if span <= len(x.byDate) {
		var out []event.Event
		for d := from; !d.After(to); d = d.AddDays(1) {
			out = append(out, x.resolve(x.byDate[d])...)
		}
		return out
	}

	// Fewer populated days than days in the range: walk the populated days.
	days := make([]timeutil.Date, 0, len(x.byDate))
	for d := range x.byDate {
		if !d.Before(from) && !d.After(to) {
			days = append(days, d)
		}
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })
	var out []event.Event
	for _, d := range days {
		out = append(out, x.resolve(x.byDate[d])...)
	}
	return out
}

// All returns every event in insertion order.
func (x *Index) All() []event.Event {
	x.mu.RLock()
	defer x.mu.RUnlock()
	return x.resolve(x.order)
}

// Len returns the number of indexed events.
func (x *Index) Len() int {
	x.mu.RLock()
	defer x.mu.RUnlock()
	return len(x.order)
}

func (x *Index) resolve(ids []string) []event.Event {
	if len(ids) == 0 {
		return nil
	}
	out := make([]event.Event, 0, len(ids))
	for _, id := range ids {
		out = append(out, x.byID[id])
	}
	return out
}
