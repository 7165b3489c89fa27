package app

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"tableflip.dev/gyoji/pkg/category"
	"tableflip.dev/gyoji/pkg/event"
	"tableflip.dev/gyoji/pkg/store"
)

var (
	// ErrValidation is returned by Submit when the draft has no title.
	ErrValidation = errors.New("app: event title is required")
	// ErrFormClosed is returned by Submit when the form is not open.
	ErrFormClosed = errors.New("app: event form is not open")
)

// maxIDAttempts bounds identifier regeneration after a collision.
const maxIDAttempts = 8

// Phase is the state of the add-event form.
type Phase int

const (
	// PhaseClosed is the initial and terminal state.
	PhaseClosed Phase = iota
	// PhaseOpen means the form is on screen and a draft is being edited.
	PhaseOpen
)

func (p Phase) String() string {
	switch p {
	case PhaseOpen:
		return "open"
	default:
		return "closed"
	}
}

// Draft holds the form fields while the form is open.
type Draft struct {
	Title       string
	Category    category.Category
	Location    string
	Description string
}

// EventAdder is where submitted events are written.
type EventAdder interface {
	Add(e event.Event) error
}

// CreationOption configures a Creation.
type CreationOption func(*Creation)

// WithIDGenerator overrides how new event identifiers are produced.
func WithIDGenerator(gen func() string) CreationOption {
	return func(w *Creation) {
		if gen != nil {
			w.newID = gen
		}
	}
}

// Creation drives the add-event form: Closed -> Open -> Closed. A successful
// submit files the event under the calendar's selected day.
type Creation struct {
	calendar *Calendar
	events   EventAdder
	newID    func() string

	phase Phase
	draft Draft
}

// NewCreation returns a closed form bound to calendar and events.
func NewCreation(calendar *Calendar, events EventAdder, opts ...CreationOption) *Creation {
	w := &Creation{
		calendar: calendar,
		events:   events,
		newID:    event.NewID,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Phase returns the current form state.
func (w *Creation) Phase() Phase {
	return w.phase
}

// Draft returns the fields being edited.
func (w *Creation) Draft() Draft {
	return w.draft
}

// SetDraft replaces the fields being edited. Ignored while closed.
func (w *Creation) SetDraft(d Draft) {
	if w.phase != PhaseOpen {
		return
	}
	w.draft = d
}

// Open shows the form with an empty draft.
func (w *Creation) Open() Phase {
	w.phase = PhaseOpen
	w.draft = Draft{Category: category.Default}
	return w.phase
}

// Cancel closes the form and discards the draft.
func (w *Creation) Cancel() Phase {
	w.close()
	return w.phase
}

// Submit validates d and adds it as an event on the selected day, returning
// the new event's ID. The form is closed afterwards whether or not the draft
// was accepted. An empty title yields ErrValidation and writes nothing.
func (w *Creation) Submit(d Draft) (string, error) {
	if w.phase != PhaseOpen {
		return "", ErrFormClosed
	}
	defer w.close()

	title := strings.TrimSpace(d.Title)
	if title == "" {
		log.Debug().Msg("event form submitted without a title")
		return "", ErrValidation
	}

	cat, err := category.Parse(string(d.Category))
	if err != nil {
		log.Warn().Err(err).Msg("unknown category, filing as other")
	}

	e := event.Event{
		Title:       title,
		Date:        w.calendar.SelectedDay(),
		Category:    cat,
		Location:    strings.TrimSpace(d.Location),
		Description: strings.TrimSpace(d.Description),
	}

	for attempt := 1; ; attempt++ {
		e.ID = w.newID()
		err := w.events.Add(e)
		if err == nil {
			break
		}
		if !errors.Is(err, store.ErrDuplicateID) || attempt >= maxIDAttempts {
			return "", fmt.Errorf("app: add event: %w", err)
		}
		log.Debug().Str("id", e.ID).Int("attempt", attempt).Msg("event id collision, regenerating")
	}

	log.Info().Str("id", e.ID).Str("date", e.Date.String()).Str("title", e.Title).Msg("event created")
	return e.ID, nil
}

func (w *Creation) close() {
	w.phase = PhaseClosed
	w.draft = Draft{}
}
