// Package event defines the school event record shown on the calendar.
package event

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"tableflip.dev/gyoji/pkg/category"
	"tableflip.dev/gyoji/pkg/timeutil"
)

// Event is a titled, dated, categorized entry. Events are all-day; Date has
// no time component.
type Event struct {
	ID          string            `json:"id" yaml:"id"`
	Title       string            `json:"title" yaml:"title"`
	Date        timeutil.Date     `json:"date" yaml:"date"`
	Category    category.Category `json:"category" yaml:"category"`
	Location    string            `json:"location,omitempty" yaml:"location,omitempty"`
	Description string            `json:"description,omitempty" yaml:"description,omitempty"`
}

// New returns an event with a freshly generated identifier.
func New(title string, on timeutil.Date, c category.Category) Event {
	return Event{
		ID:       NewID(),
		Title:    title,
		Date:     on,
		Category: c,
	}
}

// NewID generates a random (v4) UUID string.
func NewID() string {
	return uuid.NewString()
}

func (e Event) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s [%s] %s", e.Date, e.Category, e.Title)
	if e.Location != "" {
		fmt.Fprintf(&b, " @ %s", e.Location)
	}
	return b.String()
}
