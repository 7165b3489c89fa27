// Package category defines the closed set of event categories used to group
// and color school events.
package category

import (
	"fmt"
	"strings"
)

// Category identifies what kind of school event an entry is.
type Category string

const (
	// Academic covers ceremonies and academic functions.
	Academic Category = "academic"
	// Sport covers sports days, excursions and club meets.
	Sport Category = "sport"
	// Holiday marks public holidays and school closures.
	Holiday Category = "holiday"
	// Exam marks tests and examination periods.
	Exam Category = "exam"
	// Other is everything else (drills, meetings, ...).
	Other Category = "other"
)

// Default is the category preselected when a new event form opens.
const Default = Academic

// All returns the categories in display order.
func All() []Category {
	return []Category{
		Academic,
		Sport,
		Holiday,
		Exam,
		Other,
	}
}

// Parse converts a string to a Category or returns an error for unknown
// values. Empty input yields Default.
func Parse(raw string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(raw)))
	if c == "" {
		return Default, nil
	}
	if c.Valid() {
		return c, nil
	}
	return Other, fmt.Errorf("category: unknown category %q", raw)
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	for _, candidate := range All() {
		if candidate == c {
			return true
		}
	}
	return false
}

// Index returns the position of c in All, or -1.
func (c Category) Index() int {
	for i, candidate := range All() {
		if candidate == c {
			return i
		}
	}
	return -1
}

// Color returns the ANSI 256 color code used to paint c.
func (c Category) Color() string {
	switch c {
	case Academic:
		return "33" // blue
	case Sport:
		return "208" // orange
	case Holiday:
		return "34" // green
	case Exam:
		return "196" // red
	default:
		return "135" // purple
	}
}

func (c Category) String() string {
	return string(c)
}
