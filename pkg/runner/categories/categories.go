// Package categories prints the category key.
package categories

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"

	"tableflip.dev/gyoji/pkg/category"
	"tableflip.dev/gyoji/pkg/locale"
	"tableflip.dev/gyoji/pkg/printers"
)

// Categories lists every category with its label and color.
type Categories struct {
	Labels locale.Locale
	Output string
	Out    io.Writer
}

// Entry is the structured form of one category.
type Entry struct {
	Name  string `json:"name" yaml:"name"`
	Label string `json:"label" yaml:"label"`
	Color string `json:"color" yaml:"color"`
}

// Do prints the key.
func (c *Categories) Do(_ context.Context) error {
	out := c.Out
	if out == nil {
		out = color.Output
	}

	switch c.Output {
	case "", "text":
		_, _ = fmt.Fprintln(out, "")
		pp := &printers.PrettyPrint{Out: out, Labels: c.Labels}
		pp.Categories()
		return nil
	default:
		entries := make([]Entry, 0, len(category.All()))
		for _, cat := range category.All() {
			entries = append(entries, Entry{Name: cat.String(), Label: c.Labels.Category(cat), Color: cat.Color()})
		}
		return printers.Encode(out, c.Output, entries)
	}
}
