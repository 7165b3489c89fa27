package printers

import (
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/gyoji/pkg/category"
	"tableflip.dev/gyoji/pkg/event"
	"tableflip.dev/gyoji/pkg/locale"
)

// PrettyPrint writes colorized, human readable calendar output.
type PrettyPrint struct {
	Out    io.Writer
	Labels locale.Locale
	// ShowID prefixes every event line with its identifier.
	ShowID bool
}

// New returns a printer writing to color.Output with labels l.
func New(l locale.Locale) *PrettyPrint {
	return &PrettyPrint{Out: color.Output, Labels: l}
}

func (pp *PrettyPrint) out() io.Writer {
	if pp.Out == nil {
		return color.Output
	}
	return pp.Out
}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.out(), "")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Fprintln(pp.out(), title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	_, _ = t.Fprint(pp.out(), title)
	_, _ = c.Fprintf(pp.out(), " - %d", count)

	switch count {
	case 1:
		_, _ = c.Fprintln(pp.out(), " event")
	default:
		_, _ = c.Fprintln(pp.out(), " events")
	}
}

// Events lists events one per line: date, category label, title and
// location. An empty list prints the locale's "no events" line.
func (pp *PrettyPrint) Events(events ...event.Event) {
	if len(events) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Fprintf(pp.out(), " %s\n\n", pp.Labels.NoEvents)
		return
	}

	y := color.New(color.FgHiYellow, color.Italic, color.Faint)
	loc := color.New(color.Faint)

	for _, e := range events {
		if pp.ShowID {
			_, _ = y.Fprintf(pp.out(), "%s  ", e.ID)
		}
		_, _ = fmt.Fprintf(pp.out(), "%s ", e.Date)
		_, _ = CategoryColor(e.Category).Fprintf(pp.out(), "[%s]", pp.Labels.Category(e.Category))
		_, _ = fmt.Fprintf(pp.out(), " %s", e.Title)
		if e.Location != "" {
			_, _ = loc.Fprintf(pp.out(), " @ %s", e.Location)
		}
		_, _ = fmt.Fprintln(pp.out(), "")
	}
	_, _ = fmt.Fprintln(pp.out(), "")
}

// Categories prints the category key: name, label and a color swatch.
func (pp *PrettyPrint) Categories() {
	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Category"), bold.Sprint("Label"), bold.Sprint("Color"))
	for _, c := range category.All() {
		tbl.AddRow(c.String(), pp.Labels.Category(c), CategoryColor(c).Sprint("■■"))
	}

	_, _ = fmt.Fprintln(pp.out(), tbl)
}

// CategoryColor returns the 256-color foreground used for c.
func CategoryColor(c category.Category) *color.Color {
	n, err := strconv.Atoi(c.Color())
	if err != nil {
		return color.New()
	}
	return color.New(38, 5, color.Attribute(n))
}
