package printers

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"tableflip.dev/gyoji/pkg/app"
	"tableflip.dev/gyoji/pkg/event"
	"tableflip.dev/gyoji/pkg/locale"
)

// Encode writes v as "json" or "yaml".
func Encode(w io.Writer, format string, v any) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("printers: unsupported format %q", format)
	}
}

// MonthView is the structured form of a month grid.
type MonthView struct {
	Month     string      `json:"month" yaml:"month"`
	Header    string      `json:"header" yaml:"header"`
	WeekStart string      `json:"weekStart" yaml:"weekStart"`
	Today     string      `json:"today" yaml:"today"`
	Selected  string      `json:"selected" yaml:"selected"`
	Weeks     [][]DayView `json:"weeks" yaml:"weeks"`
}

// DayView is one grid cell.
type DayView struct {
	Date     string        `json:"date" yaml:"date"`
	InMonth  bool          `json:"inMonth" yaml:"inMonth"`
	Today    bool          `json:"today,omitempty" yaml:"today,omitempty"`
	Selected bool          `json:"selected,omitempty" yaml:"selected,omitempty"`
	Events   []event.Event `json:"events,omitempty" yaml:"events,omitempty"`
}

// NewMonthView flattens rm for encoding.
func NewMonthView(rm app.RenderModel, l locale.Locale) MonthView {
	mv := MonthView{
		Month:     rm.Month.String(),
		Header:    l.MonthHeader(rm.Month),
		WeekStart: rm.WeekStart.String(),
		Today:     rm.Today.String(),
		Selected:  rm.Selected.String(),
	}
	for _, week := range rm.Weeks() {
		row := make([]DayView, 0, len(week))
		for _, c := range week {
			row = append(row, DayView{
				Date:     c.Date.String(),
				InMonth:  c.InViewedMonth,
				Today:    c.IsToday,
				Selected: c.IsSelected,
				Events:   c.Events,
			})
		}
		mv.Weeks = append(mv.Weeks, row)
	}
	return mv
}
