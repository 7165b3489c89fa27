package options

import (
	"github.com/spf13/cobra"

	"tableflip.dev/gyoji/pkg/timeutil"
)

// DateOptions holds a date flag.
type DateOptions struct {
	Raw string
}

// AddDateArg registers --name on cmd.
func AddDateArg(cmd *cobra.Command, o *DateOptions, name, usage string) {
	cmd.Flags().StringVar(&o.Raw, name, "", usage+
		` Example: --`+name+`="2026-5-10" or --`+name+`="5/10".`)
}

// Get parses the flag. An unset flag yields the zero Date.
func (o *DateOptions) Get() (timeutil.Date, error) {
	if o.Raw == "" {
		return timeutil.Date{}, nil
	}
	return timeutil.ParseDate(o.Raw)
}

// WindowOptions holds the agenda window.
type WindowOptions struct {
	Raw string
}

// AddWindowArg registers --window on cmd.
func AddWindowArg(cmd *cobra.Command, o *WindowOptions) {
	cmd.Flags().StringVarP(&o.Raw, "window", "w", timeutil.DefaultSpan,
		`Number of days to cover, example: --window=10d or --window=2w.`)
}

// Days parses the window into a day count.
func (o *WindowOptions) Days() (int, error) {
	days, _, err := timeutil.ParseSpan(o.Raw)
	return days, err
}

// WeekStartOptions overrides the configured first weekday.
type WeekStartOptions struct {
	Raw string
}

// AddWeekStartArg registers --week-start on cmd.
func AddWeekStartArg(cmd *cobra.Command, o *WeekStartOptions) {
	cmd.Flags().StringVar(&o.Raw, "week-start", "",
		`First column of the grid: a weekday name or 0..6 (0 = Sunday). Defaults to the config value.`)
}
