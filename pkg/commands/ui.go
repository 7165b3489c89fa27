package commands

import (
	"errors"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"tableflip.dev/gyoji/pkg/commands/options"
	"tableflip.dev/gyoji/pkg/ics"
	"tableflip.dev/gyoji/pkg/seed"
	tuiapp "tableflip.dev/gyoji/pkg/tui/app"
)

func addUI(topLevel *cobra.Command) {
	wo := &options.WeekStartOptions{}
	watch := true

	cmd := &cobra.Command{
		Use:   "ui",
		Short: "open the interactive month calendar",
		Example: `
gyoji ui
gyoji ui --demo --week-start monday
gyoji ui --ics school.ics --watch=false
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
				return errors.New("ui: stdout is not a terminal")
			}
			s, err := sessionFor(cmd, ro, wo, true)
			if err != nil {
				return err
			}
			defer s.Close()

			opts := tuiapp.Options{
				Calendar: s.Calendar,
				Events:   s.Index,
				Labels:   s.Labels,
				Location: s.Location,
			}
			if watch && s.Config.ICS != "" {
				path := s.Config.ICS
				opts.WatchPath = path
				opts.Reload = func() (int, error) {
					events, err := ics.ReadFile(path, s.Location)
					if err != nil {
						return 0, err
					}
					return seed.Reload(s.Index, events)
				}
			}
			return tuiapp.Run(cmd.Context(), opts)
		},
	}
	options.AddWeekStartArg(cmd, wo)
	cmd.Flags().BoolVar(&watch, "watch", true, "Reload the --ics file when it changes.")

	topLevel.AddCommand(cmd)
}
