package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/gyoji/pkg/commands/options"
	"tableflip.dev/gyoji/pkg/runner/day"
	"tableflip.dev/gyoji/pkg/timeutil"
)

func addDay(topLevel *cobra.Command) {
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "day [YYYY-MM-DD]",
		Short: base.Wrap80("List the events of one day (default today)."),
		Example: `
gyoji day
gyoji day 2026-05-10
gyoji day 5/10 -o yaml
`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := oo.Validate(); err != nil {
				return err
			}
			d := day.Day{Output: oo.Format, Out: cmd.OutOrStdout()}
			if len(args) == 1 {
				var err error
				if d.On, err = timeutil.ParseDate(args[0]); err != nil {
					return err
				}
			}

			s, err := sessionFor(cmd, ro, nil, false)
			if err != nil {
				return oo.HandleError(err)
			}
			defer s.Close()

			d.Calendar = s.Calendar
			d.Labels = s.Labels
			return oo.HandleError(d.Do(cmd.Context()))
		},
	}
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
