package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/gyoji/pkg/commands/options"
	"tableflip.dev/gyoji/pkg/runner/month"
	"tableflip.dev/gyoji/pkg/timeutil"
)

func addMonth(topLevel *cobra.Command) {
	oo := &options.OutputOptions{}
	so := &options.DateOptions{}
	wo := &options.WeekStartOptions{}

	cmd := &cobra.Command{
		Use:   "month [YYYY-MM]",
		Short: base.Wrap80("Print the month grid and its events."),
		Example: `
gyoji month
gyoji month 2026-04 --week-start monday
gyoji month --select 2026-5-10 -o json
`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := oo.Validate(); err != nil {
				return err
			}
			m := month.Month{Output: oo.Format, Out: cmd.OutOrStdout()}
			if len(args) == 1 {
				var err error
				if m.Month, err = timeutil.ParseMonth(args[0]); err != nil {
					return err
				}
			}
			sel, err := so.Get()
			if err != nil {
				return fmt.Errorf("--select: %w", err)
			}
			m.Select = sel

			s, err := sessionFor(cmd, ro, wo, false)
			if err != nil {
				return oo.HandleError(err)
			}
			defer s.Close()

			m.Calendar = s.Calendar
			m.Labels = s.Labels
			return oo.HandleError(m.Do(cmd.Context()))
		},
	}
	options.AddOutputArg(cmd, oo)
	options.AddDateArg(cmd, so, "select", "Day to select.")
	options.AddWeekStartArg(cmd, wo)

	topLevel.AddCommand(cmd)
}
