package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/gyoji/pkg/commands/options"
	"tableflip.dev/gyoji/pkg/runner/agenda"
)

func addAgenda(topLevel *cobra.Command) {
	oo := &options.OutputOptions{}
	fo := &options.DateOptions{}
	wo := &options.WindowOptions{}

	cmd := &cobra.Command{
		Use:   "agenda",
		Short: base.Wrap80("List upcoming events over a window of days."),
		Example: `
gyoji agenda
gyoji agenda --from 2026-05-01 --window 2w
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := oo.Validate(); err != nil {
				return err
			}
			from, err := fo.Get()
			if err != nil {
				return fmt.Errorf("--from: %w", err)
			}
			days, err := wo.Days()
			if err != nil {
				return fmt.Errorf("--window: %w", err)
			}

			s, err := sessionFor(cmd, ro, nil, false)
			if err != nil {
				return oo.HandleError(err)
			}
			defer s.Close()

			if from.IsZero() {
				from = s.Calendar.Today()
			}
			a := agenda.Agenda{
				Events: s.Index,
				Labels: s.Labels,
				From:   from,
				Days:   days,
				Output: oo.Format,
				Out:    cmd.OutOrStdout(),
			}
			return oo.HandleError(a.Do(cmd.Context()))
		},
	}
	options.AddOutputArg(cmd, oo)
	options.AddDateArg(cmd, fo, "from", "First day of the agenda (default today).")
	options.AddWindowArg(cmd, wo)

	topLevel.AddCommand(cmd)
}
