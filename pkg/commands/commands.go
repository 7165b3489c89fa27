package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
)

var (
	ro = &rootOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "gyoji",
		Short: base.Wrap80("School event calendar on the command line."),
		Long: base.Wrap80("gyoji shows a month grid of school events (ceremonies, sports days, " +
			"holidays, exams) and lets you add events from a terminal UI. Events are " +
			"seeded from the config file, an optional iCalendar file and the --demo set."),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	addRootArgs(cmd, ro)

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addMonth(topLevel)
	addDay(topLevel)
	addAgenda(topLevel)
	addCategories(topLevel)
	addUI(topLevel)
	addVersion(topLevel)
}
