package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/gyoji/pkg/commands/options"
	"tableflip.dev/gyoji/pkg/config"
	"tableflip.dev/gyoji/pkg/runner/categories"
)

func addCategories(topLevel *cobra.Command) {
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:     "categories",
		Aliases: []string{"key"},
		Short:   "Print the event categories and their colors",
		Example: `
gyoji categories
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := oo.Validate(); err != nil {
				return err
			}
			cfg, err := config.Load(ro.ConfigPath)
			if err != nil {
				return oo.HandleError(err)
			}
			c := categories.Categories{Labels: cfg.Labels(), Output: oo.Format, Out: cmd.OutOrStdout()}
			return oo.HandleError(c.Do(cmd.Context()))
		},
	}
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
