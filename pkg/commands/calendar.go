package commands

import (
	"context"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"tableflip.dev/docket/pkg/commands/options"
	"tableflip.dev/docket/pkg/runner/calendar"
	"tableflip.dev/docket/pkg/store"
)

func addCalendar(topLevel *cobra.Command) {
	vo := &options.ViewOptions{}
	oo := &options.OnOptions{}
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:     "calendar",
		Aliases: []string{"cal"},
		Short:   "Show the aggregated calendar",
		Example: `
docket calendar
docket calendar --view=week --on=2026-3-9
docket calendar --view=agenda --filter="123/2024"
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			p, err := store.Load(nil)
			if err != nil {
				return err
			}

			mode, err := vo.GetView()
			if err != nil {
				return err
			}
			on, err := oo.GetOn()
			if err != nil {
				return err
			}

			s := calendar.Calendar{
				Mode:        mode,
				On:          on,
				Filter:      vo.Filter,
				ShowID:      io.ShowID,
				Persistence: p,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddViewArgs(cmd, vo)
	options.AddOnArgs(cmd, oo)
	options.AddShowIDArgs(cmd, io)

	flagName := "filter"
	_ = cmd.RegisterFlagCompletionFunc(flagName, func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return caseCompletions(toComplete), cobra.ShellCompDirectiveNoFileComp
	})

	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
