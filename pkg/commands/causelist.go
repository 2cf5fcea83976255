package commands

import (
	"context"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"tableflip.dev/docket/pkg/commands/options"
	"tableflip.dev/docket/pkg/docket"
	runner "tableflip.dev/docket/pkg/runner/causelist"
	"tableflip.dev/docket/pkg/store"
)

func addCauseList(topLevel *cobra.Command) {
	oo := &options.OnOptions{}
	accept := ""

	cmd := &cobra.Command{
		Use:     "causelist",
		Aliases: []string{"cl"},
		Short:   "Match the court's daily list against your cases",
		Example: `
docket causelist --on=2026-3-11
docket causelist --accept=2
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			p, err := store.Load(nil)
			if err != nil {
				return err
			}

			on, err := oo.GetOn()
			if err != nil {
				return err
			}

			s := runner.CauseList{
				AcceptSerial: accept,
				Persistence:  p,
			}
			if on != nil {
				s.On = docket.DateOf(*on)
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	cmd.Flags().StringVar(&accept, "accept", "",
		"Record the hearing for the given serial number on its linked case.")
	options.AddOnArgs(cmd, oo)

	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
