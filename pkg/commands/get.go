package commands

import (
	"context"
	"errors"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"tableflip.dev/docket/pkg/commands/options"
	"tableflip.dev/docket/pkg/runner/get"
	"tableflip.dev/docket/pkg/store"
)

func addGet(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	vo := &options.ViewOptions{}

	what := get.All

	cmd := &cobra.Command{
		Use:   "get [cases|hearings|tasks|events]",
		Short: "List stored records",
		Example: `
docket get
docket get cases
docket get tasks --filter=affidavit
`,
		ValidArgs: []string{"cases", "hearings", "tasks", "events"},
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return nil
			}
			if len(args) > 1 {
				return errors.New("too many record kinds, confused")
			}
			switch get.What(args[0]) {
			case get.Cases, get.Hearings, get.Tasks, get.Events:
				what = get.What(args[0])
				return nil
			}
			return errors.New("unknown record kind " + args[0])
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := get.Get{
				What:        what,
				ShowID:      io.ShowID,
				Filter:      vo.Filter,
				Persistence: p,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	cmd.Flags().StringVarP(&vo.Filter, "filter", "f", "",
		"Only show entries whose title or case matches.")
	options.AddShowIDArgs(cmd, io)

	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
