package commands

import (
	"context"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"tableflip.dev/docket/pkg/runner/export"
	"tableflip.dev/docket/pkg/store"
)

func addExport(topLevel *cobra.Command) {
	path := ""
	filter := ""
	window := ""

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the calendar as an iCalendar feed",
		Example: `
docket export
docket export --out=docket.ics --filter="123/2024" --window=8w
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := export.Export{
				Path:        path,
				Filter:      filter,
				Window:      window,
				Persistence: p,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	cmd.Flags().StringVarP(&path, "out", "o", "",
		"Write to a file instead of stdout.")
	cmd.Flags().StringVarP(&filter, "filter", "f", "",
		"Only export entries whose title or case matches.")
	cmd.Flags().StringVarP(&window, "window", "w", "",
		`How far ahead to export, example: --window=8w. Defaults to 4w.`)

	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
