package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/docket/pkg/store"
	"tableflip.dev/docket/pkg/tui/calendar"
)

func addUI(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "ui",
		Short: "Open the interactive calendar",
		Example: `
docket ui
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			return calendar.Run(p)
		},
	}

	topLevel.AddCommand(cmd)
}
