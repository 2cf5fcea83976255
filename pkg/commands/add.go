package commands

import (
	"github.com/spf13/cobra"
)

func addAdd(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add something to the calendar",
		Example: `
docket add event Client meeting --on=2026-3-12 --at=15:30
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addEvent(cmd)
	addTask(cmd)
	addHearing(cmd)

	topLevel.AddCommand(cmd)
}
