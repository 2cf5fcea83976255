package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
)

var (
	output = &base.OutputOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "docket",
		Short: base.Wrap80("The practice's calendar on the command line."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addUI(topLevel)
	addAdd(topLevel)
	addQuick(topLevel)
	addCalendar(topLevel)
	addGet(topLevel)
	addCauseList(topLevel)
	addExport(topLevel)
	addCompletions(topLevel)
	addVersion(topLevel)
}
