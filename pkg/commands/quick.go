package commands

import (
	"context"
	"errors"
	"strings"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"tableflip.dev/docket/pkg/runner/quickadd"
	"tableflip.dev/docket/pkg/store"
)

func addQuick(topLevel *cobra.Command) {
	confirm := false

	cmd := &cobra.Command{
		Use:   "quick",
		Short: "Draft an entry from one line of text",
		Long: "Classifies free text into a hearing, task, or general event, pulling\n" +
			"out a time and \"tomorrow\" when mentioned. Without --confirm nothing\n" +
			"is saved.",
		Example: `
docket quick "hearing tomorrow at 2pm"
docket quick "task file affidavit" --confirm
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) < 1 {
				return errors.New("requires text to parse")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			p, err := store.Load(nil)
			if err != nil {
				return err
			}

			s := quickadd.QuickAdd{
				Text:        strings.Join(args, " "),
				Confirm:     confirm,
				Persistence: p,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	cmd.Flags().BoolVar(&confirm, "confirm", false,
		"Save the parsed draft instead of just showing it.")

	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
