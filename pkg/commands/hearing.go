package commands

import (
	"context"
	"errors"
	"strings"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"tableflip.dev/docket/pkg/commands/options"
	"tableflip.dev/docket/pkg/docket"
	"tableflip.dev/docket/pkg/runner/add"
	"tableflip.dev/docket/pkg/store"
)

func addHearing(topLevel *cobra.Command) {
	no := &options.EntryOptions{}
	oo := &options.OnOptions{}

	cmd := &cobra.Command{
		Use:   "hearing",
		Short: "Add a hearing not yet linked to a case",
		Long: "A hearing added here is not attached to a case file; it lands on the\n" +
			"calendar as a labelled event. Use the causelist command to record a\n" +
			"hearing on a case.",
		Example: `
docket add hearing Final arguments --on=2026-3-18 --at=10:30 --court="High Court"
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) < 1 {
				return errors.New("requires a hearing purpose")
			}
			no.Title = strings.Join(args, " ")

			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			p, err := store.Load(nil)
			if err != nil {
				return err
			}

			on, err := oo.GetOn()
			if err != nil {
				return err
			}
			at, err := no.GetTime()
			if err != nil {
				return err
			}

			s := add.Add{
				Kind:        docket.KindHearing,
				Title:       no.Title,
				Time:        at,
				Description: no.Description,
				Court:       no.Court,
				Attachments: no.Attachments,
				Persistence: p,
			}
			if on != nil {
				s.Date = docket.DateOf(*on)
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddOnArgs(cmd, oo)
	options.AddEntryArgs(cmd, no)
	options.AddHearingArgs(cmd, no)

	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
