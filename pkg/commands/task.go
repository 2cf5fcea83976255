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

func addTask(topLevel *cobra.Command) {
	no := &options.EntryOptions{}
	oo := &options.OnOptions{}

	cmd := &cobra.Command{
		Use:   "task",
		Short: "Add a global task",
		Example: `
docket add task File rejoinder --on=2026-3-20 --priority=high
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) < 1 {
				return errors.New("requires a task title")
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
			priority, err := no.GetPriority()
			if err != nil {
				return err
			}

			s := add.Add{
				Kind:        docket.KindTask,
				Title:       no.Title,
				Time:        at,
				Description: no.Description,
				Priority:    priority,
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
	options.AddTaskArgs(cmd, no)

	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
