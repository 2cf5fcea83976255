package options

import (
	"github.com/spf13/cobra"

	"tableflip.dev/docket/pkg/docket"
)

// EntryOptions captures the shared flags of the add subcommands.
type EntryOptions struct {
	Title       string
	TimeString  string
	Description string
	Court       string
	Priority    string
	Attachments []string
}

func AddEntryArgs(cmd *cobra.Command, o *EntryOptions) {
	cmd.Flags().StringVar(&o.TimeString, "at", "",
		`Specify a time, example: --at="14:30".`)
	cmd.Flags().StringVar(&o.Description, "description", "",
		"Notes to attach to the entry.")
	cmd.Flags().StringSliceVar(&o.Attachments, "attach", nil,
		"Attachment references, repeatable.")
}

func AddTaskArgs(cmd *cobra.Command, o *EntryOptions) {
	cmd.Flags().StringVar(&o.Priority, "priority", "",
		"Task priority, one of low, medium, high.")
}

func AddHearingArgs(cmd *cobra.Command, o *EntryOptions) {
	cmd.Flags().StringVar(&o.Court, "court", "",
		"Court the hearing sits in.")
}

func (o *EntryOptions) GetTime() (docket.Clock, error) {
	return docket.ParseClock(o.TimeString)
}

func (o *EntryOptions) GetPriority() (docket.Priority, error) {
	return docket.ParsePriority(o.Priority)
}
