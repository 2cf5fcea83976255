package options

import (
	"github.com/spf13/cobra"

	"tableflip.dev/docket/pkg/agenda"
)

// ViewOptions selects the calendar projection and its filter.
type ViewOptions struct {
	ViewString string
	Filter     string
}

func AddViewArgs(cmd *cobra.Command, o *ViewOptions) {
	cmd.Flags().StringVarP(&o.ViewString, "view", "v", "month",
		"Projection to show, one of month, week, day, agenda.")
	cmd.Flags().StringVarP(&o.Filter, "filter", "f", "",
		"Only show entries whose title or case matches.")
}

func (o *ViewOptions) GetView() (agenda.ViewMode, error) {
	if o.ViewString == "" {
		return agenda.ViewMonth, nil
	}
	return agenda.ParseViewMode(o.ViewString)
}
