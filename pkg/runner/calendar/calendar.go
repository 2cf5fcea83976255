package calendar

import (
	"context"
	"errors"
	"time"

	"tableflip.dev/docket/pkg/agenda"
	"tableflip.dev/docket/pkg/printers"
	"tableflip.dev/docket/pkg/store"
)

// Calendar snapshots the stores, aggregates everything into one item
// list, and prints the requested projection.
type Calendar struct {
	Mode   agenda.ViewMode
	On     *time.Time
	Filter string
	ShowID bool

	Persistence store.Persistence
}

func (n *Calendar) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not show calendar, no persistence")
	}

	now := time.Now()
	pivot := now
	if n.On != nil {
		pivot = *n.On
	}

	items := agenda.Aggregate(agenda.Sources{
		Cases:       n.Persistence.ListCases(ctx),
		GlobalTasks: n.Persistence.ListTasks(ctx),
		Events:      n.Persistence.ListEvents(ctx),
	})
	items = agenda.Filter(items, n.Filter)

	p := agenda.NewPivot(pivot).WithMode(n.Mode)

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	pp.Title(p.Title())
	pp.NewLine()

	switch n.Mode {
	case agenda.ViewWeek:
		pp.Week(agenda.Week(pivot, items, now))
	case agenda.ViewDay:
		pp.Day(agenda.Day(pivot, items))
	case agenda.ViewAgenda:
		pp.Agenda(agenda.Agenda(items))
	default:
		pp.Month(agenda.Month(pivot, items, now))
	}
	return nil
}
