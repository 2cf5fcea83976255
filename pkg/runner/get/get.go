package get

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/docket/pkg/agenda"
	"tableflip.dev/docket/pkg/docket"
	"tableflip.dev/docket/pkg/printers"
	"tableflip.dev/docket/pkg/store"
)

// What selects which records a Get lists.
type What string

const (
	Cases    What = "cases"
	Hearings What = "hearings"
	Tasks    What = "tasks"
	Events   What = "events"
	All      What = ""
)

type Get struct {
	What   What
	ShowID bool
	Filter string

	Persistence store.Persistence
}

func (n *Get) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not get, no persistence")
	}
	fmt.Println("")

	pp := printers.PrettyPrint{ShowID: n.ShowID}

	if n.What == Cases {
		cases := n.Persistence.ListCases(ctx)
		pp.TitleWithCount("Cases", len(cases))
		pp.Cases(cases...)
		return nil
	}

	items := agenda.Aggregate(agenda.Sources{
		Cases:       n.Persistence.ListCases(ctx),
		GlobalTasks: n.Persistence.ListTasks(ctx),
		Events:      n.Persistence.ListEvents(ctx),
	})
	items = agenda.Filter(items, n.Filter)

	switch n.What {
	case Hearings:
		items = keep(items, docket.KindHearing)
		pp.TitleWithCount("Hearings", len(items))
	case Tasks:
		items = keep(items, docket.KindTask)
		pp.TitleWithCount("Tasks", len(items))
	case Events:
		items = keep(items, docket.KindGeneral)
		pp.TitleWithCount("Events", len(items))
	default:
		pp.TitleWithCount("Calendar entries", len(items))
	}

	pp.Items(items...)
	return nil
}

func keep(all []agenda.Item, kind docket.Kind) []agenda.Item {
	c := make([]agenda.Item, 0, len(all))
	for _, a := range all {
		if a.Kind == kind {
			c = append(c, a)
		}
	}
	return c
}
