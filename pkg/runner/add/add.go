package add

import (
	"context"
	"errors"

	"tableflip.dev/docket/pkg/agenda"
	"tableflip.dev/docket/pkg/docket"
	"tableflip.dev/docket/pkg/gateway"
	"tableflip.dev/docket/pkg/printers"
	"tableflip.dev/docket/pkg/store"
)

// Add routes one confirmed entry through the creation gateway and shows
// the day it landed on.
type Add struct {
	Kind        docket.Kind
	Title       string
	Date        docket.Date
	Time        docket.Clock
	Description string
	Priority    docket.Priority
	Court       string
	Attachments []string

	Persistence store.Persistence
}

func (n *Add) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not add, no persistence")
	}
	if n.Date.IsZero() {
		n.Date = docket.Today()
	}

	g := &gateway.Gateway{Tasks: n.Persistence, Events: n.Persistence}
	created, err := g.Create(ctx, gateway.Payload{
		Kind:        n.Kind,
		Title:       n.Title,
		Date:        n.Date,
		Time:        n.Time,
		Description: n.Description,
		Priority:    n.Priority,
		Court:       n.Court,
		Attachments: n.Attachments,
	})
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	switch {
	case created.Task != nil:
		pp.Title("Task added for " + created.Task.DueDate.String())
	case created.Event != nil:
		pp.Title("Event added for " + created.Event.Start.Date().String())
	}

	items := agenda.Aggregate(agenda.Sources{
		Cases:       n.Persistence.ListCases(ctx),
		GlobalTasks: n.Persistence.ListTasks(ctx),
		Events:      n.Persistence.ListEvents(ctx),
	})
	day := make([]agenda.Item, 0)
	for _, it := range items {
		if it.Date.String() == n.Date.String() {
			day = append(day, it)
		}
	}
	pp.Items(day...)
	return nil
}
