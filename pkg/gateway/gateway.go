// Package gateway routes confirmed creation payloads to exactly one store
// append. It is the only way the quick-add flow and the creation forms
// write calendar entries.
package gateway

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tableflip.dev/docket/pkg/docket"
)

// Default times applied when a payload has no explicit time.
const (
	defaultEventTime   = docket.Clock("09:00")
	defaultHearingTime = docket.Clock("10:00")
)

// TaskAppender appends to the global-task store.
type TaskAppender interface {
	CreateTask(ctx context.Context, draft docket.TaskDraft) (*docket.Task, error)
}

// EventAppender appends to the general-event store.
type EventAppender interface {
	CreateEvent(ctx context.Context, draft docket.EventDraft) (*docket.Event, error)
}

// Payload is a confirmed creation request, either from the quick-add flow
// or the full form. Validation that a hearing has a case selected belongs
// to the caller; by the time a payload reaches the gateway it routes as-is.
type Payload struct {
	Kind        docket.Kind
	Title       string
	Date        docket.Date
	Time        docket.Clock
	Description string
	Priority    docket.Priority
	Court       string
	Attachments []string
}

// Created reports the single record appended; exactly one field is set.
type Created struct {
	Task  *docket.Task
	Event *docket.Event
}

// Gateway binds the two append targets.
type Gateway struct {
	Tasks  TaskAppender
	Events EventAppender
}

// Create appends the payload to one store and returns the stored record
// with its freshly minted identifier.
func (g *Gateway) Create(ctx context.Context, p Payload) (*Created, error) {
	if p.Title == "" {
		return nil, errors.New("gateway: title required")
	}
	if p.Date.IsZero() {
		return nil, errors.New("gateway: date required")
	}

	switch p.Kind {
	case docket.KindTask:
		if g.Tasks == nil {
			return nil, errors.New("gateway: no task store")
		}
		t, err := g.Tasks.CreateTask(ctx, docket.TaskDraft{
			Title:       p.Title,
			DueDate:     p.Date,
			Priority:    p.Priority,
			Description: p.Description,
			Attachments: p.Attachments,
		})
		if err != nil {
			return nil, err
		}
		return &Created{Task: t}, nil

	case docket.KindHearing:
		// A hearing created outside a case file becomes a general event
		// labelled as one, so it still shows on the calendar.
		court := p.Court
		if court == "" {
			court = "Court"
		}
		clock := p.Time
		if clock.IsZero() {
			clock = defaultHearingTime
		}
		return g.appendEvent(ctx, fmt.Sprintf("Hearing: %s (%s)", p.Title, court), p, clock)

	default:
		clock := p.Time
		if clock.IsZero() {
			clock = defaultEventTime
		}
		return g.appendEvent(ctx, p.Title, p, clock)
	}
}

func (g *Gateway) appendEvent(ctx context.Context, title string, p Payload, clock docket.Clock) (*Created, error) {
	if g.Events == nil {
		return nil, errors.New("gateway: no event store")
	}
	start, err := combine(p.Date, clock)
	if err != nil {
		return nil, err
	}
	e, err := g.Events.CreateEvent(ctx, docket.EventDraft{
		Title:       title,
		Start:       start,
		End:         docket.Timestamp{Time: start.Add(time.Hour)},
		Description: p.Description,
		Attachments: p.Attachments,
	})
	if err != nil {
		return nil, err
	}
	return &Created{Event: e}, nil
}

func combine(d docket.Date, c docket.Clock) (docket.Timestamp, error) {
	at, err := time.Parse("15:04", c.String())
	if err != nil {
		return docket.Timestamp{}, fmt.Errorf("gateway: bad time %q: %w", c, err)
	}
	return docket.Timestamp{Time: time.Date(
		d.Year(), d.Month(), d.Day(), at.Hour(), at.Minute(), 0, 0, time.UTC,
	)}, nil
}
