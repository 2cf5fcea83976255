// Package store persists the practice's records. The calendar core never
// touches storage directly; it consumes snapshots read through the
// Persistence interface, so tests and demos can swap in the in-memory
// implementation.
package store

import (
	"context"
	"errors"

	"tableflip.dev/docket/pkg/docket"
)

// ErrNotFound is returned when a record id does not exist.
var ErrNotFound = errors.New("store: record not found")

// Persistence is the read/write contract the calendar core and the CLI
// consume. Case records own their hearings and case tasks; global tasks
// and general events live in their own buckets.
type Persistence interface {
	ListCases(ctx context.Context) []*docket.Case
	GetCase(ctx context.Context, id string) (*docket.Case, error)
	StoreCase(c *docket.Case) error
	AddHearing(ctx context.Context, caseID string, h *docket.Hearing) (*docket.Hearing, error)

	ListTasks(ctx context.Context) []*docket.Task
	CreateTask(ctx context.Context, draft docket.TaskDraft) (*docket.Task, error)
	UpdateTask(ctx context.Context, t *docket.Task) error
	DeleteTask(ctx context.Context, id string) error

	ListEvents(ctx context.Context) []*docket.Event
	CreateEvent(ctx context.Context, draft docket.EventDraft) (*docket.Event, error)

	Watch(ctx context.Context) (<-chan Event, error)
}
