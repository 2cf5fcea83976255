package gateway

import (
	"context"
	"testing"

	"tableflip.dev/docket/pkg/docket"
	"tableflip.dev/docket/pkg/store"
)

func payloadDate(t *testing.T, v string) docket.Date {
	t.Helper()
	d, err := docket.ParseDate(v)
	if err != nil {
		t.Fatalf("bad test date %q: %v", v, err)
	}
	return d
}

func newGateway() (*Gateway, *store.Memory) {
	m := store.NewMemory()
	return &Gateway{Tasks: m, Events: m}, m
}

func TestTaskRoutesToTaskStore(t *testing.T) {
	g, m := newGateway()
	ctx := context.Background()

	created, err := g.Create(ctx, Payload{
		Kind:     docket.KindTask,
		Title:    "File reply",
		Date:     payloadDate(t, "2026-03-11"),
		Priority: docket.PriorityHigh,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.Task == nil || created.Event != nil {
		t.Fatalf("expected exactly a task, got %+v", created)
	}
	if created.Task.ID == "" {
		t.Fatalf("expected minted id")
	}
	if created.Task.Status != docket.StatusPending {
		t.Fatalf("new tasks start Pending, got %s", created.Task.Status)
	}

	if events := m.ListEvents(ctx); len(events) != 0 {
		t.Fatalf("task payload must not touch the event store")
	}
	if tasks := m.ListTasks(ctx); len(tasks) != 1 {
		t.Fatalf("expected 1 stored task, got %d", len(tasks))
	}
}

func TestGeneralRoutesToEventStore(t *testing.T) {
	g, m := newGateway()
	ctx := context.Background()

	created, err := g.Create(ctx, Payload{
		Kind:  docket.KindGeneral,
		Title: "Client meeting",
		Date:  payloadDate(t, "2026-03-12"),
		Time:  "15:30",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.Event == nil || created.Task != nil {
		t.Fatalf("expected exactly an event, got %+v", created)
	}
	if got := created.Event.Start.String(); got != "2026-03-12T15:30:00Z" {
		t.Fatalf("unexpected start %s", got)
	}
	if got := created.Event.End.Sub(created.Event.Start.Time).Hours(); got != 1 {
		t.Fatalf("expected one-hour duration, got %v", got)
	}
	if tasks := m.ListTasks(ctx); len(tasks) != 0 {
		t.Fatalf("event payload must not touch the task store")
	}
}

func TestGeneralDefaultsToNine(t *testing.T) {
	g, _ := newGateway()
	created, err := g.Create(context.Background(), Payload{
		Kind:  docket.KindGeneral,
		Title: "All hands",
		Date:  payloadDate(t, "2026-03-12"),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if got := created.Event.Start.Clock(); got != "09:00" {
		t.Fatalf("expected 09:00 default, got %s", got)
	}
}

func TestHearingBecomesLabelledEvent(t *testing.T) {
	g, _ := newGateway()
	created, err := g.Create(context.Background(), Payload{
		Kind:  docket.KindHearing,
		Title: "Arguments",
		Date:  payloadDate(t, "2026-03-13"),
		Court: "Courtroom 3",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.Event == nil {
		t.Fatalf("hearing payload should append an event")
	}
	if created.Event.Title != "Hearing: Arguments (Courtroom 3)" {
		t.Fatalf("unexpected title %q", created.Event.Title)
	}
	if got := created.Event.Start.Clock(); got != "10:00" {
		t.Fatalf("expected 10:00 default for hearings, got %s", got)
	}
}

func TestRejectsIncompletePayloads(t *testing.T) {
	g, _ := newGateway()
	ctx := context.Background()

	if _, err := g.Create(ctx, Payload{Kind: docket.KindTask, Date: payloadDate(t, "2026-03-11")}); err == nil {
		t.Fatalf("expected error for missing title")
	}
	if _, err := g.Create(ctx, Payload{Kind: docket.KindTask, Title: "x"}); err == nil {
		t.Fatalf("expected error for missing date")
	}
}
