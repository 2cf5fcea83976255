package store

import (
	"context"
	"testing"
	"time"

	"tableflip.dev/docket/pkg/docket"
)

type tempConfig struct {
	path string
}

func (c *tempConfig) BasePath() string { return c.path }

func testDate(t *testing.T, v string) docket.Date {
	t.Helper()
	d, err := docket.ParseDate(v)
	if err != nil {
		t.Fatalf("bad test date %q: %v", v, err)
	}
	return d
}

func TestDiskvRoundTrip(t *testing.T) {
	p, err := Load(&tempConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	ctx := context.Background()

	c := &docket.Case{CaseNumber: "123", Year: "2024", Status: "Active"}
	if err := p.StoreCase(c); err != nil {
		t.Fatalf("store case: %v", err)
	}
	if c.ID == "" {
		t.Fatalf("expected case id to be minted")
	}

	task, err := p.CreateTask(ctx, docket.TaskDraft{Title: "File reply", DueDate: testDate(t, "2026-03-11")})
	if err != nil {
		t.Fatalf("create task: %v", err)
	}
	if task.Status != docket.StatusPending || task.Priority != docket.PriorityMedium {
		t.Fatalf("task defaults not applied: %+v", task)
	}

	start, _ := docket.ParseTimestamp("2026-03-12T15:30:00Z")
	end, _ := docket.ParseTimestamp("2026-03-12T16:30:00Z")
	event, err := p.CreateEvent(ctx, docket.EventDraft{Title: "Client meeting", Start: start, End: end})
	if err != nil {
		t.Fatalf("create event: %v", err)
	}

	if got := p.ListCases(ctx); len(got) != 1 || got[0].CaseNumber != "123" {
		t.Fatalf("unexpected cases: %+v", got)
	}
	if got := p.ListTasks(ctx); len(got) != 1 || got[0].ID != task.ID {
		t.Fatalf("unexpected tasks: %+v", got)
	}
	if got := p.ListEvents(ctx); len(got) != 1 || got[0].ID != event.ID {
		t.Fatalf("unexpected events: %+v", got)
	}
	if got, err := p.GetCase(ctx, c.ID); err != nil || got.Year != "2024" {
		t.Fatalf("get case: %v %+v", err, got)
	}
}

func TestDiskvAddHearing(t *testing.T) {
	p, err := Load(&tempConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	ctx := context.Background()

	c := &docket.Case{CaseNumber: "5678", Year: "2023"}
	if err := p.StoreCase(c); err != nil {
		t.Fatalf("store case: %v", err)
	}

	h, err := p.AddHearing(ctx, c.ID, &docket.Hearing{Date: testDate(t, "2026-03-13"), Purpose: "Evidence"})
	if err != nil {
		t.Fatalf("add hearing: %v", err)
	}
	if h.ID == "" {
		t.Fatalf("expected hearing id to be minted")
	}

	got, err := p.GetCase(ctx, c.ID)
	if err != nil {
		t.Fatalf("get case: %v", err)
	}
	if len(got.Hearings) != 1 || got.Hearings[0].Purpose != "Evidence" {
		t.Fatalf("hearing not persisted: %+v", got.Hearings)
	}

	if _, err := p.AddHearing(ctx, "missing", &docket.Hearing{}); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDiskvTaskLifecycle(t *testing.T) {
	p, err := Load(&tempConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	ctx := context.Background()

	task, err := p.CreateTask(ctx, docket.TaskDraft{Title: "Draft", DueDate: testDate(t, "2026-03-11")})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	task.Status = docket.StatusCompleted
	if err := p.UpdateTask(ctx, task); err != nil {
		t.Fatalf("update: %v", err)
	}
	if got := p.ListTasks(ctx); got[0].Status != docket.StatusCompleted {
		t.Fatalf("update not persisted: %+v", got[0])
	}

	if err := p.DeleteTask(ctx, task.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if got := p.ListTasks(ctx); len(got) != 0 {
		t.Fatalf("expected empty task list, got %d", len(got))
	}
	if err := p.DeleteTask(ctx, task.ID); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestMemoryMatchesContract(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	if _, err := m.GetCase(ctx, "nope"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	c := &docket.Case{CaseNumber: "1", Year: "2026"}
	if err := m.StoreCase(c); err != nil {
		t.Fatalf("store case: %v", err)
	}
	if _, err := m.AddHearing(ctx, c.ID, &docket.Hearing{Date: testDate(t, "2026-03-13")}); err != nil {
		t.Fatalf("add hearing: %v", err)
	}

	task, err := m.CreateTask(ctx, docket.TaskDraft{Title: "B", DueDate: testDate(t, "2026-03-20")})
	if err != nil {
		t.Fatalf("create task: %v", err)
	}
	if _, err := m.CreateTask(ctx, docket.TaskDraft{Title: "A", DueDate: testDate(t, "2026-03-01")}); err != nil {
		t.Fatalf("create task: %v", err)
	}

	tasks := m.ListTasks(ctx)
	if len(tasks) != 2 || tasks[0].Title != "A" {
		t.Fatalf("tasks not sorted by due date: %+v", tasks)
	}

	task.Status = docket.StatusCompleted
	if err := m.UpdateTask(ctx, task); err != nil {
		t.Fatalf("update task: %v", err)
	}
	if err := m.DeleteTask(ctx, task.ID); err != nil {
		t.Fatalf("delete task: %v", err)
	}
	if err := m.DeleteTask(ctx, task.ID); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestMemoryWatchNotifies(t *testing.T) {
	m := NewMemory()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, err := m.Watch(ctx)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}

	if _, err := m.CreateTask(ctx, docket.TaskDraft{Title: "T", DueDate: testDate(t, "2026-03-11")}); err != nil {
		t.Fatalf("create task: %v", err)
	}

	select {
	case ev := <-ch:
		if ev.Type != EventBucketChanged || ev.Bucket != bucketTasks {
			t.Fatalf("unexpected event %+v", ev)
		}
	case <-time.After(time.Second):
		t.Fatalf("expected a change notification")
	}
}

func TestMemoryWatchCancelStopsDelivery(t *testing.T) {
	m := NewMemory()
	ctx, cancel := context.WithCancel(context.Background())

	ch, err := m.Watch(ctx)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}
	cancel()
	for range ch {
		// drain until the cancellation goroutine closes the channel
	}

	// mutations after the subscriber is gone must not reach the closed channel
	if _, err := m.CreateTask(context.Background(), docket.TaskDraft{Title: "T", DueDate: testDate(t, "2026-03-11")}); err != nil {
		t.Fatalf("create task: %v", err)
	}
}

func TestDemoSeedIsVisible(t *testing.T) {
	now := time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)
	m := NewDemo(now)
	ctx := context.Background()

	cases := m.ListCases(ctx)
	if len(cases) != 2 {
		t.Fatalf("expected 2 demo cases, got %d", len(cases))
	}
	if cases[0].Reference() != "123/2024" {
		t.Fatalf("unexpected case ref %s", cases[0].Reference())
	}
	if cases[0].Hearings[0].Date.String() != "2026-03-11" {
		t.Fatalf("demo hearing should land tomorrow, got %s", cases[0].Hearings[0].Date)
	}
}
