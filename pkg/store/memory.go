package store

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"tableflip.dev/docket/pkg/docket"
)

// Memory is an in-process Persistence for tests and demo runs. It honours
// the same contracts as the disk store, including change notifications.
type Memory struct {
	mu     sync.Mutex
	cases  []*docket.Case
	tasks  []*docket.Task
	events []*docket.Event

	subs []chan Event
}

var _ Persistence = (*Memory)(nil)

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) ListCases(ctx context.Context) []*docket.Case {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*docket.Case, len(m.cases))
	copy(out, m.cases)
	return out
}

func (m *Memory) GetCase(ctx context.Context, id string) (*docket.Case, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, c := range m.cases {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, ErrNotFound
}

func (m *Memory) StoreCase(c *docket.Case) error {
	m.mu.Lock()
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	replaced := false
	for i, existing := range m.cases {
		if existing.ID == c.ID {
			m.cases[i] = c
			replaced = true
			break
		}
	}
	if !replaced {
		m.cases = append(m.cases, c)
	}
	m.mu.Unlock()
	m.notify(bucketCases)
	return nil
}

func (m *Memory) AddHearing(ctx context.Context, caseID string, h *docket.Hearing) (*docket.Hearing, error) {
	m.mu.Lock()
	var target *docket.Case
	for _, c := range m.cases {
		if c.ID == caseID {
			target = c
			break
		}
	}
	if target == nil {
		m.mu.Unlock()
		return nil, ErrNotFound
	}
	if h.ID == "" {
		h.ID = uuid.NewString()
	}
	target.Hearings = append(target.Hearings, h)
	m.mu.Unlock()
	m.notify(bucketCases)
	return h, nil
}

func (m *Memory) ListTasks(ctx context.Context) []*docket.Task {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*docket.Task, len(m.tasks))
	copy(out, m.tasks)
	sortTasks(out)
	return out
}

func (m *Memory) CreateTask(ctx context.Context, draft docket.TaskDraft) (*docket.Task, error) {
	t := newTask(draft)
	m.mu.Lock()
	m.tasks = append(m.tasks, t)
	m.mu.Unlock()
	m.notify(bucketTasks)
	return t, nil
}

func (m *Memory) UpdateTask(ctx context.Context, t *docket.Task) error {
	m.mu.Lock()
	for i, existing := range m.tasks {
		if existing.ID == t.ID {
			m.tasks[i] = t
			m.mu.Unlock()
			m.notify(bucketTasks)
			return nil
		}
	}
	m.mu.Unlock()
	return ErrNotFound
}

func (m *Memory) DeleteTask(ctx context.Context, id string) error {
	m.mu.Lock()
	for i, existing := range m.tasks {
		if existing.ID == id {
			m.tasks = append(m.tasks[:i], m.tasks[i+1:]...)
			m.mu.Unlock()
			m.notify(bucketTasks)
			return nil
		}
	}
	m.mu.Unlock()
	return ErrNotFound
}

func (m *Memory) ListEvents(ctx context.Context) []*docket.Event {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*docket.Event, len(m.events))
	copy(out, m.events)
	sortEvents(out)
	return out
}

func (m *Memory) CreateEvent(ctx context.Context, draft docket.EventDraft) (*docket.Event, error) {
	e := newEvent(draft)
	m.mu.Lock()
	m.events = append(m.events, e)
	m.mu.Unlock()
	m.notify(bucketEvents)
	return e, nil
}

// Watch returns a channel fed by in-process mutations. The channel closes
// when ctx is done.
func (m *Memory) Watch(ctx context.Context) (<-chan Event, error) {
	ch := make(chan Event, 16)
	m.mu.Lock()
	m.subs = append(m.subs, ch)
	m.mu.Unlock()

	go func() {
		<-ctx.Done()
		m.mu.Lock()
		for i, sub := range m.subs {
			if sub == ch {
				m.subs = append(m.subs[:i], m.subs[i+1:]...)
				break
			}
		}
		m.mu.Unlock()
		close(ch)
	}()
	return ch, nil
}

// notify sends under the lock so a subscriber removed by Watch's
// cancellation goroutine is never written to after close.
func (m *Memory) notify(bucket string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, ch := range m.subs {
		select {
		case ch <- Event{Type: EventBucketChanged, Bucket: bucket}:
		default:
		}
	}
}
