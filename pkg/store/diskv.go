package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/peterbourgon/diskv/v3"

	"tableflip.dev/docket/pkg/docket"
)

// Buckets group records on disk; each becomes one directory under the
// base path.
const (
	bucketCases  = "cases"
	bucketTasks  = "tasks"
	bucketEvents = "events"
)

// Load creates a Persistence backed by diskv using the provided config.
func Load(cfg Config) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	return &persistence{d: diskv.New(diskv.Options{
		BasePath:          basePath,
		AdvancedTransform: keyToPathTransform,
		InverseTransform:  pathToKeyTransform,
		CacheSizeMax:      1024 * 1024, // 1MB
	}), basePath: basePath}, nil
}

type persistence struct {
	d        *diskv.Diskv
	basePath string
}

func (p *persistence) ListCases(ctx context.Context) []*docket.Case {
	all := make([]*docket.Case, 0)
	for key := range p.d.Keys(ctx.Done()) {
		if bucketOf(key) != bucketCases {
			continue
		}
		c := &docket.Case{}
		if err := p.read(key, c); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %s\n", key, err)
			continue
		}
		all = append(all, c)
	}
	sort.SliceStable(all, func(i, j int) bool {
		if all[i].Year != all[j].Year {
			return all[i].Year < all[j].Year
		}
		return all[i].CaseNumber < all[j].CaseNumber
	})
	return all
}

func (p *persistence) GetCase(ctx context.Context, id string) (*docket.Case, error) {
	c := &docket.Case{}
	if err := p.read(toKey(bucketCases, id), c); err != nil {
		return nil, ErrNotFound
	}
	return c, nil
}

func (p *persistence) StoreCase(c *docket.Case) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return p.write(toKey(bucketCases, c.ID), c)
}

func (p *persistence) AddHearing(ctx context.Context, caseID string, h *docket.Hearing) (*docket.Hearing, error) {
	c, err := p.GetCase(ctx, caseID)
	if err != nil {
		return nil, err
	}
	if h.ID == "" {
		h.ID = uuid.NewString()
	}
	c.Hearings = append(c.Hearings, h)
	if err := p.StoreCase(c); err != nil {
		return nil, err
	}
	return h, nil
}

func (p *persistence) ListTasks(ctx context.Context) []*docket.Task {
	all := make([]*docket.Task, 0)
	for key := range p.d.Keys(ctx.Done()) {
		if bucketOf(key) != bucketTasks {
			continue
		}
		t := &docket.Task{}
		if err := p.read(key, t); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %s\n", key, err)
			continue
		}
		all = append(all, t)
	}
	sortTasks(all)
	return all
}

func (p *persistence) CreateTask(ctx context.Context, draft docket.TaskDraft) (*docket.Task, error) {
	t := newTask(draft)
	if err := p.write(toKey(bucketTasks, t.ID), t); err != nil {
		return nil, err
	}
	return t, nil
}

func (p *persistence) UpdateTask(ctx context.Context, t *docket.Task) error {
	if t.ID == "" {
		return ErrNotFound
	}
	if !p.d.Has(toKey(bucketTasks, t.ID)) {
		return ErrNotFound
	}
	return p.write(toKey(bucketTasks, t.ID), t)
}

func (p *persistence) DeleteTask(ctx context.Context, id string) error {
	key := toKey(bucketTasks, id)
	if !p.d.Has(key) {
		return ErrNotFound
	}
	return p.d.Erase(key)
}

func (p *persistence) ListEvents(ctx context.Context) []*docket.Event {
	all := make([]*docket.Event, 0)
	for key := range p.d.Keys(ctx.Done()) {
		if bucketOf(key) != bucketEvents {
			continue
		}
		e := &docket.Event{}
		if err := p.read(key, e); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %s\n", key, err)
			continue
		}
		all = append(all, e)
	}
	sortEvents(all)
	return all
}

func (p *persistence) CreateEvent(ctx context.Context, draft docket.EventDraft) (*docket.Event, error) {
	e := newEvent(draft)
	if err := p.write(toKey(bucketEvents, e.ID), e); err != nil {
		return nil, err
	}
	return e, nil
}

func (p *persistence) read(key string, target any) error {
	val, err := p.d.Read(key)
	if err != nil {
		return err
	}
	return json.Unmarshal(val, target)
}

func (p *persistence) write(key string, record any) error {
	data, err := json.Marshal(record)
	if err != nil {
		return err
	}
	return p.d.Write(key, data)
}

// newTask fills the fields the caller does not control.
func newTask(draft docket.TaskDraft) *docket.Task {
	priority := draft.Priority
	if priority == "" {
		priority = docket.PriorityMedium
	}
	return &docket.Task{
		ID:          uuid.NewString(),
		Title:       draft.Title,
		DueDate:     draft.DueDate,
		Priority:    priority,
		Status:      docket.StatusPending,
		Description: draft.Description,
		Attachments: draft.Attachments,
	}
}

func newEvent(draft docket.EventDraft) *docket.Event {
	return &docket.Event{
		ID:          uuid.NewString(),
		Title:       draft.Title,
		Start:       draft.Start,
		End:         draft.End,
		Description: draft.Description,
		Attachments: draft.Attachments,
	}
}

func sortTasks(all []*docket.Task) {
	sort.SliceStable(all, func(i, j int) bool {
		left, right := all[i].DueDate, all[j].DueDate
		if left.Equal(right.Time) {
			return all[i].ID < all[j].ID
		}
		return left.Before(right.Time)
	})
}

func sortEvents(all []*docket.Event) {
	sort.SliceStable(all, func(i, j int) bool {
		left, right := all[i].Start, all[j].Start
		if left.Equal(right.Time) {
			return all[i].ID < all[j].ID
		}
		return left.Before(right.Time)
	})
}

// toKey makes `bucket-id`. Record ids are uuids and contain dashes, so
// the inverse transform splits on the first dash only.
func toKey(bucket, id string) string {
	return fmt.Sprintf("%s-%s", bucket, id)
}

func bucketOf(key string) string {
	parts := strings.SplitN(key, "-", 2)
	return parts[0]
}

func keyToPathTransform(s string) *diskv.PathKey {
	parts := strings.SplitN(s, "-", 2)
	if len(parts) == 1 {
		return &diskv.PathKey{Path: []string{}, FileName: parts[0]}
	}
	return &diskv.PathKey{
		Path:     parts[:1],
		FileName: parts[1],
	}
}

func pathToKeyTransform(pathKey *diskv.PathKey) string {
	return fmt.Sprintf("%s-%s", strings.Join(pathKey.Path, "-"), pathKey.FileName)
}
