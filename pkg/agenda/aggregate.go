package agenda

import (
	"strings"

	"tableflip.dev/docket/pkg/docket"
)

// Sources holds one read of the external stores. The aggregator never
// reads storage itself; callers snapshot the stores and hand the records
// over.
type Sources struct {
	Cases       []*docket.Case
	GlobalTasks []*docket.Task
	Events      []*docket.Event
}

// Aggregate flattens the sources into one item list, in source order:
// case hearings, open case tasks, open global tasks, general events.
// No deduplication happens here; a record double-entered in two sources
// shows up twice.
func Aggregate(src Sources) []Item {
	items := make([]Item, 0)

	for _, c := range src.Cases {
		for _, h := range c.Hearings {
			items = append(items, Item{
				ID:          h.ID,
				CaseID:      c.ID,
				Title:       h.Title(),
				Date:        h.Date,
				Time:        h.Time,
				Kind:        docket.KindHearing,
				SourceInfo:  c.Reference(),
				Attachments: len(h.Attachments),
				Raw:         h,
			})
		}
	}

	for _, c := range src.Cases {
		for _, t := range c.Tasks {
			if !t.Open() {
				continue
			}
			items = append(items, Item{
				ID:          t.ID,
				CaseID:      c.ID,
				Title:       t.Title,
				Date:        t.DueDate,
				Kind:        docket.KindTask,
				SourceInfo:  c.Reference(),
				Attachments: len(t.Attachments),
				Raw:         t,
			})
		}
	}

	for _, t := range src.GlobalTasks {
		if !t.Open() {
			continue
		}
		items = append(items, Item{
			ID:          t.ID,
			Title:       t.Title,
			Date:        t.DueDate,
			Kind:        docket.KindTask,
			SourceInfo:  SourceGlobalTask,
			Attachments: len(t.Attachments),
			Raw:         t,
		})
	}

	for _, e := range src.Events {
		items = append(items, Item{
			ID:          e.ID,
			Title:       e.Title,
			Date:        e.Start.Date(),
			Time:        e.Start.Clock(),
			Kind:        docket.KindGeneral,
			SourceInfo:  SourceGeneral,
			Attachments: len(e.Attachments),
			Raw:         e,
		})
	}

	return items
}

// Filter keeps items whose title or source label contains the query,
// case-insensitively. An empty query keeps everything.
func Filter(items []Item, query string) []Item {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return items
	}
	kept := make([]Item, 0, len(items))
	for _, it := range items {
		if strings.Contains(strings.ToLower(it.Title), q) ||
			strings.Contains(strings.ToLower(it.SourceInfo), q) {
			kept = append(kept, it)
		}
	}
	return kept
}
