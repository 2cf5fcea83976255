// Package agenda merges the practice's hearings, tasks, and events into a
// single calendar snapshot and projects it into month, week, day, and
// agenda views.
package agenda

import (
	"tableflip.dev/docket/pkg/docket"
)

// Source labels used when an item does not belong to a case.
const (
	SourceGlobalTask = "Global Task"
	SourceGeneral    = "General"
)

// Item is one normalized calendar entry. A fresh slice of items is built on
// every aggregation; items are never mutated in place.
type Item struct {
	ID          string
	CaseID      string
	Title       string
	Date        docket.Date
	Time        docket.Clock
	Kind        docket.Kind
	SourceInfo  string
	Attachments int

	// Raw points back at the originating record (*docket.Hearing,
	// *docket.Task, or *docket.Event) for display only.
	Raw any
}

// Description digs the display notes out of the originating record.
func (it Item) Description() string {
	switch r := it.Raw.(type) {
	case *docket.Hearing:
		if r.Notes != "" {
			return r.Notes
		}
	case *docket.Task:
		if r.Description != "" {
			return r.Description
		}
	case *docket.Event:
		if r.Description != "" {
			return r.Description
		}
	}
	return ""
}

// timeKey sorts items without a time to the end of the day.
func timeKey(it Item) string {
	if it.Time.IsZero() {
		return "23:59"
	}
	return it.Time.String()
}
