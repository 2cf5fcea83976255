package store

import (
	"time"

	"tableflip.dev/docket/pkg/docket"
)

// NewDemo returns an in-memory store preloaded with sample matters so the
// calendar has something to show on a fresh install. Dates are laid out
// relative to now so the demo always lands in the visible window.
func NewDemo(now time.Time) *Memory {
	plus := func(n int) docket.Date {
		return docket.DateOf(now).AddDays(n)
	}

	m := NewMemory()

	_ = m.StoreCase(&docket.Case{
		ID:         "c1",
		CaseType:   "Civil",
		CaseNumber: "123",
		Year:       "2024",
		CNRNumber:  "DLCT01-001234-2024",
		Court:      "Tis Hazari District Court, Delhi",
		Judges:     "Hon'ble Mr. Justice Sharma",
		Stage:      "Hearing",
		Status:     "Active",
		Hearings: []*docket.Hearing{
			{
				ID:       "h1",
				Date:     plus(1),
				Time:     "14:00",
				Court:    "Courtroom 3",
				Purpose:  "Arguments",
				Notes:    "Bring precedent bundle",
				Reminder: "1 day before",
			},
			{
				ID:       "h2",
				Date:     plus(14),
				Time:     "11:30",
				Court:    "Courtroom 2",
				Purpose:  "Evidence",
				Reminder: "2 days before",
			},
		},
		Tasks: []*docket.Task{
			{
				ID:          "t1",
				Title:       "Draft Written Statement",
				DueDate:     plus(2),
				Priority:    docket.PriorityHigh,
				Description: "First draft for review",
				Status:      docket.StatusPending,
			},
			{
				ID:       "t2",
				Title:    "Serve notice to respondent",
				DueDate:  plus(5),
				Priority: docket.PriorityMedium,
				Status:   docket.StatusInProgress,
			},
		},
	})

	_ = m.StoreCase(&docket.Case{
		ID:         "c2",
		CaseType:   "Criminal",
		CaseNumber: "5678",
		Year:       "2023",
		CNRNumber:  "RJJP01-005678-2023",
		Court:      "Jaipur District Court",
		Stage:      "Evidence",
		Status:     "Active",
		Hearings: []*docket.Hearing{
			{
				ID:       "h3",
				Date:     plus(3),
				Time:     "10:00",
				Court:    "Courtroom 1",
				Purpose:  "Bail Application",
				Notes:    "Affidavit required",
				Reminder: "1 day before",
			},
		},
		Tasks: []*docket.Task{
			{
				ID:       "t3",
				Title:    "Collect medical records",
				DueDate:  plus(1),
				Priority: docket.PriorityHigh,
				Status:   docket.StatusPending,
			},
		},
	})

	return m
}
