// Package causelist matches a court's published daily hearing list
// against the practice's known cases.
package causelist

import (
	"context"
	"strings"

	"tableflip.dev/docket/pkg/docket"
)

// Entry is one row of a court's daily cause list as published.
type Entry struct {
	SerialNumber      string `json:"serialNumber"`
	CaseNumber        string `json:"caseNumber"` // "{number}/{year}"
	Petitioner        string `json:"petitioner"`
	Respondent        string `json:"respondent"`
	PetitionerCounsel string `json:"petitionerCounsel"`
	RespondentCounsel string `json:"respondentCounsel"`
	Purpose           string `json:"purpose"`
}

// Status classifies a row after matching.
type Status string

const (
	// StatusLinked means the row matches a known case that already has a
	// hearing recorded on the list date.
	StatusLinked Status = "Linked"
	// StatusActionRequired means the row matches a known case but no
	// hearing is recorded yet; the user should accept it into the case.
	StatusActionRequired Status = "Action Required"
	// StatusUnlinked means no known case matches the row.
	StatusUnlinked Status = "Unlinked"
)

// Row is a cause-list entry annotated with its match result.
type Row struct {
	Entry
	Status       Status
	LinkedCaseID string
	HearingID    string
}

// Source supplies the published list for a date. Real deployments fetch
// from a court portal; the simulated source stands in until then.
type Source interface {
	ListFor(ctx context.Context, on docket.Date) ([]Entry, error)
}

// Match annotates each entry against the known cases. Matching compares
// the "{caseNumber}/{year}" reference case-insensitively.
func Match(entries []Entry, cases []*docket.Case, on docket.Date) []Row {
	rows := make([]Row, 0, len(entries))
	for _, entry := range entries {
		row := Row{Entry: entry, Status: StatusUnlinked}
		for _, c := range cases {
			if !strings.EqualFold(c.Reference(), entry.CaseNumber) {
				continue
			}
			row.LinkedCaseID = c.ID
			if h := c.HearingOn(on); h != nil {
				row.Status = StatusLinked
				row.HearingID = h.ID
			} else {
				row.Status = StatusActionRequired
			}
			break
		}
		rows = append(rows, row)
	}
	return rows
}

// Accept turns an Action Required row into a hearing payload for its case.
func (r Row) Accept(on docket.Date) *docket.Hearing {
	return &docket.Hearing{
		Date:    on,
		Purpose: r.Purpose,
	}
}
