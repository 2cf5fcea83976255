package docket

import "fmt"

// Case is a court matter with its scheduled hearings and open work.
type Case struct {
	ID         string `json:"id"`
	CaseType   string `json:"caseType,omitempty"`
	CaseNumber string `json:"caseNumber"`
	Year       string `json:"year"`
	CNRNumber  string `json:"cnrNumber,omitempty"`
	Court      string `json:"court,omitempty"`
	FilingDate Date   `json:"filingDate,omitempty"`
	Judges     string `json:"judges,omitempty"`
	Stage      string `json:"stage,omitempty"`
	Status     string `json:"status,omitempty"`

	Hearings []*Hearing `json:"hearings,omitempty"`
	Tasks    []*Task    `json:"tasks,omitempty"`
}

// Reference renders the "{caseNumber}/{year}" label courts use to identify
// the matter, e.g. on a cause list.
func (c *Case) Reference() string {
	return fmt.Sprintf("%s/%s", c.CaseNumber, c.Year)
}

// HearingOn returns the first hearing scheduled on the given date, if any.
func (c *Case) HearingOn(on Date) *Hearing {
	for _, h := range c.Hearings {
		if h.Date.String() == on.String() {
			return h
		}
	}
	return nil
}

// Hearing is a scheduled court appearance for a case.
type Hearing struct {
	ID          string   `json:"id"`
	Date        Date     `json:"date"`
	Time        Clock    `json:"time,omitempty"`
	Court       string   `json:"court,omitempty"`
	Purpose     string   `json:"purpose,omitempty"`
	Notes       string   `json:"notes,omitempty"`
	Reminder    string   `json:"reminder,omitempty"`
	Attachments []string `json:"attachments,omitempty"`
}

// Title is the display name for the hearing on a calendar.
func (h *Hearing) Title() string {
	if h.Purpose == "" {
		return "Hearing"
	}
	return h.Purpose
}
