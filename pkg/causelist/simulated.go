package causelist

import (
	"context"

	"tableflip.dev/docket/pkg/docket"
)

// Simulated is a canned cause-list source used until a court portal
// integration exists. The rows mirror a typical district-court list and
// deliberately include one entry that matches the demo case book.
type Simulated struct{}

var _ Source = Simulated{}

// ListFor returns the same list for every date.
func (Simulated) ListFor(ctx context.Context, on docket.Date) ([]Entry, error) {
	return []Entry{
		{
			SerialNumber:      "1",
			CaseNumber:        "123/2024",
			Petitioner:        "Innovate Corp",
			Respondent:        "Global Solutions Ltd",
			PetitionerCounsel: "Rohan Verma",
			RespondentCounsel: "Adv. Mehra",
			Purpose:           "Framing of Issues",
		},
		{
			SerialNumber:      "8",
			CaseNumber:        "5678/2023",
			Petitioner:        "Arjun Singh",
			Respondent:        "State of NCT of Delhi",
			PetitionerCounsel: "Rohan Verma",
			RespondentCounsel: "Public Prosecutor",
			Purpose:           "For Appearance",
		},
		{
			SerialNumber:      "12",
			CaseNumber:        "5555/2024",
			Petitioner:        "New Client Inc.",
			Respondent:        "Union of India",
			PetitionerCounsel: "Priya Singh",
			RespondentCounsel: "Govt Counsel",
			Purpose:           "For Admission",
		},
		{
			SerialNumber:      "15",
			CaseNumber:        "112/2022",
			Petitioner:        "Another Party",
			Respondent:        "Some Other Company",
			PetitionerCounsel: "Adv. X",
			RespondentCounsel: "Adv. Y",
			Purpose:           "For Orders",
		},
	}, nil
}
