package causelist

import (
	"context"
	"testing"

	"tableflip.dev/docket/pkg/docket"
)

func listDate(t *testing.T, v string) docket.Date {
	t.Helper()
	d, err := docket.ParseDate(v)
	if err != nil {
		t.Fatalf("bad test date %q: %v", v, err)
	}
	return d
}

func TestMatchClassifiesRows(t *testing.T) {
	on := listDate(t, "2026-03-11")
	cases := []*docket.Case{
		{
			ID: "c1", CaseNumber: "123", Year: "2024",
			Hearings: []*docket.Hearing{{ID: "h1", Date: on, Purpose: "Arguments"}},
		},
		{ID: "c2", CaseNumber: "5678", Year: "2023"},
	}
	entries := []Entry{
		{SerialNumber: "1", CaseNumber: "123/2024", Purpose: "Framing of Issues"},
		{SerialNumber: "8", CaseNumber: "5678/2023", Purpose: "For Appearance"},
		{SerialNumber: "15", CaseNumber: "999/2020", Purpose: "For Orders"},
	}

	rows := Match(entries, cases, on)
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}

	if rows[0].Status != StatusLinked || rows[0].LinkedCaseID != "c1" || rows[0].HearingID != "h1" {
		t.Fatalf("row 0 should link to the existing hearing: %+v", rows[0])
	}
	if rows[1].Status != StatusActionRequired || rows[1].LinkedCaseID != "c2" {
		t.Fatalf("row 1 should need action: %+v", rows[1])
	}
	if rows[2].Status != StatusUnlinked || rows[2].LinkedCaseID != "" {
		t.Fatalf("row 2 should stay unlinked: %+v", rows[2])
	}
}

func TestMatchIsCaseInsensitive(t *testing.T) {
	on := listDate(t, "2026-03-11")
	cases := []*docket.Case{{ID: "c1", CaseNumber: "WP-10", Year: "2025"}}
	rows := Match([]Entry{{CaseNumber: "wp-10/2025"}}, cases, on)
	if rows[0].Status != StatusActionRequired {
		t.Fatalf("reference compare should ignore case: %+v", rows[0])
	}
}

func TestAcceptBuildsHearing(t *testing.T) {
	on := listDate(t, "2026-03-11")
	row := Row{Entry: Entry{Purpose: "For Appearance"}, Status: StatusActionRequired, LinkedCaseID: "c2"}
	h := row.Accept(on)
	if h.Date.String() != "2026-03-11" || h.Purpose != "For Appearance" {
		t.Fatalf("unexpected hearing %+v", h)
	}
}

func TestSimulatedSourceMatchesDemoBook(t *testing.T) {
	entries, err := Simulated{}.ListFor(context.Background(), listDate(t, "2026-03-11"))
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(entries) != 4 {
		t.Fatalf("expected 4 canned rows, got %d", len(entries))
	}
	var found bool
	for _, e := range entries {
		if e.CaseNumber == "5678/2023" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected the demo-case row in the canned list")
	}
}
