package quick

import (
	"testing"
	"time"

	"tableflip.dev/docket/pkg/docket"
)

var noon = time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)

func TestKindClassification(t *testing.T) {
	tests := []struct {
		text string
		want docket.Kind
	}{
		{"Hearing tomorrow at 2pm for arguments", docket.KindHearing},
		{"URGENT HEARING re: bail", docket.KindHearing},
		{"Task: file reply", docket.KindTask},
		{"multitasking session", docket.KindTask},
		{"hearing about the task", docket.KindHearing}, // first rule wins
		{"Lunch with opposing counsel", docket.KindGeneral},
		{"", docket.KindGeneral},
	}
	for _, tc := range tests {
		if got := ParseAt(tc.text, noon).Kind; got != tc.want {
			t.Fatalf("Parse(%q).Kind = %v, want %v", tc.text, got, tc.want)
		}
	}
}

func TestTimeExtraction(t *testing.T) {
	tests := []struct {
		text string
		want docket.Clock
	}{
		{"hearing at 14:30", "14:30"},
		{"hearing at 9:05", "09:05"},
		{"hearing tomorrow at 2pm for arguments", "14:00"},
		{"meet client 10am", "10:00"},
		{"hearing at 12am sharp", "00:00"},
		{"hearing at 12pm sharp", "12:00"},
		{"hearing 14:30 or 2pm", "14:30"}, // 24-hour pattern wins
		{"hearing sometime", "10:00"},     // default for non-task
		{"general catch-up", "10:00"},
	}
	for _, tc := range tests {
		if got := ParseAt(tc.text, noon).Time; got != tc.want {
			t.Fatalf("Parse(%q).Time = %q, want %q", tc.text, got, tc.want)
		}
	}
}

func TestTaskHasNoDefaultTime(t *testing.T) {
	r := ParseAt("Task: file reply", noon)
	if r.Kind != docket.KindTask {
		t.Fatalf("expected task kind, got %v", r.Kind)
	}
	if !r.Time.IsZero() {
		t.Fatalf("expected no time for task, got %q", r.Time)
	}
}

func TestDateTomorrow(t *testing.T) {
	r := ParseAt("Hearing tomorrow at 2pm for arguments", noon)
	if want := "2026-03-11"; r.Date.String() != want {
		t.Fatalf("expected date %s, got %s", want, r.Date)
	}
	if r.Time != "14:00" {
		t.Fatalf("expected 14:00, got %q", r.Time)
	}
	if r.Kind != docket.KindHearing {
		t.Fatalf("expected hearing, got %v", r.Kind)
	}
}

func TestDateDefaultsToday(t *testing.T) {
	r := ParseAt("file the rejoinder", noon)
	if want := "2026-03-10"; r.Date.String() != want {
		t.Fatalf("expected today %s, got %s", want, r.Date)
	}
}

func TestTitleVerbatimTrimmed(t *testing.T) {
	r := ParseAt("  Hearing tomorrow at 2pm  ", noon)
	if r.Title != "Hearing tomorrow at 2pm" {
		t.Fatalf("unexpected title %q", r.Title)
	}
}

func TestEmptyInputDegrades(t *testing.T) {
	r := ParseAt("", noon)
	if r.Kind != docket.KindGeneral || r.Title != "" {
		t.Fatalf("unexpected degradation: %+v", r)
	}
	if r.Date.String() != "2026-03-10" {
		t.Fatalf("expected today, got %s", r.Date)
	}
}

func TestOutOfRangeHoursIgnored(t *testing.T) {
	// 25:00 matches neither pattern; falls back to the default.
	r := ParseAt("hearing at 25:00", noon)
	if r.Time != DefaultTime {
		t.Fatalf("expected default time, got %q", r.Time)
	}
}
