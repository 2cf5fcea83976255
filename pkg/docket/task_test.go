package docket

import "testing"

func TestParsePriorityDefaultsToMedium(t *testing.T) {
	p, err := ParsePriority("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p != PriorityMedium {
		t.Fatalf("expected medium default, got %s", p)
	}

	if p, _ := ParsePriority("HIGH"); p != PriorityHigh {
		t.Fatalf("priority parsing should be case-insensitive, got %s", p)
	}
	if _, err := ParsePriority("urgent"); err == nil {
		t.Fatalf("expected error for unknown priority")
	}
}

func TestParseStatus(t *testing.T) {
	s, err := ParseStatus("in progress")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s != StatusInProgress {
		t.Fatalf("expected in progress, got %s", s)
	}
}

func TestOpenExcludesCompletedOnly(t *testing.T) {
	cases := []struct {
		status Status
		open   bool
	}{
		{StatusPending, true},
		{StatusInProgress, true},
		{StatusCompleted, false},
		{"", true}, // legacy records without a status still show up
	}
	for _, tc := range cases {
		task := &Task{Status: tc.status}
		if task.Open() != tc.open {
			t.Fatalf("status %q: expected open=%v", tc.status, tc.open)
		}
	}
}

func TestParseKind(t *testing.T) {
	for _, raw := range []string{"hearing", "Task", "GENERAL"} {
		if _, err := ParseKind(raw); err != nil {
			t.Fatalf("unexpected error for %q: %v", raw, err)
		}
	}
	if _, err := ParseKind("meeting"); err == nil {
		t.Fatalf("expected error for unknown kind")
	}
}

func TestHearingTitleFallsBackToPurpose(t *testing.T) {
	h := &Hearing{Purpose: "Arguments"}
	if h.Title() != "Arguments" {
		t.Fatalf("expected purpose as title, got %s", h.Title())
	}
	empty := &Hearing{}
	if empty.Title() != "Hearing" {
		t.Fatalf("expected fallback title, got %s", empty.Title())
	}
}
