package calendar

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"

	"tableflip.dev/docket/pkg/agenda"
	"tableflip.dev/docket/pkg/store"
)

func fixedNow() time.Time {
	return time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)
}

func newTestModel(t *testing.T) Model {
	t.Helper()
	m := NewWithClock(store.NewDemo(fixedNow()), fixedNow)
	if msg := m.load()(); msg != nil {
		if loaded, ok := msg.(itemsLoadedMsg); ok {
			m.items = loaded.items
		}
	}
	return m
}

func press(m Model, key rune) Model {
	res, _ := m.Update(tea.KeyPressMsg{Code: key, Text: string(key)})
	return res.(Model)
}

func TestViewModeKeys(t *testing.T) {
	m := newTestModel(t)

	if m.pivot.Mode != agenda.ViewMonth {
		t.Fatalf("expected month view at start, got %s", m.pivot.Mode)
	}

	m = press(m, 'w')
	if m.pivot.Mode != agenda.ViewWeek {
		t.Fatalf("expected week view after w, got %s", m.pivot.Mode)
	}

	m = press(m, 'd')
	if m.pivot.Mode != agenda.ViewDay {
		t.Fatalf("expected day view after d, got %s", m.pivot.Mode)
	}

	m = press(m, 'a')
	if m.pivot.Mode != agenda.ViewAgenda {
		t.Fatalf("expected agenda view after a, got %s", m.pivot.Mode)
	}

	m = press(m, 'm')
	if m.pivot.Mode != agenda.ViewMonth {
		t.Fatalf("expected month view after m, got %s", m.pivot.Mode)
	}
}

func TestInitialPivotFollowsTheClock(t *testing.T) {
	m := NewWithClock(store.NewDemo(fixedNow()), fixedNow)

	if !m.pivot.Date.Equal(fixedNow()) {
		t.Fatalf("expected pivot on the supplied clock, got %s", m.pivot.Date)
	}
	if m.pivot.Mode != agenda.ViewMonth {
		t.Fatalf("expected month view at start, got %s", m.pivot.Mode)
	}
}

func TestNavigationMatchesGranularity(t *testing.T) {
	m := newTestModel(t)

	res, _ := m.Update(tea.KeyPressMsg{Code: tea.KeyRight})
	m = res.(Model)
	if got := m.pivot.Date.Month(); got != time.April {
		t.Fatalf("month view should step a month forward, got %s", got)
	}

	m = press(m, 'w')
	res, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyLeft})
	m = res.(Model)
	if got := m.pivot.Date.Day(); got != 3 {
		t.Fatalf("week view should step 7 days back, got day %d", got)
	}

	m = press(m, 'd')
	res, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyRight})
	m = res.(Model)
	if got := m.pivot.Date.Day(); got != 4 {
		t.Fatalf("day view should step a day forward, got day %d", got)
	}

	m = press(m, 't')
	if !m.pivot.Date.Equal(fixedNow()) {
		t.Fatalf("t should reset pivot to now, got %s", m.pivot.Date)
	}
	if m.pivot.Mode != agenda.ViewDay {
		t.Fatalf("t should preserve the active view, got %s", m.pivot.Mode)
	}
}

func TestFilterFlow(t *testing.T) {
	m := newTestModel(t)

	m = press(m, '/')
	if m.mode != modeFilter {
		t.Fatalf("/ should enter filter mode")
	}

	for _, r := range "bail" {
		m = press(m, r)
	}
	res, _ := m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	m = res.(Model)

	if m.mode != modeNormal {
		t.Fatalf("enter should return to normal mode")
	}
	if m.query != "bail" {
		t.Fatalf("expected query %q, got %q", "bail", m.query)
	}

	for _, it := range m.visible() {
		if !strings.Contains(strings.ToLower(it.Title), "bail") &&
			!strings.Contains(strings.ToLower(it.SourceInfo), "bail") {
			t.Fatalf("filter leaked item %q", it.Title)
		}
	}
}

func TestFilterEscCancels(t *testing.T) {
	m := newTestModel(t)

	m = press(m, '/')
	for _, r := range "xyz" {
		m = press(m, r)
	}
	res, _ := m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	m = res.(Model)

	if m.mode != modeNormal {
		t.Fatalf("esc should leave filter mode")
	}
	if m.query != "" {
		t.Fatalf("esc should not apply the typed filter, got %q", m.query)
	}
	if len(m.visible()) != len(m.items) {
		t.Fatalf("cancelled filter should leave all items visible")
	}
}

func TestStoreChangeTriggersReload(t *testing.T) {
	m := newTestModel(t)

	res, cmd := m.Update(storeChangedMsg{})
	m = res.(Model)
	if cmd == nil {
		t.Fatalf("store change should schedule a reload")
	}
}

func TestViewRendersActiveProjection(t *testing.T) {
	m := newTestModel(t)

	if out := ansi.Strip(m.View()); !strings.Contains(out, "March 2026") {
		t.Fatalf("month view should show the month heading:\n%s", out)
	}

	m = press(m, 'a')
	if out := ansi.Strip(m.View()); !strings.Contains(out, "Upcoming Agenda") {
		t.Fatalf("agenda view should show its heading")
	}

	m = press(m, 'd')
	if out := ansi.Strip(m.View()); !strings.Contains(out, "08:00") {
		t.Fatalf("day view should render working-hour slots")
	}
}
