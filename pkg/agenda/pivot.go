package agenda

import (
	"fmt"
	"strings"
	"time"
)

// ViewMode selects the active projection. Transitions are user-driven and
// fully reversible.
type ViewMode int

const (
	ViewMonth ViewMode = iota
	ViewWeek
	ViewDay
	ViewAgenda
)

// AllViewModes returns the supported view modes.
func AllViewModes() []ViewMode {
	return []ViewMode{ViewDay, ViewWeek, ViewMonth, ViewAgenda}
}

func (v ViewMode) String() string {
	switch v {
	case ViewDay:
		return "day"
	case ViewWeek:
		return "week"
	case ViewAgenda:
		return "agenda"
	default:
		return "month"
	}
}

// ParseViewMode converts a string to a ViewMode.
func ParseViewMode(raw string) (ViewMode, error) {
	for _, v := range AllViewModes() {
		if strings.EqualFold(v.String(), strings.TrimSpace(raw)) {
			return v, nil
		}
	}
	return ViewMonth, fmt.Errorf("agenda: unknown view %q", raw)
}

// Pivot is the date the active view is centred on.
type Pivot struct {
	Date time.Time
	Mode ViewMode
}

// NewPivot starts on the given date in month view.
func NewPivot(on time.Time) Pivot {
	return Pivot{Date: on, Mode: ViewMonth}
}

// Prev moves back one unit of the current view's granularity.
func (p Pivot) Prev() Pivot {
	return p.step(-1)
}

// Next moves forward one unit of the current view's granularity.
func (p Pivot) Next() Pivot {
	return p.step(1)
}

func (p Pivot) step(inc int) Pivot {
	switch p.Mode {
	case ViewWeek:
		p.Date = p.Date.AddDate(0, 0, 7*inc)
	case ViewDay, ViewAgenda:
		p.Date = p.Date.AddDate(0, 0, inc)
	default:
		p.Date = p.Date.AddDate(0, inc, 0)
	}
	return p
}

// Today resets the pivot to now, whatever the mode.
func (p Pivot) Today(now time.Time) Pivot {
	p.Date = now
	return p
}

// WithMode switches the projection, keeping the pivot date.
func (p Pivot) WithMode(mode ViewMode) Pivot {
	p.Mode = mode
	return p
}

// Title renders the heading the views show above themselves.
func (p Pivot) Title() string {
	switch p.Mode {
	case ViewWeek:
		start := StartOfWeek(p.Date)
		end := start.AddDate(0, 0, 6)
		return fmt.Sprintf("%s - %s", start.Format("Jan 2"), end.Format("Jan 2, 2006"))
	case ViewDay:
		return p.Date.Format("Monday, January 2, 2006")
	case ViewAgenda:
		return "Upcoming Agenda"
	default:
		return p.Date.Format("January 2006")
	}
}

// StartOfWeek returns the Monday of the week containing t.
func StartOfWeek(t time.Time) time.Time {
	offset := int(t.Weekday())
	if offset == 0 {
		offset = 7 // Sunday belongs to the week that started the previous Monday
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location()).AddDate(0, 0, 1-offset)
}
