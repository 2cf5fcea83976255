package docket

import (
	"encoding/json"
	"fmt"
	"time"
)

const (
	layoutISO   = "2006-01-02"
	layoutClock = "15:04"
)

// Date is a calendar date with no time component. It marshals as
// "2006-01-02", the format every source record stores its dates in.
type Date struct {
	time.Time
}

// ParseDate rejects anything that is not a YYYY-MM-DD string. Malformed
// dates are an input-contract violation and stop at this boundary.
func ParseDate(v string) (Date, error) {
	t, err := time.Parse(layoutISO, v)
	if err != nil {
		return Date{}, fmt.Errorf("docket: invalid date %q: %w", v, err)
	}
	return Date{Time: t}, nil
}

// DateOf truncates a point in time to its calendar date.
func DateOf(t time.Time) Date {
	return Date{Time: time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)}
}

// Today returns the current calendar date.
func Today() Date {
	return DateOf(time.Now())
}

func (d Date) String() string {
	return d.Format(layoutISO)
}

// AddDays returns the date n days later (earlier for negative n).
func (d Date) AddDays(n int) Date {
	return Date{Time: d.Time.AddDate(0, 0, n)}
}

// SameDay reports whether then falls on this calendar date.
func (d Date) SameDay(then time.Time) bool {
	return d.Year() == then.Year() && d.Month() == then.Month() && d.Day() == then.Day()
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte(`""`), nil
	}
	return []byte(fmt.Sprintf("%q", d.String())), nil
}

func (d *Date) UnmarshalJSON(b []byte) error {
	var v string
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	if v == "" {
		d.Time = time.Time{}
		return nil
	}
	parsed, err := ParseDate(v)
	if err != nil {
		return err
	}
	d.Time = parsed.Time
	return nil
}

// Clock is an optional wall-clock time in 24-hour "15:04" form. The empty
// string means the record has no time, an all-day or unscheduled item.
type Clock string

// ParseClock validates an HH:MM string.
func ParseClock(v string) (Clock, error) {
	if v == "" {
		return "", nil
	}
	if _, err := time.Parse(layoutClock, v); err != nil {
		return "", fmt.Errorf("docket: invalid time %q: %w", v, err)
	}
	return Clock(v), nil
}

// IsZero reports whether no time is set.
func (c Clock) IsZero() bool {
	return c == ""
}

// Hour returns the two-digit hour component, or "" when unset.
func (c Clock) Hour() string {
	if len(c) < 2 {
		return ""
	}
	return string(c)[:2]
}

func (c Clock) String() string {
	return string(c)
}

// Timestamp wraps a point in time and marshals as RFC 3339, the format
// general events store their start/end instants in.
type Timestamp struct {
	time.Time
}

// ParseTimestamp parses an RFC 3339 instant.
func ParseTimestamp(v string) (Timestamp, error) {
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		return Timestamp{}, fmt.Errorf("docket: invalid timestamp %q: %w", v, err)
	}
	return Timestamp{Time: t}, nil
}

// Date returns the calendar-date component of the instant.
func (t Timestamp) Date() Date {
	return DateOf(t.Time)
}

// Clock returns the wall-clock component of the instant.
func (t Timestamp) Clock() Clock {
	return Clock(t.Format(layoutClock))
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte(`""`), nil
	}
	return []byte(fmt.Sprintf("%q", t.UTC().Format(time.RFC3339))), nil
}

func (t *Timestamp) UnmarshalJSON(b []byte) error {
	var v string
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	if v == "" {
		t.Time = time.Time{}
		return nil
	}
	parsed, err := ParseTimestamp(v)
	if err != nil {
		return err
	}
	t.Time = parsed.Time
	return nil
}

func (t Timestamp) String() string {
	return t.UTC().Format(time.RFC3339)
}
