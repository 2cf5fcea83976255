// Package quick turns one line of free text into a draft calendar entry.
//
// The heuristics are deliberately naive: keyword classification, two time
// patterns, and "tomorrow" as the only relative date. Richer phrases such
// as "next Monday" are unsupported.
package quick

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"tableflip.dev/docket/pkg/docket"
)

// Result is the draft produced from one input string. It seeds a creation
// form; nothing is persisted until the user confirms.
type Result struct {
	Kind        docket.Kind
	Title       string
	Date        docket.Date
	Time        docket.Clock
	Description string
}

var (
	// 24-hour HH:MM wins over the am/pm form when both appear.
	clockPattern = regexp.MustCompile(`\b([01]?\d|2[0-3]):([0-5]\d)\b`)
	ampmPattern  = regexp.MustCompile(`\b(\d{1,2})\s?(am|pm)\b`)
)

// DefaultTime is assumed for hearings and general events that mention no
// time. Tasks stay unscheduled.
const DefaultTime = docket.Clock("10:00")

// Parse classifies text relative to the current date. It never fails;
// unrecognisable input degrades to a General entry dated today.
func Parse(text string) Result {
	return ParseAt(text, time.Now())
}

// ParseAt is Parse with an injected clock.
func ParseAt(text string, now time.Time) Result {
	lower := strings.ToLower(text)

	kind := docket.KindGeneral
	switch {
	case strings.Contains(lower, "hearing"):
		kind = docket.KindHearing
	case strings.Contains(lower, "task"):
		kind = docket.KindTask
	}

	clock := findTime(lower)
	if clock.IsZero() && kind != docket.KindTask {
		clock = DefaultTime
	}

	date := docket.DateOf(now)
	if strings.Contains(lower, "tomorrow") {
		date = date.AddDays(1)
	}

	return Result{
		Kind:  kind,
		Title: strings.TrimSpace(text),
		Date:  date,
		Time:  clock,
	}
}

func findTime(lower string) docket.Clock {
	if m := clockPattern.FindString(lower); m != "" {
		if len(m) == 4 {
			m = "0" + m
		}
		return docket.Clock(m)
	}
	if m := ampmPattern.FindStringSubmatch(lower); m != nil {
		h, err := strconv.Atoi(m[1])
		if err != nil || h < 1 || h > 12 {
			return ""
		}
		pm := m[2] == "pm"
		if h == 12 && !pm {
			h = 0
		}
		if pm && h < 12 {
			h += 12
		}
		return docket.Clock(fmt.Sprintf("%02d:00", h))
	}
	return ""
}
