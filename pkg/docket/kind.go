package docket

import (
	"fmt"
	"strings"
)

// Kind classifies a calendar item by where it came from.
type Kind int

const (
	KindHearing Kind = iota
	KindTask
	KindGeneral
)

// AllKinds returns the supported kinds.
func AllKinds() []Kind {
	return []Kind{KindHearing, KindTask, KindGeneral}
}

func (k Kind) String() string {
	switch k {
	case KindHearing:
		return "Hearing"
	case KindTask:
		return "Task"
	default:
		return "General"
	}
}

// Symbol is the bullet glyph used when printing an item of this kind.
func (k Kind) Symbol() string {
	switch k {
	case KindHearing:
		return "§"
	case KindTask:
		return "●"
	default:
		return "○"
	}
}

// ParseKind converts a string to a Kind.
func ParseKind(raw string) (Kind, error) {
	for _, k := range AllKinds() {
		if strings.EqualFold(k.String(), strings.TrimSpace(raw)) {
			return k, nil
		}
	}
	return KindGeneral, fmt.Errorf("docket: unknown kind %q", raw)
}
