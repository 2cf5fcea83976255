package docket

// Event is a general calendar entry not tied to any case.
type Event struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Start       Timestamp `json:"start"`
	End         Timestamp `json:"end"`
	Description string    `json:"description,omitempty"`
	Attachments []string  `json:"attachments,omitempty"`
}

// EventDraft carries the fields a caller supplies when creating an event;
// the store mints the identifier.
type EventDraft struct {
	Title       string
	Start       Timestamp
	End         Timestamp
	Description string
	Attachments []string
}
