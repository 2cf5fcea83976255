// Package docket defines the source records the practice keeps: cases with
// their hearings and tasks, global tasks, and general events.
package docket

import (
	"fmt"
	"strings"
)

// Priority orders tasks for display.
type Priority string

const (
	PriorityLow    Priority = "Low"
	PriorityMedium Priority = "Medium"
	PriorityHigh   Priority = "High"
)

// AllPriorities returns the supported priorities.
func AllPriorities() []Priority {
	return []Priority{PriorityLow, PriorityMedium, PriorityHigh}
}

// ParsePriority converts a string to a Priority, defaulting empty input to
// Medium the way new tasks are created.
func ParsePriority(raw string) (Priority, error) {
	v := strings.TrimSpace(raw)
	if v == "" {
		return PriorityMedium, nil
	}
	for _, candidate := range AllPriorities() {
		if strings.EqualFold(string(candidate), v) {
			return candidate, nil
		}
	}
	return PriorityMedium, fmt.Errorf("docket: unknown priority %q", raw)
}

// Status tracks task progress.
type Status string

const (
	StatusPending    Status = "Pending"
	StatusInProgress Status = "In Progress"
	StatusCompleted  Status = "Completed"
)

// AllStatuses returns the supported statuses.
func AllStatuses() []Status {
	return []Status{StatusPending, StatusInProgress, StatusCompleted}
}

// ParseStatus converts a string to a Status, defaulting empty input to
// Pending.
func ParseStatus(raw string) (Status, error) {
	v := strings.TrimSpace(raw)
	if v == "" {
		return StatusPending, nil
	}
	for _, candidate := range AllStatuses() {
		if strings.EqualFold(string(candidate), v) {
			return candidate, nil
		}
	}
	return StatusPending, fmt.Errorf("docket: unknown status %q", raw)
}

// Task is a unit of work, either attached to a case or global.
type Task struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	DueDate     Date     `json:"dueDate"`
	Priority    Priority `json:"priority,omitempty"`
	Status      Status   `json:"status,omitempty"`
	Description string   `json:"description,omitempty"`
	Attachments []string `json:"attachments,omitempty"`
}

// Open reports whether the task still needs attention. Completed tasks
// drop out of every calendar projection.
func (t *Task) Open() bool {
	return t.Status != StatusCompleted
}

// TaskDraft carries the fields a caller supplies when creating a task; the
// store fills in the identifier and the Pending status.
type TaskDraft struct {
	Title       string
	DueDate     Date
	Priority    Priority
	Description string
	Attachments []string
}
