package domain

import (
	"strings"
	"time"
)

// Deliverable is the canonical entity derived once per raw record.
// Date and numeric coercions happen during normalization; a zero
// time means the store supplied no value.
type Deliverable struct {
	ID                  string
	Title               string
	DueDate             time.Time
	RawStatus           string
	DisplayStatus       string
	ProjectName         string
	ProjectID           string
	ClientName          string
	StudioRequestNumber string
	StudioRequestID     string
	Assignee            string
	AssigneeRole        string
	AssigneeDepartment  string
	Category            string
	Notes               string
	CompleteDate        time.Time
	EstimatedHours      float64
	ActualHours         float64
	CreatedAt           time.Time
	AccountName         string
}

// EffectiveStatus is the grouping label: the store-computed display
// status when present, else the raw workflow status, else "Unknown".
func (d Deliverable) EffectiveStatus() string {
	if d.DisplayStatus != "" {
		return d.DisplayStatus
	}
	if d.RawStatus != "" {
		return d.RawStatus
	}
	return "Unknown"
}

// IsComplete reports whether either status field marks the item complete.
func (d Deliverable) IsComplete() bool {
	return statusIs(d.RawStatus, "complete") || statusIs(d.DisplayStatus, "complete")
}

// IsCancelled reports whether either status field marks the item cancelled.
func (d Deliverable) IsCancelled() bool {
	return statusIs(d.RawStatus, "cancelled") || statusIs(d.DisplayStatus, "cancelled")
}

func statusIs(status, want string) bool {
	return strings.EqualFold(strings.TrimSpace(status), want)
}
