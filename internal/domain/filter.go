package domain

import "fmt"

type ViewMode string

const (
	ViewMine       ViewMode = "mine"
	ViewDepartment ViewMode = "department"
	ViewAll        ViewMode = "all"
)

type GroupBy string

const (
	GroupByStatus   GroupBy = "status"
	GroupByAssignee GroupBy = "designer"
)

// FilterContext is the per-request filter state supplied by the caller.
// It is never persisted by the core.
type FilterContext struct {
	View        ViewMode
	Departments []string
	People      []string
	Statuses    []string
	Caller      CallerIdentity
}

// DefaultStatuses is the status selection applied when the caller
// supplies none.
func DefaultStatuses() []string {
	return []string{"In Progress", "Overdue"}
}

// FilterDefaults is the persisted filter selection a caller can save
// between sessions.
type FilterDefaults struct {
	View        ViewMode
	Departments []string
	People      []string
	Statuses    []string
	GroupBy     GroupBy
}

// ValidatePage rejects malformed pagination input before any network call.
func ValidatePage(page, pageSize int) error {
	if page < 1 {
		return fmt.Errorf("%w: page %d must be >= 1", ErrInvalidFilter, page)
	}
	if pageSize < 1 {
		return fmt.Errorf("%w: page size %d must be >= 1", ErrInvalidFilter, pageSize)
	}
	return nil
}
