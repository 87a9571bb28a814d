// Package aggregate sorts, groups, paginates and summarizes normalized
// deliverables. Everything here is pure and date-only: time-of-day is
// ignored when classifying against "today".
package aggregate

import (
	"sort"
	"strings"
	"time"

	"studiohub/internal/domain"
)

// Summary carries the dashboard counts for one result set.
type Summary struct {
	Total    int
	Overdue  int
	DueToday int
	Upcoming int
}

// Group is one named bucket of deliverables.
type Group struct {
	Name  string
	Items []domain.Deliverable
}

// PageResult is one page of a sorted result set plus pagination
// metadata. Total counts the full set before pagination.
type PageResult struct {
	Items       []domain.Deliverable
	Page        int
	PageSize    int
	Total       int
	HasNextPage bool
	HasPrevPage bool
}

const upcomingWindowDays = 7

// statusOrder fixes the display priority of recognized status groups.
// Unrecognized statuses sort alphabetically after all of these.
var statusOrder = []string{"Overdue", "At Risk", "In Progress", "Pending", "Not Started"}

const unassignedGroup = "Unassigned"

// SortByDueDate orders items ascending by due date. Items without a due
// date land after dated ones, completed items after everything, and the
// sort is stable so equal items keep their original order.
func SortByDueDate(items []domain.Deliverable) []domain.Deliverable {
	sorted := make([]domain.Deliverable, len(items))
	copy(sorted, items)

	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if a.IsComplete() != b.IsComplete() {
			return !a.IsComplete()
		}
		aDated, bDated := !a.DueDate.IsZero(), !b.DueDate.IsZero()
		if aDated && bDated {
			return a.DueDate.Before(b.DueDate)
		}
		return aDated && !bDated
	})

	return sorted
}

// Summarize computes the overdue / due-today / upcoming counts relative
// to the given reference time. An item is overdue when its display
// status already says so, or when it is past due and neither complete
// nor cancelled; both signals together still count it once.
func Summarize(items []domain.Deliverable, now time.Time) Summary {
	today := dateOnly(now)
	horizon := today.AddDate(0, 0, upcomingWindowDays)

	s := Summary{Total: len(items)}
	for _, item := range items {
		if item.DueDate.IsZero() {
			continue
		}
		due := dateOnly(item.DueDate)

		flagged := strings.EqualFold(item.DisplayStatus, "Overdue")
		pastDue := due.Before(today) && !item.IsComplete() && !item.IsCancelled()
		if flagged || pastDue {
			s.Overdue++
		}

		if due.Equal(today) {
			s.DueToday++
		}
		if !due.Before(today) && !due.After(horizon) {
			s.Upcoming++
		}
	}

	return s
}

// GroupItems buckets items by status or assignee. Status groups follow
// the fixed priority order; assignee groups are alphabetical with
// "Unassigned" forced last.
func GroupItems(items []domain.Deliverable, by domain.GroupBy) []Group {
	buckets := make(map[string][]domain.Deliverable)
	for _, item := range items {
		key := groupKey(item, by)
		buckets[key] = append(buckets[key], item)
	}

	names := make([]string, 0, len(buckets))
	for name := range buckets {
		names = append(names, name)
	}

	if by == domain.GroupByAssignee {
		sort.Slice(names, func(i, j int) bool {
			if names[i] == unassignedGroup {
				return false
			}
			if names[j] == unassignedGroup {
				return true
			}
			return names[i] < names[j]
		})
	} else {
		sort.Slice(names, func(i, j int) bool {
			ri, rj := statusRank(names[i]), statusRank(names[j])
			if ri != rj {
				return ri < rj
			}
			return names[i] < names[j]
		})
	}

	groups := make([]Group, 0, len(names))
	for _, name := range names {
		groups = append(groups, Group{Name: name, Items: buckets[name]})
	}
	return groups
}

// Paginate slices a sorted result set into one page.
func Paginate(items []domain.Deliverable, page, pageSize int) PageResult {
	total := len(items)

	start := (page - 1) * pageSize
	if start > total {
		start = total
	}
	end := start + pageSize
	if end > total {
		end = total
	}

	return PageResult{
		Items:       items[start:end],
		Page:        page,
		PageSize:    pageSize,
		Total:       total,
		HasNextPage: page*pageSize < total,
		HasPrevPage: page > 1,
	}
}

func groupKey(item domain.Deliverable, by domain.GroupBy) string {
	if by == domain.GroupByAssignee {
		if item.Assignee == "" {
			return unassignedGroup
		}
		return item.Assignee
	}
	return item.EffectiveStatus()
}

func statusRank(name string) int {
	for i, status := range statusOrder {
		if strings.EqualFold(status, name) {
			return i
		}
	}
	return len(statusOrder)
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
