package aggregate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studiohub/internal/domain"
)

var now = time.Date(2026, 1, 15, 14, 30, 0, 0, time.UTC)

func day(offset int) time.Time {
	return time.Date(2026, 1, 15+offset, 0, 0, 0, 0, time.UTC)
}

func due(id string, t time.Time) domain.Deliverable {
	return domain.Deliverable{ID: id, DueDate: t, DisplayStatus: "In Progress"}
}

func TestSummarizeBoundaries(t *testing.T) {
	items := []domain.Deliverable{
		due("today", day(0)),
		due("horizon", day(7)),
		due("past-horizon", day(8)),
		due("yesterday", day(-1)),
	}
	items[3].DisplayStatus = "Overdue"

	s := Summarize(items, now)

	assert.Equal(t, 4, s.Total)
	assert.Equal(t, 1, s.DueToday)
	// today and today+7 are upcoming, today+8 and yesterday are not.
	assert.Equal(t, 2, s.Upcoming)
	assert.Equal(t, 1, s.Overdue)
}

func TestSummarizeOverdueSignals(t *testing.T) {
	t.Run("display status alone", func(t *testing.T) {
		item := due("d1", day(3))
		item.DisplayStatus = "overdue"
		assert.Equal(t, 1, Summarize([]domain.Deliverable{item}, now).Overdue)
	})

	t.Run("past due alone", func(t *testing.T) {
		item := due("d1", day(-2))
		assert.Equal(t, 1, Summarize([]domain.Deliverable{item}, now).Overdue)
	})

	t.Run("both signals count once", func(t *testing.T) {
		item := due("d1", day(-2))
		item.DisplayStatus = "Overdue"
		assert.Equal(t, 1, Summarize([]domain.Deliverable{item}, now).Overdue)
	})

	t.Run("past due but complete", func(t *testing.T) {
		item := due("d1", day(-2))
		item.RawStatus = "Complete"
		assert.Zero(t, Summarize([]domain.Deliverable{item}, now).Overdue)
	})

	t.Run("past due but cancelled", func(t *testing.T) {
		item := due("d1", day(-2))
		item.RawStatus = "Cancelled"
		assert.Zero(t, Summarize([]domain.Deliverable{item}, now).Overdue)
	})

	t.Run("no due date never counted", func(t *testing.T) {
		item := domain.Deliverable{ID: "d1", DisplayStatus: "Overdue"}
		s := Summarize([]domain.Deliverable{item}, now)
		assert.Zero(t, s.Overdue)
		assert.Equal(t, 1, s.Total)
	})
}

func TestSortByDueDate(t *testing.T) {
	completed := due("done", day(-5))
	completed.RawStatus = "Complete"
	dateless := domain.Deliverable{ID: "dateless", DisplayStatus: "In Progress"}

	items := []domain.Deliverable{
		due("later", day(4)),
		dateless,
		completed,
		due("soon", day(1)),
	}

	sorted := SortByDueDate(items)

	ids := make([]string, 0, len(sorted))
	for _, item := range sorted {
		ids = append(ids, item.ID)
	}
	assert.Equal(t, []string{"soon", "later", "dateless", "done"}, ids)

	// Input order is untouched.
	assert.Equal(t, "later", items[0].ID)
}

func TestSortByDueDateStable(t *testing.T) {
	a := due("a", day(2))
	b := due("b", day(2))
	sorted := SortByDueDate([]domain.Deliverable{a, b})
	assert.Equal(t, "a", sorted[0].ID)
	assert.Equal(t, "b", sorted[1].ID)
}

func TestGroupItemsByStatus(t *testing.T) {
	items := []domain.Deliverable{
		{ID: "1", DisplayStatus: "In Progress"},
		{ID: "2", DisplayStatus: "Overdue"},
		{ID: "3", DisplayStatus: "Blocked"},
		{ID: "4", DisplayStatus: "At Risk"},
		{ID: "5", DisplayStatus: "Archived"},
		{ID: "6", DisplayStatus: "Overdue"},
	}

	groups := GroupItems(items, domain.GroupByStatus)

	names := make([]string, 0, len(groups))
	for _, g := range groups {
		names = append(names, g.Name)
	}
	assert.Equal(t, []string{"Overdue", "At Risk", "In Progress", "Archived", "Blocked"}, names)

	require.Len(t, groups[0].Items, 2)
	assert.Equal(t, "2", groups[0].Items[0].ID)
	assert.Equal(t, "6", groups[0].Items[1].ID)
}

func TestGroupItemsByAssignee(t *testing.T) {
	items := []domain.Deliverable{
		{ID: "1", Assignee: "Mike Torres"},
		{ID: "2"},
		{ID: "3", Assignee: "Dana Wolf"},
	}

	groups := GroupItems(items, domain.GroupByAssignee)

	require.Len(t, groups, 3)
	assert.Equal(t, "Dana Wolf", groups[0].Name)
	assert.Equal(t, "Mike Torres", groups[1].Name)
	assert.Equal(t, "Unassigned", groups[2].Name)
}

func TestPaginate(t *testing.T) {
	items := make([]domain.Deliverable, 205)
	for i := range items {
		items[i] = domain.Deliverable{ID: string(rune('a' + i%26))}
	}

	t.Run("first page", func(t *testing.T) {
		page := Paginate(items, 1, 200)
		assert.Len(t, page.Items, 200)
		assert.Equal(t, 205, page.Total)
		assert.True(t, page.HasNextPage)
		assert.False(t, page.HasPrevPage)
	})

	t.Run("last page", func(t *testing.T) {
		page := Paginate(items, 2, 200)
		assert.Len(t, page.Items, 5)
		assert.False(t, page.HasNextPage)
		assert.True(t, page.HasPrevPage)
	})

	t.Run("page past the end", func(t *testing.T) {
		page := Paginate(items, 5, 200)
		assert.Empty(t, page.Items)
		assert.False(t, page.HasNextPage)
		assert.True(t, page.HasPrevPage)
	})

	t.Run("exact fit has no next page", func(t *testing.T) {
		page := Paginate(items[:200], 1, 200)
		assert.Len(t, page.Items, 200)
		assert.False(t, page.HasNextPage)
	})
}
