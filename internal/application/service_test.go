package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studiohub/internal/adapters/memstore"
	"studiohub/internal/domain"
	"studiohub/internal/ports"
)

var testNow = time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC)

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

func seededService(t *testing.T) *DeliverableService {
	t.Helper()
	store := memstore.New()
	memstore.Seed(store, testNow)
	return NewDeliverableService(store, fixedClock{now: testNow}, nil)
}

func TestListDeliverablesForDesigner(t *testing.T) {
	svc := seededService(t)

	page, summary, err := svc.ListDeliverables(context.Background(), domain.FilterContext{
		View:     domain.ViewMine,
		Statuses: []string{"In Progress", "Overdue"},
		Caller:   domain.CallerIdentity{DisplayName: "Mike Torres"},
	}, 1, 200)
	require.NoError(t, err)

	// Mike has d1 (overdue) and d2 (due today); the completed d7 does
	// not carry a matching display status.
	require.Len(t, page.Items, 2)
	assert.Equal(t, "d1", page.Items[0].ID)
	assert.Equal(t, "d2", page.Items[1].ID)

	assert.Equal(t, 2, summary.Total)
	assert.Equal(t, 1, summary.Overdue)
	assert.Equal(t, 1, summary.DueToday)
}

func TestListDeliverablesDepartmentView(t *testing.T) {
	svc := seededService(t)

	page, summary, err := svc.ListDeliverables(context.Background(), domain.FilterContext{
		View:     domain.ViewDepartment,
		Statuses: []string{"In Progress", "Overdue"},
		Caller:   domain.CallerIdentity{DisplayName: "Sarah Chen", Department: "Graphics"},
	}, 1, 200)
	require.NoError(t, err)

	require.Len(t, page.Items, 3)
	// Sorted ascending by due date: d1 (-3), d2 (today), d3 (+2).
	assert.Equal(t, "d1", page.Items[0].ID)
	assert.Equal(t, "d2", page.Items[1].ID)
	assert.Equal(t, "d3", page.Items[2].ID)
	assert.Equal(t, 3, summary.Total)
}

func TestListDeliverablesAllViewDefaultsToManagedDepartments(t *testing.T) {
	svc := seededService(t)

	page, _, err := svc.ListDeliverables(context.Background(), domain.FilterContext{
		View: domain.ViewAll,
		Caller: domain.CallerIdentity{
			DisplayName:        "Sarah Chen",
			IsManager:          true,
			DepartmentManagers: "Graphics;Industrial",
		},
	}, 1, 200)
	require.NoError(t, err)

	// Graphics plus Industrial, default statuses; Structural is not hers.
	for _, item := range page.Items {
		assert.NotEqual(t, "Structural", item.AssigneeDepartment)
	}
	assert.Equal(t, 3, page.Total)
}

func TestListDeliverablesPagination(t *testing.T) {
	svc := seededService(t)

	page, _, err := svc.ListDeliverables(context.Background(), domain.FilterContext{
		View:     domain.ViewDepartment,
		Statuses: []string{"In Progress", "Overdue"},
		Caller:   domain.CallerIdentity{Department: "Graphics"},
	}, 2, 2)
	require.NoError(t, err)

	require.Len(t, page.Items, 1)
	assert.Equal(t, "d3", page.Items[0].ID)
	assert.True(t, page.HasPrevPage)
	assert.False(t, page.HasNextPage)
}

func TestListDeliverablesRejectsInvalidPaging(t *testing.T) {
	svc := seededService(t)

	_, _, err := svc.ListDeliverables(context.Background(), domain.FilterContext{View: domain.ViewMine}, 0, 200)
	require.ErrorIs(t, err, domain.ErrInvalidFilter)
}

type failingSource struct{ err error }

func (f failingSource) Find(context.Context, string, domain.Query, int) ([]domain.RawRecord, error) {
	return nil, f.err
}

func (f failingSource) GetAll(context.Context, string, int, int) ([]domain.RawRecord, error) {
	return nil, f.err
}

func (f failingSource) GetByID(context.Context, string, string) (domain.RawRecord, error) {
	return domain.RawRecord{}, f.err
}

func (f failingSource) LayoutMetadata(context.Context, string) (domain.LayoutMetadata, error) {
	return domain.LayoutMetadata{}, f.err
}

var _ ports.RecordSource = failingSource{}

func TestListDeliverablesFetchFailure(t *testing.T) {
	cause := errors.New("store unreachable")
	svc := NewDeliverableService(failingSource{err: cause}, fixedClock{now: testNow}, nil)

	page, summary, err := svc.ListDeliverables(context.Background(), domain.FilterContext{View: domain.ViewMine}, 1, 200)
	require.ErrorIs(t, err, cause)
	assert.Empty(t, page.Items)
	assert.Zero(t, summary.Total)
}

func TestGroupAndSummarize(t *testing.T) {
	svc := seededService(t)

	page, _, err := svc.ListDeliverables(context.Background(), domain.FilterContext{
		View:     domain.ViewDepartment,
		Statuses: []string{"In Progress", "Overdue"},
		Caller:   domain.CallerIdentity{Department: "Graphics"},
	}, 1, 200)
	require.NoError(t, err)

	groups, summary := svc.GroupAndSummarize(page.Items, domain.GroupByStatus)

	require.Len(t, groups, 2)
	assert.Equal(t, "Overdue", groups[0].Name)
	assert.Equal(t, "In Progress", groups[1].Name)
	assert.Equal(t, 3, summary.Total)
}

func TestGetDeliverable(t *testing.T) {
	svc := seededService(t)

	item, err := svc.GetDeliverable(context.Background(), "d2")
	require.NoError(t, err)
	assert.Equal(t, "Shelf render", item.Title)
	assert.Equal(t, "Brightway", item.ClientName)

	_, err = svc.GetDeliverable(context.Background(), "d99")
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestLayoutMetadataPassThrough(t *testing.T) {
	svc := seededService(t)

	meta, err := svc.LayoutMetadata(context.Background(), DeliverablesLayout)
	require.NoError(t, err)
	assert.NotEmpty(t, meta.Fields)
}
