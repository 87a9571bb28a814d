package memstore

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studiohub/internal/adapters/recordtest"
	"studiohub/internal/domain"
	"studiohub/internal/ports"
)

func TestStoreConformance(t *testing.T) {
	recordtest.Run(t, func(t *testing.T, layouts map[string][]domain.RawRecord) ports.RecordSource {
		s := New()
		for layout, records := range layouts {
			s.Load(layout, records...)
		}
		return s
	})
}

func TestFindKeepsFirstMatchOrder(t *testing.T) {
	s := New()
	s.Load("L",
		domain.RawRecord{ID: "1", Fields: map[string]string{"DisplayStatus": "Overdue"}},
		domain.RawRecord{ID: "2", Fields: map[string]string{"DisplayStatus": "In Progress"}},
		domain.RawRecord{ID: "3", Fields: map[string]string{"DisplayStatus": "Overdue"}},
	)

	records, err := s.Find(context.Background(), "L", domain.Query{
		{"DisplayStatus": "In Progress"},
		{"DisplayStatus": "Overdue"},
	}, 0)
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "2", records[0].ID)
	assert.Equal(t, "1", records[1].ID)
	assert.Equal(t, "3", records[2].ID)
}

func TestFindUnknownLayoutIsEmpty(t *testing.T) {
	s := New()
	records, err := s.Find(context.Background(), "NOPE", domain.Query{{"x": "y"}}, 0)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestGetAllOffsetPastEnd(t *testing.T) {
	s := New()
	s.Load("L", domain.RawRecord{ID: "1"})

	records, err := s.GetAll(context.Background(), "L", 10, 5)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestSeedSupportsLogin(t *testing.T) {
	s := New()
	Seed(s, time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC))

	records, err := s.Find(context.Background(), EmployeeLayout, domain.Query{{"nameLogon": "sarah.chen"}}, 1)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "s3cret", records[0].Field("fm_password"))
	assert.Equal(t, "1", records[0].Field("bool_studioManager"))
}

func TestSeedDeliverablesShape(t *testing.T) {
	s := New()
	Seed(s, time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC))

	records, err := s.GetAll(context.Background(), DeliverablesLayout, 0, 1)
	require.NoError(t, err)
	require.Len(t, records, 7)

	overdue, err := s.Find(context.Background(), DeliverablesLayout, domain.Query{{"DisplayStatus": "Overdue"}}, 0)
	require.NoError(t, err)
	assert.Len(t, overdue, 2)
}
