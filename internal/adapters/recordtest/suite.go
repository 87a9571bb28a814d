// Package recordtest is a conformance suite run against every
// RecordSource implementation, so the real client and the in-memory
// double stay on one contract.
package recordtest

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studiohub/internal/domain"
	"studiohub/internal/ports"
)

// Factory builds a RecordSource preloaded with the given layouts.
type Factory func(t *testing.T, layouts map[string][]domain.RawRecord) ports.RecordSource

const suiteLayout = "REQUEST_DELIVERABLES"

func fixtures() map[string][]domain.RawRecord {
	return map[string][]domain.RawRecord{
		suiteLayout: {
			{ID: "1", Fields: map[string]string{"__kptID": "d1", "DisplayStatus": "Overdue", "DueDate": "01/05/2026", "DeliverableName": "Dieline"}},
			{ID: "2", Fields: map[string]string{"__kptID": "d2", "DisplayStatus": "In Progress", "DueDate": "01/08/2026", "DeliverableName": "Render"}},
			{ID: "3", Fields: map[string]string{"__kptID": "d3", "DisplayStatus": "Overdue", "DueDate": "01/02/2026", "DeliverableName": "Spec"}},
		},
	}
}

// Run exercises the shared RecordSource contract.
func Run(t *testing.T, factory Factory) {
	t.Run("find matches any criterion set without duplicates", func(t *testing.T) {
		source := factory(t, fixtures())

		records, err := source.Find(context.Background(), suiteLayout, domain.Query{
			{"DisplayStatus": "Overdue"},
			{"DueDate": "01/05/2026"},
		}, 10)
		require.NoError(t, err)

		ids := make([]string, 0, len(records))
		for _, r := range records {
			ids = append(ids, r.Field("__kptID"))
		}
		assert.ElementsMatch(t, []string{"d1", "d3"}, ids)
	})

	t.Run("find honors the limit", func(t *testing.T) {
		source := factory(t, fixtures())

		records, err := source.Find(context.Background(), suiteLayout, domain.Query{
			{"DisplayStatus": "Overdue"},
			{"DisplayStatus": "In Progress"},
		}, 2)
		require.NoError(t, err)
		assert.Len(t, records, 2)
	})

	t.Run("find with no matches yields empty not error", func(t *testing.T) {
		source := factory(t, fixtures())

		records, err := source.Find(context.Background(), suiteLayout, domain.Query{
			{"DisplayStatus": "Archived"},
		}, 10)
		require.NoError(t, err)
		assert.Empty(t, records)
	})

	t.Run("get all pages with one-based offset", func(t *testing.T) {
		source := factory(t, fixtures())

		records, err := source.GetAll(context.Background(), suiteLayout, 2, 2)
		require.NoError(t, err)
		require.Len(t, records, 2)
		assert.Equal(t, "d2", records[0].Field("__kptID"))
		assert.Equal(t, "d3", records[1].Field("__kptID"))
	})

	t.Run("get by id", func(t *testing.T) {
		source := factory(t, fixtures())

		record, err := source.GetByID(context.Background(), suiteLayout, "2")
		require.NoError(t, err)
		assert.Equal(t, "d2", record.Field("__kptID"))
	})

	t.Run("get by id absent is not found", func(t *testing.T) {
		source := factory(t, fixtures())

		_, err := source.GetByID(context.Background(), suiteLayout, "99")
		require.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("layout metadata lists fields", func(t *testing.T) {
		source := factory(t, fixtures())

		meta, err := source.LayoutMetadata(context.Background(), suiteLayout)
		require.NoError(t, err)

		names := make([]string, 0, len(meta.Fields))
		for _, f := range meta.Fields {
			names = append(names, f.Name)
		}
		assert.Contains(t, names, "DisplayStatus")
		assert.Contains(t, names, "DueDate")
	})
}
