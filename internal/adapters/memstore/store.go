// Package memstore is an in-memory RecordSource satisfying the same
// contract as the FileMaker adapter, for tests and demo runs.
package memstore

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"studiohub/internal/domain"
	"studiohub/internal/ports"
)

type Store struct {
	mu      sync.RWMutex
	layouts map[string][]domain.RawRecord
}

var _ ports.RecordSource = (*Store)(nil)

func New() *Store {
	return &Store{layouts: make(map[string][]domain.RawRecord)}
}

// Load seeds a layout with records, appending in order.
func (s *Store) Load(layout string, records ...domain.RawRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.layouts[layout] = append(s.layouts[layout], records...)
}

// Find matches each CriterionSet as an AND of exact field equalities
// and ORs the sets together, deduplicating by record id while keeping
// first-match order.
func (s *Store) Find(_ context.Context, layout string, query domain.Query, limit int) ([]domain.RawRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[string]struct{})
	matched := make([]domain.RawRecord, 0)

	for _, criteria := range query {
		for _, record := range s.layouts[layout] {
			if !matches(record, criteria) {
				continue
			}
			if _, dup := seen[record.ID]; dup {
				continue
			}
			seen[record.ID] = struct{}{}
			matched = append(matched, record)
		}
	}

	if limit > 0 && len(matched) > limit {
		matched = matched[:limit]
	}
	return matched, nil
}

// GetAll pages a layout with a 1-based offset, like the remote store.
func (s *Store) GetAll(_ context.Context, layout string, limit, offset int) ([]domain.RawRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	records := s.layouts[layout]
	if offset < 1 {
		offset = 1
	}
	start := offset - 1
	if start >= len(records) {
		return []domain.RawRecord{}, nil
	}
	end := len(records)
	if limit > 0 && start+limit < end {
		end = start + limit
	}

	page := make([]domain.RawRecord, end-start)
	copy(page, records[start:end])
	return page, nil
}

func (s *Store) GetByID(_ context.Context, layout, id string) (domain.RawRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, record := range s.layouts[layout] {
		if record.ID == id {
			return record, nil
		}
	}
	return domain.RawRecord{}, fmt.Errorf("record %s/%s: %w", layout, id, domain.ErrNotFound)
}

// LayoutMetadata derives field metadata from the loaded records.
func (s *Store) LayoutMetadata(_ context.Context, layout string) (domain.LayoutMetadata, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make(map[string]struct{})
	for _, record := range s.layouts[layout] {
		for name := range record.Fields {
			names[name] = struct{}{}
		}
	}

	meta := domain.LayoutMetadata{Fields: make([]domain.FieldMetadata, 0, len(names))}
	for name := range names {
		meta.Fields = append(meta.Fields, domain.FieldMetadata{Name: name, Type: "normal", Result: "text"})
	}
	sort.Slice(meta.Fields, func(i, j int) bool { return meta.Fields[i].Name < meta.Fields[j].Name })
	return meta, nil
}

func matches(record domain.RawRecord, criteria domain.CriterionSet) bool {
	for field, want := range criteria {
		if record.Field(field) != want {
			return false
		}
	}
	return true
}
