// Package application wires the pure stages together: compile a filter
// into a store query, fetch, normalize, then aggregate.
package application

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"studiohub/internal/aggregate"
	"studiohub/internal/domain"
	"studiohub/internal/normalize"
	"studiohub/internal/ports"
	"studiohub/internal/query"
)

const (
	DeliverablesLayout = "REQUEST_DELIVERABLES"

	// fetchLimit bounds how many records one listing pulls from the
	// store before local aggregation.
	fetchLimit = 500
)

type DeliverableService struct {
	source ports.RecordSource
	clock  ports.Clock
	logger *zap.Logger
}

func NewDeliverableService(source ports.RecordSource, clock ports.Clock, logger *zap.Logger) *DeliverableService {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DeliverableService{source: source, clock: clock, logger: logger}
}

// ListDeliverables compiles the filter context, fetches matching
// records, and returns one sorted page plus summary counts. A failed
// fetch yields an empty result and the error, never a partial page.
func (s *DeliverableService) ListDeliverables(ctx context.Context, f domain.FilterContext, page, pageSize int) (aggregate.PageResult, aggregate.Summary, error) {
	if err := domain.ValidatePage(page, pageSize); err != nil {
		return aggregate.PageResult{}, aggregate.Summary{}, err
	}

	q := query.Compile(f)
	s.logger.Debug("listing deliverables",
		zap.String("view", string(f.View)),
		zap.Int("criteria", len(q)),
		zap.Int("page", page),
	)

	raw, err := s.source.Find(ctx, DeliverablesLayout, q, fetchLimit)
	if err != nil {
		return aggregate.PageResult{}, aggregate.Summary{}, fmt.Errorf("fetch deliverables: %w", err)
	}

	items := aggregate.SortByDueDate(normalize.Records(raw))
	summary := aggregate.Summarize(items, s.clock.Now())
	return aggregate.Paginate(items, page, pageSize), summary, nil
}

// GroupAndSummarize buckets already-normalized items and recomputes the
// summary counts for them.
func (s *DeliverableService) GroupAndSummarize(items []domain.Deliverable, by domain.GroupBy) ([]aggregate.Group, aggregate.Summary) {
	return aggregate.GroupItems(items, by), aggregate.Summarize(items, s.clock.Now())
}

// GetDeliverable fetches one record by store id and normalizes it.
func (s *DeliverableService) GetDeliverable(ctx context.Context, id string) (domain.Deliverable, error) {
	raw, err := s.source.GetByID(ctx, DeliverablesLayout, id)
	if err != nil {
		return domain.Deliverable{}, err
	}
	return normalize.Record(raw), nil
}

// LayoutMetadata exposes the store's layout description.
func (s *DeliverableService) LayoutMetadata(ctx context.Context, layout string) (domain.LayoutMetadata, error) {
	return s.source.LayoutMetadata(ctx, layout)
}
