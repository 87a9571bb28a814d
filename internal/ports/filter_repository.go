package ports

import (
	"context"

	"studiohub/internal/domain"
)

// FilterRepository persists a caller's saved filter defaults.
type FilterRepository interface {
	Load(ctx context.Context) (domain.FilterDefaults, error)
	Save(ctx context.Context, defaults domain.FilterDefaults) error
	Reset(ctx context.Context) error
}
