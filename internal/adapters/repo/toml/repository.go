// Package toml persists a caller's saved filter defaults to a TOML
// file under the user config directory, with atomic writes.
package toml

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"

	"studiohub/internal/domain"
	"studiohub/internal/ports"
)

const (
	filtersPathKey  = "filters.path"
	filtersFileMode = 0o600
	filtersDirMode  = 0o700
	filtersDir      = ".studiohub"
	filtersFile     = "filters.toml"
	tempFilePattern = ".filters-*.toml.tmp"
)

type Repository struct {
	filtersPath string
	mu          sync.RWMutex
}

var _ ports.FilterRepository = (*Repository)(nil)

func NewRepository(cfg *viper.Viper) (*Repository, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}

	cfg.SetDefault(filtersPathKey, filepath.Join(homeDir, filtersDir, filtersFile))

	filtersPath, err := filepath.Abs(cfg.GetString(filtersPathKey))
	if err != nil {
		return nil, fmt.Errorf("resolve filters path: %w", err)
	}

	return &Repository{filtersPath: filepath.Clean(filtersPath)}, nil
}

// Load reads the saved defaults; a missing file yields the zero-value
// defaults (view "mine", grouped by status).
func (r *Repository) Load(ctx context.Context) (domain.FilterDefaults, error) {
	if err := ctx.Err(); err != nil {
		return domain.FilterDefaults{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	file, err := r.readSchema()
	if err != nil {
		return domain.FilterDefaults{}, err
	}
	file.applyDefaults()

	return fromSchema(file), nil
}

func (r *Repository) Save(ctx context.Context, defaults domain.FilterDefaults) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	return r.writeSchema(toSchema(defaults))
}

// Reset removes the saved defaults file.
func (r *Repository) Reset(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if err := os.Remove(r.filtersPath); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove filters file: %w", err)
	}
	return nil
}

func (r *Repository) readSchema() (fileSchema, error) {
	data, err := os.ReadFile(r.filtersPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fileSchema{}, nil
		}
		return fileSchema{}, fmt.Errorf("read filters file: %w", err)
	}

	var file fileSchema
	if err := toml.Unmarshal(data, &file); err != nil {
		return fileSchema{}, fmt.Errorf("decode filters file: %w", err)
	}
	if err := file.validateVersion(); err != nil {
		return fileSchema{}, err
	}

	return file, nil
}

func (r *Repository) writeSchema(file fileSchema) error {
	file.applyDefaults()

	if err := os.MkdirAll(filepath.Dir(r.filtersPath), filtersDirMode); err != nil {
		return fmt.Errorf("create filters directory: %w", err)
	}

	data, err := toml.Marshal(file)
	if err != nil {
		return fmt.Errorf("encode filters file: %w", err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(r.filtersPath), tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp filters file: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp filters file: %w", err)
	}
	if err := tempFile.Chmod(filtersFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp filters file: %w", err)
	}
	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp filters file: %w", err)
	}

	if err := os.Rename(tempName, r.filtersPath); err != nil {
		return fmt.Errorf("replace filters file: %w", err)
	}
	cleanup = false

	return nil
}
