// Package store persists the user's last filter selection as a single
// JSON snapshot under a fixed key.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jonathan/healthjobfinder/internal/config"
	"github.com/jonathan/healthjobfinder/internal/schemas"
	"github.com/jonathan/healthjobfinder/internal/types"
)

// Key is the name the snapshot is stored under in every backend.
const Key = "healthJobFinderFilters"

// ErrInvalidSnapshot is returned by Load when a stored snapshot is corrupt or
// does not match the expected shape. Callers fall back to default filters.
var ErrInvalidSnapshot = errors.New("saved filters are invalid")

// FilterStore loads and saves the filter snapshot.
// Load returns (nil, nil) when nothing has been saved.
type FilterStore interface {
	Load(ctx context.Context) (*types.FilterState, error)
	Save(ctx context.Context, filters types.FilterState) error
	Clear(ctx context.Context) error
	Close() error
}

// Open returns the backend selected by cfg.FilterStore.
func Open(ctx context.Context, cfg config.Config) (FilterStore, error) {
	switch cfg.FilterStore {
	case "", config.StoreFile:
		return NewFileStore(cfg.FilterFile), nil
	case config.StoreRedis:
		return NewRedisStore(ctx, cfg.RedisURL)
	case config.StorePostgres:
		return NewPostgresStore(ctx, cfg.DatabaseURL)
	default:
		return nil, fmt.Errorf("unknown filter store %q", cfg.FilterStore)
	}
}

// decodeSnapshot checks data against the snapshot schema and decodes it on top
// of the default filters, so optional keys missing from older snapshots keep
// their defaults.
func decodeSnapshot(data []byte) (*types.FilterState, error) {
	if err := schemas.ValidateFilterState(data); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSnapshot, err)
	}

	filters := types.DefaultFilterState()
	if err := json.Unmarshal(data, &filters); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSnapshot, err)
	}
	return &filters, nil
}

func encodeSnapshot(filters types.FilterState) ([]byte, error) {
	if filters.DatePostedFilter == "" {
		filters.DatePostedFilter = types.DatePostedAll
	}
	if filters.Roles == nil {
		filters.Roles = []string{}
	}
	if filters.Countries == nil {
		filters.Countries = []string{}
	}
	if err := filters.Validate(); err != nil {
		return nil, fmt.Errorf("refusing to save invalid filters: %w", err)
	}

	data, err := json.Marshal(filters)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal filters: %w", err)
	}
	return data, nil
}
