// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"time"

	"servicelocator/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrCacheEntryNotFound is returned when no entry is stored under a key.
var ErrCacheEntryNotFound = errors.New("cache entry not found")

// GeoQueryCacheRepository stores discovery results keyed by origin, brand and radius.
// Implementations must be safe for concurrent use; the last write for a key wins.
type GeoQueryCacheRepository interface {
	// Find returns the entry stored under key, or ErrCacheEntryNotFound.
	// Freshness is decided by the caller.
	Find(ctx context.Context, key string) (*entity.CacheEntry, error)

	// Save replaces whatever is stored under entry.Key.
	Save(ctx context.Context, entry *entity.CacheEntry) error

	// DeleteOlderThan removes entries stored before cutoff and reports how many were removed.
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}
