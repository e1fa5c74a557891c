// Package memory contains process-local implementations of the persistence layer.
package memory

import (
	"context"
	"slices"
	"sync"
	"time"

	"servicelocator/internal/domain/entity"
	"servicelocator/internal/domain/repository"
)

type geoQueryCacheRepository struct {
	mu      sync.RWMutex
	entries map[string]entity.CacheEntry
}

// NewGeoQueryCacheRepository creates an empty in-memory cache repository.
func NewGeoQueryCacheRepository() repository.GeoQueryCacheRepository {
	return &geoQueryCacheRepository{
		entries: make(map[string]entity.CacheEntry),
	}
}

func (r *geoQueryCacheRepository) Find(_ context.Context, key string) (*entity.CacheEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stored, ok := r.entries[key]
	if !ok {
		return nil, repository.ErrCacheEntryNotFound
	}

	return copyEntry(stored), nil
}

func (r *geoQueryCacheRepository) Save(_ context.Context, entry *entity.CacheEntry) error {
	stored := copyEntry(*entry)

	r.mu.Lock()
	r.entries[entry.Key] = *stored
	r.mu.Unlock()

	return nil
}

func (r *geoQueryCacheRepository) DeleteOlderThan(_ context.Context, cutoff time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var removed int64
	for key, stored := range r.entries {
		if stored.StoredAt.Before(cutoff) {
			delete(r.entries, key)
			removed++
		}
	}

	return removed, nil
}

// copyEntry detaches the POI slice and tag maps so callers never share state with the store.
func copyEntry(src entity.CacheEntry) *entity.CacheEntry {
	pois := slices.Clone(src.POIs)
	for i := range pois {
		if pois[i].Tags != nil {
			tags := make(map[string]string, len(pois[i].Tags))
			for k, v := range pois[i].Tags {
				tags[k] = v
			}
			pois[i].Tags = tags
		}
	}

	return &entity.CacheEntry{
		Key:      src.Key,
		StoredAt: src.StoredAt,
		POIs:     pois,
	}
}
