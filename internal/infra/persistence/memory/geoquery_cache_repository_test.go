package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	"servicelocator/internal/domain/entity"
	"servicelocator/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeoQueryCacheRepository_FindMissing(t *testing.T) {
	repo := NewGeoQueryCacheRepository()

	entry, err := repo.Find(context.Background(), "geoquery:0:0:Toyota:15000")
	assert.Nil(t, entry)
	assert.ErrorIs(t, err, repository.ErrCacheEntryNotFound)
}

func TestGeoQueryCacheRepository_SaveReplacesEntry(t *testing.T) {
	repo := NewGeoQueryCacheRepository()
	ctx := context.Background()
	key := "geoquery:12.9716:77.5946:Toyota:15000"
	storedAt := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)

	require.NoError(t, repo.Save(ctx, &entity.CacheEntry{
		Key:      key,
		StoredAt: storedAt,
		POIs:     []entity.POI{{ID: "1", Distance: 100}},
	}))
	require.NoError(t, repo.Save(ctx, &entity.CacheEntry{
		Key:      key,
		StoredAt: storedAt.Add(time.Minute),
		POIs:     []entity.POI{{ID: "2", Distance: 50}, {ID: "3", Distance: 70}},
	}))

	entry, err := repo.Find(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, storedAt.Add(time.Minute), entry.StoredAt)
	require.Len(t, entry.POIs, 2)
	assert.Equal(t, "2", entry.POIs[0].ID)
}

func TestGeoQueryCacheRepository_ReturnsDetachedCopies(t *testing.T) {
	repo := NewGeoQueryCacheRepository()
	ctx := context.Background()
	original := &entity.CacheEntry{
		Key:  "k",
		POIs: []entity.POI{{ID: "1", Tags: map[string]string{entity.TagName: "Toyota Service"}}},
	}
	require.NoError(t, repo.Save(ctx, original))

	original.POIs[0].Tags[entity.TagName] = "mutated"

	found, err := repo.Find(ctx, "k")
	require.NoError(t, err)
	found.POIs[0].ID = "changed"

	again, err := repo.Find(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "1", again.POIs[0].ID)
	assert.Equal(t, "Toyota Service", again.POIs[0].Tags[entity.TagName])
}

func TestGeoQueryCacheRepository_DeleteOlderThan(t *testing.T) {
	repo := NewGeoQueryCacheRepository()
	ctx := context.Background()
	now := time.Now()

	require.NoError(t, repo.Save(ctx, &entity.CacheEntry{Key: "old", StoredAt: now.Add(-time.Hour)}))
	require.NoError(t, repo.Save(ctx, &entity.CacheEntry{Key: "new", StoredAt: now}))

	removed, err := repo.DeleteOlderThan(ctx, now.Add(-15*time.Minute))
	require.NoError(t, err)
	assert.Equal(t, int64(1), removed)

	_, err = repo.Find(ctx, "old")
	assert.ErrorIs(t, err, repository.ErrCacheEntryNotFound)
	_, err = repo.Find(ctx, "new")
	assert.NoError(t, err)
}

func TestGeoQueryCacheRepository_ConcurrentAccess(t *testing.T) {
	repo := NewGeoQueryCacheRepository()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = repo.Save(ctx, &entity.CacheEntry{Key: "shared", StoredAt: time.Now()})
			_, _ = repo.Find(ctx, "shared")
		}()
	}
	wg.Wait()

	_, err := repo.Find(ctx, "shared")
	assert.NoError(t, err)
}
