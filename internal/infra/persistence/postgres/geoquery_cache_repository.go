// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"encoding/json"
	"time"

	"servicelocator/internal/domain/entity"
	domainerrors "servicelocator/internal/domain/errors"
	"servicelocator/internal/domain/repository"
	"servicelocator/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// geoQueryCacheRepository implements the repository.GeoQueryCacheRepository interface.
type geoQueryCacheRepository struct {
	db *gorm.DB
}

// NewGeoQueryCacheRepository is the constructor for geoQueryCacheRepository.
func NewGeoQueryCacheRepository(db *gorm.DB) repository.GeoQueryCacheRepository {
	return &geoQueryCacheRepository{
		db: db,
	}
}

// Find retrieves the entry stored under key.
func (repo *geoQueryCacheRepository) Find(ctx context.Context, key string) (*entity.CacheEntry, error) {
	var cacheM model.GeoQueryCacheModel
	err := repo.db.WithContext(ctx).
		Where("cache_key = ?", key).
		First(&cacheM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCacheEntryNotFound
		}

		return nil, errors.Wrap(err, "failed to find cache entry")
	}

	return toCacheEntryDomain(&cacheM)
}

// Save upserts the entry, replacing any previous value for the key.
func (repo *geoQueryCacheRepository) Save(ctx context.Context, entry *entity.CacheEntry) error {
	cacheM, err := fromCacheEntryDomain(entry)
	if err != nil {
		return err
	}

	err = repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "cache_key"}},
			DoUpdates: clause.AssignmentColumns([]string{"pois", "stored_at"}),
		}).
		Create(cacheM).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to save cache entry")
	}

	return nil
}

// DeleteOlderThan removes entries stored before cutoff.
func (repo *geoQueryCacheRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	result := repo.db.WithContext(ctx).
		Where("stored_at < ?", cutoff).
		Delete(&model.GeoQueryCacheModel{})
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to purge cache entries")
	}

	return result.RowsAffected, nil
}

func toCacheEntryDomain(cacheM *model.GeoQueryCacheModel) (*entity.CacheEntry, error) {
	var pois []entity.POI
	if err := json.Unmarshal(cacheM.POIs, &pois); err != nil {
		return nil, errors.Wrap(err, "failed to decode cached POIs")
	}

	return &entity.CacheEntry{
		Key:      cacheM.CacheKey,
		StoredAt: cacheM.StoredAt,
		POIs:     pois,
	}, nil
}

func fromCacheEntryDomain(entry *entity.CacheEntry) (*model.GeoQueryCacheModel, error) {
	pois := entry.POIs
	if pois == nil {
		pois = []entity.POI{}
	}

	data, err := json.Marshal(pois)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode POIs")
	}

	return &model.GeoQueryCacheModel{
		CacheKey: entry.Key,
		POIs:     datatypes.JSON(data),
		StoredAt: entry.StoredAt,
	}, nil
}
