package model

import (
	"time"

	"gorm.io/datatypes"
)

// GeoQueryCacheModel is the GORM-specific struct for the 'geoquery_cache' table.
// POIs holds the sorted result list as a JSON array.
type GeoQueryCacheModel struct {
	CacheKey string         `gorm:"type:varchar(255);primaryKey"`
	POIs     datatypes.JSON `gorm:"column:pois;type:jsonb;not null"`
	StoredAt time.Time      `gorm:"not null;index:idx_geoquery_cache_stored_at"`
}

// TableName explicitly sets the table name for GORM.
func (GeoQueryCacheModel) TableName() string {
	return "geoquery_cache"
}
