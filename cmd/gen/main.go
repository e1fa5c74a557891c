package main

import (
	"servicelocator/internal/infra/persistence/model"

	"gorm.io/gen"
)

// Generates typed query helpers for the cache tables.
func main() {
	models := []any{
		model.GeoQueryCacheModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
		Mode:    gen.WithDefaultQuery | gen.WithQueryInterface,
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}
