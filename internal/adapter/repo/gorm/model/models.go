// Package model holds the table mappings of the postgres repositories.
package model

import "time"

type SurfaceChunk struct {
	SurfaceName string    `gorm:"column:surface_name;primaryKey"`
	ChunkX      int32     `gorm:"column:chunk_x;primaryKey"`
	ChunkY      int32     `gorm:"column:chunk_y;primaryKey"`
	Seed        bool      `gorm:"column:seed;not null"`
	UpdatedAt   time.Time `gorm:"column:updated_at;not null"`
}

func (SurfaceChunk) TableName() string { return "surface_chunks" }

type SurfaceTag struct {
	ID          int64   `gorm:"column:id;primaryKey;autoIncrement"`
	SurfaceName string  `gorm:"column:surface_name;not null"`
	Force       string  `gorm:"column:force;not null"`
	PosX        float64 `gorm:"column:pos_x;not null"`
	PosY        float64 `gorm:"column:pos_y;not null"`
	Text        string  `gorm:"column:text;not null"`
}

func (SurfaceTag) TableName() string { return "surface_tags" }

type ClassificationRun struct {
	RunID       string    `gorm:"column:run_id;primaryKey"`
	SurfaceName string    `gorm:"column:surface_name;not null"`
	Horizon     int32     `gorm:"column:horizon;not null"`
	Included    []byte    `gorm:"column:included;not null"`
	Excluded    []byte    `gorm:"column:excluded;not null"`
	CreatedAt   time.Time `gorm:"column:created_at;not null"`
}

func (ClassificationRun) TableName() string { return "classification_runs" }
