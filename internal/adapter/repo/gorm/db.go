// Package gormrepo persists surveys and classification runs in postgres.
// It is selected at startup when a database DSN is configured; without one
// the server falls back to the in-memory repositories.
package gormrepo

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// OpenPostgres opens the connection the survey and run repositories share.
func OpenPostgres(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	return db, nil
}
