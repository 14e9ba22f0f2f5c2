package store

import (
	"database/sql"

	"github.com/MKhiriev/go-event-gate/internal/logger"
	"github.com/MKhiriev/go-event-gate/migrations"
)

// DB wraps the local SQLite connection together with the logger used by
// repositories built on top of it.
type DB struct {
	*sql.DB
	logger *logger.Logger
}

func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}
