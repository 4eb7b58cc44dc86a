package store

import (
	"database/sql"

	"github.com/MKhiriev/go-user-auth/internal/logger"
	"github.com/MKhiriev/go-user-auth/migrations"
)

// DB wraps a *sql.DB with the dialect it speaks. The dialect picks the
// placeholder format for queries and the migrations directory.
type DB struct {
	*sql.DB
	dialect string
	logger  *logger.Logger
}

func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}
