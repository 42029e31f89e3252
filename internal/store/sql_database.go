package store

import (
	"database/sql"

	sq "github.com/Masterminds/squirrel"

	"github.com/divinoviana/planoespecialindividualizado/internal/logger"
	"github.com/divinoviana/planoespecialindividualizado/migrations"
)

// DB is an open plan database together with the dialect specific pieces the
// repositories need.
type DB struct {
	*sql.DB
	driver             string
	dialect            string
	builder            sq.StatementBuilderType
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// Driver returns the configured driver name ("postgres" or "sqlite").
func (db *DB) Driver() string {
	return db.driver
}

// Migrate applies the embedded schema migrations.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}
