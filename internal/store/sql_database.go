package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MKhiriev/go-recipe-share/internal/config"
	"github.com/MKhiriev/go-recipe-share/internal/logger"
	"github.com/MKhiriev/go-recipe-share/migrations"
	sq "github.com/Masterminds/squirrel"
)

// DB wraps a *sql.DB together with the dialect-specific pieces repositories
// need: a squirrel statement builder with the right placeholder format and
// an error classifier for the driver's error codes.
type DB struct {
	*sql.DB
	driver             string
	builder            sq.StatementBuilderType
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewConnectDB opens the database selected by cfg.Driver.
func NewConnectDB(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	switch cfg.Driver {
	case migrations.DialectPostgres:
		return NewConnectPostgres(ctx, cfg, log)
	case migrations.DialectSQLite:
		return NewConnectSQLite(ctx, cfg, log)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

// newDB assembles a DB for an already opened connection.
func newDB(conn *sql.DB, driver string, log *logger.Logger) *DB {
	db := &DB{
		DB:     conn,
		driver: driver,
		logger: log,
	}

	switch driver {
	case migrations.DialectSQLite:
		db.builder = sq.StatementBuilder.PlaceholderFormat(sq.Question)
		db.errorClassificator = NewSQLiteErrorClassifier()
	default:
		db.builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
		db.errorClassificator = NewPostgresErrorClassifier()
	}

	return db
}

// Migrate applies the embedded schema for the connection's dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.driver)
}

// classify returns the [ErrorClass] of a driver error.
func (db *DB) classify(err error) ErrorClass {
	if db.errorClassificator == nil {
		return ClassUnknown
	}
	return db.errorClassificator.Classify(err)
}

// likeOperator returns a case-insensitive substring predicate for column.
// SQLite's LIKE is already case-insensitive for ASCII; Postgres needs ILIKE.
func (db *DB) likeOperator(column, value string) sq.Sqlizer {
	pattern := "%" + value + "%"
	if db.driver == migrations.DialectSQLite {
		return sq.Like{column: pattern}
	}
	return sq.ILike{column: pattern}
}
