package store

import (
	"database/sql"

	"github.com/MKhiriev/go-recipe-share/internal/logger"
)

// NewDBWithClassificator builds a DB on conn whose driver errors are
// classified by c.
func NewDBWithClassificator(conn *sql.DB, driver string, c ErrorClassificator) *DB {
	db := newDB(conn, driver, logger.Nop())
	db.errorClassificator = c
	return db
}
