package sqlite

import (
	"errors"

	sqlite3 "modernc.org/sqlite"
	sqlitelib "modernc.org/sqlite/lib"
)

// CONSTRAINT CLASSIFICATION:
// When an INSERT violates a constraint, modernc.org/sqlite returns a
// *sqlite3.Error carrying the extended result code. We inspect that code to
// translate store-level failures into domain errors:
//
//	unique violation      → conflict ("... already exists", HTTP 409)
//	foreign-key violation → validation error on user_id (HTTP 400)
//
// Everything else (disk full, corrupted file, ...) is left unclassified and
// surfaces as a 500 at the boundary.

// isUniqueViolation reports whether err is a UNIQUE (or primary key)
// constraint failure.
func isUniqueViolation(err error) bool {
	var serr *sqlite3.Error
	if !errors.As(err, &serr) {
		return false
	}
	switch serr.Code() {
	case sqlitelib.SQLITE_CONSTRAINT_UNIQUE, sqlitelib.SQLITE_CONSTRAINT_PRIMARYKEY:
		return true
	}
	return false
}

// isForeignKeyViolation reports whether err is a FOREIGN KEY constraint
// failure — an insert referencing a row that doesn't exist.
func isForeignKeyViolation(err error) bool {
	var serr *sqlite3.Error
	if !errors.As(err, &serr) {
		return false
	}
	return serr.Code() == sqlitelib.SQLITE_CONSTRAINT_FOREIGNKEY
}
