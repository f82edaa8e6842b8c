package sqlite

import (
	"errors"
	"strings"

	msqlite "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// isConstraintViolation reports whether err is a SQLite constraint failure.
// The only constraint an insert can break is the unique alias index.
func isConstraintViolation(err error) bool {
	var sqliteErr *msqlite.Error
	if errors.As(err, &sqliteErr) {
		// extended codes carry the primary code in the low byte
		return sqliteErr.Code()&0xff == sqlite3.SQLITE_CONSTRAINT
	}
	// libsql reports errors as plain strings
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
