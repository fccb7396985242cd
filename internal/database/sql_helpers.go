package database

import (
	"database/sql"
	"fmt"
)

// nullableString converts a string to sql.NullString for optional fields.
// Empty strings are treated as NULL.
func nullableString(v string) sql.NullString {
	return sql.NullString{String: v, Valid: v != ""}
}

// uniqueIDs rejects a list in which two records share an id.
func uniqueIDs(resource string, ids []string) error {
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		if seen[id] {
			return wrapErr("replace", resource, id, ErrDuplicate)
		}
		seen[id] = true
	}
	return nil
}

// replaceAll clears table and inserts one row per element through insert.
func replaceAll(tx *sql.Tx, table string, n int, insert func(i int) error) error {
	if _, err := tx.Exec(fmt.Sprintf("DELETE FROM %s", table)); err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		if err := insert(i); err != nil {
			return err
		}
	}
	return nil
}
