// Package db holds small helpers shared by the sqlite-backed stores.
package db

import (
	"database/sql"
	"time"
)

// WithTx executes fn within a transaction, rolling back when fn fails.
func WithTx(db *sql.DB, fn func(tx *sql.Tx) error) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback() //nolint:errcheck // no-op after Commit

	if err := fn(tx); err != nil {
		return err
	}
	return tx.Commit()
}

// UnixMilli converts a nullable millisecond timestamp column.
// NULL maps to the zero time.
func UnixMilli(n sql.NullInt64) time.Time {
	if !n.Valid {
		return time.Time{}
	}
	return time.UnixMilli(n.Int64)
}
