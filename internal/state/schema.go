package state

import (
	"database/sql"

	dbutil "github.com/llehouerou/carfilter/internal/db"
)

const currentSchemaVersion = 1

func initSchema(db *sql.DB) error {
	return dbutil.WithTx(db, func(tx *sql.Tx) error {
		_, err := tx.Exec(`
			CREATE TABLE IF NOT EXISTS schema_version (
				version INTEGER PRIMARY KEY
			);

			CREATE TABLE IF NOT EXISTS kv_state (
				key TEXT PRIMARY KEY,
				value TEXT NOT NULL,
				updated_at INTEGER NOT NULL
			);
		`)
		if err != nil {
			return err
		}

		// Set initial version if not exists
		_, err = tx.Exec(`
			INSERT OR IGNORE INTO schema_version (version) VALUES (?)
		`, currentSchemaVersion)
		return err
	})
}
