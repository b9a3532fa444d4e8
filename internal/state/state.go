package state

import (
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	_ "modernc.org/sqlite" // SQLite driver

	dbutil "github.com/llehouerou/carfilter/internal/db"
)

const (
	appName       = "carfilter"
	dbFileName    = "carfilter.db"
	pebbleDirName = "pebble"
)

// Manager is the sqlite-backed store.
type Manager struct {
	db *sql.DB
}

// Open opens (creating if needed) the sqlite database at path.
// An empty path uses the XDG data directory.
func Open(path string) (*Manager, error) {
	if path == "" {
		var err error
		path, err = DefaultDBPath()
		if err != nil {
			return nil, err
		}
	}

	// Ensure directory exists
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, err
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// sqlite has a single writer; one connection also keeps :memory: databases shared
	db.SetMaxOpenConns(1)

	if err := initSchema(db); err != nil {
		db.Close()
		return nil, err
	}

	return &Manager{db: db}, nil
}

func (m *Manager) Close() error {
	return m.db.Close()
}

func (m *Manager) Get(key string) ([]byte, error) {
	var value string
	err := m.db.QueryRow(`SELECT value FROM kv_state WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return []byte(value), nil
}

func (m *Manager) Put(key string, value []byte) error {
	_, err := m.db.Exec(`
		INSERT INTO kv_state (key, value, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET
			value = excluded.value,
			updated_at = excluded.updated_at
	`, key, string(value), time.Now().UnixMilli())
	return err
}

func (m *Manager) Delete(key string) error {
	_, err := m.db.Exec(`DELETE FROM kv_state WHERE key = ?`, key)
	return err
}

// UpdatedAt returns when key was last written.
func (m *Manager) UpdatedAt(key string) (time.Time, error) {
	var updated sql.NullInt64
	err := m.db.QueryRow(`SELECT updated_at FROM kv_state WHERE key = ?`, key).Scan(&updated)
	if errors.Is(err, sql.ErrNoRows) {
		return time.Time{}, ErrNotFound
	}
	if err != nil {
		return time.Time{}, err
	}
	return dbutil.UnixMilli(updated), nil
}

// DefaultDBPath returns the XDG location of the sqlite database.
func DefaultDBPath() (string, error) {
	return xdg.DataFile(filepath.Join(appName, dbFileName))
}

// DBPath returns the sqlite database path under a data directory.
// An empty dataDir falls back to DefaultDBPath.
func DBPath(dataDir string) (string, error) {
	if dataDir == "" {
		return DefaultDBPath()
	}
	return filepath.Join(dataDir, appName, dbFileName), nil
}

// PebbleDir returns the pebble directory under a data directory.
// An empty dataDir uses the XDG data home.
func PebbleDir(dataDir string) string {
	if dataDir == "" {
		dataDir = xdg.DataHome
	}
	return filepath.Join(dataDir, appName, pebbleDirName)
}
