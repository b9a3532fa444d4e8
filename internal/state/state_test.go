package state

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/cockroachdb/pebble/vfs"
)

const testKey = "selectedFilters"

func openTestManager(t *testing.T) *Manager {
	t.Helper()
	m, err := Open(":memory:")
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { m.Close() })
	return m
}

func openTestPebble(t *testing.T) *PebbleStore {
	t.Helper()
	s, err := OpenPebbleFS("/pebble", vfs.NewMem())
	if err != nil {
		t.Fatalf("OpenPebbleFS failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// backends runs fn against every Interface implementation.
func backends(t *testing.T, fn func(t *testing.T, s Interface)) {
	t.Helper()
	t.Run("sqlite", func(t *testing.T) { fn(t, openTestManager(t)) })
	t.Run("pebble", func(t *testing.T) { fn(t, openTestPebble(t)) })
	t.Run("mock", func(t *testing.T) { fn(t, NewMock()) })
}

func TestGet_Empty(t *testing.T) {
	backends(t, func(t *testing.T, s Interface) {
		_, err := s.Get(testKey)
		if !errors.Is(err, ErrNotFound) {
			t.Errorf("Get on empty store: err = %v, want ErrNotFound", err)
		}
		if _, err := s.UpdatedAt(testKey); !errors.Is(err, ErrNotFound) {
			t.Errorf("UpdatedAt on empty store: err = %v, want ErrNotFound", err)
		}
	})
}

func TestPutAndGet(t *testing.T) {
	backends(t, func(t *testing.T, s Interface) {
		record := []byte(`{"carType":[],"tags":["인기"],"region":[],"price":""}`)
		before := time.Now().Add(-time.Second)

		if err := s.Put(testKey, record); err != nil {
			t.Fatalf("Put failed: %v", err)
		}

		got, err := s.Get(testKey)
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if string(got) != string(record) {
			t.Errorf("Get = %s, want %s", got, record)
		}

		updated, err := s.UpdatedAt(testKey)
		if err != nil {
			t.Fatalf("UpdatedAt failed: %v", err)
		}
		if updated.Before(before) {
			t.Errorf("UpdatedAt = %v, want after %v", updated, before)
		}
	})
}

func TestPut_Overwrites(t *testing.T) {
	backends(t, func(t *testing.T, s Interface) {
		if err := s.Put(testKey, []byte("first")); err != nil {
			t.Fatalf("Put failed: %v", err)
		}
		if err := s.Put(testKey, []byte("second")); err != nil {
			t.Fatalf("Put (update) failed: %v", err)
		}
		got, _ := s.Get(testKey)
		if string(got) != "second" {
			t.Errorf("Get = %q, want %q", got, "second")
		}
	})
}

func TestDelete(t *testing.T) {
	backends(t, func(t *testing.T, s Interface) {
		if err := s.Put(testKey, []byte("x")); err != nil {
			t.Fatalf("Put failed: %v", err)
		}
		if err := s.Delete(testKey); err != nil {
			t.Fatalf("Delete failed: %v", err)
		}
		if _, err := s.Get(testKey); !errors.Is(err, ErrNotFound) {
			t.Errorf("Get after Delete: err = %v, want ErrNotFound", err)
		}
	})
}

func TestGet_ReturnsCopy(t *testing.T) {
	backends(t, func(t *testing.T, s Interface) {
		if err := s.Put(testKey, []byte("abc")); err != nil {
			t.Fatalf("Put failed: %v", err)
		}
		got, _ := s.Get(testKey)
		got[0] = 'z'
		again, _ := s.Get(testKey)
		if string(again) != "abc" {
			t.Errorf("stored value changed through returned slice: %q", again)
		}
	})
}

func TestOpen_FileSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "carfilter.db")

	m, err := Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if err := m.Put(testKey, []byte("persisted")); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	m.Close()

	m, err = Open(path)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer m.Close()

	got, err := m.Get(testKey)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if string(got) != "persisted" {
		t.Errorf("Get = %q, want %q", got, "persisted")
	}
}

func TestOpenPebble_EmptyPath(t *testing.T) {
	if _, err := OpenPebble("  "); err == nil {
		t.Error("expected error for empty pebble path")
	}
}

func TestSchema_Idempotent(t *testing.T) {
	m := openTestManager(t)
	if err := initSchema(m.db); err != nil {
		t.Fatalf("second initSchema failed: %v", err)
	}
	var version int
	if err := m.db.QueryRow(`SELECT MAX(version) FROM schema_version`).Scan(&version); err != nil {
		t.Fatalf("query failed: %v", err)
	}
	if version != currentSchemaVersion {
		t.Errorf("schema version = %d, want %d", version, currentSchemaVersion)
	}
}

func TestDBPath(t *testing.T) {
	got, err := DBPath("/data")
	if err != nil {
		t.Fatalf("DBPath failed: %v", err)
	}
	if want := filepath.Join("/data", appName, dbFileName); got != want {
		t.Errorf("DBPath = %q, want %q", got, want)
	}
	if got := PebbleDir("/data"); got != filepath.Join("/data", appName, pebbleDirName) {
		t.Errorf("PebbleDir = %q", got)
	}
}

func TestMock_FailPuts(t *testing.T) {
	m := NewMock()
	m.FailPuts(true)
	if err := m.Put(testKey, []byte("x")); !errors.Is(err, ErrMockWrite) {
		t.Errorf("Put err = %v, want ErrMockWrite", err)
	}
	if m.Puts() != 1 {
		t.Errorf("Puts = %d, want 1", m.Puts())
	}
	if m.Raw(testKey) != nil {
		t.Error("failed Put must not store the value")
	}
}
