package state

import (
	"encoding/binary"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/cockroachdb/pebble"
	"github.com/cockroachdb/pebble/vfs"
)

const (
	pebbleValuePrefix   = "kv|"
	pebbleUpdatedPrefix = "meta|updated|"
)

// PebbleStore is the pebble-backed store.
// Each value key has a sibling meta key holding its write time.
type PebbleStore struct {
	db   *pebble.DB
	path string
}

// OpenPebble opens (creating if needed) a pebble database in dir.
// Pebble's own messages go to slog.Default instead of stderr.
func OpenPebble(dir string) (*PebbleStore, error) {
	return openPebble(dir, &pebble.Options{Logger: pebbleLogger{slog.Default()}})
}

// OpenPebbleFS opens a pebble database on a custom filesystem, such as vfs.NewMem.
func OpenPebbleFS(dir string, fs vfs.FS) (*PebbleStore, error) {
	return openPebble(dir, &pebble.Options{FS: fs, Logger: pebbleLogger{slog.Default()}})
}

// pebbleLogger routes pebble's printf-style logging to slog.
type pebbleLogger struct {
	l *slog.Logger
}

func (p pebbleLogger) Infof(format string, args ...any) {
	p.l.Debug(fmt.Sprintf(format, args...), "component", "pebble")
}

func (p pebbleLogger) Errorf(format string, args ...any) {
	p.l.Error(fmt.Sprintf(format, args...), "component", "pebble")
}

// Fatalf must not return.
func (p pebbleLogger) Fatalf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	p.l.Error(msg, "component", "pebble")
	panic(msg)
}

func openPebble(dir string, opts *pebble.Options) (*PebbleStore, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, errors.New("pebble path is empty")
	}
	db, err := pebble.Open(dir, opts)
	if err != nil {
		return nil, fmt.Errorf("pebble open: %w", err)
	}
	return &PebbleStore{db: db, path: dir}, nil
}

// Close releases pebble resources.
func (s *PebbleStore) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *PebbleStore) Get(key string) ([]byte, error) {
	value, closer, err := s.db.Get([]byte(pebbleValuePrefix + key))
	if errors.Is(err, pebble.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	defer closer.Close()

	// value is only valid until closer.Close
	out := make([]byte, len(value))
	copy(out, value)
	return out, nil
}

func (s *PebbleStore) Put(key string, value []byte) error {
	var stamp [8]byte
	binary.BigEndian.PutUint64(stamp[:], uint64(time.Now().UnixMilli()))

	batch := s.db.NewBatch()
	defer batch.Close()
	if err := batch.Set([]byte(pebbleValuePrefix+key), value, nil); err != nil {
		return err
	}
	if err := batch.Set([]byte(pebbleUpdatedPrefix+key), stamp[:], nil); err != nil {
		return err
	}
	return batch.Commit(pebble.Sync)
}

func (s *PebbleStore) Delete(key string) error {
	batch := s.db.NewBatch()
	defer batch.Close()
	if err := batch.Delete([]byte(pebbleValuePrefix+key), nil); err != nil {
		return err
	}
	if err := batch.Delete([]byte(pebbleUpdatedPrefix+key), nil); err != nil {
		return err
	}
	return batch.Commit(pebble.Sync)
}

// UpdatedAt returns when key was last written.
func (s *PebbleStore) UpdatedAt(key string) (time.Time, error) {
	value, closer, err := s.db.Get([]byte(pebbleUpdatedPrefix + key))
	if errors.Is(err, pebble.ErrNotFound) {
		return time.Time{}, ErrNotFound
	}
	if err != nil {
		return time.Time{}, err
	}
	defer closer.Close()
	if len(value) != 8 {
		return time.Time{}, fmt.Errorf("pebble meta for %q: bad length %d", key, len(value))
	}
	return time.UnixMilli(int64(binary.BigEndian.Uint64(value))), nil
}
