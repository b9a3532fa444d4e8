// internal/state/interface.go
package state

import (
	"errors"
	"time"
)

// ErrNotFound is returned when a key has never been written.
var ErrNotFound = errors.New("state: key not found")

// Interface is the durable key/value storage contract shared by every backend.
type Interface interface {
	Get(key string) ([]byte, error)
	Put(key string, value []byte) error
	Delete(key string) error
	UpdatedAt(key string) (time.Time, error)
	Close() error
}

// Verify backends implement Interface at compile time.
var (
	_ Interface = (*Manager)(nil)
	_ Interface = (*PebbleStore)(nil)
)
