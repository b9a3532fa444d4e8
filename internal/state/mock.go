// internal/state/mock.go
package state

import (
	"errors"
	"time"
)

// ErrMockWrite is returned by Mock.Put while writes are failing.
var ErrMockWrite = errors.New("state: mock write failure")

// Mock is an in-memory test double for Manager.
type Mock struct {
	values   map[string][]byte
	updated  map[string]time.Time
	failPuts bool
	failGets bool
	puts     int
	closed   bool
}

// NewMock creates a new mock store for testing.
func NewMock() *Mock {
	return &Mock{
		values:  make(map[string][]byte),
		updated: make(map[string]time.Time),
	}
}

func (m *Mock) Get(key string) ([]byte, error) {
	if m.failGets {
		return nil, errors.New("state: mock read failure")
	}
	v, ok := m.values[key]
	if !ok {
		return nil, ErrNotFound
	}
	return append([]byte(nil), v...), nil
}

func (m *Mock) Put(key string, value []byte) error {
	m.puts++
	if m.failPuts {
		return ErrMockWrite
	}
	m.values[key] = append([]byte(nil), value...)
	m.updated[key] = time.Now()
	return nil
}

func (m *Mock) Delete(key string) error {
	delete(m.values, key)
	delete(m.updated, key)
	return nil
}

func (m *Mock) UpdatedAt(key string) (time.Time, error) {
	t, ok := m.updated[key]
	if !ok {
		return time.Time{}, ErrNotFound
	}
	return t, nil
}

func (m *Mock) Close() error {
	m.closed = true
	return nil
}

// Test helpers

// SetRaw stores value without counting it as a write.
func (m *Mock) SetRaw(key string, value []byte) { m.values[key] = value }

// Raw returns the stored bytes for key, or nil.
func (m *Mock) Raw(key string) []byte { return m.values[key] }

// FailPuts makes subsequent Put calls fail (or succeed again).
func (m *Mock) FailPuts(fail bool) { m.failPuts = fail }

// FailGets makes subsequent Get calls fail.
func (m *Mock) FailGets(fail bool) { m.failGets = fail }

// Puts returns how many times Put was called.
func (m *Mock) Puts() int { return m.puts }

func (m *Mock) IsClosed() bool { return m.closed }

// Verify Mock implements Interface at compile time.
var _ Interface = (*Mock)(nil)
