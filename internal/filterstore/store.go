// Package filterstore owns the current filter selection. Every mutation is
// committed, persisted and then announced to the consumer, in that order.
package filterstore

import (
	"log/slog"

	"github.com/llehouerou/carfilter/internal/filters"
)

// Notifier receives the complete selection after every mutation.
type Notifier func(sel filters.Selection)

// Store holds the current selection.
// It is not safe for concurrent use; callers drive it from one event loop.
type Store struct {
	current  filters.Selection
	adapter  PersistenceAdapter
	notify   Notifier
	logger   *slog.Logger
	degraded bool
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used for load and save failures.
func WithLogger(l *slog.Logger) Option {
	return func(s *Store) { s.logger = l }
}

// New loads the initial selection through adapter. A missing or unreadable
// record falls back to the empty selection. notify may be nil.
func New(adapter PersistenceAdapter, notify Notifier, opts ...Option) *Store {
	s := &Store{
		adapter: adapter,
		notify:  notify,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}

	sel, err := adapter.Load()
	if err != nil {
		s.logger.Warn("discarding stored filters", "key", StorageKey, "error", err)
		sel = filters.Default()
	}
	s.current = sel.Normalize()
	return s
}

// SetNotifier replaces the consumer callback.
func (s *Store) SetNotifier(n Notifier) {
	s.notify = n
}

// Selection returns a copy of the current selection.
func (s *Store) Selection() filters.Selection {
	return s.current.Clone()
}

// Active returns the active flags of the current selection.
func (s *Store) Active() filters.ActiveFlags {
	return filters.Derive(s.current)
}

// Degraded reports whether the most recent save failed.
func (s *Store) Degraded() bool {
	return s.degraded
}

// Reset clears every category.
func (s *Store) Reset() {
	s.commit(filters.Default())
}

// ToggleTag removes tag if selected, otherwise adds it.
func (s *Store) ToggleTag(tag string) {
	s.commit(s.current.WithToggledTag(tag))
}

// ReplaceCategory replaces the car type or region set wholesale.
// Values are not checked against the whitelist. Other categories are ignored.
func (s *Store) ReplaceCategory(c filters.Category, values []string) {
	next, err := s.current.WithCategory(c, values)
	if err != nil {
		s.logger.Debug("ignoring category replace", "category", c, "error", err)
		return
	}
	s.commit(next)
}

// SetPrice replaces the price bucket; "" clears it.
// An unknown bucket clears the price so the selection stays valid.
func (s *Store) SetPrice(bucket string) {
	next, err := s.current.WithPrice(bucket)
	if err != nil {
		s.logger.Warn("unknown price bucket, clearing price", "bucket", bucket)
		next = s.current.WithCleared(filters.Price)
	}
	s.commit(next)
}

// ClearCategory empties one category and leaves the others untouched.
func (s *Store) ClearCategory(c filters.Category) {
	s.commit(s.current.WithCleared(c))
}

func (s *Store) commit(next filters.Selection) {
	s.current = next

	// A failed save leaves the session working; the value just won't survive a restart.
	if err := s.adapter.Save(s.current.Clone()); err != nil {
		if !s.degraded {
			s.logger.Error("persisting filters failed", "key", StorageKey, "error", err)
		}
		s.degraded = true
	} else {
		s.degraded = false
	}

	if s.notify != nil {
		s.notify(s.current.Clone())
	}
}
