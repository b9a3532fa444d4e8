package filterstore

import (
	"errors"
	"fmt"
	"time"

	"github.com/llehouerou/carfilter/internal/filters"
	"github.com/llehouerou/carfilter/internal/state"
)

// StorageKey is the key the selection record is stored under.
const StorageKey = "selectedFilters"

// ErrCorruptRecord is returned by Load when the stored record cannot be decoded.
var ErrCorruptRecord = errors.New("corrupt filter record")

// PersistenceAdapter loads and saves the full selection.
type PersistenceAdapter interface {
	// Load returns the stored selection. A missing record yields
	// filters.Default() and no error; a corrupt one yields filters.Default()
	// and an error wrapping ErrCorruptRecord.
	Load() (filters.Selection, error)
	Save(sel filters.Selection) error
}

// StorageAdapter persists the selection as JSON in a state.Interface.
type StorageAdapter struct {
	kv  state.Interface
	key string
}

// NewStorageAdapter stores the record under StorageKey.
func NewStorageAdapter(kv state.Interface) *StorageAdapter {
	return &StorageAdapter{kv: kv, key: StorageKey}
}

func (a *StorageAdapter) Load() (filters.Selection, error) {
	data, err := a.kv.Get(a.key)
	if errors.Is(err, state.ErrNotFound) {
		return filters.Default(), nil
	}
	if err != nil {
		return filters.Default(), err
	}
	sel, err := filters.Unmarshal(data)
	if err != nil {
		return filters.Default(), fmt.Errorf("%w: %w", ErrCorruptRecord, err)
	}
	return sel, nil
}

func (a *StorageAdapter) Save(sel filters.Selection) error {
	data, err := filters.Marshal(sel)
	if err != nil {
		return err
	}
	return a.kv.Put(a.key, data)
}

// Clear removes the stored record.
func (a *StorageAdapter) Clear() error {
	return a.kv.Delete(a.key)
}

// SavedAt returns when the record was last written.
func (a *StorageAdapter) SavedAt() (time.Time, error) {
	return a.kv.UpdatedAt(a.key)
}

var _ PersistenceAdapter = (*StorageAdapter)(nil)
