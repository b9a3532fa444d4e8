// Package scrolllock provides the page scroll lock held while a filter popup
// is open. The popup controller is its only writer; scrollable views read it.
package scrolllock

import "sync/atomic"

// Port is the scroll lock as seen by its owner.
type Port interface {
	// Set holds the lock when locked is true and releases it otherwise.
	// Setting the current value again is a no-op.
	Set(locked bool)
}

// Lock is a Port that can also be read.
type Lock interface {
	Port
	Locked() bool
}

// Flag is a process-wide lock flag.
type Flag struct {
	locked atomic.Bool
}

// Global is the lock shared by the whole UI.
var Global = &Flag{}

// Set implements Port.
func (f *Flag) Set(locked bool) {
	f.locked.Store(locked)
}

// Locked reports whether scrolling is currently suppressed.
func (f *Flag) Locked() bool {
	return f.locked.Load()
}

// Recorder is a Port that remembers every call, for tests.
type Recorder struct {
	locked   bool
	calls    []bool
	released int // held -> released transitions
}

// Set implements Port.
func (r *Recorder) Set(locked bool) {
	if r.locked && !locked {
		r.released++
	}
	r.locked = locked
	r.calls = append(r.calls, locked)
}

// Locked returns the last value set.
func (r *Recorder) Locked() bool { return r.locked }

// Calls returns every value passed to Set, in order.
func (r *Recorder) Calls() []bool { return r.calls }

// Releases returns how many times the lock went from held to released.
func (r *Recorder) Releases() int { return r.released }

var (
	_ Lock = (*Flag)(nil)
	_ Lock = (*Recorder)(nil)
)
