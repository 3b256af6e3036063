// Package theme holds the ambient light/dark preference as an observable
// single-value store. The resolved value is re-derived whenever either the
// stored preference or the OS-reported preference changes; there is no
// hidden singleton mutation and no teardown.
package theme

import (
	"context"
	"sync"
	"time"
)

// Preference is the user's stored choice.
type Preference string

const (
	Light  Preference = "light"
	Dark   Preference = "dark"
	System Preference = "system" // follow the OS-reported preference
)

// Valid reports whether p is one of the three recognized preferences.
func (p Preference) Valid() bool {
	return p == Light || p == Dark || p == System
}

// Resolved is the concrete value a renderer applies; never "system".
type Resolved string

const (
	ResolvedLight Resolved = "light"
	ResolvedDark  Resolved = "dark"
)

// Persister stores the preference across runs. Load returning "" means
// nothing persisted yet; the store then defaults to System.
type Persister interface {
	Load() (Preference, error)
	Save(Preference) error
}

// Store is the observable theme state for one process.
type Store struct {
	mu      sync.Mutex
	pref    Preference
	system  Resolved
	persist Persister
	subs    map[int]func(Resolved)
	nextSub int
}

// Open builds a store from the persisted preference (or System when nothing
// is persisted or the persisted value is unrecognized) and the current
// OS-reported value. A persistence read error falls back to System rather
// than failing init; the theme is cosmetic.
func Open(p Persister, system Resolved) *Store {
	pref := System
	if p != nil {
		if stored, err := p.Load(); err == nil && stored.Valid() {
			pref = stored
		}
	}
	return &Store{pref: pref, system: system, persist: p, subs: map[int]func(Resolved){}}
}

// Preference returns the stored choice.
func (s *Store) Preference() Preference {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pref
}

// Resolved returns the concrete light/dark value for the current preference.
func (s *Store) Resolved() Resolved {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.resolvedLocked()
}

func (s *Store) resolvedLocked() Resolved {
	switch s.pref {
	case Light:
		return ResolvedLight
	case Dark:
		return ResolvedDark
	default:
		return s.system
	}
}

// Set stores a new preference, persists it, and notifies subscribers if the
// resolved value changed.
func (s *Store) Set(p Preference) error {
	if !p.Valid() {
		p = System
	}
	s.mu.Lock()
	before := s.resolvedLocked()
	s.pref = p
	after := s.resolvedLocked()
	subs := s.snapshotSubsLocked()
	persist := s.persist
	s.mu.Unlock()

	if before != after {
		for _, fn := range subs {
			fn(after)
		}
	}
	if persist != nil {
		return persist.Save(p)
	}
	return nil
}

// SetSystem records a change in the OS-reported preference. Subscribers are
// notified only when the preference is System, i.e. when the resolved value
// actually moved.
func (s *Store) SetSystem(r Resolved) {
	s.mu.Lock()
	before := s.resolvedLocked()
	s.system = r
	after := s.resolvedLocked()
	subs := s.snapshotSubsLocked()
	s.mu.Unlock()

	if before != after {
		for _, fn := range subs {
			fn(after)
		}
	}
}

// Subscribe registers fn to run on every resolved-value change and returns
// a cancel function. fn is called outside the store lock.
func (s *Store) Subscribe(fn func(Resolved)) (cancel func()) {
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

func (s *Store) snapshotSubsLocked() []func(Resolved) {
	out := make([]func(Resolved), 0, len(s.subs))
	for _, fn := range s.subs {
		out = append(out, fn)
	}
	return out
}

// Poll samples probe on the given interval and feeds the result into
// SetSystem until ctx is cancelled. This is how the OS preference is
// observed on platforms without a change notification.
func (s *Store) Poll(ctx context.Context, interval time.Duration, probe func() Resolved) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.SetSystem(probe())
			}
		}
	}()
}
