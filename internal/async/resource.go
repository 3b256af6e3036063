// Package async models the lifecycle of a value obtained via a remote call:
// idle → loading → (ready | failed). Every view that fetches anything over
// the wire owns one Resource per fetched value instead of re-deriving
// loading/error bookkeeping by hand.
//
// The correctness-critical property is the stale-settlement guard: each
// Start hands out a monotonically increasing Token, and only the settlement
// carrying the current token is honored. Without it, a fast "navigate to
// trip B" followed by a slow response for trip A would display A's data
// under B's identifier.
package async

import (
	"context"
	"errors"
	"sync"
)

// State is the lifecycle position of a Resource.
type State int

const (
	StateIdle State = iota
	StateLoading
	StateReady
	StateFailed
)

// String returns the lowercase name of the state.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Token identifies one started fetch. A settlement carrying any token other
// than the most recently issued one is discarded.
type Token uint64

// ErrStaleSettlement is returned by Resolve/Reject when the token does not
// match the current fetch. The resource state is untouched; callers normally
// ignore this error, tests assert on it.
var ErrStaleSettlement = errors.New("async: stale settlement discarded")

// ErrNotLoading is returned when a settlement carries the current token but
// the resource is not in Loading — an out-of-order completion, which is a
// programming error on the caller's side.
var ErrNotLoading = errors.New("async: settlement outside loading state")

// Resource is a value obtained via a remote call, plus its request lifecycle.
// The zero value is a usable idle resource. A Resource is owned by the single
// view that issued the fetch; it is never shared across views except by
// reconstruction from a fresh request.
type Resource[T any] struct {
	mu    sync.Mutex
	state State
	value T
	msg   string
	seq   Token
}

// NewResource returns an idle resource.
func NewResource[T any]() *Resource[T] {
	return &Resource[T]{}
}

// Start transitions to Loading unconditionally, discarding any previous
// terminal value or error, and returns the token the eventual settlement
// must present.
func (r *Resource[T]) Start() Token {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	r.state = StateLoading
	var zero T
	r.value = zero
	r.msg = ""
	return r.seq
}

// Resolve transitions Loading → Ready(v) for the fetch identified by tok.
func (r *Resource[T]) Resolve(tok Token, v T) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if tok != r.seq {
		return ErrStaleSettlement
	}
	if r.state != StateLoading {
		return ErrNotLoading
	}
	r.state = StateReady
	r.value = v
	return nil
}

// Reject transitions Loading → Failed(msg) for the fetch identified by tok.
func (r *Resource[T]) Reject(tok Token, msg string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if tok != r.seq {
		return ErrStaleSettlement
	}
	if r.state != StateLoading {
		return ErrNotLoading
	}
	r.state = StateFailed
	r.msg = msg
	return nil
}

// Reset returns the resource to Idle and invalidates any outstanding token,
// so an in-flight fetch settles as stale. Used when a view is torn down.
func (r *Resource[T]) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	r.state = StateIdle
	var zero T
	r.value = zero
	r.msg = ""
}

// State returns the current lifecycle state.
func (r *Resource[T]) State() State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

// Loading reports whether a fetch is in flight.
func (r *Resource[T]) Loading() bool {
	return r.State() == StateLoading
}

// Value returns the ready value and true, or the zero value and false when
// the resource is not Ready.
func (r *Resource[T]) Value() (T, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.state != StateReady {
		var zero T
		return zero, false
	}
	return r.value, true
}

// ErrMessage returns the failure message, or "" when the resource is not Failed.
func (r *Resource[T]) ErrMessage() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.state != StateFailed {
		return ""
	}
	return r.msg
}

// Run starts the resource, executes fn on its own goroutine and settles with
// the captured token: Ready on nil error, Failed(err.Error()) otherwise.
// If another Start supersedes this fetch before fn returns, the settlement is
// silently discarded by the token guard.
//
// The returned channel is closed once the settlement attempt has been made,
// whether or not it was honored.
func Run[T any](ctx context.Context, r *Resource[T], fn func(context.Context) (T, error)) (Token, <-chan struct{}) {
	tok := r.Start()
	done := make(chan struct{})
	go func() {
		defer close(done)
		v, err := fn(ctx)
		if err != nil {
			//nolint:errcheck // stale rejections are dropped on purpose
			r.Reject(tok, err.Error())
			return
		}
		//nolint:errcheck
		r.Resolve(tok, v)
	}()
	return tok, done
}
