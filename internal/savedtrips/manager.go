// Package savedtrips holds the list-level state for the saved trips view:
// fetch all, delete one, export one. It builds on the trip repository and
// keeps the last good listing visible when a refresh fails.
package savedtrips

import (
	"context"
	"errors"
	"sync"

	"github.com/srajal5/vacationplanner/internal/async"
	"github.com/srajal5/vacationplanner/internal/domain"
)

// Repository is the subset of the trip repository the manager uses.
type Repository interface {
	ListTrips(ctx context.Context) ([]domain.Trip, error)
	DeleteTrip(ctx context.Context, id string) error
	ExportTrip(ctx context.Context, id string, format domain.ExportFormat) ([]byte, error)
}

// Manager owns the saved-trips listing for one view instance.
type Manager struct {
	repo Repository

	mu      sync.Mutex
	trips   []domain.Trip // last listing confirmed by the server
	listing async.Resource[[]domain.Trip]
}

// NewManager builds a manager with an empty, idle listing.
func NewManager(repo Repository) *Manager {
	return &Manager{repo: repo}
}

// Refresh fetches the listing. On success the local listing is replaced in
// full; on failure the previous listing (possibly stale) stays visible and
// the error is surfaced alongside it via ErrMessage.
func (m *Manager) Refresh(ctx context.Context) error {
	tok := m.listing.Start()

	trips, err := m.repo.ListTrips(ctx)

	m.mu.Lock()
	defer m.mu.Unlock()
	if err != nil {
		//nolint:errcheck // superseded refreshes are dropped by the token guard
		m.listing.Reject(tok, err.Error())
		return err
	}
	if rerr := m.listing.Resolve(tok, trips); rerr != nil {
		// A newer refresh superseded this one; keep its outcome instead.
		return nil
	}
	m.trips = trips
	return nil
}

// Remove deletes the trip with the given id. The local listing is mutated
// only after the server confirms the deletion — on failure the item remains
// visible and the listing is unchanged.
func (m *Manager) Remove(ctx context.Context, id string) error {
	if err := m.repo.DeleteTrip(ctx, id); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	kept := m.trips[:0:0]
	for _, t := range m.trips {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	m.trips = kept
	return nil
}

// Export downloads the trip in the requested format and returns the payload
// together with the suggested download filename. Export failures are
// reported to the caller but never touch the listing.
func (m *Manager) Export(ctx context.Context, id string, format domain.ExportFormat) ([]byte, string, error) {
	payload, err := m.repo.ExportTrip(ctx, id, format)
	if err != nil {
		return nil, "", err
	}
	return payload, domain.ExportFilename(id, format), nil
}

// Trips returns a copy of the current listing.
func (m *Manager) Trips() []domain.Trip {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]domain.Trip, len(m.trips))
	copy(out, m.trips)
	return out
}

// Loading reports whether a refresh is in flight.
func (m *Manager) Loading() bool {
	return m.listing.Loading()
}

// ErrMessage returns the last refresh failure message, or "" when the last
// refresh succeeded or none has run.
func (m *Manager) ErrMessage() string {
	return m.listing.ErrMessage()
}

// IsNotFound reports whether err means the trip had already disappeared
// server-side; views may choose to drop the row anyway in that case.
func IsNotFound(err error) bool {
	return errors.Is(err, domain.ErrNotFound)
}
