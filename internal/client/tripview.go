package client

import (
	"context"

	"github.com/srajal5/vacationplanner/internal/async"
	"github.com/srajal5/vacationplanner/internal/domain"
)

// TripGetter is the single operation TripView needs from the repository.
type TripGetter interface {
	GetTrip(ctx context.Context, id string) (domain.Trip, error)
}

// TripView is the per-screen state for any view keyed by a trip id (results
// page, booking page). Each view constructs its own TripView and fetches its
// own copy of the trip; trips are never shared between views by reference.
type TripView struct {
	getter TripGetter
	trip   async.Resource[domain.Trip]
}

// NewTripView builds a view around the given getter with an idle resource.
func NewTripView(g TripGetter) *TripView {
	return &TripView{getter: g}
}

// Load starts fetching the trip with the given id, superseding any in-flight
// fetch. Navigating quickly between ids is safe: only the most recently
// requested id's response lands, older ones are discarded by the token guard.
// The returned channel closes when this particular fetch has settled (or
// been discarded).
func (v *TripView) Load(ctx context.Context, id string) <-chan struct{} {
	_, done := async.Run(ctx, &v.trip, func(ctx context.Context) (domain.Trip, error) {
		return v.getter.GetTrip(ctx, id)
	})
	return done
}

// Close abandons any in-flight fetch so its settlement has no observable
// effect. Cancellation is client-local; no abort is sent to the service.
func (v *TripView) Close() {
	v.trip.Reset()
}

// State returns the lifecycle state of the trip fetch.
func (v *TripView) State() async.State {
	return v.trip.State()
}

// Trip returns the loaded trip and true once the fetch is Ready. The booking
// wizard must only be constructed once this reports true; until then the
// hosting view shows the loading or error state instead.
func (v *TripView) Trip() (domain.Trip, bool) {
	return v.trip.Value()
}

// ErrMessage returns the failure message when the fetch failed, else "".
func (v *TripView) ErrMessage() string {
	return v.trip.ErrMessage()
}
