// Package booking implements the guided booking flow as a finite state
// machine over four ordered steps. The wizard consumes an already-loaded
// trip, collects traveler and payment input, and submits the booking on the
// payment step; only a confirmed submission moves it to the terminal step.
package booking

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/srajal5/vacationplanner/internal/async"
	"github.com/srajal5/vacationplanner/internal/domain"
)

// Step identifies a wizard step. Steps are strictly ordered; selection is by
// exhaustive switching on this type, never by raw index arithmetic.
type Step int

const (
	StepSummary Step = iota
	StepTraveler
	StepPayment
	StepConfirmed
)

// String returns the user-facing step label.
func (s Step) String() string {
	switch s {
	case StepSummary:
		return "Trip Summary"
	case StepTraveler:
		return "Traveler Details"
	case StepPayment:
		return "Payment"
	case StepConfirmed:
		return "Confirmation"
	default:
		return fmt.Sprintf("Step(%d)", int(s))
	}
}

// Traveler holds the collected form input. Fields are free-form; validation
// is the service's job at submission time. CardNumber is collected for the
// payment step's display but is never placed in the booking request — the
// original flow works the same way and this keeps that contract.
type Traveler struct {
	Name       string
	Email      string
	Phone      string
	CardNumber string
}

// Booker is the single remote operation the wizard performs.
type Booker interface {
	BookTrip(ctx context.Context, req domain.BookingRequest) (domain.BookingConfirmation, error)
}

// ErrNotAtPayment is returned by Submit when the wizard is on any step other
// than Payment.
var ErrNotAtPayment = errors.New("booking: submit is only valid on the payment step")

// ErrSubmissionInFlight is returned by Submit while a previous submission has
// not settled, preventing double-booking.
var ErrSubmissionInFlight = errors.New("booking: submission already in flight")

// Wizard drives one booking attempt for one trip. It is created when the
// booking view mounts for a loaded trip and discarded when the user
// navigates away; nothing survives a restart.
//
// Precondition: trip must come from a Ready fetch. The hosting view shows
// the loading/error state instead of constructing a wizard otherwise.
type Wizard struct {
	mu         sync.Mutex
	trip       domain.Trip // read-only
	booker     Booker
	step       Step
	traveler   Traveler
	submission async.Resource[domain.BookingConfirmation]
}

// NewWizard builds a wizard at the summary step.
func NewWizard(trip domain.Trip, b Booker) *Wizard {
	return &Wizard{trip: trip, booker: b}
}

// Trip returns the trip being booked.
func (w *Wizard) Trip() domain.Trip {
	return w.trip
}

// Step returns the current step.
func (w *Wizard) Step() Step {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.step
}

// Next advances from Summary or Traveler. It is a no-op on Payment (the only
// way forward from there is a successful Submit) and on Confirmed.
func (w *Wizard) Next() {
	w.mu.Lock()
	defer w.mu.Unlock()
	switch w.step {
	case StepSummary:
		w.step = StepTraveler
	case StepTraveler:
		w.step = StepPayment
	case StepPayment, StepConfirmed:
		// no-op
	}
}

// Back regresses one step. It is a no-op on Summary and on Confirmed —
// a confirmed booking never regresses.
func (w *Wizard) Back() {
	w.mu.Lock()
	defer w.mu.Unlock()
	switch w.step {
	case StepTraveler:
		w.step = StepSummary
	case StepPayment:
		w.step = StepTraveler
	case StepSummary, StepConfirmed:
		// no-op
	}
}

// SetTraveler replaces the collected form input.
func (w *Wizard) SetTraveler(t Traveler) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.traveler = t
}

// Traveler returns the collected form input.
func (w *Wizard) Traveler() Traveler {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.traveler
}

// SubmissionState returns the lifecycle state of the booking submission.
func (w *Wizard) SubmissionState() async.State {
	return w.submission.State()
}

// SubmissionError returns the failure message of the last submission, or "".
func (w *Wizard) SubmissionError() string {
	return w.submission.ErrMessage()
}

// Confirmation returns the booking confirmation once the wizard is Confirmed.
func (w *Wizard) Confirmation() (domain.BookingConfirmation, bool) {
	return w.submission.Value()
}

// Submit sends the booking request. Valid only on the payment step and only
// while no submission is in flight. On success the wizard advances to
// Confirmed; on any failure — reported by the service or transport-level —
// it stays on Payment with the traveler input untouched so the user can
// retry without re-entering anything, and the failure message is available
// from SubmissionError.
func (w *Wizard) Submit(ctx context.Context) error {
	w.mu.Lock()
	if w.step != StepPayment {
		w.mu.Unlock()
		return ErrNotAtPayment
	}
	if w.submission.Loading() {
		w.mu.Unlock()
		return ErrSubmissionInFlight
	}
	tok := w.submission.Start()
	req := domain.BookingRequest{
		TripID:        w.trip.ID,
		TravelerName:  w.traveler.Name,
		TravelerEmail: w.traveler.Email,
		TravelerPhone: w.traveler.Phone,
		// Card fields intentionally omitted.
	}
	w.mu.Unlock()

	conf, err := w.booker.BookTrip(ctx, req)

	w.mu.Lock()
	defer w.mu.Unlock()
	if err != nil {
		//nolint:errcheck // a superseded submission is dropped by the token guard
		w.submission.Reject(tok, failureMessage(err))
		return err
	}
	if rerr := w.submission.Resolve(tok, conf); rerr != nil {
		// Superseded while in flight; do not advance on a stale success.
		return rerr
	}
	w.step = StepConfirmed
	return nil
}

// failureMessage turns a booking error into the message shown on the payment
// step. Service-reported failures keep the service's wording; transport
// failures collapse to a generic retry prompt.
func failureMessage(err error) string {
	if errors.Is(err, domain.ErrNetwork) {
		return "Booking failed. Please try again."
	}
	return trimmedMessage(err)
}

// trimmedMessage strips the call-site prefixes and sentinel names from a
// wrapped error, leaving the part worth showing a user.
// e.g. "client.TripRepository.BookTrip: service failure: card declined"
// → "card declined".
func trimmedMessage(err error) string {
	msg := err.Error()
	for _, sep := range []string{
		domain.ErrServiceFailure.Error() + ": ",
		domain.ErrValidation.Error() + ": ",
		domain.ErrNotFound.Error() + ": ",
	} {
		if i := strings.LastIndex(msg, sep); i >= 0 {
			return msg[i+len(sep):]
		}
	}
	return msg
}
