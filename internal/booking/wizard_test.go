package booking_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srajal5/vacationplanner/internal/async"
	"github.com/srajal5/vacationplanner/internal/booking"
	"github.com/srajal5/vacationplanner/internal/domain"
)

// mockBooker is a hand-written test double for booking.Booker.
type mockBooker struct {
	book func(ctx context.Context, req domain.BookingRequest) (domain.BookingConfirmation, error)
}

func (m *mockBooker) BookTrip(ctx context.Context, req domain.BookingRequest) (domain.BookingConfirmation, error) {
	return m.book(ctx, req)
}

// compile-time check: mockBooker must satisfy booking.Booker.
var _ booking.Booker = (*mockBooker)(nil)

func bookableTrip() domain.Trip {
	start := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	return domain.Trip{
		ID:          "t1",
		Destination: "Paris",
		StartDate:   domain.NewDate(start),
		EndDate:     domain.NewDate(start.AddDate(0, 0, 4)),
		GroupSize:   2,
		Currency:    "USD",
		BudgetBreakdown: domain.BudgetBreakdown{
			TransportationCost: 500,
			AccommodationCost:  800,
			ActivitiesCost:     200,
			TotalCost:          1500,
		},
	}
}

func acceptingBooker() *mockBooker {
	return &mockBooker{
		book: func(_ context.Context, _ domain.BookingRequest) (domain.BookingConfirmation, error) {
			return domain.BookingConfirmation{Success: true, BookingID: "b1"}, nil
		},
	}
}

func travelerFixture() booking.Traveler {
	return booking.Traveler{
		Name:       "Ada Lovelace",
		Email:      "ada@example.com",
		Phone:      "+1 555 5555",
		CardNumber: "4111 1111 1111 1111",
	}
}

// ---- step transitions ------------------------------------------------------

func TestWizard_StartsAtSummary(t *testing.T) {
	w := booking.NewWizard(bookableTrip(), acceptingBooker())
	assert.Equal(t, booking.StepSummary, w.Step())
}

func TestWizard_NextWalksForwardAndStopsAtPayment(t *testing.T) {
	w := booking.NewWizard(bookableTrip(), acceptingBooker())

	w.Next()
	assert.Equal(t, booking.StepTraveler, w.Step())
	w.Next()
	assert.Equal(t, booking.StepPayment, w.Step())

	// Next from Payment is a no-op; only a successful submit moves forward.
	w.Next()
	assert.Equal(t, booking.StepPayment, w.Step())
}

func TestWizard_BackIsNoOpAtSummary(t *testing.T) {
	w := booking.NewWizard(bookableTrip(), acceptingBooker())

	w.Back()
	assert.Equal(t, booking.StepSummary, w.Step())
}

func TestWizard_BackRegressesOneStep(t *testing.T) {
	w := booking.NewWizard(bookableTrip(), acceptingBooker())

	w.Next()
	w.Next()
	w.Back()
	assert.Equal(t, booking.StepTraveler, w.Step())
}

func TestWizard_ConfirmedIsTerminal(t *testing.T) {
	w := booking.NewWizard(bookableTrip(), acceptingBooker())
	w.SetTraveler(travelerFixture())
	w.Next()
	w.Next()
	require.NoError(t, w.Submit(context.Background()))
	require.Equal(t, booking.StepConfirmed, w.Step())

	// No regression and no further advance after confirmation.
	w.Back()
	assert.Equal(t, booking.StepConfirmed, w.Step())
	w.Next()
	assert.Equal(t, booking.StepConfirmed, w.Step())
}

// ---- submit ----------------------------------------------------------------

func TestWizard_SubmitOnlyFromPayment(t *testing.T) {
	w := booking.NewWizard(bookableTrip(), acceptingBooker())

	assert.ErrorIs(t, w.Submit(context.Background()), booking.ErrNotAtPayment)
	w.Next() // Traveler
	assert.ErrorIs(t, w.Submit(context.Background()), booking.ErrNotAtPayment)
	assert.Equal(t, booking.StepTraveler, w.Step())
}

func TestWizard_SubmitSuccess_Confirms(t *testing.T) {
	var sent domain.BookingRequest
	b := &mockBooker{
		book: func(_ context.Context, req domain.BookingRequest) (domain.BookingConfirmation, error) {
			sent = req
			return domain.BookingConfirmation{Success: true, BookingID: "b1"}, nil
		},
	}
	w := booking.NewWizard(bookableTrip(), b)
	w.SetTraveler(travelerFixture())
	w.Next()
	w.Next()

	require.NoError(t, w.Submit(context.Background()))

	assert.Equal(t, booking.StepConfirmed, w.Step())
	assert.Equal(t, async.StateReady, w.SubmissionState())

	conf, ok := w.Confirmation()
	require.True(t, ok)
	assert.Equal(t, "b1", conf.BookingID)

	// The request carries traveler contact fields and the trip id —
	// and nothing about the card.
	assert.Equal(t, "t1", sent.TripID)
	assert.Equal(t, "Ada Lovelace", sent.TravelerName)
	assert.Equal(t, "ada@example.com", sent.TravelerEmail)
	assert.Equal(t, "+1 555 5555", sent.TravelerPhone)
}

func TestWizard_SubmitReportedFailure_StaysOnPayment(t *testing.T) {
	b := &mockBooker{
		book: func(_ context.Context, _ domain.BookingRequest) (domain.BookingConfirmation, error) {
			return domain.BookingConfirmation{},
				fmt.Errorf("client.TripRepository.BookTrip: %w: card declined", domain.ErrServiceFailure)
		},
	}
	w := booking.NewWizard(bookableTrip(), b)
	before := travelerFixture()
	w.SetTraveler(before)
	w.Next()
	w.Next()

	err := w.Submit(context.Background())

	require.ErrorIs(t, err, domain.ErrServiceFailure)
	assert.Equal(t, booking.StepPayment, w.Step())
	assert.Equal(t, async.StateFailed, w.SubmissionState())
	assert.Equal(t, "card declined", w.SubmissionError())
	// Traveler input survives the failure byte for byte.
	assert.Equal(t, before, w.Traveler())
}

func TestWizard_SubmitTransportFailure_GenericMessage(t *testing.T) {
	b := &mockBooker{
		book: func(_ context.Context, _ domain.BookingRequest) (domain.BookingConfirmation, error) {
			return domain.BookingConfirmation{},
				fmt.Errorf("client.TripRepository.BookTrip: %w: dial tcp: connection refused", domain.ErrNetwork)
		},
	}
	w := booking.NewWizard(bookableTrip(), b)
	w.SetTraveler(travelerFixture())
	w.Next()
	w.Next()

	err := w.Submit(context.Background())

	require.ErrorIs(t, err, domain.ErrNetwork)
	assert.Equal(t, booking.StepPayment, w.Step())
	assert.Equal(t, "Booking failed. Please try again.", w.SubmissionError())
}

func TestWizard_SubmitRetryAfterFailureSucceeds(t *testing.T) {
	attempts := 0
	b := &mockBooker{
		book: func(_ context.Context, _ domain.BookingRequest) (domain.BookingConfirmation, error) {
			attempts++
			if attempts == 1 {
				return domain.BookingConfirmation{},
					fmt.Errorf("%w: card declined", domain.ErrServiceFailure)
			}
			return domain.BookingConfirmation{Success: true}, nil
		},
	}
	w := booking.NewWizard(bookableTrip(), b)
	w.SetTraveler(travelerFixture())
	w.Next()
	w.Next()

	require.Error(t, w.Submit(context.Background()))
	require.NoError(t, w.Submit(context.Background()))
	assert.Equal(t, booking.StepConfirmed, w.Step())
}

func TestWizard_ReentrantSubmitRejected(t *testing.T) {
	entered := make(chan struct{})
	release := make(chan struct{})
	b := &mockBooker{
		book: func(_ context.Context, _ domain.BookingRequest) (domain.BookingConfirmation, error) {
			close(entered)
			<-release
			return domain.BookingConfirmation{Success: true}, nil
		},
	}
	w := booking.NewWizard(bookableTrip(), b)
	w.SetTraveler(travelerFixture())
	w.Next()
	w.Next()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_ = w.Submit(context.Background())
	}()

	<-entered
	// Second click while the first submission is in flight: no double-booking.
	assert.ErrorIs(t, w.Submit(context.Background()), booking.ErrSubmissionInFlight)

	close(release)
	wg.Wait()
	assert.Equal(t, booking.StepConfirmed, w.Step())
}

// ---- step labels -----------------------------------------------------------

func TestStep_Labels(t *testing.T) {
	assert.Equal(t, "Trip Summary", booking.StepSummary.String())
	assert.Equal(t, "Traveler Details", booking.StepTraveler.String())
	assert.Equal(t, "Payment", booking.StepPayment.String())
	assert.Equal(t, "Confirmation", booking.StepConfirmed.String())
}
