package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/srajal5/vacationplanner/internal/domain"
	"github.com/srajal5/vacationplanner/internal/repo"
)

// BookingService confirms bookings for planned trips. Payment processing is
// out of scope: the request carries traveler contact details only, and a
// booking that passes validation always succeeds.
type BookingService struct {
	trips    repo.TripRepo
	bookings repo.BookingRepo
}

// NewBookingService constructs a BookingService.
func NewBookingService(trips repo.TripRepo, bookings repo.BookingRepo) *BookingService {
	return &BookingService{trips: trips, bookings: bookings}
}

// Book validates the traveler details, checks the trip exists, and records
// the booking. Returns domain.ErrNotFound for unknown trips and
// domain.ErrValidation for incomplete traveler details.
func (s *BookingService) Book(ctx context.Context, req domain.BookingRequest) (domain.BookingConfirmation, error) {
	if err := validateBooking(req); err != nil {
		return domain.BookingConfirmation{}, fmt.Errorf("service.BookingService.Book: %w", err)
	}

	trip, err := s.trips.GetByID(ctx, req.TripID)
	if err != nil {
		return domain.BookingConfirmation{}, fmt.Errorf("service.BookingService.Book: %w", err)
	}

	record, err := s.bookings.Create(ctx, repo.BookingRecord{
		TripID:        trip.ID,
		TravelerName:  strings.TrimSpace(req.TravelerName),
		TravelerEmail: strings.TrimSpace(req.TravelerEmail),
		TravelerPhone: strings.TrimSpace(req.TravelerPhone),
	})
	if err != nil {
		return domain.BookingConfirmation{}, fmt.Errorf("service.BookingService.Book: %w", err)
	}

	return domain.BookingConfirmation{
		Success:   true,
		Message:   fmt.Sprintf("Your trip to %s is booked. A confirmation email is on its way.", trip.Destination),
		BookingID: record.ID,
	}, nil
}

func validateBooking(req domain.BookingRequest) error {
	if strings.TrimSpace(req.TripID) == "" {
		return fmt.Errorf("%w: trip id is required", domain.ErrValidation)
	}
	if strings.TrimSpace(req.TravelerName) == "" {
		return fmt.Errorf("%w: traveler name is required", domain.ErrValidation)
	}
	if email := strings.TrimSpace(req.TravelerEmail); email == "" || !strings.Contains(email, "@") {
		return fmt.Errorf("%w: a valid traveler email is required", domain.ErrValidation)
	}
	if strings.TrimSpace(req.TravelerPhone) == "" {
		return fmt.Errorf("%w: traveler phone is required", domain.ErrValidation)
	}
	return nil
}
