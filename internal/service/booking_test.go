package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srajal5/vacationplanner/internal/domain"
	"github.com/srajal5/vacationplanner/internal/repo"
	"github.com/srajal5/vacationplanner/internal/service"
)

type mockBookingRepo struct {
	createFn func(ctx context.Context, b repo.BookingRecord) (repo.BookingRecord, error)
}

func (m *mockBookingRepo) Create(ctx context.Context, b repo.BookingRecord) (repo.BookingRecord, error) {
	if m.createFn != nil {
		return m.createFn(ctx, b)
	}
	b.ID = "22222222-2222-2222-2222-222222222222"
	b.CreatedAt = time.Now()
	return b, nil
}

func validBookingRequest() domain.BookingRequest {
	return domain.BookingRequest{
		TripID:        "11111111-1111-1111-1111-111111111111",
		TravelerName:  "Ada Lovelace",
		TravelerEmail: "ada@example.com",
		TravelerPhone: "+1 555 5555",
	}
}

func TestBookingService_Book_Success(t *testing.T) {
	trips := &mockTripRepo{
		getByIDFn: func(ctx context.Context, id string) (domain.Trip, error) {
			return domain.Trip{ID: id, Destination: "Paris"}, nil
		},
	}
	var recorded repo.BookingRecord
	bookings := &mockBookingRepo{
		createFn: func(ctx context.Context, b repo.BookingRecord) (repo.BookingRecord, error) {
			recorded = b
			b.ID = "22222222-2222-2222-2222-222222222222"
			return b, nil
		},
	}
	s := service.NewBookingService(trips, bookings)

	conf, err := s.Book(context.Background(), validBookingRequest())
	require.NoError(t, err)

	assert.True(t, conf.Success)
	assert.Equal(t, "22222222-2222-2222-2222-222222222222", conf.BookingID)
	assert.Contains(t, conf.Message, "Paris")
	assert.Equal(t, "Ada Lovelace", recorded.TravelerName)
}

func TestBookingService_Book_UnknownTrip(t *testing.T) {
	trips := &mockTripRepo{
		getByIDFn: func(ctx context.Context, id string) (domain.Trip, error) {
			return domain.Trip{}, domain.ErrNotFound
		},
	}
	s := service.NewBookingService(trips, &mockBookingRepo{})

	_, err := s.Book(context.Background(), validBookingRequest())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestBookingService_Book_Validation(t *testing.T) {
	s := service.NewBookingService(&mockTripRepo{}, &mockBookingRepo{})
	ctx := context.Background()

	tests := []struct {
		name   string
		mutate func(*domain.BookingRequest)
	}{
		{"missing trip id", func(r *domain.BookingRequest) { r.TripID = "" }},
		{"missing name", func(r *domain.BookingRequest) { r.TravelerName = "   " }},
		{"missing email", func(r *domain.BookingRequest) { r.TravelerEmail = "" }},
		{"email without at sign", func(r *domain.BookingRequest) { r.TravelerEmail = "ada.example.com" }},
		{"missing phone", func(r *domain.BookingRequest) { r.TravelerPhone = "" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validBookingRequest()
			tt.mutate(&req)
			_, err := s.Book(ctx, req)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestBookingService_Book_TrimsTravelerFields(t *testing.T) {
	var recorded repo.BookingRecord
	bookings := &mockBookingRepo{
		createFn: func(ctx context.Context, b repo.BookingRecord) (repo.BookingRecord, error) {
			recorded = b
			return b, nil
		},
	}
	s := service.NewBookingService(&mockTripRepo{}, bookings)

	req := validBookingRequest()
	req.TravelerName = "  Ada Lovelace  "
	_, err := s.Book(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "Ada Lovelace", recorded.TravelerName)
}
