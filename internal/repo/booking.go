package repo

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

// BookingRecord is one confirmed booking row. Bookings are append-only:
// the client flow never updates or lists them, so the repo stays minimal.
type BookingRecord struct {
	ID            string
	TripID        string
	TravelerName  string
	TravelerEmail string
	TravelerPhone string
	CreatedAt     time.Time
}

// BookingRepo persists confirmed bookings.
type BookingRepo interface {
	// Create inserts a booking and returns it with id and created_at set.
	Create(ctx context.Context, b BookingRecord) (BookingRecord, error)
}

type pgBookingRepo struct {
	db db
}

// NewBookingRepo constructs a BookingRepo backed by the provided db connection.
func NewBookingRepo(db db) BookingRepo {
	return &pgBookingRepo{db: db}
}

// Create inserts a new booking row.
func (r *pgBookingRepo) Create(ctx context.Context, b BookingRecord) (BookingRecord, error) {
	const q = `
		INSERT INTO bookings (trip_id, traveler_name, traveler_email, traveler_phone)
		VALUES (@trip_id, @traveler_name, @traveler_email, @traveler_phone)
		RETURNING id, trip_id, traveler_name, traveler_email, traveler_phone, created_at`

	args := pgx.NamedArgs{
		"trip_id":        b.TripID,
		"traveler_name":  b.TravelerName,
		"traveler_email": b.TravelerEmail,
		"traveler_phone": b.TravelerPhone,
	}

	var (
		out    BookingRecord
		id     pgtype.UUID
		tripID pgtype.UUID
	)
	err := r.db.QueryRow(ctx, q, args).Scan(&id, &tripID, &out.TravelerName,
		&out.TravelerEmail, &out.TravelerPhone, &out.CreatedAt)
	if err != nil {
		return BookingRecord{}, fmt.Errorf("repo.BookingRepo.Create: %w", err)
	}
	out.ID = uuid.UUID(id.Bytes).String()
	out.TripID = uuid.UUID(tripID.Bytes).String()
	return out, nil
}
