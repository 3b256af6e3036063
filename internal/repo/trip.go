// Package repo contains all database access for the planner API.
// Each resource has its own file with an interface and a Postgres
// implementation. No business logic lives here — only SQL and type mapping.
package repo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/srajal5/vacationplanner/internal/domain"
)

// db is the minimal interface satisfied by *pgxpool.Pool, pgx.Conn, and pgx.Tx.
// Accepting this interface instead of *pgxpool.Pool directly allows
// integration tests to pass a transaction that is rolled back after each
// test, giving free per-test isolation without any manual cleanup.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// TripRepo defines the persistence operations for trip plans.
// The service layer depends on this interface, not the Postgres
// implementation, which allows the services to be unit-tested with a mock.
type TripRepo interface {
	// Create inserts a freshly planned trip (saved=false) and returns the
	// persisted record with DB-generated id and created_at populated.
	Create(ctx context.Context, trip domain.Trip) (domain.Trip, error)

	// GetByID retrieves a single trip, saved or not.
	// Returns domain.ErrNotFound if no trip with that id exists.
	GetByID(ctx context.Context, id string) (domain.Trip, error)

	// ListSaved returns saved trips ordered by created_at descending,
	// plus the total saved count for pagination.
	ListSaved(ctx context.Context, p domain.PaginationParams) ([]domain.Trip, int64, error)

	// MarkSaved flips the saved flag to true. Saving an already-saved trip
	// is a no-op success. Returns domain.ErrNotFound for unknown ids.
	MarkSaved(ctx context.Context, id string) error

	// Delete removes a trip. Returns domain.ErrNotFound if it does not exist.
	Delete(ctx context.Context, id string) error
}

// pgTripRepo is the Postgres implementation of TripRepo.
type pgTripRepo struct {
	db db
}

// NewTripRepo constructs a TripRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback
// isolation.
func NewTripRepo(db db) TripRepo {
	return &pgTripRepo{db: db}
}

const tripColumns = `id, destination, start_date, end_date, group_size, theme,
	currency, starting_point, transportation, accommodation, budget,
	itinerary, saved, created_at`

// Create inserts a new trip row and returns the full persisted record.
func (r *pgTripRepo) Create(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	const q = `
		INSERT INTO trips (destination, start_date, end_date, group_size, theme,
			currency, starting_point, transportation, accommodation, budget, itinerary)
		VALUES (@destination, @start_date, @end_date, @group_size, @theme,
			@currency, @starting_point, @transportation, @accommodation, @budget, @itinerary)
		RETURNING ` + tripColumns

	transportation, err := marshalOptional(trip.Transportation)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.Create: encode transportation: %w", err)
	}
	accommodation, err := marshalOptional(trip.Accommodation)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.Create: encode accommodation: %w", err)
	}
	budget, err := json.Marshal(trip.BudgetBreakdown)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.Create: encode budget: %w", err)
	}
	itinerary, err := marshalOptional(trip.DailyItineraries)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.Create: encode itinerary: %w", err)
	}

	args := pgx.NamedArgs{
		"destination":    trip.Destination,
		"start_date":     trip.StartDate.Time,
		"end_date":       trip.EndDate.Time,
		"group_size":     trip.GroupSize,
		"theme":          trip.Theme,
		"currency":       trip.Currency,
		"starting_point": trip.StartingPoint,
		"transportation": transportation,
		"accommodation":  accommodation,
		"budget":         budget,
		"itinerary":      itinerary,
	}

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanTrip(row)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.Create: %w", err)
	}
	return result, nil
}

// GetByID retrieves a trip by primary key.
func (r *pgTripRepo) GetByID(ctx context.Context, id string) (domain.Trip, error) {
	const q = `SELECT ` + tripColumns + ` FROM trips WHERE id = @id`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id})
	result, err := scanTrip(row)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.GetByID: %w", err)
	}
	return result, nil
}

// ListSaved returns one page of saved trips, newest first, plus the total count.
func (r *pgTripRepo) ListSaved(ctx context.Context, p domain.PaginationParams) ([]domain.Trip, int64, error) {
	const q = `
		SELECT ` + tripColumns + `
		FROM trips
		WHERE saved
		ORDER BY created_at DESC
		LIMIT @limit OFFSET @offset`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"limit": p.Limit, "offset": p.Offset()})
	if err != nil {
		return nil, 0, fmt.Errorf("repo.TripRepo.ListSaved: %w", err)
	}
	defer rows.Close()

	trips := []domain.Trip{}
	for rows.Next() {
		t, err := scanTrip(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("repo.TripRepo.ListSaved: scan: %w", err)
		}
		trips = append(trips, t)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("repo.TripRepo.ListSaved: rows: %w", err)
	}

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT count(*) FROM trips WHERE saved`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("repo.TripRepo.ListSaved: count: %w", err)
	}

	return trips, total, nil
}

// MarkSaved sets saved=true. Repeating the call on a saved trip still
// matches the row, so the operation stays idempotent.
func (r *pgTripRepo) MarkSaved(ctx context.Context, id string) error {
	const q = `UPDATE trips SET saved = TRUE WHERE id = @id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": id})
	if err != nil {
		return fmt.Errorf("repo.TripRepo.MarkSaved: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.TripRepo.MarkSaved: %w", domain.ErrNotFound)
	}
	return nil
}

// Delete removes a trip by primary key.
func (r *pgTripRepo) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM trips WHERE id = @id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": id})
	if err != nil {
		return fmt.Errorf("repo.TripRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.TripRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

// scanner is satisfied by both pgx.Row and pgx.Rows, allowing scanTrip to be
// reused for both QueryRow and Query calls.
type scanner interface {
	Scan(dest ...any) error
}

// scanTrip maps a single database row into a domain.Trip, decoding the
// jsonb plan parts.
func scanTrip(s scanner) (domain.Trip, error) {
	var (
		t              domain.Trip
		id             pgtype.UUID
		startDate      pgtype.Date
		endDate        pgtype.Date
		transportation []byte
		accommodation  []byte
		budget         []byte
		itinerary      []byte
	)

	err := s.Scan(&id, &t.Destination, &startDate, &endDate, &t.GroupSize,
		&t.Theme, &t.Currency, &t.StartingPoint, &transportation,
		&accommodation, &budget, &itinerary, &t.Saved, &t.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Trip{}, domain.ErrNotFound
		}
		return domain.Trip{}, err
	}

	t.ID = uuid.UUID(id.Bytes).String()
	t.StartDate = domain.NewDate(startDate.Time)
	t.EndDate = domain.NewDate(endDate.Time)

	if err := unmarshalOptional(transportation, &t.Transportation); err != nil {
		return domain.Trip{}, fmt.Errorf("decode transportation: %w", err)
	}
	if err := unmarshalOptional(accommodation, &t.Accommodation); err != nil {
		return domain.Trip{}, fmt.Errorf("decode accommodation: %w", err)
	}
	if err := json.Unmarshal(budget, &t.BudgetBreakdown); err != nil {
		return domain.Trip{}, fmt.Errorf("decode budget: %w", err)
	}
	if err := unmarshalOptional(itinerary, &t.DailyItineraries); err != nil {
		return domain.Trip{}, fmt.Errorf("decode itinerary: %w", err)
	}

	return t, nil
}

// marshalOptional encodes v as JSON, mapping nil pointers/slices to SQL NULL.
func marshalOptional(v any) ([]byte, error) {
	switch x := v.(type) {
	case *domain.Transportation:
		if x == nil {
			return nil, nil
		}
	case *domain.Accommodation:
		if x == nil {
			return nil, nil
		}
	case []domain.DailyItinerary:
		if len(x) == 0 {
			return nil, nil
		}
	}
	return json.Marshal(v)
}

// unmarshalOptional decodes a jsonb column into out, leaving out untouched
// for NULL columns.
func unmarshalOptional(b []byte, out any) error {
	if len(b) == 0 {
		return nil
	}
	return json.Unmarshal(b, out)
}
