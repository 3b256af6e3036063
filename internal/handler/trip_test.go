package handler_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srajal5/vacationplanner/internal/domain"
	"github.com/srajal5/vacationplanner/internal/handler"
)

func TestPlanTrip_ReturnsGeneratedPlan(t *testing.T) {
	planner := &mockPlanner{
		planFn: func(ctx context.Context, prefs domain.TripPreferences) (domain.Trip, error) {
			assert.Equal(t, 2000.0, prefs.Budget)
			return sampleTrip("trip-1"), nil
		},
	}
	s := handler.NewServer(planner, nil, nil)

	rec := doRequest(t, s, http.MethodPost, "/api/trips/plan", map[string]any{
		"budget": 2000, "currency": "USD", "groupSize": 2,
	})

	require.Equal(t, http.StatusOK, rec.Code)
	var trip domain.Trip
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &trip))
	assert.Equal(t, "trip-1", trip.ID)
	assert.Equal(t, "Paris", trip.Destination)
	assert.Equal(t, "2026-09-10", trip.StartDate.Format("2006-01-02"))
}

func TestPlanTrip_MalformedBody_Returns400(t *testing.T) {
	s := handler.NewServer(&mockPlanner{}, nil, nil)

	req := doRequest(t, s, http.MethodPost, "/api/trips/plan", nil)
	require.Equal(t, http.StatusBadRequest, req.Code)
	code, _ := decodeError(t, req)
	assert.Equal(t, "validation_error", code)
}

func TestPlanTrip_ValidationError_Returns422WithMessage(t *testing.T) {
	planner := &mockPlanner{
		planFn: func(ctx context.Context, prefs domain.TripPreferences) (domain.Trip, error) {
			return domain.Trip{}, fmt.Errorf("service.PlannerService.Plan: %w: budget must not be negative", domain.ErrValidation)
		},
	}
	s := handler.NewServer(planner, nil, nil)

	rec := doRequest(t, s, http.MethodPost, "/api/trips/plan", map[string]any{"budget": -1})

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	code, msg := decodeError(t, rec)
	assert.Equal(t, "validation_error", code)
	// The service prefix is stripped; only the human-readable part remains.
	assert.Equal(t, "budget must not be negative", msg)
}

func TestGetTrip_NotFound_Returns404(t *testing.T) {
	planner := &mockPlanner{
		getByIDFn: func(ctx context.Context, id string) (domain.Trip, error) {
			return domain.Trip{}, domain.ErrNotFound
		},
	}
	s := handler.NewServer(planner, nil, nil)

	rec := doRequest(t, s, http.MethodGet, "/api/trips/missing", nil)

	require.Equal(t, http.StatusNotFound, rec.Code)
	code, _ := decodeError(t, rec)
	assert.Equal(t, "not_found", code)
}

func TestListTrips_ReturnsArrayAndTotalHeader(t *testing.T) {
	planner := &mockPlanner{
		listSavedFn: func(ctx context.Context, p domain.PaginationParams) ([]domain.Trip, int64, error) {
			assert.Equal(t, 2, p.Page)
			assert.Equal(t, 10, p.Limit)
			return []domain.Trip{sampleTrip("trip-1")}, 11, nil
		},
	}
	s := handler.NewServer(planner, nil, nil)

	rec := doRequest(t, s, http.MethodGet, "/api/trips?page=2&limit=10", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "11", rec.Header().Get("X-Total-Count"))
	var trips []domain.Trip
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &trips))
	require.Len(t, trips, 1)
}

func TestListTrips_Empty_ReturnsEmptyArray(t *testing.T) {
	planner := &mockPlanner{
		listSavedFn: func(ctx context.Context, p domain.PaginationParams) ([]domain.Trip, int64, error) {
			return []domain.Trip{}, 0, nil
		},
	}
	s := handler.NewServer(planner, nil, nil)

	rec := doRequest(t, s, http.MethodGet, "/api/trips", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestSaveTrip_Returns204(t *testing.T) {
	var savedID string
	planner := &mockPlanner{
		saveFn: func(ctx context.Context, id string) error {
			savedID = id
			return nil
		},
	}
	s := handler.NewServer(planner, nil, nil)

	rec := doRequest(t, s, http.MethodPost, "/api/trips/trip-1/save", nil)

	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "trip-1", savedID)
}

func TestDeleteTrip_NotFound_Returns404(t *testing.T) {
	planner := &mockPlanner{
		deleteFn: func(ctx context.Context, id string) error {
			return fmt.Errorf("repo.TripRepo.Delete: %w", domain.ErrNotFound)
		},
	}
	s := handler.NewServer(planner, nil, nil)

	rec := doRequest(t, s, http.MethodDelete, "/api/trips/missing", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteTrip_Returns204(t *testing.T) {
	planner := &mockPlanner{
		deleteFn: func(ctx context.Context, id string) error { return nil },
	}
	s := handler.NewServer(planner, nil, nil)

	rec := doRequest(t, s, http.MethodDelete, "/api/trips/trip-1", nil)
	require.Equal(t, http.StatusNoContent, rec.Code)
}

func TestListCurrencies_ReturnsSupportedSet(t *testing.T) {
	s := handler.NewServer(nil, nil, nil)

	rec := doRequest(t, s, http.MethodGet, "/api/currencies", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var currencies []domain.Currency
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &currencies))
	require.Len(t, currencies, len(domain.Currencies))
	assert.Equal(t, "USD", currencies[0].Code)
}
