package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/srajal5/vacationplanner/internal/domain"
	"github.com/srajal5/vacationplanner/internal/handler"
)

// mockPlanner implements handler.TripPlanner with overridable function fields.
type mockPlanner struct {
	planFn      func(ctx context.Context, prefs domain.TripPreferences) (domain.Trip, error)
	getByIDFn   func(ctx context.Context, id string) (domain.Trip, error)
	listSavedFn func(ctx context.Context, p domain.PaginationParams) ([]domain.Trip, int64, error)
	saveFn      func(ctx context.Context, id string) error
	deleteFn    func(ctx context.Context, id string) error
}

func (m *mockPlanner) Plan(ctx context.Context, prefs domain.TripPreferences) (domain.Trip, error) {
	return m.planFn(ctx, prefs)
}

func (m *mockPlanner) GetByID(ctx context.Context, id string) (domain.Trip, error) {
	return m.getByIDFn(ctx, id)
}

func (m *mockPlanner) ListSaved(ctx context.Context, p domain.PaginationParams) ([]domain.Trip, int64, error) {
	return m.listSavedFn(ctx, p)
}

func (m *mockPlanner) Save(ctx context.Context, id string) error   { return m.saveFn(ctx, id) }
func (m *mockPlanner) Delete(ctx context.Context, id string) error { return m.deleteFn(ctx, id) }

type mockBooker struct {
	bookFn func(ctx context.Context, req domain.BookingRequest) (domain.BookingConfirmation, error)
}

func (m *mockBooker) Book(ctx context.Context, req domain.BookingRequest) (domain.BookingConfirmation, error) {
	return m.bookFn(ctx, req)
}

type mockExporter struct {
	exportFn func(ctx context.Context, id string, format domain.ExportFormat) ([]byte, error)
}

func (m *mockExporter) Export(ctx context.Context, id string, format domain.ExportFormat) ([]byte, error) {
	return m.exportFn(ctx, id, format)
}

// doRequest runs one request against a Server built from the given mocks and
// returns the recorded response.
func doRequest(t *testing.T, s *handler.Server, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		rd = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)
	return rec
}

// decodeError parses the standard error envelope out of a response body.
func decodeError(t *testing.T, rec *httptest.ResponseRecorder) (code, message string) {
	t.Helper()
	var body struct {
		Error struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body.Error.Code, body.Error.Message
}

func sampleTrip(id string) domain.Trip {
	start := domain.NewDate(time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC))
	return domain.Trip{
		ID:          id,
		Destination: "Paris",
		StartDate:   start,
		EndDate:     domain.NewDate(start.AddDate(0, 0, 4)),
		GroupSize:   2,
		Currency:    "USD",
		BudgetBreakdown: domain.BudgetBreakdown{
			TransportationCost: 500, AccommodationCost: 800, ActivitiesCost: 200, TotalCost: 1500,
		},
	}
}
