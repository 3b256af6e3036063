// Package client is the HTTP gateway to the remote planning service. It is
// the sole component that speaks the wire protocol; the booking wizard and
// the saved-trips manager depend on it through narrow interfaces.
//
// Errors are classified into the four domain sentinels: ErrNotFound (404),
// ErrValidation (400/422), ErrNetwork (no response at all) and
// ErrServiceFailure (a response that reports logical failure). Callers
// surface err.Error() to the user; nothing is retried automatically.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/srajal5/vacationplanner/internal/domain"
)

// TripRepository retrieves, lists, deletes, books and persists trips through
// the remote planning service. It holds no cached state: every view performs
// its own fetch by id, a deliberate consistency-over-chattiness trade-off.
type TripRepository struct {
	base string
	hc   *http.Client
}

// Option configures a TripRepository.
type Option func(*TripRepository)

// WithHTTPClient overrides the underlying *http.Client (tests, custom timeouts).
func WithHTTPClient(hc *http.Client) Option {
	return func(r *TripRepository) { r.hc = hc }
}

// NewTripRepository builds a repository for the service at baseURL,
// e.g. "http://localhost:8080".
func NewTripRepository(baseURL string, opts ...Option) *TripRepository {
	r := &TripRepository{
		base: strings.TrimRight(baseURL, "/"),
		hc:   &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// PlanTrip asks the service to generate a full trip plan from preferences.
// The service is solely responsible for populating transportation,
// accommodation, budget and itinerary; a 2xx response without a trip id is
// treated as a service failure.
func (r *TripRepository) PlanTrip(ctx context.Context, prefs domain.TripPreferences) (domain.Trip, error) {
	var trip domain.Trip
	if err := r.doJSON(ctx, http.MethodPost, "/api/trips/plan", prefs, &trip); err != nil {
		return domain.Trip{}, fmt.Errorf("client.TripRepository.PlanTrip: %w", err)
	}
	if trip.ID == "" {
		return domain.Trip{}, fmt.Errorf("client.TripRepository.PlanTrip: %w: planner returned no trip id", domain.ErrServiceFailure)
	}
	return trip, nil
}

// GetTrip fetches a single trip by id.
func (r *TripRepository) GetTrip(ctx context.Context, id string) (domain.Trip, error) {
	var trip domain.Trip
	if err := r.doJSON(ctx, http.MethodGet, "/api/trips/"+id, nil, &trip); err != nil {
		return domain.Trip{}, fmt.Errorf("client.TripRepository.GetTrip: %w", err)
	}
	return trip, nil
}

// ListTrips fetches all saved trips. An empty sequence is a valid success.
func (r *TripRepository) ListTrips(ctx context.Context) ([]domain.Trip, error) {
	var trips []domain.Trip
	if err := r.doJSON(ctx, http.MethodGet, "/api/trips", nil, &trips); err != nil {
		return nil, fmt.Errorf("client.TripRepository.ListTrips: %w", err)
	}
	if trips == nil {
		trips = []domain.Trip{}
	}
	return trips, nil
}

// SaveTrip marks a previously generated trip as persisted. Saving an
// already-saved trip succeeds; the operation is idempotent.
func (r *TripRepository) SaveTrip(ctx context.Context, id string) error {
	if err := r.doJSON(ctx, http.MethodPost, "/api/trips/"+id+"/save", nil, nil); err != nil {
		return fmt.Errorf("client.TripRepository.SaveTrip: %w", err)
	}
	return nil
}

// DeleteTrip removes a trip. The caller is responsible for dropping the id
// from any locally held listing once this returns nil.
func (r *TripRepository) DeleteTrip(ctx context.Context, id string) error {
	if err := r.doJSON(ctx, http.MethodDelete, "/api/trips/"+id, nil, nil); err != nil {
		return fmt.Errorf("client.TripRepository.DeleteTrip: %w", err)
	}
	return nil
}

// BookTrip submits a booking. A response with success=false is returned as
// ErrServiceFailure carrying the service's message, so the wizard can show
// it and stay on the payment step.
func (r *TripRepository) BookTrip(ctx context.Context, req domain.BookingRequest) (domain.BookingConfirmation, error) {
	var conf domain.BookingConfirmation
	if err := r.doJSON(ctx, http.MethodPost, "/api/booking/book", req, &conf); err != nil {
		return domain.BookingConfirmation{}, fmt.Errorf("client.TripRepository.BookTrip: %w", err)
	}
	if !conf.Success {
		msg := conf.Message
		if msg == "" {
			msg = "booking failed"
		}
		return conf, fmt.Errorf("client.TripRepository.BookTrip: %w: %s", domain.ErrServiceFailure, msg)
	}
	return conf, nil
}

// ExportTrip downloads the trip as a pdf or xlsx document and returns the raw
// payload. The client's only responsibility is handing the bytes to the
// surrounding environment; nothing about wizard or listing state depends on it.
func (r *TripRepository) ExportTrip(ctx context.Context, id string, format domain.ExportFormat) ([]byte, error) {
	// The service keeps the original route naming: "excel", not "xlsx".
	seg := "pdf"
	if format == domain.ExportXLSX {
		seg = "excel"
	}

	resp, err := r.do(ctx, http.MethodGet, "/api/export/"+seg+"/"+id, nil)
	if err != nil {
		return nil, fmt.Errorf("client.TripRepository.ExportTrip: %w", err)
	}
	defer resp.Body.Close()

	if err := classifyStatus(resp); err != nil {
		return nil, fmt.Errorf("client.TripRepository.ExportTrip: %w", err)
	}

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("client.TripRepository.ExportTrip: %w: %v", domain.ErrNetwork, err)
	}
	return payload, nil
}

// --- transport plumbing -----------------------------------------------------

// do issues one request. Any error here means no usable response was
// received, i.e. ErrNetwork territory.
func (r *TripRepository) do(ctx context.Context, method, path string, body any) (*http.Response, error) {
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}
		rd = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, r.base+path, rd)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrNetwork, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := r.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrNetwork, err)
	}
	return resp, nil
}

// doJSON issues a request, classifies the status and decodes a JSON body
// into out when out is non-nil.
func (r *TripRepository) doJSON(ctx context.Context, method, path string, body, out any) error {
	resp, err := r.do(ctx, method, path, body)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := classifyStatus(resp); err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: malformed response body: %v", domain.ErrServiceFailure, err)
	}
	return nil
}

// errorBody mirrors the service's error envelope: {"error":{"code","message"}}.
type errorBody struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// classifyStatus maps a non-2xx response to the error taxonomy, keeping the
// service's human-readable message when one is present.
func classifyStatus(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	msg := serverMessage(resp)
	switch resp.StatusCode {
	case http.StatusNotFound:
		if msg == "" {
			msg = "trip not found"
		}
		return fmt.Errorf("%w: %s", domain.ErrNotFound, msg)
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		if msg == "" {
			msg = "request rejected"
		}
		return fmt.Errorf("%w: %s", domain.ErrValidation, msg)
	default:
		if msg == "" {
			msg = resp.Status
		}
		return fmt.Errorf("%w: %s", domain.ErrServiceFailure, msg)
	}
}

// serverMessage extracts the message from an error envelope, or "" when the
// body is absent or not in the expected shape.
func serverMessage(resp *http.Response) string {
	b, err := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if err != nil {
		return ""
	}
	var eb errorBody
	if json.Unmarshal(b, &eb) != nil {
		return ""
	}
	return eb.Error.Message
}
