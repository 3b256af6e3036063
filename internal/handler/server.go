// Package handler implements the HTTP handlers for the vacation planner API.
// All handlers are methods on Server. Methods are split into domain-specific
// files (trip.go, booking.go, export.go, health.go) but all share the same
// Server struct so they can access its dependencies.
package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/srajal5/vacationplanner/internal/domain"
)

// TripPlanner defines the planning operations the trip handlers depend on.
// Defining the interface here (in the consumer package) follows the Go
// convention: "accept interfaces, return concrete types". It lets handler
// tests inject a mock without touching the database or service layer.
type TripPlanner interface {
	Plan(ctx context.Context, prefs domain.TripPreferences) (domain.Trip, error)
	GetByID(ctx context.Context, id string) (domain.Trip, error)
	ListSaved(ctx context.Context, p domain.PaginationParams) ([]domain.Trip, int64, error)
	Save(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}

// TripBooker defines the booking operation the booking handler depends on.
type TripBooker interface {
	Book(ctx context.Context, req domain.BookingRequest) (domain.BookingConfirmation, error)
}

// TripExporter defines the document rendering the export handler depends on.
type TripExporter interface {
	Export(ctx context.Context, id string, format domain.ExportFormat) ([]byte, error)
}

// Server holds the handlers for all API endpoints.
type Server struct {
	trips    TripPlanner
	bookings TripBooker
	exports  TripExporter
}

// NewServer constructs the Server with all its dependencies.
func NewServer(trips TripPlanner, bookings TripBooker, exports TripExporter) *Server {
	return &Server{trips: trips, bookings: bookings, exports: exports}
}

// Routes registers every endpoint on r. Middleware is wired by the caller,
// so tests can mount the routes bare.
func (s *Server) Routes(r chi.Router) {
	r.Get("/healthz", s.getHealth)

	r.Route("/api", func(r chi.Router) {
		r.Route("/trips", func(r chi.Router) {
			r.Post("/plan", s.planTrip)
			r.Get("/", s.listTrips)
			r.Get("/{tripID}", s.getTrip)
			r.Post("/{tripID}/save", s.saveTrip)
			r.Delete("/{tripID}", s.deleteTrip)
		})
		r.Post("/booking/book", s.bookTrip)
		// The export route keeps the historical segment naming: "excel"
		// produces an xlsx workbook.
		r.Get("/export/{format}/{tripID}", s.exportTrip)
		r.Get("/currencies", s.listCurrencies)
	})
}

// Router returns a routable handler with no middleware attached.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	s.Routes(r)
	return r
}
