package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/srajal5/vacationplanner/internal/domain"
)

// planTrip handles POST /api/trips/plan.
// It generates a full trip plan from the preferences in the request body and
// returns it with HTTP 200. Planner validation failures come back as 422.
func (s *Server) planTrip(w http.ResponseWriter, r *http.Request) {
	var prefs domain.TripPreferences
	if err := json.NewDecoder(r.Body).Decode(&prefs); err != nil {
		writeError(w, http.StatusBadRequest, "validation_error", "malformed request body")
		return
	}

	trip, err := s.trips.Plan(r.Context(), prefs)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, trip)
}

// getTrip handles GET /api/trips/{tripID}.
func (s *Server) getTrip(w http.ResponseWriter, r *http.Request) {
	trip, err := s.trips.GetByID(r.Context(), chi.URLParam(r, "tripID"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, trip)
}

// listTrips handles GET /api/trips.
// It returns the saved trips as a bare JSON array, newest first. The total
// saved count travels in the X-Total-Count header so the body shape stays
// what clients already consume.
func (s *Server) listTrips(w http.ResponseWriter, r *http.Request) {
	trips, total, err := s.trips.ListSaved(r.Context(), paginationFromQuery(r))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	w.Header().Set("X-Total-Count", strconv.FormatInt(total, 10))
	writeJSON(w, http.StatusOK, trips)
}

// saveTrip handles POST /api/trips/{tripID}/save. Idempotent.
func (s *Server) saveTrip(w http.ResponseWriter, r *http.Request) {
	if err := s.trips.Save(r.Context(), chi.URLParam(r, "tripID")); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// deleteTrip handles DELETE /api/trips/{tripID}.
func (s *Server) deleteTrip(w http.ResponseWriter, r *http.Request) {
	if err := s.trips.Delete(r.Context(), chi.URLParam(r, "tripID")); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// listCurrencies handles GET /api/currencies, serving the fixed supported set.
func (s *Server) listCurrencies(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, domain.Currencies)
}

// paginationFromQuery reads optional ?page= and ?limit= values. Anything
// unparsable is treated as absent.
func paginationFromQuery(r *http.Request) domain.PaginationParams {
	var page, limit *int
	if v, err := strconv.Atoi(r.URL.Query().Get("page")); err == nil {
		page = &v
	}
	if v, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil {
		limit = &v
	}
	return domain.NewPaginationParams(page, limit)
}
