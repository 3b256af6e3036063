package handler

import (
	"encoding/json"
	"net/http"

	"github.com/srajal5/vacationplanner/internal/domain"
)

// bookTrip handles POST /api/booking/book.
// A successful booking answers 200 with the confirmation envelope
// {"success":true,"message":...,"bookingId":...}. Validation failures and
// unknown trips use the standard error envelope.
func (s *Server) bookTrip(w http.ResponseWriter, r *http.Request) {
	var req domain.BookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "validation_error", "malformed request body")
		return
	}

	conf, err := s.bookings.Book(r.Context(), req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, conf)
}
