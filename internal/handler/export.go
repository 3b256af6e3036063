package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/srajal5/vacationplanner/internal/domain"
)

// exportTrip handles GET /api/export/{format}/{tripID}.
// The format segment accepts "pdf" and "excel"; the latter produces an xlsx
// workbook under its historical route name. The response body is the raw
// document with a Content-Disposition suggesting a download filename.
func (s *Server) exportTrip(w http.ResponseWriter, r *http.Request) {
	format, err := parseFormatSegment(chi.URLParam(r, "format"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "validation_error", unwrapMessage(err))
		return
	}

	id := chi.URLParam(r, "tripID")
	payload, err := s.exports.Export(r.Context(), id, format)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", format.ContentType())
	w.Header().Set("Content-Disposition", `attachment; filename="`+domain.ExportFilename(id, format)+`"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(payload)
}

// parseFormatSegment maps the route segment to an export format, translating
// the legacy "excel" segment to xlsx.
func parseFormatSegment(seg string) (domain.ExportFormat, error) {
	if seg == "excel" {
		return domain.ExportXLSX, nil
	}
	return domain.ParseExportFormat(seg)
}
