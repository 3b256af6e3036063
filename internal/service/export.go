package service

import (
	"bytes"
	"context"
	"fmt"

	"github.com/go-pdf/fpdf"
	"github.com/xuri/excelize/v2"

	"github.com/srajal5/vacationplanner/internal/domain"
	"github.com/srajal5/vacationplanner/internal/repo"
)

// ExportService renders a trip plan as a downloadable document.
type ExportService struct {
	trips repo.TripRepo
}

// NewExportService constructs an ExportService.
func NewExportService(trips repo.TripRepo) *ExportService {
	return &ExportService{trips: trips}
}

// Export looks up the trip and renders it in the requested format.
// Returns domain.ErrNotFound for unknown trips.
func (s *ExportService) Export(ctx context.Context, id string, format domain.ExportFormat) ([]byte, error) {
	trip, err := s.trips.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service.ExportService.Export: %w", err)
	}

	var payload []byte
	switch format {
	case domain.ExportPDF:
		payload, err = renderPDF(trip)
	case domain.ExportXLSX:
		payload, err = renderXLSX(trip)
	default:
		return nil, fmt.Errorf("service.ExportService.Export: %w: format %q", domain.ErrValidation, format)
	}
	if err != nil {
		return nil, fmt.Errorf("service.ExportService.Export: render %s: %w", format, err)
	}
	return payload, nil
}

// renderPDF produces a single-page itinerary document.
func renderPDF(trip domain.Trip) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Trip Plan - "+trip.Destination, false)
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	symbol := currencySymbol(trip.Currency)
	money := func(v float64) string { return tr(fmt.Sprintf("%s%.2f", symbol, v)) }

	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 10, tr("Trip to "+trip.Destination), "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 7, fmt.Sprintf("%s to %s, %d traveler(s)",
		trip.StartDate.Format("Jan 2, 2006"), trip.EndDate.Format("Jan 2, 2006"),
		trip.GroupSize), "", 1, "L", false, 0, "")
	if trip.Theme != "" {
		pdf.CellFormat(0, 7, tr("Theme: "+trip.Theme), "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(0, 8, "Budget", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 6, "Transportation: "+money(trip.BudgetBreakdown.TransportationCost), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, "Accommodation: "+money(trip.BudgetBreakdown.AccommodationCost), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, "Activities: "+money(trip.BudgetBreakdown.ActivitiesCost), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(0, 6, "Total: "+money(trip.BudgetBreakdown.TotalCost), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	if trip.Transportation != nil {
		pdf.SetFont("Helvetica", "B", 13)
		pdf.CellFormat(0, 8, "Transportation", "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 11)
		pdf.CellFormat(0, 6, tr(fmt.Sprintf("%s with %s, %s to %s",
			trip.Transportation.Type, trip.Transportation.Provider,
			trip.Transportation.Origin, trip.Transportation.Destination)), "", 1, "L", false, 0, "")
		pdf.Ln(2)
	}

	if trip.Accommodation != nil {
		pdf.SetFont("Helvetica", "B", 13)
		pdf.CellFormat(0, 8, "Accommodation", "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 11)
		pdf.CellFormat(0, 6, tr(fmt.Sprintf("%s (%s, rated %.1f) in %s",
			trip.Accommodation.Name, trip.Accommodation.Type,
			trip.Accommodation.Rating, trip.Accommodation.Location)), "", 1, "L", false, 0, "")
		pdf.Ln(2)
	}

	if len(trip.DailyItineraries) > 0 {
		pdf.SetFont("Helvetica", "B", 13)
		pdf.CellFormat(0, 8, "Daily Itinerary", "", 1, "L", false, 0, "")
		for _, day := range trip.DailyItineraries {
			pdf.SetFont("Helvetica", "B", 11)
			pdf.CellFormat(0, 7, fmt.Sprintf("Day %d - %s", day.Day, day.Date.Format("Jan 2, 2006")),
				"", 1, "L", false, 0, "")
			pdf.SetFont("Helvetica", "", 10)
			for _, a := range day.Activities {
				pdf.CellFormat(0, 5, tr(fmt.Sprintf("  %s  %s (%s)", a.Time, a.Name, money(a.Cost))),
					"", 1, "L", false, 0, "")
			}
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// renderXLSX produces a two-sheet workbook: overview plus the daily itinerary.
func renderXLSX(trip domain.Trip) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	const overview = "Overview"
	if err := f.SetSheetName("Sheet1", overview); err != nil {
		return nil, err
	}

	rows := [][]any{
		{"Destination", trip.Destination},
		{"Start Date", trip.StartDate.Format("2006-01-02")},
		{"End Date", trip.EndDate.Format("2006-01-02")},
		{"Group Size", trip.GroupSize},
		{"Theme", trip.Theme},
		{"Currency", trip.Currency},
		{},
		{"Transportation Cost", trip.BudgetBreakdown.TransportationCost},
		{"Accommodation Cost", trip.BudgetBreakdown.AccommodationCost},
		{"Activities Cost", trip.BudgetBreakdown.ActivitiesCost},
		{"Total Cost", trip.BudgetBreakdown.TotalCost},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(overview, cell, &row); err != nil {
			return nil, err
		}
	}

	const itinerary = "Itinerary"
	if _, err := f.NewSheet(itinerary); err != nil {
		return nil, err
	}
	header := []any{"Day", "Date", "Time", "Activity", "Type", "Cost"}
	if err := f.SetSheetRow(itinerary, "A1", &header); err != nil {
		return nil, err
	}
	line := 2
	for _, day := range trip.DailyItineraries {
		for _, a := range day.Activities {
			cell, err := excelize.CoordinatesToCellName(1, line)
			if err != nil {
				return nil, err
			}
			row := []any{day.Day, day.Date.Format("2006-01-02"), a.Time, a.Name, a.Type, a.Cost}
			if err := f.SetSheetRow(itinerary, cell, &row); err != nil {
				return nil, err
			}
			line++
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func currencySymbol(code string) string {
	if c, ok := domain.CurrencyByCode(code); ok {
		return c.Symbol
	}
	return code + " "
}
