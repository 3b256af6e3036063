// Package service contains the business logic for the planner API.
// Services validate inputs, enforce business rules, and orchestrate repo
// calls. No SQL lives here — services depend on repo interfaces.
package service

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/srajal5/vacationplanner/internal/domain"
	"github.com/srajal5/vacationplanner/internal/repo"
)

// Budget split applied by the reference planner. The remainder is headroom
// the user keeps unallocated.
const (
	transportShare  = 0.25
	lodgingShare    = 0.40
	activitiesShare = 0.10
)

// defaultLeadTime and defaultDuration fill in missing dates: a trip starting
// a month out, five days long.
const (
	defaultLeadTimeDays = 30
	defaultTripDays     = 5
)

// destinationByTheme gives the reference planner a deterministic pick when
// the user names a theme but no destination.
var destinationByTheme = map[string]string{
	"Adventure":  "Queenstown",
	"Relaxation": "Bali",
	"Culture":    "Rome",
	"Food":       "Bangkok",
	"Nature":     "Banff",
}

const fallbackDestination = "Lisbon"

// PlannerService generates and manages trip plans.
type PlannerService struct {
	trips repo.TripRepo
	now   func() time.Time
}

// NewPlannerService constructs a PlannerService backed by the provided repo.
func NewPlannerService(trips repo.TripRepo) *PlannerService {
	return &PlannerService{trips: trips, now: time.Now}
}

// NewPlannerServiceAt is NewPlannerService with an injectable clock for tests.
func NewPlannerServiceAt(trips repo.TripRepo, now func() time.Time) *PlannerService {
	return &PlannerService{trips: trips, now: now}
}

// Plan validates preferences, derives a complete deterministic trip plan and
// persists it unsaved. The budget breakdown always satisfies
// totalCost = transportation + accommodation + activities.
func (s *PlannerService) Plan(ctx context.Context, prefs domain.TripPreferences) (domain.Trip, error) {
	prefs, err := s.normalize(prefs)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.PlannerService.Plan: %w", err)
	}

	trip := buildPlan(prefs)

	created, err := s.trips.Create(ctx, trip)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.PlannerService.Plan: %w", err)
	}
	return created, nil
}

// GetByID returns a single trip, saved or not.
func (s *PlannerService) GetByID(ctx context.Context, id string) (domain.Trip, error) {
	trip, err := s.trips.GetByID(ctx, id)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.PlannerService.GetByID: %w", err)
	}
	return trip, nil
}

// ListSaved returns one page of saved trips plus the total saved count.
// An empty page is a valid result, returned as an empty non-nil slice.
func (s *PlannerService) ListSaved(ctx context.Context, p domain.PaginationParams) ([]domain.Trip, int64, error) {
	trips, total, err := s.trips.ListSaved(ctx, p)
	if err != nil {
		return nil, 0, fmt.Errorf("service.PlannerService.ListSaved: %w", err)
	}
	if trips == nil {
		trips = []domain.Trip{}
	}
	return trips, total, nil
}

// Save marks a generated trip as persisted. Idempotent.
func (s *PlannerService) Save(ctx context.Context, id string) error {
	if err := s.trips.MarkSaved(ctx, id); err != nil {
		return fmt.Errorf("service.PlannerService.Save: %w", err)
	}
	return nil
}

// Delete removes a trip.
func (s *PlannerService) Delete(ctx context.Context, id string) error {
	if err := s.trips.Delete(ctx, id); err != nil {
		return fmt.Errorf("service.PlannerService.Delete: %w", err)
	}
	return nil
}

// normalize validates the raw preferences and fills defaults.
func (s *PlannerService) normalize(prefs domain.TripPreferences) (domain.TripPreferences, error) {
	if prefs.Budget < 0 {
		return prefs, fmt.Errorf("%w: budget must not be negative", domain.ErrValidation)
	}
	if prefs.GroupSize < 1 {
		return prefs, fmt.Errorf("%w: group size must be at least 1", domain.ErrValidation)
	}
	if prefs.Currency == "" {
		prefs.Currency = "USD"
	}
	if !domain.SupportedCurrency(prefs.Currency) {
		return prefs, fmt.Errorf("%w: unsupported currency %q", domain.ErrValidation, prefs.Currency)
	}
	if (prefs.StartDate == nil) != (prefs.EndDate == nil) {
		return prefs, fmt.Errorf("%w: start and end date must be given together", domain.ErrValidation)
	}
	if prefs.StartDate == nil {
		start := domain.NewDate(s.now().AddDate(0, 0, defaultLeadTimeDays))
		end := domain.NewDate(start.AddDate(0, 0, defaultTripDays-1))
		prefs.StartDate, prefs.EndDate = &start, &end
	}
	if prefs.EndDate.Before(prefs.StartDate.Time) {
		return prefs, fmt.Errorf("%w: end date must not be before start date", domain.ErrValidation)
	}
	if strings.TrimSpace(prefs.Destination) == "" {
		prefs.Destination = destinationByTheme[prefs.Theme]
		if prefs.Destination == "" {
			prefs.Destination = fallbackDestination
		}
	}
	return prefs, nil
}

// buildPlan derives the full plan from normalized preferences. Everything
// here is deterministic: same preferences, same plan.
func buildPlan(prefs domain.TripPreferences) domain.Trip {
	start, end := *prefs.StartDate, *prefs.EndDate
	days := prefs.DurationDays()

	breakdown := domain.BudgetBreakdown{
		TransportationCost: round2(prefs.Budget * transportShare),
		AccommodationCost:  round2(prefs.Budget * lodgingShare),
		ActivitiesCost:     round2(prefs.Budget * activitiesShare),
	}
	breakdown.TotalCost = breakdown.Sum()

	trip := domain.Trip{
		Destination:     prefs.Destination,
		StartDate:       start,
		EndDate:         end,
		GroupSize:       prefs.GroupSize,
		Theme:           prefs.Theme,
		Currency:        prefs.Currency,
		StartingPoint:   prefs.StartingPoint,
		BudgetBreakdown: breakdown,
		Transportation: &domain.Transportation{
			Type:          transportType(prefs),
			Provider:      "Meridian Travel Group",
			Origin:        origin(prefs),
			Destination:   prefs.Destination,
			DepartureDate: start,
			ReturnDate:    end,
			Cost:          breakdown.TransportationCost,
		},
		Accommodation: &domain.Accommodation{
			Name:         "Hotel Central " + prefs.Destination,
			Type:         "Hotel",
			Rating:       4.2,
			Location:     prefs.Destination,
			CheckInDate:  start,
			CheckOutDate: end,
			Cost:         breakdown.AccommodationCost,
		},
		DailyItineraries: buildItinerary(prefs.Destination, start, days, breakdown.ActivitiesCost),
	}
	return trip
}

// transportType picks a flight unless the trip starts where it ends.
// Deliberately crude; this is the reference planner, not a recommendation
// engine.
func transportType(prefs domain.TripPreferences) string {
	if prefs.StartingPoint == "" || !strings.EqualFold(prefs.StartingPoint, prefs.Destination) {
		return "Flight"
	}
	return "Bus"
}

func origin(prefs domain.TripPreferences) string {
	if prefs.StartingPoint != "" {
		return prefs.StartingPoint
	}
	return "Home"
}

// itinerarySlots is the fixed daily rhythm of the generated plan.
var itinerarySlots = []struct {
	time  string
	name  string
	kind  string
	share float64 // of the day's activity budget
}{
	{"09:00", "Guided walk through %s", "Sightseeing", 0.3},
	{"13:00", "Local lunch spot", "Food", 0.3},
	{"16:00", "Afternoon highlights of %s", "Sightseeing", 0.4},
}

// buildItinerary spreads the activities budget evenly across days and slots.
func buildItinerary(destination string, start domain.Date, days int, activitiesBudget float64) []domain.DailyItinerary {
	perDay := 0.0
	if days > 0 {
		perDay = activitiesBudget / float64(days)
	}

	out := make([]domain.DailyItinerary, 0, days)
	for d := 0; d < days; d++ {
		day := domain.DailyItinerary{
			Day:  d + 1,
			Date: domain.NewDate(start.AddDate(0, 0, d)),
		}
		for _, slot := range itinerarySlots {
			name := slot.name
			if strings.Contains(name, "%s") {
				name = fmt.Sprintf(name, destination)
			}
			day.Activities = append(day.Activities, domain.Activity{
				Time: slot.time,
				Name: name,
				Cost: round2(perDay * slot.share),
				Type: slot.kind,
			})
		}
		out = append(out, day)
	}
	return out
}

// round2 rounds to two decimal places, enough for any supported currency.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
