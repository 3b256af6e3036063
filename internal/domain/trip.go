// Package domain contains the core data types for the vacation planner.
// This package has no dependencies beyond wire-format helpers and is imported
// by every other internal package (repo, service, handler, client).
package domain

import (
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Date is a date-only wire value, marshalled as "2006-01-02".
type Date = openapi_types.Date

// NewDate builds a Date from a time.Time, dropping the time-of-day part.
func NewDate(t time.Time) Date {
	return Date{Time: time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)}
}

// Trip is a fully planned vacation as produced by the planning service.
// From the client's perspective a Trip is immutable once returned: the client
// never computes derived trip fields locally, it only requests creation,
// deletion and the saved flag from the server.
type Trip struct {
	ID            string `json:"id"`
	Destination   string `json:"destination"`
	StartDate     Date   `json:"startDate"`
	EndDate       Date   `json:"endDate"` // always >= StartDate
	GroupSize     int    `json:"groupSize"`
	Theme         string `json:"theme,omitempty"`
	Currency      string `json:"currency"`
	StartingPoint string `json:"startingPoint,omitempty"`

	Transportation *Transportation `json:"transportation,omitempty"`
	Accommodation  *Accommodation  `json:"accommodation,omitempty"`

	BudgetBreakdown  BudgetBreakdown  `json:"budgetBreakdown"`
	DailyItineraries []DailyItinerary `json:"dailyItineraries,omitempty"`

	// Saved reports whether the user has kept this plan. Freshly planned
	// trips start unsaved and are promoted via the save endpoint.
	Saved     bool      `json:"saved"`
	CreatedAt time.Time `json:"createdAt"`
}

// Transportation describes how the group travels to the destination and back.
type Transportation struct {
	Type          string  `json:"type"` // Flight, Train, Bus
	Provider      string  `json:"provider"`
	Origin        string  `json:"origin"`
	Destination   string  `json:"destination"`
	DepartureDate Date    `json:"departureDate"`
	ReturnDate    Date    `json:"returnDate"`
	Cost          float64 `json:"cost"`
}

// Accommodation describes where the group stays for the whole trip.
type Accommodation struct {
	Name         string  `json:"name"`
	Type         string  `json:"type"` // Hotel, Hostel, Apartment
	Rating       float64 `json:"rating"`
	Location     string  `json:"location"`
	CheckInDate  Date    `json:"checkInDate"`
	CheckOutDate Date    `json:"checkOutDate"`
	Cost         float64 `json:"cost"`
}

// BudgetBreakdown splits the planned spend by category.
// Invariant: TotalCost equals the sum of the three components,
// expressed in the trip's currency.
type BudgetBreakdown struct {
	TransportationCost float64 `json:"transportationCost"`
	AccommodationCost  float64 `json:"accommodationCost"`
	ActivitiesCost     float64 `json:"activitiesCost"`
	TotalCost          float64 `json:"totalCost"`
}

// Sum returns the total of the three component costs.
func (b BudgetBreakdown) Sum() float64 {
	return b.TransportationCost + b.AccommodationCost + b.ActivitiesCost
}

// DailyItinerary is one day of the trip with its ordered activities.
type DailyItinerary struct {
	Day        int        `json:"day"` // 1-based position within the trip
	Date       Date       `json:"date"`
	Activities []Activity `json:"activities"`
}

// Activity is a single scheduled item within a day.
type Activity struct {
	Time        string  `json:"time"` // "15:04" wall-clock start
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Cost        float64 `json:"cost"`
	Type        string  `json:"type,omitempty"` // Sightseeing, Food, Adventure
}

// DurationDays returns the trip length in days, inclusive of both endpoints.
func (t Trip) DurationDays() int {
	return int(t.EndDate.Sub(t.StartDate.Time).Hours()/24) + 1
}
