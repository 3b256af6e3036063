package domain

// TripPreferences is the user's input to the planning service.
// Budget and GroupSize are required; everything else may be left empty and
// is defaulted by the planner.
type TripPreferences struct {
	Budget        float64 `json:"budget"`
	Currency      string  `json:"currency"`
	Destination   string  `json:"destination,omitempty"`
	StartDate     *Date   `json:"startDate,omitempty"`
	EndDate       *Date   `json:"endDate,omitempty"`
	Theme         string  `json:"theme,omitempty"`
	GroupSize     int     `json:"groupSize"`
	StartingPoint string  `json:"startingPoint,omitempty"`
}

// DurationDays returns the requested trip length in days, inclusive, or 0
// when either date is unset.
func (p TripPreferences) DurationDays() int {
	if p.StartDate == nil || p.EndDate == nil {
		return 0
	}
	return int(p.EndDate.Sub(p.StartDate.Time).Hours()/24) + 1
}
