package domain

// BookingRequest is the payload sent to the booking endpoint.
// Payment card details are deliberately absent: the booking flow collects
// them for display purposes only and never transmits them.
type BookingRequest struct {
	TripID        string `json:"tripId"`
	TravelerName  string `json:"travelerName"`
	TravelerEmail string `json:"travelerEmail"`
	TravelerPhone string `json:"travelerPhone"`
}

// BookingConfirmation is the booking endpoint's response. Success=false with
// a 2xx status is a reported failure ("card declined" style) as opposed to a
// transport failure; callers must treat the two the same way for UI purposes
// but may distinguish them in logs.
type BookingConfirmation struct {
	Success   bool   `json:"success"`
	Message   string `json:"message,omitempty"`
	BookingID string `json:"bookingId,omitempty"`
}
