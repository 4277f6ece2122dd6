package models

// SOSBookingInput is the payload for POST /api/bookings/sos. Urgency is left
// untyped because clients send either a boolean or the literal "urgent".
type SOSBookingInput struct {
	ServiceID string      `json:"service_id"`
	Address   string      `json:"address"`
	Phone     string      `json:"phone"`
	FullName  string      `json:"full_name"`
	Urgency   interface{} `json:"urgency"`
}

// SOSBookingResult is what the booking pipeline hands back to the handler.
type SOSBookingResult struct {
	Booking      *Booking `json:"booking"`
	MaallemFound bool     `json:"maallem_found"`
}
