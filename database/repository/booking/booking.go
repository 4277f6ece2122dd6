package bookingRepo

import "promaallem/models"

// BookingRepository defines methods for booking persistence. The intake
// core only creates bookings; later lifecycle transitions are owned by a
// separate flow.
type BookingRepository interface {
	// Create inserts a new booking record.
	Create(booking *models.Booking) error
	// GetByID retrieves a booking by its unique ID; nil when absent.
	GetByID(id string) (*models.Booking, error)
}
