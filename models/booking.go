package models

import "time"

// Booking statuses.
const (
	BookingStatusPending  = "pending"
	BookingStatusAssigned = "assigned"
)

// Booking represents a service request record. ClientID is nil for guest
// bookings, in which case GuestPhone is mandatory. MaallemID stays nil when
// no provider was available at creation time; the booking is created anyway.
type Booking struct {
	ID          string    `bson:"id" json:"id"`
	ClientID    *string   `bson:"client_id" json:"client_id"`
	GuestName   string    `bson:"guest_name,omitempty" json:"guest_name,omitempty"`
	GuestPhone  string    `bson:"guest_phone,omitempty" json:"guest_phone,omitempty"`
	MaallemID   *string   `bson:"maallem_id" json:"maallem_id"`
	ServiceID   *string   `bson:"service_id" json:"service_id"`
	Status      string    `bson:"status" json:"status"`
	IsEmergency bool      `bson:"is_emergency" json:"is_emergency"`
	Address     string    `bson:"address,omitempty" json:"address,omitempty"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
}
