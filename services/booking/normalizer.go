package booking

import (
	"time"

	"promaallem/models"

	"github.com/google/uuid"
)

// urgentLiteral is the only string value coerced to an emergency flag.
// Matching is case-sensitive: "URGENT" is not an emergency marker.
const urgentLiteral = "urgent"

// Normalize merges an optional resolved identity with guest-supplied contact
// fields into one canonical booking record.
//
// Invariant: a booking must be attributable — either the requester identity
// or a guest phone number is present. Status always starts at "pending";
// assignment happens in a separate step.
func Normalize(identity *models.Identity, input models.SOSBookingInput) (*models.Booking, error) {
	if identity == nil && input.Phone == "" {
		return nil, &ValidationError{Message: "Phone number is required for guest bookings"}
	}

	b := &models.Booking{
		ID:          uuid.New().String(),
		Status:      models.BookingStatusPending,
		IsEmergency: coerceEmergency(input.Urgency),
		Address:     input.Address,
		CreatedAt:   time.Now(),
	}

	if identity != nil {
		clientID := identity.UserID
		b.ClientID = &clientID
	}
	b.GuestName = input.FullName
	b.GuestPhone = input.Phone

	if input.ServiceID != "" {
		serviceID := input.ServiceID
		b.ServiceID = &serviceID
	}

	return b, nil
}

// coerceEmergency folds the untyped urgency value into a boolean. Only
// boolean true or the exact literal "urgent" count; everything else,
// including absence, is non-emergency.
func coerceEmergency(urgency interface{}) bool {
	switch v := urgency.(type) {
	case bool:
		return v
	case string:
		return v == urgentLiteral
	default:
		return false
	}
}
