package booking

import (
	"context"

	"promaallem/models"
)

// MatchingService selects a candidate maallem for a new request.
//
// The first-available policy is part of the contract: given the same
// availability snapshot the same candidate is returned. Implementations may
// substitute a better strategy (ranking, geospatial) behind this interface.
type MatchingService interface {
	// MatchProvider returns the selected maallem ID, or nil when no
	// candidate is available. An empty snapshot is not an error.
	MatchProvider(ctx context.Context) (*string, error)
}

// IntakeService owns the SOS booking pipeline: resolve identity upstream,
// normalize, match, persist.
type IntakeService interface {
	CreateSOSBooking(ctx context.Context, identity *models.Identity, input models.SOSBookingInput) (*models.SOSBookingResult, error)
}
