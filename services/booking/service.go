package booking

import (
	"context"
	"fmt"

	bookingRepo "promaallem/database/repository/booking"
	"promaallem/models"
	"promaallem/utils"

	"go.uber.org/zap"
)

// DefaultIntakeService wires the normalizer, the matcher, and the booking
// store into the SOS intake pipeline.
type DefaultIntakeService struct {
	MatchingSvc MatchingService
	BookingRepo bookingRepo.BookingRepository
}

// CreateSOSBooking normalizes the request, attempts a provider match, and
// persists the booking.
//
// Matching is an optional step: repository errors there are swallowed and
// the booking proceeds unassigned with MaallemFound=false. The insert is a
// mandatory step and propagates.
func (s *DefaultIntakeService) CreateSOSBooking(ctx context.Context, identity *models.Identity, input models.SOSBookingInput) (*models.SOSBookingResult, error) {
	b, err := Normalize(identity, input)
	if err != nil {
		return nil, err
	}

	maallemID, err := s.MatchingSvc.MatchProvider(ctx)
	if err != nil {
		utils.GetLogger().Warn("SOS matching degraded to no assignment", zap.Error(err))
		maallemID = nil
	}
	b.MaallemID = maallemID

	if err := s.BookingRepo.Create(b); err != nil {
		return nil, fmt.Errorf("booking insert failed: %w", err)
	}

	return &models.SOSBookingResult{
		Booking:      b,
		MaallemFound: maallemID != nil,
	}, nil
}
