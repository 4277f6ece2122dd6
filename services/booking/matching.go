package booking

import (
	"context"
	"fmt"

	profileRepo "promaallem/database/repository/profile"
)

// DefaultMatchingService implements the first-available matching policy.
//
// Known race, inherited by design: the availability snapshot is read here
// and the booking write happens afterwards without a claim step, so two
// concurrent emergency bookings can select the same maallem. Closing this
// with an atomic claim is a deliberate future enhancement, not assumed.
type DefaultMatchingService struct {
	ProfileRepo profileRepo.ProfileRepository
}

// MatchProvider picks the first available maallem from the snapshot.
// No ranking, no geospatial tie-break; an empty snapshot yields (nil, nil).
func (s *DefaultMatchingService) MatchProvider(ctx context.Context) (*string, error) {
	candidates, err := s.ProfileRepo.AvailableMaallems("", 1)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch available maallems: %w", err)
	}
	if len(candidates) == 0 {
		return nil, nil
	}
	id := candidates[0].ID
	return &id, nil
}
