package serviceRepo

import "promaallem/models"

// ServiceRepository defines methods for catalog data access.
type ServiceRepository interface {
	// GetAll retrieves the full service catalog.
	GetAll() ([]models.Service, error)
	// MatchByName finds at most one service whose name contains the given
	// text, case-insensitively. Returns nil when nothing matches.
	MatchByName(name string) (*models.ServiceMatch, error)
}
