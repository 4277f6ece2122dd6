package profileRepo

import "promaallem/models"

// ProfileRepository defines methods for profile data access.
type ProfileRepository interface {
	// Create inserts a new profile record.
	Create(profile *models.Profile) error
	// GetByID retrieves a profile by its owning user ID; nil when absent.
	GetByID(id string) (*models.Profile, error)
	// AvailableMaallems returns up to limit available maallem profiles.
	// limit <= 0 means no limit. An optional city substring filter applies
	// case-insensitively.
	AvailableMaallems(city string, limit int) ([]models.Profile, error)
}
