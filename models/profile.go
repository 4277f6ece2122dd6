package models

import "time"

// Profile is the public-facing record attached to a user account.
// Maallem profiles carry availability and rating; client profiles only
// contact details.
type Profile struct {
	ID          string    `bson:"id" json:"id"` // same as the owning user ID
	FullName    string    `bson:"full_name" json:"full_name"`
	Role        string    `bson:"role" json:"role"` // "client" or "maallem"
	Phone       string    `bson:"phone,omitempty" json:"phone,omitempty"`
	City        string    `bson:"city" json:"city"`
	Rating      float64   `bson:"rating,omitempty" json:"rating,omitempty"`
	AvatarURL   string    `bson:"avatar_url,omitempty" json:"avatar_url,omitempty"`
	IsAvailable bool      `bson:"is_available" json:"is_available"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time `bson:"updated_at" json:"updated_at"`
}

// ProviderSummary is the trimmed maallem view returned by the nearby listing.
type ProviderSummary struct {
	ID        string  `bson:"id" json:"id"`
	FullName  string  `bson:"full_name" json:"full_name"`
	Role      string  `bson:"role" json:"role"`
	City      string  `bson:"city" json:"city"`
	Rating    float64 `bson:"rating,omitempty" json:"rating,omitempty"`
	AvatarURL string  `bson:"avatar_url,omitempty" json:"avatar_url,omitempty"`
}
