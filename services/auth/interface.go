package auth

import (
	"context"

	"promaallem/models"
)

// IdentityResolver turns an optional bearer credential into zero or one
// authenticated identity.
//
// Resolve is the optional-auth contract used by guest-capable flows: a
// missing, invalid, or expired credential degrades silently to a nil
// identity so the request can proceed as a guest. Require is the strict
// contract: the same failures become an UnauthorizedError.
type IdentityResolver interface {
	Resolve(ctx context.Context, credential string) (*models.Identity, error)
	Require(ctx context.Context, credential string) (*models.Identity, error)
}

// RegistrationInput is the payload for account creation.
type RegistrationInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
	Phone    string `json:"phone"`
	Role     string `json:"role"` // "client" or "maallem"
	City     string `json:"city"`
}

// AuthResponse is returned on successful sign-in.
type AuthResponse struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

// AuthService owns account creation and credential verification.
type AuthService interface {
	Register(input RegistrationInput) (*models.User, error)
	Authenticate(email, password string) (*AuthResponse, error)
}
