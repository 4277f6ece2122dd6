package auth

import (
	"fmt"
	"time"

	profileRepo "promaallem/database/repository/profile"
	userRepo "promaallem/database/repository/user"
	"promaallem/models"
	"promaallem/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// DefaultCity backs profiles registered without an explicit city.
const DefaultCity = "Casablanca"

const tokenLifetime = 72 * time.Hour

// DefaultAuthService implements AuthService on top of the user and profile
// repositories.
type DefaultAuthService struct {
	Users    userRepo.UserRepository
	Profiles profileRepo.ProfileRepository
}

// Register creates the account row and its profile. Both writes are
// mandatory steps: either failing surfaces to the caller.
func (s *DefaultAuthService) Register(input RegistrationInput) (*models.User, error) {
	if input.Email == "" || input.Password == "" || input.Role == "" {
		return nil, &ValidationError{Message: "Missing required fields"}
	}
	if input.Role != "client" && input.Role != "maallem" {
		return nil, &ValidationError{Message: "Role must be 'client' or 'maallem'"}
	}

	existing, err := s.Users.GetByEmail(input.Email)
	if err != nil {
		utils.GetLogger().Error("Register: duplicate check failed", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again: %w", err)
	}
	if existing != nil {
		return nil, &ValidationError{Message: "A user with this email already exists"}
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.GetLogger().Error("Register: failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}

	usr := models.User{
		ID:           uuid.New().String(),
		Email:        input.Email,
		PasswordHash: string(hashed),
		Role:         input.Role,
	}
	if err := s.Users.Create(&usr); err != nil {
		return nil, fmt.Errorf("user creation failed: %w", err)
	}

	city := input.City
	if city == "" {
		city = DefaultCity
	}
	profile := models.Profile{
		ID:       usr.ID,
		FullName: input.FullName,
		Role:     input.Role,
		Phone:    input.Phone,
		City:     city,
	}
	if err := s.Profiles.Create(&profile); err != nil {
		return nil, fmt.Errorf("error creating profile: %w", err)
	}

	return &usr, nil
}

// Authenticate verifies email/password and issues a signed token.
func (s *DefaultAuthService) Authenticate(email, password string) (*AuthResponse, error) {
	if email == "" || password == "" {
		return nil, &ValidationError{Message: "Email and password are required"}
	}

	usr, err := s.Users.GetByEmail(email)
	if err != nil {
		utils.GetLogger().Error("Authenticate: lookup failed", zap.Error(err))
		return nil, fmt.Errorf("sign-in failed, please try again: %w", err)
	}
	if usr == nil {
		return nil, &UnauthorizedError{Message: "Invalid email or password"}
	}

	if err := bcrypt.CompareHashAndPassword([]byte(usr.PasswordHash), []byte(password)); err != nil {
		return nil, &UnauthorizedError{Message: "Invalid email or password"}
	}

	token, err := utils.GenerateToken(usr.ID, usr.Email, tokenLifetime)
	if err != nil {
		utils.GetLogger().Error("Authenticate: token generation failed", zap.Error(err))
		return nil, fmt.Errorf("sign-in failed, please try again")
	}

	return &AuthResponse{Token: token, User: usr}, nil
}
