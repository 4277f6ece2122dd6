package auth

import (
	"context"

	userRepo "promaallem/database/repository/user"
	"promaallem/models"
	"promaallem/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// DefaultIdentityResolver validates bearer tokens against the user store.
type DefaultIdentityResolver struct {
	Repo userRepo.UserRepository
}

// Resolve implements the optional-auth contract: an empty credential means
// "no identity" without error, and a bad credential degrades the same way.
// Emergency intake must never be blocked by a stale token.
func (r *DefaultIdentityResolver) Resolve(ctx context.Context, credential string) (*models.Identity, error) {
	if credential == "" {
		return nil, nil
	}
	identity, err := r.lookup(credential)
	if err != nil {
		utils.GetLogger().Debug("Optional auth degraded to guest", zap.Error(err))
		return nil, nil
	}
	return identity, nil
}

// Require implements the mandatory-auth contract: any failure to resolve is
// an UnauthorizedError.
func (r *DefaultIdentityResolver) Require(ctx context.Context, credential string) (*models.Identity, error) {
	if credential == "" {
		return nil, &UnauthorizedError{Message: "Missing Authorization header"}
	}
	identity, err := r.lookup(credential)
	if err != nil {
		return nil, &UnauthorizedError{Message: "Invalid or expired token"}
	}
	return identity, nil
}

func (r *DefaultIdentityResolver) lookup(credential string) (*models.Identity, error) {
	userID, err := utils.ExtractIDFromToken(credential)
	if err != nil {
		return nil, err
	}

	// The subject must still reference a live account.
	usr, err := r.Repo.GetByIDWithProjection(userID, bson.M{"id": 1, "email": 1})
	if err != nil {
		return nil, err
	}
	if usr == nil {
		return nil, &UnauthorizedError{Message: "unknown subject"}
	}

	return &models.Identity{UserID: usr.ID, Email: usr.Email}, nil
}
