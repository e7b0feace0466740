package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-recipe-share/internal/logger"
	"github.com/MKhiriev/go-recipe-share/internal/store"
	"github.com/MKhiriev/go-recipe-share/models"
)

// StoreIdentityResolver verifies the token and then re-reads the user, so
// the identity carries the role currently stored rather than the one in
// the token.
//
// Errors: ErrNoToken, ErrTokenIsExpired, ErrTokenMalformed,
// ErrTokenUnspecified, ErrAuthenticationFailed for a deleted user and
// ErrIdentityLookupFailed when the store fails.
type StoreIdentityResolver struct {
	auth  AuthService
	users store.UserRepository
}

func NewStoreIdentityResolver(auth AuthService, users store.UserRepository) *StoreIdentityResolver {
	return &StoreIdentityResolver{auth: auth, users: users}
}

// Resolve implements [IdentityResolver].
func (r *StoreIdentityResolver) Resolve(ctx context.Context, token string) (models.Identity, error) {
	if token == "" {
		return models.Identity{}, ErrNoToken
	}

	claims, err := r.auth.ParseToken(ctx, token)
	if err != nil {
		return models.Identity{}, err
	}

	user, err := r.users.FindUserByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			logger.FromContext(ctx).Info().Int64("user_id", claims.UserID).Msg("token subject no longer exists")
			return models.Identity{}, ErrAuthenticationFailed
		}
		return models.Identity{}, fmt.Errorf("%w: %v", ErrIdentityLookupFailed, err)
	}

	return models.Identity{UserID: user.UserID, Role: user.Role, User: &user}, nil
}

// ClaimsIdentityResolver trusts the verified token claims without touching
// the store. Any verification failure becomes ErrInvalidOrExpiredAccessToken.
type ClaimsIdentityResolver struct {
	auth AuthService
}

func NewClaimsIdentityResolver(auth AuthService) *ClaimsIdentityResolver {
	return &ClaimsIdentityResolver{auth: auth}
}

// Resolve implements [IdentityResolver].
func (r *ClaimsIdentityResolver) Resolve(ctx context.Context, token string) (models.Identity, error) {
	if token == "" {
		return models.Identity{}, ErrAccessTokenMissing
	}

	claims, err := r.auth.ParseToken(ctx, token)
	if err != nil {
		return models.Identity{}, fmt.Errorf("%w: %v", ErrInvalidOrExpiredAccessToken, err)
	}

	return claims.Identity(), nil
}

// RequireRole returns ErrInsufficientPermissions unless identity holds one
// of roles.
func RequireRole(identity models.Identity, roles ...models.Role) error {
	if !identity.Role.In(roles...) {
		return ErrInsufficientPermissions
	}
	return nil
}
