package service

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrHashingPassword    = errors.New("error hashing password")

	ErrTokenCreationFailed = errors.New("token creation failed")
	ErrTokenIsExpired      = errors.New("token is expired")
	ErrTokenMalformed      = errors.New("token is malformed")
	ErrTokenUnspecified    = errors.New("token verification failed")

	// Authorization gate failures.
	ErrNoToken                     = errors.New("no token provided")
	ErrAccessTokenMissing          = errors.New("access token is missing")
	ErrAuthenticationFailed        = errors.New("authentication failed")
	ErrInvalidOrExpiredAccessToken = errors.New("invalid or expired access token")
	ErrIdentityLookupFailed        = errors.New("identity lookup failed")
	ErrInsufficientPermissions     = errors.New("insufficient permissions")

	// Reset-token lifecycle.
	ErrEmailNotFound         = errors.New("email not found")
	ErrInvalidOrExpiredToken = errors.New("invalid or expired reset token")
	ErrGeneratingResetToken  = errors.New("error generating reset token")

	ErrNotRecipeOwner  = errors.New("not the owner of the recipe")
	ErrNothingToUpdate = errors.New("nothing to update")
	ErrInvalidRating   = errors.New("rating must be between 1 and 5")
	ErrInvalidRole     = errors.New("invalid role specified")
	ErrSavingPicture   = errors.New("error saving picture")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
