// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter holds the outbound integrations of the recipe-share
// backend: the [Mailer] used to deliver password reset tokens and the
// [RecipeAPI] HTTP client used by cmd/client.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrForbidden] for 403, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-recipe-share/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// Mailer delivers notifications to users.
type Mailer interface {
	// SendResetToken mails the password reset token to email.
	SendResetToken(ctx context.Context, email, token string) error
}

// RecipeAPI is a client of the recipe-share HTTP API. Implementations keep
// the bearer token returned by Login and attach it to every authenticated
// request.
type RecipeAPI interface {
	// SetToken stores the bearer token used for subsequent requests.
	SetToken(token string)

	// Token returns the stored bearer token or an empty string.
	Token() string

	// Register creates an account. The returned user never carries a
	// password hash.
	Register(ctx context.Context, req models.RegisterRequest) (models.User, error)

	// Login authenticates and stores the issued token via SetToken.
	Login(ctx context.Context, req models.LoginRequest) (models.User, error)

	// RequestPasswordReset asks the server to mail a reset token to email.
	RequestPasswordReset(ctx context.Context, email string) error

	// VerifyResetToken checks that token is known and not expired.
	VerifyResetToken(ctx context.Context, token string) error

	// ChangePassword consumes token and sets password.
	ChangePassword(ctx context.Context, token, password string) error

	// Me returns the identity the server derives from the stored token.
	Me(ctx context.Context) (models.Identity, error)

	// Recipes lists recipes matching filter.
	Recipes(ctx context.Context, filter models.RecipeFilter) ([]models.Recipe, error)

	// Recipe fetches a single recipe.
	Recipe(ctx context.Context, recipeID int64) (models.Recipe, error)

	// CreateRecipe submits a new recipe as JSON.
	CreateRecipe(ctx context.Context, req models.RecipeRequest) (models.Recipe, error)

	// DeleteRecipe removes a recipe owned by the caller.
	DeleteRecipe(ctx context.Context, recipeID int64) error

	// RateRecipe scores a recipe and returns its new average rating.
	RateRecipe(ctx context.Context, recipeID int64, rating int) (float64, error)

	// ShareLinks returns social network links for a recipe.
	ShareLinks(ctx context.Context, recipeID int64) (models.ShareLinks, error)

	// Users lists every account. Admin only.
	Users(ctx context.Context) ([]models.User, error)

	// UpdateUserRole changes the role of a user. Admin only.
	UpdateUserRole(ctx context.Context, userID int64, role models.Role) (models.User, error)

	// Version returns the server version string.
	Version(ctx context.Context) (string, error)
}
