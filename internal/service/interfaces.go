package service

import (
	"context"

	"github.com/MKhiriev/go-recipe-share/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService registers users, checks credentials and issues or verifies
// session tokens.
type AuthService interface {
	Register(ctx context.Context, req models.RegisterRequest) (models.User, error)
	Login(ctx context.Context, req models.LoginRequest) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)

	// ParseToken returns ErrTokenIsExpired, ErrTokenMalformed or
	// ErrTokenUnspecified when tokenString cannot be accepted.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// PasswordResetService drives the reset-token lifecycle: request, verify and
// consume.
type PasswordResetService interface {
	RequestReset(ctx context.Context, email string) error
	VerifyToken(ctx context.Context, token string) error
	ChangePassword(ctx context.Context, token, newPassword string) error
}

// IdentityResolver turns a bearer token into the identity attached to a
// request. An empty token means the request carried none.
type IdentityResolver interface {
	Resolve(ctx context.Context, token string) (models.Identity, error)
}

type UserService interface {
	GetUsers(ctx context.Context) ([]models.User, error)
	GetUser(ctx context.Context, userID int64) (models.User, error)
	UpdateUserRole(ctx context.Context, userID int64, role models.Role) (models.User, error)
	DeleteUser(ctx context.Context, userID int64) error
}

type RecipeService interface {
	CreateRecipe(ctx context.Context, author models.Identity, req models.RecipeRequest, picture *models.PictureUpload) (models.Recipe, error)
	GetRecipes(ctx context.Context, filter models.RecipeFilter) ([]models.Recipe, error)
	GetRecipe(ctx context.Context, recipeID int64) (models.Recipe, error)

	// UpdateRecipe and DeleteRecipe return ErrNotRecipeOwner unless caller
	// created the recipe or is an Admin.
	UpdateRecipe(ctx context.Context, caller models.Identity, recipeID int64, req models.RecipeRequest, picture *models.PictureUpload) (models.Recipe, error)
	DeleteRecipe(ctx context.Context, caller models.Identity, recipeID int64) error

	RateRecipe(ctx context.Context, caller models.Identity, recipeID int64, rating int) (float64, error)
	ShareLinks(ctx context.Context, recipeID int64) (models.ShareLinks, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// AuthServiceWrapper decorates an AuthService, e.g. with request validation.
type AuthServiceWrapper interface {
	Wrap(AuthService) AuthService
}

// PasswordResetServiceWrapper decorates a PasswordResetService.
type PasswordResetServiceWrapper interface {
	Wrap(PasswordResetService) PasswordResetService
}

// RecipeServiceWrapper decorates a RecipeService.
type RecipeServiceWrapper interface {
	Wrap(RecipeService) RecipeService
}
