package store

import (
	"context"
	"io"
	"time"

	"github.com/MKhiriev/go-recipe-share/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists user accounts together with their password reset
// token state.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindAllUsers(ctx context.Context) ([]models.User, error)
	UpdateUserRole(ctx context.Context, userID int64, role models.Role) (models.User, error)
	DeleteUser(ctx context.Context, userID int64) error

	// SetResetToken overwrites any previous reset token of the user.
	SetResetToken(ctx context.Context, userID int64, token string, expires time.Time) error
	// FindUserByResetToken returns the user holding token if it expires after now.
	FindUserByResetToken(ctx context.Context, token string, now time.Time) (models.User, error)
	// ConsumeResetToken sets passwordHash and clears the reset fields in one
	// statement guarded by the same token/expiry predicate, so a token can be
	// consumed at most once.
	ConsumeResetToken(ctx context.Context, token string, now time.Time, passwordHash string) error
}

// RecipeRepository persists recipes. Read methods embed the author.
type RecipeRepository interface {
	CreateRecipe(ctx context.Context, recipe models.Recipe) (models.Recipe, error)
	FindRecipeByID(ctx context.Context, recipeID int64) (models.Recipe, error)
	FindRecipes(ctx context.Context, filter models.RecipeFilter) ([]models.Recipe, error)
	UpdateRecipe(ctx context.Context, update models.RecipeUpdate) (models.Recipe, error)
	DeleteRecipe(ctx context.Context, recipeID int64) error
}

// RatingRepository stores ratings and keeps the recipe's average in sync.
type RatingRepository interface {
	// RateRecipe inserts rating and stores the recomputed average on the
	// recipe within one transaction. It returns the new average.
	RateRecipe(ctx context.Context, rating models.Rating) (float64, error)
}

// PictureStorage keeps uploaded recipe pictures outside the database.
type PictureStorage interface {
	// SavePicture stores the content under a generated name derived from
	// fileName and returns the reference to keep on the recipe.
	SavePicture(ctx context.Context, fileName, contentType string, content io.Reader) (string, error)
	// DeletePicture removes a previously saved picture by its reference.
	DeletePicture(ctx context.Context, reference string) error
}

// ErrorClassificator maps driver-specific errors onto [ErrorClass] values so
// repositories stay independent of the configured database.
type ErrorClassificator interface {
	Classify(err error) ErrorClass
}
