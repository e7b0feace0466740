package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-recipe-share/internal/validators"
	"github.com/MKhiriev/go-recipe-share/models"
)

// AuthValidationService checks register and login requests before they
// reach the wrapped AuthService.
type AuthValidationService struct {
	inner     AuthService
	validator validators.Validator
}

func NewAuthValidationService(validator validators.Validator) AuthServiceWrapper {
	return &AuthValidationService{validator: validator}
}

func (v *AuthValidationService) Wrap(inner AuthService) AuthService {
	v.inner = inner
	return v
}

func (v *AuthValidationService) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.User{}, fmt.Errorf("error validating registration: %w", err)
	}
	return v.inner.Register(ctx, req)
}

func (v *AuthValidationService) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.User{}, fmt.Errorf("error validating login: %w", err)
	}
	return v.inner.Login(ctx, req)
}

func (v *AuthValidationService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return v.inner.CreateToken(ctx, user)
}

func (v *AuthValidationService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return v.inner.ParseToken(ctx, tokenString)
}

// PasswordResetValidationService checks the email of a reset request and
// the strength of the new password.
type PasswordResetValidationService struct {
	inner     PasswordResetService
	validator validators.Validator
}

func NewPasswordResetValidationService(validator validators.Validator) PasswordResetServiceWrapper {
	return &PasswordResetValidationService{validator: validator}
}

func (v *PasswordResetValidationService) Wrap(inner PasswordResetService) PasswordResetService {
	v.inner = inner
	return v
}

func (v *PasswordResetValidationService) RequestReset(ctx context.Context, email string) error {
	if err := v.validator.Validate(ctx, models.ResetPasswordRequest{Email: email}); err != nil {
		return fmt.Errorf("error validating reset request: %w", err)
	}
	return v.inner.RequestReset(ctx, email)
}

func (v *PasswordResetValidationService) VerifyToken(ctx context.Context, token string) error {
	return v.inner.VerifyToken(ctx, token)
}

func (v *PasswordResetValidationService) ChangePassword(ctx context.Context, token, newPassword string) error {
	if err := v.validator.Validate(ctx, models.ChangePasswordRequest{Password: newPassword}); err != nil {
		return fmt.Errorf("error validating new password: %w", err)
	}
	return v.inner.ChangePassword(ctx, token, newPassword)
}

// RecipeValidationService checks recipe payloads and ratings.
type RecipeValidationService struct {
	inner     RecipeService
	validator validators.Validator
}

func NewRecipeValidationService(validator validators.Validator) RecipeServiceWrapper {
	return &RecipeValidationService{validator: validator}
}

func (v *RecipeValidationService) Wrap(inner RecipeService) RecipeService {
	v.inner = inner
	return v
}

func (v *RecipeValidationService) CreateRecipe(ctx context.Context, author models.Identity, req models.RecipeRequest, picture *models.PictureUpload) (models.Recipe, error) {
	if err := v.validator.Validate(ctx, req, validators.FieldRecipeRequired); err != nil {
		return models.Recipe{}, fmt.Errorf("error validating recipe: %w", err)
	}
	return v.inner.CreateRecipe(ctx, author, req, picture)
}

func (v *RecipeValidationService) GetRecipes(ctx context.Context, filter models.RecipeFilter) ([]models.Recipe, error) {
	return v.inner.GetRecipes(ctx, filter)
}

func (v *RecipeValidationService) GetRecipe(ctx context.Context, recipeID int64) (models.Recipe, error) {
	return v.inner.GetRecipe(ctx, recipeID)
}

func (v *RecipeValidationService) UpdateRecipe(ctx context.Context, caller models.Identity, recipeID int64, req models.RecipeRequest, picture *models.PictureUpload) (models.Recipe, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.Recipe{}, fmt.Errorf("error validating recipe: %w", err)
	}
	return v.inner.UpdateRecipe(ctx, caller, recipeID, req, picture)
}

func (v *RecipeValidationService) DeleteRecipe(ctx context.Context, caller models.Identity, recipeID int64) error {
	return v.inner.DeleteRecipe(ctx, caller, recipeID)
}

func (v *RecipeValidationService) RateRecipe(ctx context.Context, caller models.Identity, recipeID int64, rating int) (float64, error) {
	if err := v.validator.Validate(ctx, models.RateRecipeRequest{Rating: rating}); err != nil {
		return 0, fmt.Errorf("error validating rating: %w", err)
	}
	return v.inner.RateRecipe(ctx, caller, recipeID, rating)
}

func (v *RecipeValidationService) ShareLinks(ctx context.Context, recipeID int64) (models.ShareLinks, error) {
	return v.inner.ShareLinks(ctx, recipeID)
}
