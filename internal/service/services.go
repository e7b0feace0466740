package service

import (
	"fmt"

	"github.com/MKhiriev/go-recipe-share/internal/adapter"
	"github.com/MKhiriev/go-recipe-share/internal/config"
	"github.com/MKhiriev/go-recipe-share/internal/crypto"
	"github.com/MKhiriev/go-recipe-share/internal/logger"
	"github.com/MKhiriev/go-recipe-share/internal/store"
	"github.com/MKhiriev/go-recipe-share/internal/validators"
)

type Services struct {
	AuthService          AuthService
	PasswordResetService PasswordResetService
	UserService          UserService
	RecipeService        RecipeService
	AppInfoService       AppInfoService

	// StoreIdentityResolver re-reads the user on every request.
	StoreIdentityResolver IdentityResolver
	// ClaimsIdentityResolver trusts the token claims.
	ClaimsIdentityResolver IdentityResolver
}

func NewServices(storages *store.Storages, mailer adapter.Mailer, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	hasher := crypto.NewPasswordHasher(crypto.DefaultBcryptCost)
	validator := validators.NewRequestValidator()

	authService := NewAuthValidationService(validator).
		Wrap(NewAuthService(storages.UserRepository, hasher, cfg.App, logger))

	passwordResetService := NewPasswordResetValidationService(validator).
		Wrap(NewPasswordResetService(
			storages.UserRepository,
			hasher,
			crypto.NewTokenGenerator(crypto.ResetTokenBytes),
			mailer,
			cfg.App.ResetTokenDuration,
			logger,
		))

	recipeService := NewRecipeValidationService(validator).
		Wrap(NewRecipeService(storages, cfg.App, logger))

	return &Services{
		AuthService:            authService,
		PasswordResetService:   passwordResetService,
		UserService:            NewUserService(storages.UserRepository, logger),
		RecipeService:          recipeService,
		AppInfoService:         appInfoService,
		StoreIdentityResolver:  NewStoreIdentityResolver(authService, storages.UserRepository),
		ClaimsIdentityResolver: NewClaimsIdentityResolver(authService),
	}, nil
}
