package http

import (
	"context"

	"github.com/MKhiriev/go-recipe-share/internal/config"
	"github.com/MKhiriev/go-recipe-share/internal/logger"
	"github.com/MKhiriev/go-recipe-share/internal/service"
	"github.com/MKhiriev/go-recipe-share/models"
)

// ─────────────────────────────────────────────
// Fakes of the service layer
// ─────────────────────────────────────────────
//
// Each method field can be overridden per test case; calling a method whose
// field is nil panics, which chi's Recoverer would hide, so tests call
// handlers directly unless they exercise routing.

type fakeAuthService struct {
	registerFn    func(ctx context.Context, req models.RegisterRequest) (models.User, error)
	loginFn       func(ctx context.Context, req models.LoginRequest) (models.User, error)
	createTokenFn func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn  func(ctx context.Context, tokenString string) (models.Token, error)
}

func (f *fakeAuthService) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	return f.registerFn(ctx, req)
}

func (f *fakeAuthService) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	return f.loginFn(ctx, req)
}

func (f *fakeAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return f.createTokenFn(ctx, user)
}

func (f *fakeAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return f.parseTokenFn(ctx, tokenString)
}

type fakePasswordResetService struct {
	requestResetFn   func(ctx context.Context, email string) error
	verifyTokenFn    func(ctx context.Context, token string) error
	changePasswordFn func(ctx context.Context, token, newPassword string) error
}

func (f *fakePasswordResetService) RequestReset(ctx context.Context, email string) error {
	return f.requestResetFn(ctx, email)
}

func (f *fakePasswordResetService) VerifyToken(ctx context.Context, token string) error {
	return f.verifyTokenFn(ctx, token)
}

func (f *fakePasswordResetService) ChangePassword(ctx context.Context, token, newPassword string) error {
	return f.changePasswordFn(ctx, token, newPassword)
}

type fakeUserService struct {
	getUsersFn       func(ctx context.Context) ([]models.User, error)
	getUserFn        func(ctx context.Context, userID int64) (models.User, error)
	updateUserRoleFn func(ctx context.Context, userID int64, role models.Role) (models.User, error)
	deleteUserFn     func(ctx context.Context, userID int64) error
}

func (f *fakeUserService) GetUsers(ctx context.Context) ([]models.User, error) {
	return f.getUsersFn(ctx)
}

func (f *fakeUserService) GetUser(ctx context.Context, userID int64) (models.User, error) {
	return f.getUserFn(ctx, userID)
}

func (f *fakeUserService) UpdateUserRole(ctx context.Context, userID int64, role models.Role) (models.User, error) {
	return f.updateUserRoleFn(ctx, userID, role)
}

func (f *fakeUserService) DeleteUser(ctx context.Context, userID int64) error {
	return f.deleteUserFn(ctx, userID)
}

type fakeRecipeService struct {
	createRecipeFn func(ctx context.Context, author models.Identity, req models.RecipeRequest, picture *models.PictureUpload) (models.Recipe, error)
	getRecipesFn   func(ctx context.Context, filter models.RecipeFilter) ([]models.Recipe, error)
	getRecipeFn    func(ctx context.Context, recipeID int64) (models.Recipe, error)
	updateRecipeFn func(ctx context.Context, caller models.Identity, recipeID int64, req models.RecipeRequest, picture *models.PictureUpload) (models.Recipe, error)
	deleteRecipeFn func(ctx context.Context, caller models.Identity, recipeID int64) error
	rateRecipeFn   func(ctx context.Context, caller models.Identity, recipeID int64, rating int) (float64, error)
	shareLinksFn   func(ctx context.Context, recipeID int64) (models.ShareLinks, error)
}

func (f *fakeRecipeService) CreateRecipe(ctx context.Context, author models.Identity, req models.RecipeRequest, picture *models.PictureUpload) (models.Recipe, error) {
	return f.createRecipeFn(ctx, author, req, picture)
}

func (f *fakeRecipeService) GetRecipes(ctx context.Context, filter models.RecipeFilter) ([]models.Recipe, error) {
	return f.getRecipesFn(ctx, filter)
}

func (f *fakeRecipeService) GetRecipe(ctx context.Context, recipeID int64) (models.Recipe, error) {
	return f.getRecipeFn(ctx, recipeID)
}

func (f *fakeRecipeService) UpdateRecipe(ctx context.Context, caller models.Identity, recipeID int64, req models.RecipeRequest, picture *models.PictureUpload) (models.Recipe, error) {
	return f.updateRecipeFn(ctx, caller, recipeID, req, picture)
}

func (f *fakeRecipeService) DeleteRecipe(ctx context.Context, caller models.Identity, recipeID int64) error {
	return f.deleteRecipeFn(ctx, caller, recipeID)
}

func (f *fakeRecipeService) RateRecipe(ctx context.Context, caller models.Identity, recipeID int64, rating int) (float64, error) {
	return f.rateRecipeFn(ctx, caller, recipeID, rating)
}

func (f *fakeRecipeService) ShareLinks(ctx context.Context, recipeID int64) (models.ShareLinks, error) {
	return f.shareLinksFn(ctx, recipeID)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

func newTestHandler(services *service.Services) *Handler {
	if services == nil {
		services = &service.Services{}
	}
	return NewHandler(services, config.StructuredConfig{}, logger.Nop())
}
