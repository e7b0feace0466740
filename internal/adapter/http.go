package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/MKhiriev/go-recipe-share/internal/config"
	"github.com/MKhiriev/go-recipe-share/internal/logger"
	"github.com/MKhiriev/go-recipe-share/internal/utils"
	"github.com/MKhiriev/go-recipe-share/models"
	"github.com/go-resty/resty/v2"
)

type httpRecipeAPI struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPRecipeAPI constructs the resty implementation of [RecipeAPI].
// It normalises and validates the base URL from adapterCfg.BaseURL.
//
// Returns an error if adapterCfg.BaseURL is empty or cannot be parsed as a
// valid URL.
func NewHTTPRecipeAPI(adapterCfg config.ClientAdapter, logger *logger.Logger) (RecipeAPI, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpRecipeAPI{
		client: utils.NewHTTPClient(baseURL, adapterCfg.Timeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [RecipeAPI].
func (h *httpRecipeAPI) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [RecipeAPI].
func (h *httpRecipeAPI) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Register implements [RecipeAPI] via POST /api/auth/register.
func (h *httpRecipeAPI) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	var result models.UserResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&result).
		Post("/api/auth/register")
	if err != nil {
		return models.User{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return result.User, nil
}

// Login implements [RecipeAPI] via POST /api/auth/login. The token from the
// response body is stored for later requests.
func (h *httpRecipeAPI) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	var result models.LoginResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&result).
		Post("/api/auth/login")
	if err != nil {
		return models.User{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}
	if result.Token == "" {
		return models.User{}, fmt.Errorf("login response carries no token")
	}

	h.SetToken(result.Token)
	return result.User, nil
}

// RequestPasswordReset implements [RecipeAPI] via POST /api/auth/reset-password.
func (h *httpRecipeAPI) RequestPasswordReset(ctx context.Context, email string) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(models.ResetPasswordRequest{Email: email}).
		Post("/api/auth/reset-password")
	if err != nil {
		return fmt.Errorf("reset password request: %w", err)
	}

	return mapHTTPError(resp)
}

// VerifyResetToken implements [RecipeAPI] via GET /api/auth/reset/{token}.
func (h *httpRecipeAPI) VerifyResetToken(ctx context.Context, token string) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("token", token).
		Get("/api/auth/reset/{token}")
	if err != nil {
		return fmt.Errorf("verify reset token request: %w", err)
	}

	return mapHTTPError(resp)
}

// ChangePassword implements [RecipeAPI] via POST /api/auth/reset/{token}.
func (h *httpRecipeAPI) ChangePassword(ctx context.Context, token, password string) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("token", token).
		SetBody(models.ChangePasswordRequest{Password: password}).
		Post("/api/auth/reset/{token}")
	if err != nil {
		return fmt.Errorf("change password request: %w", err)
	}

	return mapHTTPError(resp)
}

// Me implements [RecipeAPI] via GET /api/auth/me.
func (h *httpRecipeAPI) Me(ctx context.Context) (models.Identity, error) {
	var result models.IdentityResponse

	resp, err := h.authedRequest(ctx).SetResult(&result).Get("/api/auth/me")
	if err != nil {
		return models.Identity{}, fmt.Errorf("me request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Identity{}, err
	}

	return result.User, nil
}

// Recipes implements [RecipeAPI] via GET /api/recipes.
func (h *httpRecipeAPI) Recipes(ctx context.Context, filter models.RecipeFilter) ([]models.Recipe, error) {
	var result models.RecipesResponse

	req := h.authedRequest(ctx).SetResult(&result)
	if filter.Name != "" {
		req.SetQueryParam("name", filter.Name)
	}
	if filter.Ingredients != "" {
		req.SetQueryParam("ingredients", filter.Ingredients)
	}
	if filter.Category != "" {
		req.SetQueryParam("category", filter.Category)
	}

	resp, err := req.Get("/api/recipes")
	if err != nil {
		return nil, fmt.Errorf("recipes request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return result.Recipes, nil
}

// Recipe implements [RecipeAPI] via GET /api/recipes/{id}.
func (h *httpRecipeAPI) Recipe(ctx context.Context, recipeID int64) (models.Recipe, error) {
	var result models.RecipeResponse

	resp, err := h.authedRequest(ctx).
		SetPathParam("id", formatID(recipeID)).
		SetResult(&result).
		Get("/api/recipes/{id}")
	if err != nil {
		return models.Recipe{}, fmt.Errorf("recipe request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Recipe{}, err
	}

	return result.Recipe, nil
}

// CreateRecipe implements [RecipeAPI] via POST /api/recipes.
func (h *httpRecipeAPI) CreateRecipe(ctx context.Context, recipe models.RecipeRequest) (models.Recipe, error) {
	var result models.RecipeResponse

	resp, err := h.authedRequest(ctx).
		SetBody(recipe).
		SetResult(&result).
		Post("/api/recipes")
	if err != nil {
		return models.Recipe{}, fmt.Errorf("create recipe request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Recipe{}, err
	}

	return result.Recipe, nil
}

// DeleteRecipe implements [RecipeAPI] via DELETE /api/recipes/{id}.
func (h *httpRecipeAPI) DeleteRecipe(ctx context.Context, recipeID int64) error {
	resp, err := h.authedRequest(ctx).
		SetPathParam("id", formatID(recipeID)).
		Delete("/api/recipes/{id}")
	if err != nil {
		return fmt.Errorf("delete recipe request: %w", err)
	}

	return mapHTTPError(resp)
}

// RateRecipe implements [RecipeAPI] via POST /api/recipes/{id}/rate.
func (h *httpRecipeAPI) RateRecipe(ctx context.Context, recipeID int64, rating int) (float64, error) {
	var result models.RatingResponse

	resp, err := h.authedRequest(ctx).
		SetPathParam("id", formatID(recipeID)).
		SetBody(models.RateRecipeRequest{Rating: rating}).
		SetResult(&result).
		Post("/api/recipes/{id}/rate")
	if err != nil {
		return 0, fmt.Errorf("rate recipe request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return 0, err
	}

	return result.AverageRating, nil
}

// ShareLinks implements [RecipeAPI] via GET /api/recipes/share/{id}.
func (h *httpRecipeAPI) ShareLinks(ctx context.Context, recipeID int64) (models.ShareLinks, error) {
	var result models.ShareLinksResponse

	resp, err := h.authedRequest(ctx).
		SetPathParam("id", formatID(recipeID)).
		SetResult(&result).
		Get("/api/recipes/share/{id}")
	if err != nil {
		return models.ShareLinks{}, fmt.Errorf("share links request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ShareLinks{}, err
	}

	return result.ShareLinks, nil
}

// Users implements [RecipeAPI] via GET /api/users.
func (h *httpRecipeAPI) Users(ctx context.Context) ([]models.User, error) {
	var result models.UsersResponse

	resp, err := h.authedRequest(ctx).SetResult(&result).Get("/api/users")
	if err != nil {
		return nil, fmt.Errorf("users request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return result.Users, nil
}

// UpdateUserRole implements [RecipeAPI] via PUT /api/users/{id}/role.
func (h *httpRecipeAPI) UpdateUserRole(ctx context.Context, userID int64, role models.Role) (models.User, error) {
	var result models.UserResponse

	resp, err := h.authedRequest(ctx).
		SetPathParam("id", formatID(userID)).
		SetBody(models.UpdateRoleRequest{Role: role}).
		SetResult(&result).
		Put("/api/users/{id}/role")
	if err != nil {
		return models.User{}, fmt.Errorf("update role request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return result.User, nil
}

// Version implements [RecipeAPI] via GET /api/version.
func (h *httpRecipeAPI) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "text/plain").
		Get("/api/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}

func (h *httpRecipeAPI) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}
