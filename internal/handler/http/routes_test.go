// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-recipe-share/internal/adapter"
	"github.com/MKhiriev/go-recipe-share/internal/app"
	"github.com/MKhiriev/go-recipe-share/internal/config"
	"github.com/MKhiriev/go-recipe-share/internal/logger"
	"github.com/MKhiriev/go-recipe-share/internal/mock"
	"github.com/MKhiriev/go-recipe-share/internal/service"
	"github.com/MKhiriev/go-recipe-share/internal/store"
	"github.com/MKhiriev/go-recipe-share/migrations"
	"github.com/MKhiriev/go-recipe-share/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// ─────────────────────────────────────────────
// Routing with a fixed identity
// ─────────────────────────────────────────────

func newRoutedHandler(t *testing.T, identity models.Identity, cfg config.StructuredConfig) http.Handler {
	ctrl := gomock.NewController(t)

	resolver := mock.NewMockIdentityResolver(ctrl)
	resolver.EXPECT().Resolve(gomock.Any(), gomock.Any()).Return(identity, nil).AnyTimes()

	appInfo := mock.NewMockAppInfoService(ctrl)
	appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("1.0.0").AnyTimes()

	services := &service.Services{
		AppInfoService:         appInfo,
		StoreIdentityResolver:  resolver,
		ClaimsIdentityResolver: resolver,
		UserService: &fakeUserService{
			getUsersFn: func(context.Context) ([]models.User, error) { return nil, nil },
		},
		RecipeService: &fakeRecipeService{
			getRecipesFn: func(context.Context, models.RecipeFilter) ([]models.Recipe, error) { return nil, nil },
			rateRecipeFn: func(context.Context, models.Identity, int64, int) (float64, error) { return 5, nil },
		},
	}
	return NewHandler(services, cfg, logger.Nop()).Init()
}

func TestRoutes_RoleGating(t *testing.T) {
	tests := []struct {
		name       string
		role       models.Role
		method     string
		path       string
		body       string
		wantStatus int
	}{
		{name: "viewer lists users", role: models.RoleViewer, method: http.MethodGet, path: "/api/users", wantStatus: http.StatusForbidden},
		{name: "contributor lists users", role: models.RoleContributor, method: http.MethodGet, path: "/api/users", wantStatus: http.StatusForbidden},
		{name: "admin lists users", role: models.RoleAdmin, method: http.MethodGet, path: "/api/users", wantStatus: http.StatusOK},
		{name: "viewer lists recipes", role: models.RoleViewer, method: http.MethodGet, path: "/api/recipes", wantStatus: http.StatusOK},
		{name: "viewer creates recipe", role: models.RoleViewer, method: http.MethodPost, path: "/api/recipes", body: `{}`, wantStatus: http.StatusForbidden},
		{name: "viewer rates", role: models.RoleViewer, method: http.MethodPost, path: "/api/recipes/1/rate", body: `{"rating":5}`, wantStatus: http.StatusOK},
		{name: "contributor rates", role: models.RoleContributor, method: http.MethodPost, path: "/api/recipes/1/rate", body: `{"rating":5}`, wantStatus: http.StatusForbidden},
		{name: "viewer my recipes", role: models.RoleViewer, method: http.MethodGet, path: "/api/my-recipes", wantStatus: http.StatusForbidden},
		{name: "viewer deletes recipe", role: models.RoleViewer, method: http.MethodDelete, path: "/api/recipes/1", wantStatus: http.StatusForbidden},
		{name: "viewer changes role", role: models.RoleViewer, method: http.MethodPut, path: "/api/users/1/role", body: `{"role":"Admin"}`, wantStatus: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newRoutedHandler(t, models.Identity{UserID: 1, Role: tt.role}, config.StructuredConfig{})

			req := httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			require.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())
			if tt.wantStatus == http.StatusForbidden {
				assert.JSONEq(t, `{"message":"`+app.MsgInsufficientPermissions+`"}`, rec.Body.String())
			}
		})
	}
}

func TestRoutes_UnknownRouteIsJSON404(t *testing.T) {
	router := newRoutedHandler(t, models.Identity{}, config.StructuredConfig{})

	for _, req := range []*http.Request{
		httptest.NewRequest(http.MethodGet, "/api/nothing-here", nil),
		httptest.NewRequest(http.MethodPatch, "/api/version", nil),
	} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.JSONEq(t, `{"message":"`+app.MsgNotFound+`"}`, rec.Body.String())
	}
}

func TestRoutes_TraceIDHeader(t *testing.T) {
	router := newRoutedHandler(t, models.Identity{}, config.StructuredConfig{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/version", nil))

	assert.NotEmpty(t, rec.Header().Get(traceIDHeader))
}

func TestRoutes_CORSPreflight(t *testing.T) {
	cfg := config.StructuredConfig{Server: config.Server{AllowedOrigins: []string{"https://recipes.example.com"}}}
	router := newRoutedHandler(t, models.Identity{}, cfg)

	tests := []struct {
		origin     string
		wantOrigin string
	}{
		{origin: "https://recipes.example.com", wantOrigin: "https://recipes.example.com"},
		{origin: "https://evil.example.com", wantOrigin: ""},
	}

	for _, tt := range tests {
		t.Run(tt.origin, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodOptions, "/api/recipes", nil)
			req.Header.Set("Origin", tt.origin)
			req.Header.Set("Access-Control-Request-Method", http.MethodPost)
			req.Header.Set("Access-Control-Request-Headers", "Authorization")
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantOrigin, rec.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}

func TestRoutes_ServesUploads(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "soup.png"), []byte("picture bytes"), 0o600))

	cfg := config.StructuredConfig{Storage: config.Storage{Pictures: config.Pictures{Dir: dir}}}
	router := newRoutedHandler(t, models.Identity{}, cfg)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/uploads/soup.png", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "picture bytes", rec.Body.String())

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/uploads/missing.png", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

// ─────────────────────────────────────────────
// End to end on SQLite
// ─────────────────────────────────────────────

func newSQLiteRouter(t *testing.T) (http.Handler, *store.Storages) {
	t.Helper()

	cfg := config.StructuredConfig{
		App: config.App{
			TokenSignKey:       "e2e-sign-key",
			TokenIssuer:        "recipe-share",
			TokenDuration:      time.Hour,
			ResetTokenDuration: time.Hour,
			PublicURL:          "http://localhost:8080",
			Version:            "e2e",
		},
		Storage: config.Storage{
			DB: config.DB{
				DSN:    "file:" + filepath.Join(t.TempDir(), "e2e.db"),
				Driver: migrations.DialectSQLite,
			},
			Pictures: config.Pictures{Dir: t.TempDir()},
		},
	}
	log := logger.Nop()

	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	require.NoError(t, err)
	t.Cleanup(func() { _ = storages.Close() })

	mailer, err := adapter.NewSMTPMailer(config.Mail{}, log)
	require.NoError(t, err)

	services, err := service.NewServices(storages, mailer, cfg, log)
	require.NoError(t, err)

	return NewHandler(services, cfg, log).Init(), storages
}

func serve(t *testing.T, router http.Handler, method, path, token, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestEndToEnd_RegisterLoginAndAdminGate(t *testing.T) {
	router, storages := newSQLiteRouter(t)

	// регистрация
	rec := serve(t, router, http.MethodPost, "/api/auth/register", "", `{"name":"Ann","email":"ann@example.com","password":"secret1"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	registered := decodeBody[models.UserResponse](t, rec)
	assert.Equal(t, models.RoleViewer, registered.User.Role)
	assert.NotContains(t, rec.Body.String(), "$2a$")

	rec = serve(t, router, http.MethodPost, "/api/auth/register", "", `{"name":"Ann","email":"ann@example.com","password":"secret1"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = serve(t, router, http.MethodPost, "/api/auth/login", "", `{"email":"ann@example.com","password":"wrong-one"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = serve(t, router, http.MethodPost, "/api/auth/login", "", `{"email":"ann@example.com","password":"secret1"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	token := decodeBody[models.LoginResponse](t, rec).Token
	require.NotEmpty(t, token)

	// Viewer не проходит в admin-only маршрут
	rec = serve(t, router, http.MethodGet, "/api/users", token, "")
	assert.Equal(t, http.StatusForbidden, rec.Code)

	_, err := storages.UserRepository.UpdateUserRole(context.Background(), registered.User.UserID, models.RoleAdmin)
	require.NoError(t, err)

	// the identity gate sees the new role with the old token
	rec = serve(t, router, http.MethodGet, "/api/users", token, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Len(t, decodeBody[models.UsersResponse](t, rec).Users, 1)

	// the claims gate still reports the role the token was issued with
	rec = serve(t, router, http.MethodGet, "/api/auth/me", token, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, models.RoleViewer, decodeBody[models.IdentityResponse](t, rec).User.Role)

	rec = serve(t, router, http.MethodGet, "/api/users", "not-a-jwt", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestEndToEnd_PasswordReset(t *testing.T) {
	router, storages := newSQLiteRouter(t)
	ctx := context.Background()

	rec := serve(t, router, http.MethodPost, "/api/auth/register", "", `{"name":"Ann","email":"ann@example.com","password":"secret1"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	userID := decodeBody[models.UserResponse](t, rec).User.UserID

	rec = serve(t, router, http.MethodPost, "/api/auth/reset-password", "", `{"email":"nobody@example.com"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = serve(t, router, http.MethodPost, "/api/auth/reset-password", "", `{"email":"ann@example.com"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	stored, err := storages.UserRepository.FindUserByEmail(ctx, "ann@example.com")
	require.NoError(t, err)
	require.NotNil(t, stored.ResetToken)
	require.NotNil(t, stored.ResetTokenExpires)
	token := *stored.ResetToken
	assert.Regexp(t, `^[0-9a-f]{40}$`, token)

	rec = serve(t, router, http.MethodGet, "/api/auth/reset/"+token, "", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = serve(t, router, http.MethodGet, "/api/auth/reset/"+strings.Repeat("0", 40), "", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = serve(t, router, http.MethodPost, "/api/auth/reset/"+token, "", `{"password":"n3w-secret"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	// токен одноразовый
	rec = serve(t, router, http.MethodPost, "/api/auth/reset/"+token, "", `{"password":"other-secret"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = serve(t, router, http.MethodPost, "/api/auth/login", "", `{"email":"ann@example.com","password":"secret1"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	rec = serve(t, router, http.MethodPost, "/api/auth/login", "", `{"email":"ann@example.com","password":"n3w-secret"}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	cleared, err := storages.UserRepository.FindUserByEmail(ctx, "ann@example.com")
	require.NoError(t, err)
	assert.Nil(t, cleared.ResetToken)
	assert.Nil(t, cleared.ResetTokenExpires)

	// expiry is compared in the database, including for non-UTC instants
	expiries := []struct {
		name    string
		expires time.Time
		want    int
	}{
		{name: "already expired", expires: time.Now().Add(-10 * time.Millisecond), want: http.StatusBadRequest},
		{name: "still valid", expires: time.Now().Add(time.Minute), want: http.StatusOK},
		{name: "still valid in a non-UTC zone", expires: time.Now().In(time.FixedZone("UTC+5", 5*3600)).Add(time.Minute), want: http.StatusOK},
	}
	for i, tt := range expiries {
		t.Run(tt.name, func(t *testing.T) {
			manual := strings.Repeat(strconv.Itoa(i), 40)
			require.NoError(t, storages.UserRepository.SetResetToken(ctx, userID, manual, tt.expires))

			rec := serve(t, router, http.MethodGet, "/api/auth/reset/"+manual, "", "")
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func signClaims(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("e2e-sign-key"))
	require.NoError(t, err)
	return signed
}

// A correctly signed token whose claims do not hold is an authentication
// failure on the identity gate and a rejected token on the claims gate.
func TestEndToEnd_TokenClaimFailures(t *testing.T) {
	router, _ := newSQLiteRouter(t)
	now := time.Now()

	tests := []struct {
		name   string
		claims jwt.MapClaims
	}{
		{name: "wrong issuer", claims: jwt.MapClaims{"iss": "someone-else", "sub": "1", "role": "Admin", "exp": now.Add(time.Hour).Unix()}},
		{name: "no exp", claims: jwt.MapClaims{"iss": "recipe-share", "sub": "1", "role": "Admin"}},
		{name: "nbf in the future", claims: jwt.MapClaims{"iss": "recipe-share", "sub": "1", "role": "Admin", "nbf": now.Add(time.Hour).Unix(), "exp": now.Add(2 * time.Hour).Unix()}},
		{name: "non-numeric sub", claims: jwt.MapClaims{"iss": "recipe-share", "sub": "ann@example.com", "role": "Admin", "exp": now.Add(time.Hour).Unix()}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token := signClaims(t, tt.claims)

			rec := serve(t, router, http.MethodGet, "/api/recipes", token, "")
			require.Equal(t, http.StatusUnauthorized, rec.Code, rec.Body.String())
			assert.Equal(t, app.MsgAuthenticationFailed, decodeBody[models.MessageResponse](t, rec).Message)

			rec = serve(t, router, http.MethodGet, "/api/auth/me", token, "")
			assert.Equal(t, http.StatusForbidden, rec.Code)
		})
	}
}

func TestEndToEnd_RecipeLifecycle(t *testing.T) {
	router, storages := newSQLiteRouter(t)
	ctx := context.Background()

	login := func(email string, role models.Role) string {
		rec := serve(t, router, http.MethodPost, "/api/auth/register", "", `{"name":"u","email":"`+email+`","password":"secret1"}`)
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		if role != models.RoleViewer {
			_, err := storages.UserRepository.UpdateUserRole(ctx, decodeBody[models.UserResponse](t, rec).User.UserID, role)
			require.NoError(t, err)
		}
		rec = serve(t, router, http.MethodPost, "/api/auth/login", "", `{"email":"`+email+`","password":"secret1"}`)
		require.Equal(t, http.StatusOK, rec.Code)
		return decodeBody[models.LoginResponse](t, rec).Token
	}

	author := login("author@example.com", models.RoleContributor)
	other := login("other@example.com", models.RoleContributor)
	viewer := login("viewer@example.com", models.RoleViewer)

	rec := serve(t, router, http.MethodGet, "/api/my-recipes", author, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = serve(t, router, http.MethodPost, "/api/recipes", author,
		`{"title":"Tomato Soup","ingredients":"tomato, salt","steps":"boil","category":"Soup"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	recipe := decodeBody[models.RecipeResponse](t, rec).Recipe
	path := "/api/recipes/" + strconv.FormatInt(recipe.RecipeID, 10)

	rec = serve(t, router, http.MethodGet, "/api/recipes?name=TOMATO", viewer, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeBody[models.RecipesResponse](t, rec).Recipes, 1)

	rec = serve(t, router, http.MethodPut, path, other, `{"title":"Stolen"}`)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = serve(t, router, http.MethodPost, path+"/rate", viewer, `{"rating":4}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.InDelta(t, 4.0, decodeBody[models.RatingResponse](t, rec).AverageRating, 0.001)

	rec = serve(t, router, http.MethodPost, path+"/rate", viewer, `{"rating":2}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.InDelta(t, 3.0, decodeBody[models.RatingResponse](t, rec).AverageRating, 0.001)

	rec = serve(t, router, http.MethodDelete, path, author, "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = serve(t, router, http.MethodGet, path, viewer, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
