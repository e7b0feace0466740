package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-recipe-share/internal/app"
	"github.com/MKhiriev/go-recipe-share/internal/logger"
	"github.com/MKhiriev/go-recipe-share/internal/mock"
	"github.com/MKhiriev/go-recipe-share/internal/service"
	"github.com/MKhiriev/go-recipe-share/internal/store"
	"github.com/MKhiriev/go-recipe-share/internal/utils"
	"github.com/MKhiriev/go-recipe-share/models"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// ── helpers ───────────────────────────────────────────────────────────────────

// gatedRequest sends a GET with the given Authorization header through
// authenticate(resolver) followed by requireRole(roles...). The protected
// handler echoes the identity it received.
func gatedRequest(t *testing.T, resolver service.IdentityResolver, authHeader string, roles ...models.Role) (*httptest.ResponseRecorder, *models.Identity) {
	t.Helper()
	h := newTestHandler(nil)

	var seen *models.Identity
	protected := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity, ok := utils.GetIdentityFromContext(r.Context())
		require.True(t, ok)
		seen = &identity
		w.WriteHeader(http.StatusOK)
	})

	chain := h.authenticate(resolver)(h.requireRole(roles...)(protected))

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	chain.ServeHTTP(rec, req)
	return rec, seen
}

func parseTokenReturning(claims models.Token, err error) *fakeAuthService {
	return &fakeAuthService{
		parseTokenFn: func(_ context.Context, token string) (models.Token, error) {
			return claims, err
		},
	}
}

// ── identity-lookup gate ──────────────────────────────────────────────────────

func TestAuthenticate_StoreResolver(t *testing.T) {
	viewerClaims := models.Token{UserID: 5, Role: models.RoleViewer}

	tests := []struct {
		name        string
		header      string
		parseErr    error
		setupRepo   func(repo *mock.MockUserRepository)
		wantStatus  int
		wantMessage string
		wantRole    models.Role
	}{
		{
			name:        "header absent",
			wantStatus:  http.StatusUnauthorized,
			wantMessage: app.MsgNoToken,
		},
		{
			name:        "not a bearer header",
			header:      "Basic dXNlcjpwYXNz",
			wantStatus:  http.StatusUnauthorized,
			wantMessage: app.MsgNoToken,
		},
		{
			name:        "expired token",
			header:      "Bearer expired",
			parseErr:    service.ErrTokenIsExpired,
			wantStatus:  http.StatusUnauthorized,
			wantMessage: app.MsgTokenExpired,
		},
		{
			name:        "malformed token",
			header:      "Bearer garbage",
			parseErr:    service.ErrTokenMalformed,
			wantStatus:  http.StatusBadRequest,
			wantMessage: app.MsgInvalidToken,
		},
		{
			name:        "claims rejected",
			header:      "Bearer foreign-issuer",
			parseErr:    service.ErrAuthenticationFailed,
			wantStatus:  http.StatusUnauthorized,
			wantMessage: app.MsgAuthenticationFailed,
		},
		{
			name:        "unspecified verification failure",
			header:      "Bearer odd",
			parseErr:    service.ErrTokenUnspecified,
			wantStatus:  http.StatusInternalServerError,
			wantMessage: app.MsgInternalServerError,
		},
		{
			name:   "user deleted after issuing",
			header: "Bearer valid",
			setupRepo: func(repo *mock.MockUserRepository) {
				repo.EXPECT().FindUserByID(gomock.Any(), int64(5)).Return(models.User{}, store.ErrNoUserWasFound)
			},
			wantStatus:  http.StatusUnauthorized,
			wantMessage: app.MsgAuthenticationFailed,
		},
		{
			name:   "store failure",
			header: "Bearer valid",
			setupRepo: func(repo *mock.MockUserRepository) {
				repo.EXPECT().FindUserByID(gomock.Any(), int64(5)).Return(models.User{}, store.ErrExecutingQuery)
			},
			wantStatus:  http.StatusInternalServerError,
			wantMessage: app.MsgInternalServerError,
		},
		{
			// the stored role wins over the role in the token
			name:   "promoted user passes",
			header: "Bearer valid",
			setupRepo: func(repo *mock.MockUserRepository) {
				repo.EXPECT().FindUserByID(gomock.Any(), int64(5)).
					Return(models.User{UserID: 5, Role: models.RoleAdmin}, nil)
			},
			wantStatus: http.StatusOK,
			wantRole:   models.RoleAdmin,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := mock.NewMockUserRepository(ctrl)
			if tt.setupRepo != nil {
				tt.setupRepo(repo)
			}

			resolver := service.NewStoreIdentityResolver(parseTokenReturning(viewerClaims, tt.parseErr), repo)
			rec, seen := gatedRequest(t, resolver, tt.header, models.RoleAdmin)

			require.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())
			if tt.wantStatus != http.StatusOK {
				assert.Equal(t, tt.wantMessage, decodeBody[models.MessageResponse](t, rec).Message)
				assert.Nil(t, seen)
				return
			}
			require.NotNil(t, seen)
			assert.Equal(t, tt.wantRole, seen.Role)
		})
	}
}

// ── claim-trust gate ──────────────────────────────────────────────────────────

func TestAuthenticate_ClaimsResolver(t *testing.T) {
	tests := []struct {
		name        string
		header      string
		parseErr    error
		wantStatus  int
		wantMessage string
	}{
		{name: "header absent", wantStatus: http.StatusUnauthorized, wantMessage: app.MsgAccessTokenMissing},
		{name: "expired", header: "Bearer x", parseErr: service.ErrTokenIsExpired, wantStatus: http.StatusForbidden, wantMessage: app.MsgInvalidOrExpiredAccessToken},
		{name: "malformed", header: "Bearer x", parseErr: service.ErrTokenMalformed, wantStatus: http.StatusForbidden, wantMessage: app.MsgInvalidOrExpiredAccessToken},
		{name: "unspecified", header: "Bearer x", parseErr: service.ErrTokenUnspecified, wantStatus: http.StatusForbidden, wantMessage: app.MsgInvalidOrExpiredAccessToken},
		{name: "valid", header: "Bearer x", wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims := models.Token{UserID: 9, Role: models.RoleContributor}
			resolver := service.NewClaimsIdentityResolver(parseTokenReturning(claims, tt.parseErr))

			rec, seen := gatedRequest(t, resolver, tt.header, models.AllRoles...)

			require.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus != http.StatusOK {
				assert.Equal(t, tt.wantMessage, decodeBody[models.MessageResponse](t, rec).Message)
				return
			}
			require.NotNil(t, seen)
			assert.Equal(t, models.Identity{UserID: 9, Role: models.RoleContributor}, *seen)
		})
	}
}

func TestAuthenticate_TagsRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	h := newTestHandler(nil)
	resolver := mock.NewMockIdentityResolver(gomock.NewController(t))
	resolver.EXPECT().
		Resolve(gomock.Any(), "admin-token").
		Return(models.Identity{UserID: 12, Role: models.RoleAdmin}, nil)

	chain := h.authenticate(resolver)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.FromRequest(r).Info().Msg("recipe deleted")
	}))

	req := httptest.NewRequest(http.MethodDelete, "/api/recipes/3", nil)
	req.Header.Set("Authorization", "Bearer admin-token")
	req = req.WithContext(zerolog.New(&buf).WithContext(req.Context()))
	chain.ServeHTTP(httptest.NewRecorder(), req)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.EqualValues(t, 12, entry["user_id"])
	assert.Equal(t, "Admin", entry["user_role"])
}

// ── requireRole ───────────────────────────────────────────────────────────────

func TestRequireRole(t *testing.T) {
	tests := []struct {
		name       string
		role       models.Role
		allowed    []models.Role
		wantStatus int
	}{
		{name: "viewer on admin-only", role: models.RoleViewer, allowed: []models.Role{models.RoleAdmin}, wantStatus: http.StatusForbidden},
		{name: "contributor on admin-only", role: models.RoleContributor, allowed: []models.Role{models.RoleAdmin}, wantStatus: http.StatusForbidden},
		{name: "admin on admin or contributor", role: models.RoleAdmin, allowed: []models.Role{models.RoleAdmin, models.RoleContributor}, wantStatus: http.StatusOK},
		{name: "viewer on viewer-only", role: models.RoleViewer, allowed: []models.Role{models.RoleViewer}, wantStatus: http.StatusOK},
		// rating is restricted to viewers, admins included
		{name: "admin on viewer-only", role: models.RoleAdmin, allowed: []models.Role{models.RoleViewer}, wantStatus: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resolver := mock.NewMockIdentityResolver(gomock.NewController(t))
			resolver.EXPECT().
				Resolve(gomock.Any(), "").
				Return(models.Identity{UserID: 1, Role: tt.role}, nil)

			rec, _ := gatedRequest(t, resolver, "", tt.allowed...)

			require.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusForbidden {
				assert.Equal(t, app.MsgInsufficientPermissions, decodeBody[models.MessageResponse](t, rec).Message)
			}
		})
	}
}

func TestRequireRole_WithoutIdentity_Unauthorized(t *testing.T) {
	h := newTestHandler(nil)
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next must not be called")
	})

	rec := httptest.NewRecorder()
	h.requireRole(models.RoleAdmin)(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestBearerToken(t *testing.T) {
	tests := []struct {
		header string
		want   string
	}{
		{header: "", want: ""},
		{header: "Bearer abc.def.ghi", want: "abc.def.ghi"},
		{header: "Token abc", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			assert.Equal(t, tt.want, bearerToken(req))
		})
	}
}
