package http

import (
	"net/http"

	"github.com/MKhiriev/go-recipe-share/internal/logger"
	"github.com/MKhiriev/go-recipe-share/internal/service"
	"github.com/MKhiriev/go-recipe-share/internal/utils"
	"github.com/MKhiriev/go-recipe-share/models"
)

// authenticate returns a middleware that resolves the bearer token of the
// request through resolver and stores the resulting [models.Identity] in
// the request context (see [utils.WithIdentity]).
//
// Routes choose the resolver explicitly: the store-backed one re-reads the
// user and sees role changes immediately, the claims-backed one trusts the
// token until it expires. Rejections are answered with the status and
// message mapped from the resolver's error, so the two variants report
// failures differently.
//
// A header that is present but not of the form "Bearer <token>" is treated
// as carrying no token.
func (h *Handler) authenticate(resolver service.IdentityResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)

			identity, err := resolver.Resolve(r.Context(), token)
			if err != nil {
				writeError(w, r, "*Handler.authenticate", err)
				return
			}

			log := logger.FromRequest(r).WithUser(identity.UserID, string(identity.Role))
			ctx := utils.WithIdentity(log.WithContext(r.Context()), identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// requireRole rejects requests whose identity does not hold one of roles
// with 403. It must run after authenticate; a request without an identity
// is rejected with 401.
func (h *Handler) requireRole(roles ...models.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, ok := utils.GetIdentityFromContext(r.Context())
			if !ok {
				writeError(w, r, "*Handler.requireRole", service.ErrNoToken)
				return
			}

			if err := service.RequireRole(identity, roles...); err != nil {
				writeError(w, r, "*Handler.requireRole", err)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// bearerToken extracts the token of an "Authorization: Bearer <token>"
// header, or returns "" when there is none.
func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header == "" {
		return ""
	}

	token, err := utils.ParseBearerToken(header)
	if err != nil {
		logger.FromRequest(r).Debug().Err(err).Msg("unusable Authorization header")
		return ""
	}
	return token
}
