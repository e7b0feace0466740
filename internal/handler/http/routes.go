package http

import (
	"net/http"

	"github.com/MKhiriev/go-recipe-share/internal/app"
	"github.com/MKhiriev/go-recipe-share/models"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging)
	router.Use(cors.Handler(cors.Options{
		// empty means every origin
		AllowedOrigins: h.server.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Authorization", "Content-Type", traceIDHeader},
		ExposedHeaders: []string{traceIDHeader},
		MaxAge:         300,
	}))
	router.Use(middleware.Compress(5, "application/json", "text/plain"))
	if h.server.RequestTimeout > 0 {
		router.Use(middleware.Timeout(h.server.RequestTimeout))
	}

	// identity re-reads the user on every request, claims trusts the token
	identity := h.authenticate(h.services.StoreIdentityResolver)
	claims := h.authenticate(h.services.ClaimsIdentityResolver)

	router.Route("/api", func(r chi.Router) {
		// routes without authorization
		r.Get("/version", h.getServerVersion)

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", h.register)
			r.Post("/login", h.login)
			r.Post("/reset-password", h.requestPasswordReset)
			r.Get("/reset/{token}", h.verifyResetToken)
			r.Post("/reset/{token}", h.resetPassword)

			r.With(claims).Get("/me", h.me)
		})

		r.Group(func(r chi.Router) {
			r.Use(identity)

			r.Route("/recipes", func(r chi.Router) {
				r.Get("/", h.getRecipes)
				r.Get("/share/{id}", h.shareRecipe)
				r.Get("/{id}", h.getRecipe)

				r.With(h.requireRole(models.RoleContributor, models.RoleAdmin)).Post("/", h.createRecipe)
				r.With(h.requireRole(models.RoleAdmin, models.RoleContributor)).Put("/{id}", h.updateRecipe)
				r.With(h.requireRole(models.RoleContributor, models.RoleAdmin)).Delete("/{id}", h.deleteRecipe)
				r.With(h.requireRole(models.RoleViewer)).Post("/{id}/rate", h.rateRecipe)
			})

			r.With(h.requireRole(models.RoleContributor, models.RoleAdmin)).Get("/my-recipes", h.getMyRecipes)

			r.Route("/users", func(r chi.Router) {
				r.Use(h.requireRole(models.RoleAdmin))

				r.Get("/", h.getUsers)
				r.Get("/{id}", h.getUser)
				r.Put("/{id}/role", h.updateUserRole)
				r.Delete("/{id}", h.deleteUser)
				r.Get("/{id}/recipes", h.getUserRecipes)
			})
		})
	})

	if h.picturesDir != "" {
		router.Handle("/uploads/*", http.StripPrefix("/uploads/", http.FileServer(http.Dir(h.picturesDir))))
	}

	// unknown routes and unsupported methods look the same to the caller
	router.NotFound(h.notFound)
	router.MethodNotAllowed(h.notFound)

	return router
}

func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	writeMessage(w, http.StatusNotFound, models.MessageResponse{Message: app.MsgNotFound})
}
