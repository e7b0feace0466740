package handler

import (
	"github.com/MKhiriev/go-recipe-share/internal/config"
	"github.com/MKhiriev/go-recipe-share/internal/handler/http"
	"github.com/MKhiriev/go-recipe-share/internal/logger"
	"github.com/MKhiriev/go-recipe-share/internal/service"
)

// Handlers groups the transport handlers of the server. The recipe-share API
// is served over HTTP only.
type Handlers struct {
	HTTP *http.Handler
}

// NewHandlers builds the HTTP API. Every gated route needs one of the two
// identity resolvers, so both must be wired before any route is mounted.
func NewHandlers(services *service.Services, cfg config.StructuredConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Str("address", cfg.Server.HTTPAddress).Msg("creating recipe API handlers")

	if cfg.Server.HTTPAddress == "" {
		return nil, errNoHTTPAddress
	}
	if services == nil || services.StoreIdentityResolver == nil || services.ClaimsIdentityResolver == nil {
		return nil, errNoIdentityResolver
	}

	return &Handlers{HTTP: http.NewHandler(services, cfg, logger)}, nil
}
