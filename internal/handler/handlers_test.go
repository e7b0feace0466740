package handler

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-recipe-share/internal/config"
	"github.com/MKhiriev/go-recipe-share/internal/logger"
	"github.com/MKhiriev/go-recipe-share/internal/service"
	"github.com/MKhiriev/go-recipe-share/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubResolver struct{}

func (stubResolver) Resolve(context.Context, string) (models.Identity, error) {
	return models.Identity{UserID: 1, Role: models.RoleViewer}, nil
}

func wiredServices() *service.Services {
	return &service.Services{
		StoreIdentityResolver:  stubResolver{},
		ClaimsIdentityResolver: stubResolver{},
	}
}

func TestNewHandlers_BuildsHTTPHandler(t *testing.T) {
	cfg := config.StructuredConfig{Server: config.Server{HTTPAddress: ":5000"}}

	h, err := NewHandlers(wiredServices(), cfg, logger.Nop())

	require.NoError(t, err)
	assert.NotNil(t, h.HTTP)
}

func TestNewHandlers_Misconfigured(t *testing.T) {
	withAddress := config.StructuredConfig{Server: config.Server{HTTPAddress: ":5000"}}
	claimsOnly := &service.Services{ClaimsIdentityResolver: stubResolver{}}

	tests := []struct {
		name     string
		services *service.Services
		cfg      config.StructuredConfig
		wantErr  error
	}{
		{name: "no address", services: wiredServices(), cfg: config.StructuredConfig{}, wantErr: errNoHTTPAddress},
		{name: "nil services", services: nil, cfg: withAddress, wantErr: errNoIdentityResolver},
		{name: "store resolver missing", services: claimsOnly, cfg: withAddress, wantErr: errNoIdentityResolver},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, err := NewHandlers(tt.services, tt.cfg, logger.Nop())

			require.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, h)
		})
	}
}
