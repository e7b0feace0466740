package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-recipe-share/internal/config"
	"github.com/MKhiriev/go-recipe-share/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAppInfoService_RejectsBlankVersion(t *testing.T) {
	for _, version := range []string{"", "   ", "\t\n"} {
		svc, err := NewAppInfoService(config.App{Version: version}, logger.Nop())

		assert.Nil(t, svc)
		assert.ErrorIs(t, err, ErrVersionIsNotSpecified, "version %q", version)
	}
}

func TestAppInfoService_GetAppVersion(t *testing.T) {
	tests := []struct {
		name       string
		configured string
		want       string
	}{
		{name: "plain release", configured: "1.4.0", want: "1.4.0"},
		{name: "pre-release with build metadata", configured: "v2.0.0-rc.1+recipes.7", want: "v2.0.0-rc.1+recipes.7"},
		{name: "surrounding whitespace trimmed", configured: "  0.9.3\n", want: "0.9.3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, err := NewAppInfoService(config.App{Version: tt.configured}, logger.Nop())
			require.NoError(t, err)

			assert.Equal(t, tt.want, svc.GetAppVersion(context.Background()))
		})
	}
}

// версия не зависит от контекста запроса
func TestAppInfoService_GetAppVersion_IgnoresCancelledContext(t *testing.T) {
	svc, err := NewAppInfoService(config.App{Version: "1.0.0"}, logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.Equal(t, "1.0.0", svc.GetAppVersion(ctx))
}
