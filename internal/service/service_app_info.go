package service

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-recipe-share/internal/config"
	"github.com/MKhiriev/go-recipe-share/internal/logger"
)

// versionService answers GET /api/version. The version is fixed at startup
// from APP_VERSION or the JSON config, falling back to the built-in default.
type versionService string

// NewAppInfoService fails with ErrVersionIsNotSpecified on a blank version,
// so a build without one never starts serving.
func NewAppInfoService(cfg config.App, logger *logger.Logger) (AppInfoService, error) {
	version := strings.TrimSpace(cfg.Version)
	if version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	logger.Info().Str("version", version).Msg("recipe-share server version")
	return versionService(version), nil
}

func (v versionService) GetAppVersion(context.Context) string {
	return string(v)
}
