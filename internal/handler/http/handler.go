package http

import (
	"github.com/MKhiriev/go-recipe-share/internal/config"
	"github.com/MKhiriev/go-recipe-share/internal/logger"
	"github.com/MKhiriev/go-recipe-share/internal/service"
)

type Handler struct {
	services *service.Services

	server config.Server

	// picturesDir is served under /uploads. It is empty when pictures are
	// kept in S3.
	picturesDir string

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")

	h := &Handler{
		services: services,
		server:   cfg.Server,
		logger:   logger,
	}
	if cfg.Storage.Pictures.S3Bucket == "" {
		h.picturesDir = cfg.Storage.Pictures.Dir
	}

	return h
}
