package server

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-recipe-share/internal/config"
	"github.com/MKhiriev/go-recipe-share/internal/handler"
	"github.com/MKhiriev/go-recipe-share/internal/logger"
)

// App runs the HTTP server until the process receives a stop signal.
type App struct {
	httpServer Server
	logger     *logger.Logger
}

func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (*App, error) {
	logger.Info().Msg("creating new server...")

	if handlers == nil || handlers.HTTP == nil {
		return nil, errNoHTTPHandler
	}
	if cfg.HTTPAddress == "" {
		return nil, errNoListenAddress
	}

	return &App{
		httpServer: newHTTPServer(handlers.HTTP.Init(), cfg, logger),
		logger:     logger,
	}, nil
}

// Run serves until SIGTERM, SIGINT or SIGQUIT arrives and then shuts the
// server down gracefully.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	return a.run(ctx)
}

// run serves until ctx is done or the server fails on its own.
func (a *App) run(ctx context.Context) error {
	serveErr := make(chan error, 1)
	go func() {
		serveErr <- a.httpServer.RunServer()
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("error running HTTP server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	a.logger.Info().Msg("stop signal received, shutting down")
	if err := a.httpServer.Shutdown(context.Background()); err != nil {
		return fmt.Errorf("error shutting down HTTP server: %w", err)
	}
	if err := <-serveErr; err != nil {
		return fmt.Errorf("error running HTTP server: %w", err)
	}

	a.logger.Info().Msg("server Shutdown gracefully")
	return nil
}
