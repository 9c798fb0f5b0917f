package app

import (
	"context"
	"fmt"
	stdhttp "net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/classchat/classchat-server/internal/config"
	"github.com/classchat/classchat-server/internal/core"
	"github.com/classchat/classchat-server/internal/store"
	"github.com/classchat/classchat-server/internal/store/sqlite"
	transporthttp "github.com/classchat/classchat-server/internal/transport/http"
)

// App wires together core and transport layers.
type App struct {
	server          *stdhttp.Server
	shutdownTimeout time.Duration
	hub             *core.Hub
	archive         store.Archive
	log             *zerolog.Logger
}

// New constructs the application with provided configuration.
func New(cfg *config.Config, logger *zerolog.Logger) (*App, error) {
	var archive store.Archive
	if cfg.ArchivePath != "" {
		a, err := sqlite.New(cfg.ArchivePath)
		if err != nil {
			return nil, fmt.Errorf("init archive: %w", err)
		}
		archive = a
		logger.Info().Str("archive_path", cfg.ArchivePath).Msg("message archive enabled")
	}

	hub := core.NewHub(cfg.Teacher, cfg.DefaultRoom, archive, logger)
	server := transporthttp.NewServer(hub, cfg, logger)

	return &App{
		server:          server,
		shutdownTimeout: cfg.ShutdownTimeout,
		hub:             hub,
		archive:         archive,
		log:             logger,
	}, nil
}

// Run starts the HTTP server and blocks until context cancellation or fatal error.
func (a *App) Run(ctx context.Context) error {
	serverErr := make(chan error, 1)

	go func() {
		if err := a.server.ListenAndServe(); err != nil && err != stdhttp.ErrServerClosed {
			serverErr <- err
			return
		}
		serverErr <- nil
	}()

	select {
	case err := <-serverErr:
		a.cleanup()
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), a.shutdownTimeout)
		defer cancel()

		a.log.Info().Msg("shutting down http server")
		if err := a.server.Shutdown(shutdownCtx); err != nil {
			a.cleanup()
			return err
		}

		a.cleanup()
		return <-serverErr
	}
}

// cleanup closes the archive and other resources.
func (a *App) cleanup() {
	if a.archive != nil {
		if err := a.archive.Close(); err != nil {
			a.log.Warn().Err(err).Msg("failed to close archive")
		} else {
			a.log.Info().Msg("archive closed")
		}
	}
}
