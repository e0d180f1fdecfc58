package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/sm8ta/webike_auth_microservice_nikita/internal/core/ports"
)

const defaultShutdownTimeout = 10 * time.Second

type App struct {
	HTTPServer *http.Server

	log             ports.LoggerPort
	shutdownTimeout time.Duration
	closers         []func() error
}

// New builds an App. Closers run in reverse order once the server has stopped.
func New(log ports.LoggerPort, server *http.Server, closers ...func() error) *App {
	return &App{
		HTTPServer:      server,
		log:             log,
		shutdownTimeout: defaultShutdownTimeout,
		closers:         closers,
	}
}

// Run serves HTTP until ctx is cancelled or the listener fails, then shuts
// the server down gracefully.
func (a *App) Run(ctx context.Context) error {
	const op = "app.Run"

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		a.log.Info("Starting the HTTP server", map[string]interface{}{
			"addr": a.HTTPServer.Addr,
		})
		if err := a.HTTPServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("%s: %w", op, err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		a.log.Info("Shutting down the HTTP server", nil)

		shutdownCtx, cancel := context.WithTimeout(context.Background(), a.shutdownTimeout)
		defer cancel()
		if err := a.HTTPServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("%s: shutdown: %w", op, err)
		}
		return nil
	})

	err := g.Wait()
	a.Stop()
	return err
}

// Stop releases the resources handed to New.
func (a *App) Stop() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			a.log.Warn("Failed to release resource", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}
	a.closers = nil
	a.log.Info("Application stopped", nil)
}
