package app

import (
	"blackjack_backend/internal/config"
	"blackjack_backend/internal/repository"
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

type App struct {
	ServiceProvider *ServiceProvider

	envFile    string
	configPath string
}

func NewApp(envFile, configPath string) *App {
	return &App{
		envFile:    envFile,
		configPath: configPath,
	}
}

func (s *App) initServiceProvider() {
	s.ServiceProvider = newServiceProvider(s.configPath)
}

// Run поднимает HTTP сервер и ждет SIGINT/SIGTERM или отмены ctx
func (s *App) Run(ctx context.Context) error {
	envErr := config.Load(s.envFile)
	s.initServiceProvider()

	logger := s.ServiceProvider.Logger()
	if envErr != nil {
		logger.Warn("env file not loaded", "path", s.envFile, "err", envErr)
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	dbc := s.ServiceProvider.DBClient(ctx)
	defer dbc.Close()

	if err := repository.Migrate(ctx, dbc); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	srv := &http.Server{
		Addr:              s.ServiceProvider.HTTPCfg().Address(),
		Handler:           s.ServiceProvider.Router(ctx),
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("starting server", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
