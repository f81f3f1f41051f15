package app

import (
	"context"
	"errors"
	"net/http"
	"spin_wheel/internal/config"
	"time"

	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

type App struct {
	ServiceProvider *ServiceProvider

	envPath    string
	configPath string
}

// NewApp envPath - файл .env, configPath - config.yaml с настройками колеса
func NewApp(envPath, configPath string) *App {
	return &App{envPath: envPath, configPath: configPath}
}

func (s *App) initServiceProvider() {
	err := config.Load(s.envPath)
	s.ServiceProvider = newServiceProvider(s.configPath)
	if err != nil {
		s.ServiceProvider.Logger().Warn("env file not loaded", zap.String("path", s.envPath), zap.Error(err))
	}
}

// Run Поднимает HTTP сервер и ждет отмены ctx
func (s *App) Run(ctx context.Context) error {
	s.initServiceProvider()
	defer s.ServiceProvider.Close()

	logger := s.ServiceProvider.Logger()
	srv := &http.Server{
		Addr:              s.ServiceProvider.HTTPCfg().Address(),
		Handler:           s.ServiceProvider.Router(ctx),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting server", zap.String("addr", srv.Addr))
		err := srv.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	err := srv.Shutdown(shutdownCtx)
	if err != nil {
		logger.Error("shutdown error", zap.Error(err))
		return err
	}
	return <-errCh
}

// Inspect Открывает хранилище без HTTP сервера, для команды inspect
func (s *App) Inspect(ctx context.Context) (*ServiceProvider, error) {
	s.initServiceProvider()
	_ = s.ServiceProvider.WheelService(ctx)
	return s.ServiceProvider, s.ServiceProvider.loadErr
}
