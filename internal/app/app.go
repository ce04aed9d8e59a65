package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/heartmarshall/slang-backend/internal/adapter/dictfile"
	"github.com/heartmarshall/slang-backend/internal/config"
	"github.com/heartmarshall/slang-backend/internal/service/translator"
	"github.com/heartmarshall/slang-backend/internal/transport/middleware"
)

// Run is the application entry point. It loads configuration from
// configPath (CONFIG_PATH when empty), loads the dictionary, starts the
// file watcher and serves HTTP until ctx is done.
// A dictionary that fails to load does not stop the server: lookups answer
// 500 until a corrected file is picked up by the watcher.
func Run(ctx context.Context, configPath string) error {
	if configPath == "" {
		configPath = os.Getenv("CONFIG_PATH")
	}
	cfg, err := config.LoadFrom(configPath)
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("dictionary", cfg.Dictionary.Path),
	)

	store := dictfile.NewStore(logger, cfg.Dictionary.Path)
	if err := store.Reload(ctx); err != nil {
		logger.Warn("serving without a dictionary until the file is fixed",
			slog.String("error", err.Error()))
	}

	if cfg.Dictionary.Watch {
		stop, err := watchDictionary(logger, store, cfg.Dictionary)
		if err != nil {
			logger.Warn("dictionary hot reload disabled", slog.String("error", err.Error()))
		} else {
			defer stop()
		}
	}

	var limiter *middleware.RateLimiter
	if cfg.RateLimit.RequestsPerMinute > 0 {
		limiter = middleware.NewRateLimiter(cfg.RateLimit)
		defer limiter.Stop()
	}

	svc := translator.NewService(logger, store)

	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      NewRouter(cfg, logger, svc, limiter),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	}

	logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	return nil
}

func watchDictionary(logger *slog.Logger, store *dictfile.Store, cfg config.DictionaryConfig) (func(), error) {
	w, err := dictfile.NewWatcher(logger, cfg.Debounce)
	if err != nil {
		return nil, err
	}

	err = w.Watch(store.Path(), func() {
		_ = store.Reload(context.Background()) //nolint:errcheck // logged by the store
	})
	if err != nil {
		_ = w.Stop()
		return nil, err
	}

	return func() { _ = w.Stop() }, nil
}
