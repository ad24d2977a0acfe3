// Package fitnesstracker собирает приложение фитнес-трекера:
// хранилище, миграции, сервисы, маршруты и HTTP-сервер.
package fitnesstracker

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"

	"github.com/magabrotheeeer/fitness-tracker/internal/config"
	"github.com/magabrotheeeer/fitness-tracker/internal/lib/jwt"
	"github.com/magabrotheeeer/fitness-tracker/internal/migrations"
	authservice "github.com/magabrotheeeer/fitness-tracker/internal/services/auth"
	completionservice "github.com/magabrotheeeer/fitness-tracker/internal/services/completion"
	exerciseservice "github.com/magabrotheeeer/fitness-tracker/internal/services/exercise"
	programservice "github.com/magabrotheeeer/fitness-tracker/internal/services/program"
	userservice "github.com/magabrotheeeer/fitness-tracker/internal/services/user"
	"github.com/magabrotheeeer/fitness-tracker/internal/storage"
)

// App владеет HTTP-сервером и соединением с базой данных.
type App struct {
	server *http.Server
	logger *slog.Logger
	db     *storage.Storage
}

// New инициализирует приложение: подключается к базе, накатывает миграции,
// собирает сервисы и регистрирует маршруты.
func New(cfg *config.Config, logger *slog.Logger) (*App, error) {
	db, err := storage.New(cfg.StorageConnectionString)
	if err != nil {
		return nil, err
	}
	if err = migrations.Run(db.DB, cfg.MigrationsPath); err != nil {
		return nil, err
	}

	jwtMaker := jwt.NewMaker(cfg.JWTSecretKey, cfg.TokenTTL)

	authService := authservice.New(db, jwtMaker)
	exerciseService := exerciseservice.New(db, logger)
	programService := programservice.New(db, logger)
	userService := userservice.New(db, logger)
	completionService := completionservice.New(db, logger)

	router := chi.NewRouter()
	RegisterRoutes(router, logger, db,
		authService, exerciseService, programService, userService, completionService)

	srv := &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &App{
		server: srv,
		logger: logger,
		db:     db,
	}, nil
}

// Run запускает HTTP-сервер и блокируется до отмены контекста
// или ошибки сервера. При отмене контекста выполняет graceful shutdown.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		err := a.server.Shutdown(timeoutCtx)
		if closeErr := a.db.Close(); closeErr != nil {
			a.logger.Error("failed to close storage", slog.String("error", closeErr.Error()))
		}
		return err
	}
}
