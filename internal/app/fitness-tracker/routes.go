// Package fitnesstracker предоставляет маршруты для основного приложения.
package fitnesstracker

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/magabrotheeeer/fitness-tracker/internal/http/handlers/auth/login"
	"github.com/magabrotheeeer/fitness-tracker/internal/http/handlers/auth/register"
	completioncreate "github.com/magabrotheeeer/fitness-tracker/internal/http/handlers/completion/create"
	completionlist "github.com/magabrotheeeer/fitness-tracker/internal/http/handlers/completion/list"
	completionremove "github.com/magabrotheeeer/fitness-tracker/internal/http/handlers/completion/remove"
	exercisecreate "github.com/magabrotheeeer/fitness-tracker/internal/http/handlers/exercise/create"
	exerciselist "github.com/magabrotheeeer/fitness-tracker/internal/http/handlers/exercise/list"
	exerciseremove "github.com/magabrotheeeer/fitness-tracker/internal/http/handlers/exercise/remove"
	exerciseupdate "github.com/magabrotheeeer/fitness-tracker/internal/http/handlers/exercise/update"
	"github.com/magabrotheeeer/fitness-tracker/internal/http/handlers/health"
	programattach "github.com/magabrotheeeer/fitness-tracker/internal/http/handlers/program/attach"
	programdetach "github.com/magabrotheeeer/fitness-tracker/internal/http/handlers/program/detach"
	programlist "github.com/magabrotheeeer/fitness-tracker/internal/http/handlers/program/list"
	userlist "github.com/magabrotheeeer/fitness-tracker/internal/http/handlers/user/list"
	userread "github.com/magabrotheeeer/fitness-tracker/internal/http/handlers/user/read"
	userupdate "github.com/magabrotheeeer/fitness-tracker/internal/http/handlers/user/update"
	"github.com/magabrotheeeer/fitness-tracker/internal/http/middlewarectx"
	authservice "github.com/magabrotheeeer/fitness-tracker/internal/services/auth"
	completionservice "github.com/magabrotheeeer/fitness-tracker/internal/services/completion"
	exerciseservice "github.com/magabrotheeeer/fitness-tracker/internal/services/exercise"
	programservice "github.com/magabrotheeeer/fitness-tracker/internal/services/program"
	userservice "github.com/magabrotheeeer/fitness-tracker/internal/services/user"
	"github.com/magabrotheeeer/fitness-tracker/internal/storage"
)

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger, db *storage.Storage,
	authService *authservice.Service,
	exerciseService *exerciseservice.Service,
	programService *programservice.Service,
	userService *userservice.Service,
	completionService *completionservice.Service,
) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
	)

	r.Route("/api/v1", func(r chi.Router) {
		// Открытые конечные точки
		r.Post("/auth/register", register.New(logger, authService).ServeHTTP)
		r.Post("/auth/login", login.New(logger, authService).ServeHTTP)
		r.Get("/health", health.New(logger, db).ServeHTTP)
		r.Get("/exercises", exerciselist.New(logger, exerciseService).ServeHTTP)
		r.Get("/programs", programlist.New(logger, programService).ServeHTTP)

		// Группа с JWT аутентификацией
		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.Authenticate(authService, logger))
			r.Use(middlewarectx.RateLimitMiddleware(logger))
			r.Get("/users", userlist.New(logger, userService).ServeHTTP)
			r.Get("/users/{id}", userread.New(logger, userService).ServeHTTP)
			r.Get("/exercises/completions", completionlist.New(logger, completionService).ServeHTTP)
			r.Post("/exercises/completions/{exerciseId}", completioncreate.New(logger, completionService).ServeHTTP)
			r.Delete("/exercises/completions/{completionId}", completionremove.New(logger, completionService).ServeHTTP)
		})

		// Группа, доступная только администраторам
		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.RequireAdmin(authService, logger))
			r.Use(middlewarectx.RateLimitMiddleware(logger))
			r.Post("/exercises", exercisecreate.New(logger, exerciseService).ServeHTTP)
			r.Put("/exercises/{id}", exerciseupdate.New(logger, exerciseService).ServeHTTP)
			r.Delete("/exercises/{id}", exerciseremove.New(logger, exerciseService).ServeHTTP)
			r.Post("/programs/{programId}/{exerciseId}", programattach.New(logger, programService).ServeHTTP)
			r.Delete("/programs/{programId}/{exerciseId}", programdetach.New(logger, programService).ServeHTTP)
			r.Put("/users/{id}", userupdate.New(logger, userService).ServeHTTP)
		})
	})

	r.Handle("/metrics", promhttp.Handler())
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
