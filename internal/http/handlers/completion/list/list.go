// Package list реализует HTTP-обработчик списка выполненных упражнений
// текущего пользователя.
package list

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/fitness-tracker/internal/http/middlewarectx"
	"github.com/magabrotheeeer/fitness-tracker/internal/http/response"
	"github.com/magabrotheeeer/fitness-tracker/internal/lib/locale"
	"github.com/magabrotheeeer/fitness-tracker/internal/lib/sl"
	"github.com/magabrotheeeer/fitness-tracker/internal/models"
)

// Handler обрабатывает HTTP-запросы на получение выполненных упражнений.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики выполненных упражнений.
type Service interface {
	List(ctx context.Context, userID int) ([]*models.CompletedExercise, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Выполненные упражнения
// @Description Возвращает список выполненных упражнений текущего пользователя.
// @Tags Completions
// @Produce  json
// @Success 200 {object} response.Response "Список выполненных упражнений"
// @Failure 401 {object} response.ErrorResponse "Пользователь не аутентифицирован"
// @Security BearerAuth
// @Router /exercises/completions [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.completion.list"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)
	lang := r.Header.Get("Language")

	identity, ok := middlewarectx.Identity(r.Context())
	if !ok {
		log.Error("identity not found in context")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error(locale.Localize(lang, "User is not authenticated")))
		return
	}

	completions, err := h.service.List(r.Context(), identity.ID)
	if err != nil {
		log.Error("failed to list completions", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error(locale.Localize(lang, "Internal server error")))
		return
	}

	log.Info("listed completions",
		slog.Int("user_id", identity.ID),
		slog.Int("count", len(completions)))
	render.JSON(w, r, response.OKWithData(completions,
		locale.Localize(lang, "List of completed exercises")))
}
