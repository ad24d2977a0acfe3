// Package remove реализует HTTP-обработчик удаления упражнения (только для администратора).
package remove

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/fitness-tracker/internal/http/response"
	"github.com/magabrotheeeer/fitness-tracker/internal/lib/locale"
	"github.com/magabrotheeeer/fitness-tracker/internal/lib/sl"
	exerciseservice "github.com/magabrotheeeer/fitness-tracker/internal/services/exercise"
)

// Handler обрабатывает HTTP-запросы на удаление упражнений.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики удаления упражнения.
type Service interface {
	Remove(ctx context.Context, id int) error
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Удалить упражнение
// @Description Удаляет упражнение; связи с программами и записи о выполнении очищаются каскадно.
// @Tags Exercises
// @Produce  json
// @Param id path int true "Идентификатор упражнения"
// @Success 200 {object} response.Response "Упражнение удалено"
// @Failure 404 {object} response.Response "Упражнение не найдено"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Security BearerAuth
// @Router /exercises/{id} [delete]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.exercise.remove"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)
	lang := r.Header.Get("Language")

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		log.Error("invalid exercise id", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error(locale.Localize(lang, "Invalid exercise ID")))
		return
	}

	if err := h.service.Remove(r.Context(), id); err != nil {
		if errors.Is(err, exerciseservice.ErrExerciseNotFound) {
			log.Info("exercise not found", slog.Int("id", id))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.NotFound(id, locale.Localize(lang, "Exercise not found")))
			return
		}
		log.Error("failed to remove exercise", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error(locale.Localize(lang, "Internal server error")))
		return
	}

	log.Info("exercise removed", slog.Int("id", id))
	render.JSON(w, r, response.OK(locale.Localize(lang, "Exercise deleted")))
}
