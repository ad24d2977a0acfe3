// Package remove реализует HTTP-обработчик удаления записи о выполнении упражнения.
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

	"github.com/magabrotheeeer/fitness-tracker/internal/http/middlewarectx"
	"github.com/magabrotheeeer/fitness-tracker/internal/http/response"
	"github.com/magabrotheeeer/fitness-tracker/internal/lib/locale"
	"github.com/magabrotheeeer/fitness-tracker/internal/lib/sl"
	completionservice "github.com/magabrotheeeer/fitness-tracker/internal/services/completion"
)

// Handler обрабатывает HTTP-запросы на удаление записи о выполнении.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики удаления записи о выполнении.
type Service interface {
	Remove(ctx context.Context, userID, completionID int) error
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Удаление записи о выполнении
// @Description Удаляет запись о выполнении упражнения. Доступно только владельцу записи.
// @Tags Completions
// @Produce  json
// @Param completionId path int true "ID записи о выполнении"
// @Success 200 {object} response.Response "Запись удалена"
// @Failure 400 {object} response.ErrorResponse "Некорректный ID"
// @Failure 401 {object} response.ErrorResponse "Пользователь не аутентифицирован"
// @Failure 403 {object} response.ErrorResponse "Доступ запрещен"
// @Failure 404 {object} response.ErrorResponse "Запись не найдена"
// @Security BearerAuth
// @Router /exercises/completions/{completionId} [delete]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.completion.remove"
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

	completionID, err := strconv.Atoi(chi.URLParam(r, "completionId"))
	if err != nil {
		log.Error("invalid completion id", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error(locale.Localize(lang, "Invalid completion ID")))
		return
	}

	err = h.service.Remove(r.Context(), identity.ID, completionID)
	switch {
	case errors.Is(err, completionservice.ErrCompletionNotFound):
		log.Info("completion not found", slog.Int("completion_id", completionID))
		w.WriteHeader(http.StatusNotFound)
		render.JSON(w, r, response.NotFound(completionID,
			locale.Localize(lang, "Exercise completion not found")))
		return
	case errors.Is(err, completionservice.ErrNotOwner):
		log.Info("completion owned by another user",
			slog.Int("completion_id", completionID),
			slog.Int("user_id", identity.ID))
		w.WriteHeader(http.StatusForbidden)
		render.JSON(w, r, response.Error(locale.Localize(lang, "Unauthorized")))
		return
	case err != nil:
		log.Error("failed to remove completion", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error(locale.Localize(lang, "Internal server error")))
		return
	}

	log.Info("completion removed", slog.Int("completion_id", completionID))
	render.JSON(w, r, response.OK(locale.Localize(lang, "Exercise completion deleted")))
}
