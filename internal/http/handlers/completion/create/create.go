// Package create реализует HTTP-обработчик фиксации выполнения упражнения.
package create

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/fitness-tracker/internal/http/middlewarectx"
	"github.com/magabrotheeeer/fitness-tracker/internal/http/response"
	"github.com/magabrotheeeer/fitness-tracker/internal/lib/locale"
	"github.com/magabrotheeeer/fitness-tracker/internal/lib/sl"
	"github.com/magabrotheeeer/fitness-tracker/internal/models"
	completionservice "github.com/magabrotheeeer/fitness-tracker/internal/services/completion"
)

// Handler обрабатывает HTTP-запросы на фиксацию выполнения упражнения.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// Service описывает интерфейс бизнес-логики фиксации выполнения.
type Service interface {
	Track(ctx context.Context, userID, exerciseID, duration int) (*models.CompletedExercise, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Фиксация выполнения
// @Description Отмечает упражнение выполненным текущим пользователем с указанной длительностью.
// @Tags Completions
// @Accept  json
// @Produce  json
// @Param exerciseId path int true "ID упражнения"
// @Param request body models.TrackCompletionRequest true "Длительность выполнения в секундах"
// @Success 201 {object} response.Response "Выполнение зафиксировано"
// @Failure 400 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 401 {object} response.ErrorResponse "Пользователь не аутентифицирован"
// @Failure 404 {object} response.ErrorResponse "Упражнение не найдено"
// @Security BearerAuth
// @Router /exercises/completions/{exerciseId} [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.completion.create"
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

	exerciseID, err := strconv.Atoi(chi.URLParam(r, "exerciseId"))
	if err != nil {
		log.Error("invalid exercise id", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error(locale.Localize(lang, "Invalid exercise ID")))
		return
	}

	var req models.TrackCompletionRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error(locale.Localize(lang, "Invalid request body")))
		return
	}

	if err := h.validate.Struct(req); err != nil {
		var validateErrs validator.ValidationErrors
		errors.As(err, &validateErrs)
		log.Error("invalid request", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.ValidationError(validateErrs,
			locale.Localize(lang, "Validation error")))
		return
	}

	completion, err := h.service.Track(r.Context(), identity.ID, exerciseID, *req.Duration)
	switch {
	case errors.Is(err, completionservice.ErrExerciseNotFound):
		log.Info("exercise not found", slog.Int("exercise_id", exerciseID))
		w.WriteHeader(http.StatusNotFound)
		render.JSON(w, r, response.NotFound(exerciseID,
			locale.Localize(lang, "Exercise not found")))
		return
	case err != nil:
		log.Error("failed to track completion", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error(locale.Localize(lang, "Internal server error")))
		return
	}

	log.Info("completion tracked",
		slog.Int("user_id", identity.ID),
		slog.Int("exercise_id", exerciseID),
		slog.Int("completion_id", completion.ID))
	w.WriteHeader(http.StatusCreated)
	render.JSON(w, r, response.OKWithData(completion,
		locale.Localize(lang, "Exercise completion tracked")))
}
