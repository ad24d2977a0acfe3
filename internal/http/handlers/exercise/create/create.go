// Package create реализует HTTP-обработчик создания упражнения (только для администратора).
//
// Все указанные программы должны существовать; упражнение и его связи
// создаются атомарно.
package create

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/fitness-tracker/internal/http/response"
	"github.com/magabrotheeeer/fitness-tracker/internal/lib/locale"
	"github.com/magabrotheeeer/fitness-tracker/internal/lib/sl"
	"github.com/magabrotheeeer/fitness-tracker/internal/models"
	exerciseservice "github.com/magabrotheeeer/fitness-tracker/internal/services/exercise"
)

// Handler обрабатывает HTTP-запросы на создание упражнений.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// Service описывает интерфейс бизнес-логики создания упражнения.
type Service interface {
	Create(ctx context.Context, req models.CreateExerciseRequest) (*models.Exercise, error)
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
// @Summary Создать упражнение
// @Description Создает упражнение и привязывает его к указанным программам в одной транзакции.
// @Tags Exercises
// @Accept  json
// @Produce  json
// @Param request body models.CreateExerciseRequest true "Данные нового упражнения"
// @Success 201 {object} response.Response "Упражнение создано"
// @Failure 400 {object} response.Response "Ошибка валидации"
// @Failure 404 {object} response.Response "Программа не найдена"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Security BearerAuth
// @Router /exercises [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.exercise.create"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)
	lang := r.Header.Get("Language")

	var req models.CreateExerciseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error(locale.Localize(lang, "Invalid request body")))
		return
	}

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.ValidationError(
			err.(validator.ValidationErrors), locale.Localize(lang, "Validation error")))
		return
	}

	exercise, err := h.service.Create(r.Context(), req)
	if err != nil {
		var programNotFound *exerciseservice.ProgramNotFoundError
		if errors.As(err, &programNotFound) {
			log.Info("referenced program not found", slog.Int("program_id", programNotFound.ID))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.NotFound(programNotFound.ID,
				locale.Localize(lang, "Program not found")))
			return
		}
		log.Error("failed to create exercise", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error(locale.Localize(lang, "Internal server error")))
		return
	}

	log.Info("exercise created", slog.Int("id", exercise.ID))
	w.WriteHeader(http.StatusCreated)
	render.JSON(w, r, response.OKWithData(exercise,
		locale.Localize(lang, "Exercise created")))
}
