// Package update реализует HTTP-обработчик частичного обновления упражнения
// (только для администратора).
//
// Присутствующее в запросе поле programs (даже пустое) полностью заменяет
// набор связей упражнения с программами в одной транзакции; отсутствующее
// поле оставляет связи нетронутыми.
package update

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/fitness-tracker/internal/http/response"
	"github.com/magabrotheeeer/fitness-tracker/internal/lib/locale"
	"github.com/magabrotheeeer/fitness-tracker/internal/lib/sl"
	"github.com/magabrotheeeer/fitness-tracker/internal/models"
	exerciseservice "github.com/magabrotheeeer/fitness-tracker/internal/services/exercise"
)

// Handler обрабатывает HTTP-запросы на обновление упражнений.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// Service описывает интерфейс бизнес-логики обновления упражнения.
type Service interface {
	Update(ctx context.Context, id int, req models.UpdateExerciseRequest) (*models.Exercise, error)
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
// @Summary Обновить упражнение
// @Description Частично обновляет упражнение. Поле programs заменяет набор связей атомарно.
// @Tags Exercises
// @Accept  json
// @Produce  json
// @Param id path int true "Идентификатор упражнения"
// @Param request body models.UpdateExerciseRequest true "Изменяемые поля"
// @Success 200 {object} response.Response "Упражнение обновлено"
// @Failure 400 {object} response.Response "Ошибка валидации"
// @Failure 404 {object} response.Response "Упражнение или программа не найдены"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Security BearerAuth
// @Router /exercises/{id} [put]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.exercise.update"
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

	var req models.UpdateExerciseRequest
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

	exercise, err := h.service.Update(r.Context(), id, req)
	if err != nil {
		var programNotFound *exerciseservice.ProgramNotFoundError
		switch {
		case errors.Is(err, exerciseservice.ErrExerciseNotFound):
			log.Info("exercise not found", slog.Int("id", id))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.NotFound(id, locale.Localize(lang, "Exercise not found")))
		case errors.As(err, &programNotFound):
			log.Info("referenced program not found", slog.Int("program_id", programNotFound.ID))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.NotFound(programNotFound.ID,
				locale.Localize(lang, "Program not found")))
		default:
			log.Error("failed to update exercise", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error(locale.Localize(lang, "Internal server error")))
		}
		return
	}

	log.Info("exercise updated", slog.Int("id", id))
	render.JSON(w, r, response.OKWithData(exercise,
		locale.Localize(lang, "Exercise updated")))
}
