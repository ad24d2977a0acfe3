// Package attach реализует HTTP-обработчик добавления упражнения в программу
// (только для администратора).
//
// Повторное добавление уже связанного упражнения отклоняется с ошибкой,
// а не пропускается молча.
package attach

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
	programservice "github.com/magabrotheeeer/fitness-tracker/internal/services/program"
)

// Handler обрабатывает HTTP-запросы на добавление упражнения в программу.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики привязки упражнения.
type Service interface {
	Attach(ctx context.Context, programID, exerciseID int) error
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Добавить упражнение в программу
// @Tags Programs
// @Produce  json
// @Param programId path int true "Идентификатор программы"
// @Param exerciseId path int true "Идентификатор упражнения"
// @Success 200 {object} response.Response "Упражнение добавлено"
// @Failure 400 {object} response.ErrorResponse "Упражнение уже входит в программу"
// @Failure 404 {object} response.Response "Программа или упражнение не найдены"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Security BearerAuth
// @Router /programs/{programId}/{exerciseId} [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.program.attach"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)
	lang := r.Header.Get("Language")

	programID, err := strconv.Atoi(chi.URLParam(r, "programId"))
	if err != nil {
		log.Error("invalid program id", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error(locale.Localize(lang, "Invalid program ID")))
		return
	}
	exerciseID, err := strconv.Atoi(chi.URLParam(r, "exerciseId"))
	if err != nil {
		log.Error("invalid exercise id", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error(locale.Localize(lang, "Invalid exercise ID")))
		return
	}

	if err := h.service.Attach(r.Context(), programID, exerciseID); err != nil {
		switch {
		case errors.Is(err, programservice.ErrProgramNotFound):
			log.Info("program not found", slog.Int("id", programID))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.NotFound(programID, locale.Localize(lang, "Program not found")))
		case errors.Is(err, programservice.ErrAlreadyAttached):
			log.Info("exercise already on program",
				slog.Int("program_id", programID), slog.Int("exercise_id", exerciseID))
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error(locale.Localize(lang, "Exercise already on program")))
		case errors.Is(err, programservice.ErrExerciseNotFound):
			log.Info("exercise not found", slog.Int("id", exerciseID))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.NotFound(exerciseID, locale.Localize(lang, "Exercise not found")))
		default:
			log.Error("failed to attach exercise", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error(locale.Localize(lang, "Internal server error")))
		}
		return
	}

	log.Info("exercise attached",
		slog.Int("program_id", programID), slog.Int("exercise_id", exerciseID))
	render.JSON(w, r, response.OK(locale.Localize(lang, "Exercise added to program")))
}
