// Package list реализует HTTP-обработчик списка упражнений.
//
// Поддерживает подстрочный поиск по имени, фильтр по программе и пагинацию.
// Пагинация активируется только когда заданы оба параметра page и limit.
package list

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/fitness-tracker/internal/http/response"
	"github.com/magabrotheeeer/fitness-tracker/internal/lib/locale"
	"github.com/magabrotheeeer/fitness-tracker/internal/lib/sl"
	"github.com/magabrotheeeer/fitness-tracker/internal/models"
)

// Handler обрабатывает HTTP-запросы на получение списка упражнений.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики списка упражнений.
type Service interface {
	List(ctx context.Context, filter models.ExerciseFilter) ([]*models.Exercise, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Список упражнений
// @Description Возвращает упражнения вместе с их программами. Параметры page и limit включают пагинацию только вместе.
// @Tags Exercises
// @Produce  json
// @Param page query int false "Номер страницы (от 1)"
// @Param limit query int false "Размер страницы (от 1)"
// @Param program query int false "Фильтр по программе"
// @Param search query string false "Подстрочный поиск по имени"
// @Success 200 {object} response.Response "Список упражнений"
// @Failure 400 {object} response.ErrorResponse "Некорректные параметры"
// @Router /exercises [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.exercise.list"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)
	lang := r.Header.Get("Language")

	var filter models.ExerciseFilter
	filter.Search = r.URL.Query().Get("search")

	var page, limit *int
	for _, q := range []struct {
		name string
		dst  **int
	}{
		{"page", &page},
		{"limit", &limit},
	} {
		raw := r.URL.Query().Get(q.name)
		if raw == "" {
			continue
		}
		value, err := strconv.Atoi(raw)
		if err != nil || value < 1 {
			log.Error("invalid pagination parameter", slog.String("param", q.name))
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error(locale.Localize(lang, "Invalid page or limit")))
			return
		}
		*q.dst = &value
	}
	// Пагинация активна только при обоих параметрах сразу.
	if page != nil && limit != nil {
		filter.Page = page
		filter.Limit = limit
	}

	if raw := r.URL.Query().Get("program"); raw != "" {
		programID, err := strconv.Atoi(raw)
		if err != nil {
			log.Error("invalid program filter", slog.String("value", raw))
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error(locale.Localize(lang, "Invalid program ID")))
			return
		}
		filter.ProgramID = &programID
	}

	exercises, err := h.service.List(r.Context(), filter)
	if err != nil {
		log.Error("failed to list exercises", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error(locale.Localize(lang, "Internal server error")))
		return
	}

	log.Info("listed exercises", slog.Int("count", len(exercises)))
	render.JSON(w, r, response.OKWithData(exercises,
		locale.Localize(lang, "List of exercises")))
}
