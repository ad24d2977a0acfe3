// Package exercise содержит бизнес-логику для работы с упражнениями
// и их привязками к программам тренировок.
package exercise

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/magabrotheeeer/fitness-tracker/internal/models"
)

// ErrExerciseNotFound — упражнение с указанным ID отсутствует.
var ErrExerciseNotFound = errors.New("exercise not found")

// ProgramNotFoundError — одна из указанных программ отсутствует.
// Несёт идентификатор, который не удалось найти.
type ProgramNotFoundError struct {
	ID int
}

func (e *ProgramNotFoundError) Error() string {
	return fmt.Sprintf("program %d not found", e.ID)
}

// Repository определяет методы для работы с упражнениями в хранилище.
type Repository interface {
	// ListExercises возвращает упражнения с их программами по фильтру.
	ListExercises(ctx context.Context, filter models.ExerciseFilter) ([]*models.Exercise, error)
	// GetExercise возвращает упражнение с программами по ID.
	GetExercise(ctx context.Context, id int) (*models.Exercise, error)
	// CreateExercise вставляет упражнение и его связи в одной транзакции.
	CreateExercise(ctx context.Context, name, difficulty string, programIDs []int) (int, error)
	// UpdateExercise частично обновляет упражнение; присутствующий набор
	// программ атомарно заменяет связи. Возвращает число изменённых строк.
	UpdateExercise(ctx context.Context, id int, req models.UpdateExerciseRequest) (int, error)
	// RemoveExercise удаляет упражнение, возвращает число удалённых строк.
	RemoveExercise(ctx context.Context, id int) (int, error)
	// GetProgram возвращает программу по ID.
	GetProgram(ctx context.Context, id int) (*models.Program, error)
}

// Service реализует бизнес-логику работы с упражнениями.
type Service struct {
	repo Repository
	log  *slog.Logger
}

// New создает новый экземпляр Service.
func New(repo Repository, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log,
	}
}

// List возвращает упражнения по фильтру.
func (s *Service) List(ctx context.Context, filter models.ExerciseFilter) ([]*models.Exercise, error) {
	return s.repo.ListExercises(ctx, filter)
}

// Create проверяет существование всех указанных программ и создаёт упражнение
// вместе со связями атомарно. Отсутствующая программа даёт ProgramNotFoundError.
func (s *Service) Create(ctx context.Context, req models.CreateExerciseRequest) (*models.Exercise, error) {
	if err := s.checkProgramsExist(ctx, req.Programs); err != nil {
		return nil, err
	}

	id, err := s.repo.CreateExercise(ctx, req.Name, req.Difficulty, req.Programs)
	if err != nil {
		return nil, err
	}
	s.log.Info("created new exercise", slog.Int("id", id))

	return s.repo.GetExercise(ctx, id)
}

// Update частично обновляет упражнение. Присутствующее поле Programs (даже
// пустое) полностью заменяет набор связей в одной транзакции; при ошибке
// прежний набор остаётся нетронутым.
func (s *Service) Update(ctx context.Context, id int, req models.UpdateExerciseRequest) (*models.Exercise, error) {
	if req.Programs != nil {
		if err := s.checkProgramsExist(ctx, *req.Programs); err != nil {
			return nil, err
		}
	}

	rows, err := s.repo.UpdateExercise(ctx, id, req)
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		return nil, ErrExerciseNotFound
	}
	s.log.Info("updated exercise", slog.Int("id", id))

	return s.repo.GetExercise(ctx, id)
}

// Remove удаляет упражнение; связи и записи о выполнении очищаются хранилищем.
func (s *Service) Remove(ctx context.Context, id int) error {
	rows, err := s.repo.RemoveExercise(ctx, id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrExerciseNotFound
	}
	s.log.Info("removed exercise", slog.Int("id", id))
	return nil
}

func (s *Service) checkProgramsExist(ctx context.Context, programIDs []int) error {
	for _, programID := range programIDs {
		if _, err := s.repo.GetProgram(ctx, programID); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return &ProgramNotFoundError{ID: programID}
			}
			return err
		}
	}
	return nil
}
