// Package program содержит бизнес-логику управления связями
// программа–упражнение.
package program

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/magabrotheeeer/fitness-tracker/internal/models"
)

// Ошибки бизнес-логики программ.
var (
	// ErrProgramNotFound — программа с указанным ID отсутствует.
	ErrProgramNotFound = errors.New("program not found")
	// ErrExerciseNotFound — упражнение с указанным ID отсутствует.
	ErrExerciseNotFound = errors.New("exercise not found")
	// ErrAlreadyAttached — упражнение уже входит в программу.
	// Повторное добавление отклоняется, а не игнорируется.
	ErrAlreadyAttached = errors.New("exercise already on program")
	// ErrNotAttached — упражнение не входит в программу.
	ErrNotAttached = errors.New("exercise not on program")
)

// Repository определяет методы для работы с программами в хранилище.
type Repository interface {
	// ListPrograms возвращает все программы.
	ListPrograms(ctx context.Context) ([]*models.Program, error)
	// GetProgram возвращает программу по ID.
	GetProgram(ctx context.Context, id int) (*models.Program, error)
	// GetExercise возвращает упражнение по ID.
	GetExercise(ctx context.Context, id int) (*models.Exercise, error)
	// ExerciseOnProgram сообщает, связано ли упражнение с программой.
	ExerciseOnProgram(ctx context.Context, programID, exerciseID int) (bool, error)
	// AttachExercise добавляет упражнение в программу.
	AttachExercise(ctx context.Context, programID, exerciseID int) error
	// DetachExercise убирает упражнение из программы, возвращает число удалённых связей.
	DetachExercise(ctx context.Context, programID, exerciseID int) (int, error)
}

// Service реализует бизнес-логику работы с программами.
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

// List возвращает все программы.
func (s *Service) List(ctx context.Context) ([]*models.Program, error) {
	return s.repo.ListPrograms(ctx)
}

// Attach добавляет упражнение в программу. Порядок проверок:
// программа существует → связи ещё нет → упражнение существует.
func (s *Service) Attach(ctx context.Context, programID, exerciseID int) error {
	if _, err := s.repo.GetProgram(ctx, programID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrProgramNotFound
		}
		return err
	}

	attached, err := s.repo.ExerciseOnProgram(ctx, programID, exerciseID)
	if err != nil {
		return err
	}
	if attached {
		return ErrAlreadyAttached
	}

	if _, err := s.repo.GetExercise(ctx, exerciseID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrExerciseNotFound
		}
		return err
	}

	if err := s.repo.AttachExercise(ctx, programID, exerciseID); err != nil {
		return err
	}
	s.log.Info("attached exercise to program",
		slog.Int("program_id", programID), slog.Int("exercise_id", exerciseID))
	return nil
}

// Detach убирает упражнение из программы. Отсутствие связи — ошибка,
// а не успешный no-op.
func (s *Service) Detach(ctx context.Context, programID, exerciseID int) error {
	if _, err := s.repo.GetProgram(ctx, programID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrProgramNotFound
		}
		return err
	}

	rows, err := s.repo.DetachExercise(ctx, programID, exerciseID)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrNotAttached
	}
	s.log.Info("detached exercise from program",
		slog.Int("program_id", programID), slog.Int("exercise_id", exerciseID))
	return nil
}
