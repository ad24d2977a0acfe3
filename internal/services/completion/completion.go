// Package completion содержит бизнес-логику учёта выполненных упражнений.
package completion

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/magabrotheeeer/fitness-tracker/internal/models"
)

// Ошибки бизнес-логики учёта выполнений.
var (
	// ErrExerciseNotFound — упражнение с указанным ID отсутствует.
	ErrExerciseNotFound = errors.New("exercise not found")
	// ErrCompletionNotFound — запись о выполнении отсутствует.
	ErrCompletionNotFound = errors.New("exercise completion not found")
	// ErrNotOwner — запись принадлежит другому пользователю.
	ErrNotOwner = errors.New("completion belongs to another user")
)

// Repository определяет методы для работы с записями о выполнении в хранилище.
type Repository interface {
	// ListCompletions возвращает записи одного пользователя.
	ListCompletions(ctx context.Context, userID int) ([]*models.CompletedExercise, error)
	// CreateCompletion сохраняет запись и возвращает её ID.
	CreateCompletion(ctx context.Context, completion models.CompletedExercise) (int, error)
	// GetCompletion возвращает запись по ID.
	GetCompletion(ctx context.Context, id int) (*models.CompletedExercise, error)
	// RemoveCompletion удаляет запись, возвращает число удалённых строк.
	RemoveCompletion(ctx context.Context, id int) (int, error)
	// GetExercise возвращает упражнение по ID.
	GetExercise(ctx context.Context, id int) (*models.Exercise, error)
}

// Service реализует бизнес-логику учёта выполненных упражнений.
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

// List возвращает записи о выполнении только самого вызывающего.
func (s *Service) List(ctx context.Context, userID int) ([]*models.CompletedExercise, error) {
	return s.repo.ListCompletions(ctx, userID)
}

// Track записывает выполнение упражнения вызывающим пользователем.
// Упражнение должно существовать.
func (s *Service) Track(ctx context.Context, userID, exerciseID, duration int) (*models.CompletedExercise, error) {
	if _, err := s.repo.GetExercise(ctx, exerciseID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrExerciseNotFound
		}
		return nil, err
	}

	completion := models.CompletedExercise{
		UserID:     userID,
		ExerciseID: exerciseID,
		Duration:   duration,
	}
	id, err := s.repo.CreateCompletion(ctx, completion)
	if err != nil {
		return nil, err
	}
	completion.ID = id
	s.log.Info("tracked exercise completion",
		slog.Int("id", id), slog.Int("user_id", userID), slog.Int("exercise_id", exerciseID))
	return &completion, nil
}

// Remove удаляет запись о выполнении. Проверка существования выполняется
// строго до проверки владельца.
func (s *Service) Remove(ctx context.Context, userID, completionID int) error {
	completion, err := s.repo.GetCompletion(ctx, completionID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrCompletionNotFound
		}
		return err
	}
	if completion.UserID != userID {
		return ErrNotOwner
	}

	if _, err := s.repo.RemoveCompletion(ctx, completionID); err != nil {
		return err
	}
	s.log.Info("removed exercise completion", slog.Int("id", completionID))
	return nil
}
