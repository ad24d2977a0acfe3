package storage

import (
	"context"
	"fmt"

	"github.com/magabrotheeeer/fitness-tracker/internal/models"
)

// ListCompletions возвращает записи о выполненных упражнениях одного пользователя.
func (s *Storage) ListCompletions(ctx context.Context, userID int) ([]*models.CompletedExercise, error) {
	const op = "storage.ListCompletions"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, user_id, exercise_id, duration
			  FROM completed_exercises
			  WHERE user_id = $1
			  ORDER BY id`
	rows, err := s.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.CompletedExercise
	for rows.Next() {
		var c models.CompletedExercise
		if err = rows.Scan(&c.ID, &c.UserID, &c.ExerciseID, &c.Duration); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &c)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// CreateCompletion сохраняет запись о выполненном упражнении и возвращает её ID.
func (s *Storage) CreateCompletion(ctx context.Context, completion models.CompletedExercise) (int, error) {
	const op = "storage.CreateCompletion"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	var newID int
	query := `INSERT INTO completed_exercises (user_id, exercise_id, duration)
			  VALUES ($1, $2, $3)
			  RETURNING id`
	if err := s.DB.QueryRowContext(ctx, query,
		completion.UserID, completion.ExerciseID, completion.Duration).Scan(&newID); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return newID, nil
}

// GetCompletion возвращает запись о выполнении по её ID.
func (s *Storage) GetCompletion(ctx context.Context, id int) (*models.CompletedExercise, error) {
	const op = "storage.GetCompletion"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	c := &models.CompletedExercise{}
	query := `SELECT id, user_id, exercise_id, duration
			  FROM completed_exercises
			  WHERE id = $1`
	row := s.DB.QueryRowContext(ctx, query, id)
	if err := row.Scan(&c.ID, &c.UserID, &c.ExerciseID, &c.Duration); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return c, nil
}

// RemoveCompletion удаляет запись о выполнении по ID.
// Возвращает количество удалённых строк.
func (s *Storage) RemoveCompletion(ctx context.Context, id int) (int, error) {
	const op = "storage.RemoveCompletion"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	result, err := s.DB.ExecContext(ctx, `DELETE FROM completed_exercises WHERE id = $1`, id)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(rowsAffected), nil
}
