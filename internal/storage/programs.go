package storage

import (
	"context"
	"fmt"

	"github.com/magabrotheeeer/fitness-tracker/internal/models"
)

// ListPrograms возвращает все программы тренировок.
func (s *Storage) ListPrograms(ctx context.Context) ([]*models.Program, error) {
	const op = "storage.ListPrograms"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	rows, err := s.DB.QueryContext(ctx, `SELECT id, name FROM programs ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.Program
	for rows.Next() {
		var p models.Program
		if err = rows.Scan(&p.ID, &p.Name); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &p)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// GetProgram возвращает программу по ID.
func (s *Storage) GetProgram(ctx context.Context, id int) (*models.Program, error) {
	const op = "storage.GetProgram"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	p := &models.Program{}
	row := s.DB.QueryRowContext(ctx, `SELECT id, name FROM programs WHERE id = $1`, id)
	if err := row.Scan(&p.ID, &p.Name); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return p, nil
}

// CreateProgram вставляет программу и возвращает её ID.
func (s *Storage) CreateProgram(ctx context.Context, name string) (int, error) {
	const op = "storage.CreateProgram"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	var newID int
	query := `INSERT INTO programs (name) VALUES ($1) RETURNING id`
	if err := s.DB.QueryRowContext(ctx, query, name).Scan(&newID); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return newID, nil
}

// ExerciseOnProgram сообщает, связано ли упражнение с программой.
func (s *Storage) ExerciseOnProgram(ctx context.Context, programID, exerciseID int) (bool, error) {
	const op = "storage.ExerciseOnProgram"
	select {
	case <-ctx.Done():
		return false, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	var exists bool
	query := `SELECT EXISTS (
			      SELECT 1 FROM program_exercises
			      WHERE program_id = $1 AND exercise_id = $2
			  )`
	if err := s.DB.QueryRowContext(ctx, query, programID, exerciseID).Scan(&exists); err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	return exists, nil
}

// AttachExercise добавляет упражнение в программу.
func (s *Storage) AttachExercise(ctx context.Context, programID, exerciseID int) error {
	const op = "storage.AttachExercise"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO program_exercises (program_id, exercise_id) VALUES ($1, $2)`
	if _, err := s.DB.ExecContext(ctx, query, programID, exerciseID); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// DetachExercise убирает упражнение из программы.
// Возвращает количество удалённых связей (0 — связи не было).
func (s *Storage) DetachExercise(ctx context.Context, programID, exerciseID int) (int, error) {
	const op = "storage.DetachExercise"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `DELETE FROM program_exercises WHERE program_id = $1 AND exercise_id = $2`
	result, err := s.DB.ExecContext(ctx, query, programID, exerciseID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(rowsAffected), nil
}
