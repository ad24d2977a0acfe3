package storage

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/magabrotheeeer/fitness-tracker/internal/models"
)

// ListExercises возвращает упражнения вместе с их программами.
// Фильтр поддерживает подстрочный поиск по имени, принадлежность к программе
// и пагинацию (активна только когда заданы и страница, и размер страницы).
func (s *Storage) ListExercises(ctx context.Context, filter models.ExerciseFilter) ([]*models.Exercise, error) {
	const op = "storage.ListExercises"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	var conds []string
	var args []any
	if filter.Search != "" {
		args = append(args, filter.Search)
		conds = append(conds, fmt.Sprintf("e2.name ILIKE '%%' || $%d || '%%'", len(args)))
	}
	if filter.ProgramID != nil {
		args = append(args, *filter.ProgramID)
		conds = append(conds, fmt.Sprintf(
			"EXISTS (SELECT 1 FROM program_exercises x WHERE x.exercise_id = e2.id AND x.program_id = $%d)", len(args)))
	}

	sub := "SELECT e2.id FROM exercises e2"
	if len(conds) > 0 {
		sub += " WHERE " + strings.Join(conds, " AND ")
	}
	sub += " ORDER BY e2.id"
	if filter.Page != nil && filter.Limit != nil {
		args = append(args, *filter.Limit)
		sub += fmt.Sprintf(" LIMIT $%d", len(args))
		args = append(args, (*filter.Page-1)*(*filter.Limit))
		sub += fmt.Sprintf(" OFFSET $%d", len(args))
	}

	query := `SELECT e.id, e.name, e.difficulty, p.id, p.name
			  FROM exercises e
			  LEFT JOIN program_exercises pe ON pe.exercise_id = e.id
			  LEFT JOIN programs p ON p.id = pe.program_id
			  WHERE e.id IN (` + sub + `)
			  ORDER BY e.id, p.id`

	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	result, err := scanExercisesWithPrograms(rows)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// GetExercise возвращает упражнение по ID вместе с его программами.
func (s *Storage) GetExercise(ctx context.Context, id int) (*models.Exercise, error) {
	const op = "storage.GetExercise"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT e.id, e.name, e.difficulty, p.id, p.name
			  FROM exercises e
			  LEFT JOIN program_exercises pe ON pe.exercise_id = e.id
			  LEFT JOIN programs p ON p.id = pe.program_id
			  WHERE e.id = $1
			  ORDER BY p.id`
	rows, err := s.DB.QueryContext(ctx, query, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	result, err := scanExercisesWithPrograms(rows)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if len(result) == 0 {
		return nil, fmt.Errorf("%s: %w", op, sql.ErrNoRows)
	}
	return result[0], nil
}

// scanExercisesWithPrograms собирает строки соединения упражнение–программа
// в список упражнений с заполненными наборами программ.
func scanExercisesWithPrograms(rows *sql.Rows) ([]*models.Exercise, error) {
	var result []*models.Exercise
	byID := map[int]*models.Exercise{}
	for rows.Next() {
		var (
			e           models.Exercise
			programID   sql.NullInt64
			programName sql.NullString
		)
		if err := rows.Scan(&e.ID, &e.Name, &e.Difficulty, &programID, &programName); err != nil {
			return nil, err
		}
		exercise, ok := byID[e.ID]
		if !ok {
			e.Programs = []models.Program{}
			exercise = &e
			byID[e.ID] = exercise
			result = append(result, exercise)
		}
		if programID.Valid {
			exercise.Programs = append(exercise.Programs, models.Program{
				ID:   int(programID.Int64),
				Name: programName.String,
			})
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// CreateExercise вставляет упражнение и его связи с программами в одной транзакции.
// Возвращает ID нового упражнения.
func (s *Storage) CreateExercise(ctx context.Context, name, difficulty string, programIDs []int) (int, error) {
	const op = "storage.CreateExercise"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	var newID int
	query := `INSERT INTO exercises (name, difficulty) VALUES ($1, $2) RETURNING id`
	if err = tx.QueryRowContext(ctx, query, name, difficulty).Scan(&newID); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	for _, programID := range programIDs {
		if _, err = tx.ExecContext(ctx,
			`INSERT INTO program_exercises (program_id, exercise_id) VALUES ($1, $2)`,
			programID, newID); err != nil {
			return 0, fmt.Errorf("%s: %w", op, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return newID, nil
}

// UpdateExercise частично обновляет упражнение. Присутствующий набор программ
// (req.Programs != nil) полностью заменяет существующие связи в одной
// транзакции: при любой ошибке прежний набор остаётся нетронутым.
// Возвращает количество изменённых строк (0 — упражнение не найдено).
func (s *Storage) UpdateExercise(ctx context.Context, id int, req models.UpdateExerciseRequest) (int, error) {
	const op = "storage.UpdateExercise"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	query := `UPDATE exercises
			  SET name = COALESCE($1, name),
			      difficulty = COALESCE($2, difficulty)
			  WHERE id = $3`
	result, err := tx.ExecContext(ctx, query, req.Name, req.Difficulty, id)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	if rowsAffected == 0 {
		return 0, nil
	}

	if req.Programs != nil {
		if _, err = tx.ExecContext(ctx,
			`DELETE FROM program_exercises WHERE exercise_id = $1`, id); err != nil {
			return 0, fmt.Errorf("%s: %w", op, err)
		}
		for _, programID := range *req.Programs {
			if _, err = tx.ExecContext(ctx,
				`INSERT INTO program_exercises (program_id, exercise_id) VALUES ($1, $2)`,
				programID, id); err != nil {
				return 0, fmt.Errorf("%s: %w", op, err)
			}
		}
	}

	if err = tx.Commit(); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(rowsAffected), nil
}

// RemoveExercise удаляет упражнение по ID; связи и записи о выполнении
// очищаются каскадно на уровне схемы. Возвращает количество удалённых строк.
func (s *Storage) RemoveExercise(ctx context.Context, id int) (int, error) {
	const op = "storage.RemoveExercise"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	result, err := s.DB.ExecContext(ctx, `DELETE FROM exercises WHERE id = $1`, id)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(rowsAffected), nil
}
