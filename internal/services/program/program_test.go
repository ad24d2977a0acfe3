package program

import (
	"context"
	"database/sql"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/fitness-tracker/internal/models"
)

// MockRepository реализует интерфейс program.Repository
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) ListPrograms(ctx context.Context) ([]*models.Program, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Program), args.Error(1)
}

func (m *MockRepository) GetProgram(ctx context.Context, id int) (*models.Program, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Program), args.Error(1)
}

func (m *MockRepository) GetExercise(ctx context.Context, id int) (*models.Exercise, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Exercise), args.Error(1)
}

func (m *MockRepository) ExerciseOnProgram(ctx context.Context, programID, exerciseID int) (bool, error) {
	args := m.Called(ctx, programID, exerciseID)
	return args.Bool(0), args.Error(1)
}

func (m *MockRepository) AttachExercise(ctx context.Context, programID, exerciseID int) error {
	args := m.Called(ctx, programID, exerciseID)
	return args.Error(0)
}

func (m *MockRepository) DetachExercise(ctx context.Context, programID, exerciseID int) (int, error) {
	args := m.Called(ctx, programID, exerciseID)
	return args.Int(0), args.Error(1)
}

var testLogger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

func TestAttach(t *testing.T) {
	ctx := context.Background()

	t.Run("успешное добавление", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("GetProgram", mock.Anything, 1).Return(&models.Program{ID: 1}, nil)
		repo.On("ExerciseOnProgram", mock.Anything, 1, 2).Return(false, nil)
		repo.On("GetExercise", mock.Anything, 2).Return(&models.Exercise{ID: 2}, nil)
		repo.On("AttachExercise", mock.Anything, 1, 2).Return(nil)

		service := New(repo, testLogger)
		assert.NoError(t, service.Attach(ctx, 1, 2))
		repo.AssertExpectations(t)
	})

	t.Run("несуществующая программа", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("GetProgram", mock.Anything, 9).Return(nil, sql.ErrNoRows)

		service := New(repo, testLogger)
		assert.ErrorIs(t, service.Attach(ctx, 9, 2), ErrProgramNotFound)
		repo.AssertNotCalled(t, "AttachExercise", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("повторное добавление отклоняется", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("GetProgram", mock.Anything, 1).Return(&models.Program{ID: 1}, nil)
		repo.On("ExerciseOnProgram", mock.Anything, 1, 2).Return(true, nil)

		service := New(repo, testLogger)
		assert.ErrorIs(t, service.Attach(ctx, 1, 2), ErrAlreadyAttached)
		// существование упражнения не проверяется после найденной связи
		repo.AssertNotCalled(t, "GetExercise", mock.Anything, mock.Anything)
		repo.AssertNotCalled(t, "AttachExercise", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("несуществующее упражнение", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("GetProgram", mock.Anything, 1).Return(&models.Program{ID: 1}, nil)
		repo.On("ExerciseOnProgram", mock.Anything, 1, 99).Return(false, nil)
		repo.On("GetExercise", mock.Anything, 99).Return(nil, sql.ErrNoRows)

		service := New(repo, testLogger)
		assert.ErrorIs(t, service.Attach(ctx, 1, 99), ErrExerciseNotFound)
	})
}

func TestDetach(t *testing.T) {
	ctx := context.Background()

	t.Run("успешное удаление связи", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("GetProgram", mock.Anything, 1).Return(&models.Program{ID: 1}, nil)
		repo.On("DetachExercise", mock.Anything, 1, 2).Return(1, nil)

		service := New(repo, testLogger)
		assert.NoError(t, service.Detach(ctx, 1, 2))
	})

	t.Run("несуществующая программа", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("GetProgram", mock.Anything, 9).Return(nil, sql.ErrNoRows)

		service := New(repo, testLogger)
		assert.ErrorIs(t, service.Detach(ctx, 9, 2), ErrProgramNotFound)
	})

	t.Run("связь отсутствует", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("GetProgram", mock.Anything, 1).Return(&models.Program{ID: 1}, nil)
		repo.On("DetachExercise", mock.Anything, 1, 2).Return(0, nil)

		service := New(repo, testLogger)
		assert.ErrorIs(t, service.Detach(ctx, 1, 2), ErrNotAttached)
	})
}
