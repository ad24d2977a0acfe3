package completion

import (
	"context"
	"database/sql"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/fitness-tracker/internal/models"
)

// MockRepository реализует интерфейс completion.Repository
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) ListCompletions(ctx context.Context, userID int) ([]*models.CompletedExercise, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.CompletedExercise), args.Error(1)
}

func (m *MockRepository) CreateCompletion(ctx context.Context, completion models.CompletedExercise) (int, error) {
	args := m.Called(ctx, completion)
	return args.Int(0), args.Error(1)
}

func (m *MockRepository) GetCompletion(ctx context.Context, id int) (*models.CompletedExercise, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CompletedExercise), args.Error(1)
}

func (m *MockRepository) RemoveCompletion(ctx context.Context, id int) (int, error) {
	args := m.Called(ctx, id)
	return args.Int(0), args.Error(1)
}

func (m *MockRepository) GetExercise(ctx context.Context, id int) (*models.Exercise, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Exercise), args.Error(1)
}

var testLogger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

func TestTrack(t *testing.T) {
	ctx := context.Background()

	t.Run("успешная запись выполнения", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("GetExercise", mock.Anything, 2).Return(&models.Exercise{ID: 2}, nil)
		repo.On("CreateCompletion", mock.Anything, models.CompletedExercise{
			UserID:     7,
			ExerciseID: 2,
			Duration:   120,
		}).Return(1, nil)

		service := New(repo, testLogger)
		completion, err := service.Track(ctx, 7, 2, 120)

		require.NoError(t, err)
		assert.Equal(t, 1, completion.ID)
		assert.Equal(t, 7, completion.UserID)
		assert.Equal(t, 2, completion.ExerciseID)
		assert.Equal(t, 120, completion.Duration)
	})

	t.Run("нулевая длительность допустима", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("GetExercise", mock.Anything, 2).Return(&models.Exercise{ID: 2}, nil)
		repo.On("CreateCompletion", mock.Anything, mock.AnythingOfType("models.CompletedExercise")).
			Return(3, nil)

		service := New(repo, testLogger)
		completion, err := service.Track(ctx, 7, 2, 0)

		require.NoError(t, err)
		assert.Equal(t, 0, completion.Duration)
	})

	t.Run("несуществующее упражнение", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("GetExercise", mock.Anything, 99).Return(nil, sql.ErrNoRows)

		service := New(repo, testLogger)
		_, err := service.Track(ctx, 7, 99, 120)

		assert.ErrorIs(t, err, ErrExerciseNotFound)
		repo.AssertNotCalled(t, "CreateCompletion", mock.Anything, mock.Anything)
	})
}

func TestRemove(t *testing.T) {
	ctx := context.Background()

	t.Run("владелец удаляет свою запись", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("GetCompletion", mock.Anything, 1).
			Return(&models.CompletedExercise{ID: 1, UserID: 7}, nil)
		repo.On("RemoveCompletion", mock.Anything, 1).Return(1, nil)

		service := New(repo, testLogger)
		assert.NoError(t, service.Remove(ctx, 7, 1))
	})

	t.Run("несуществующая запись", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("GetCompletion", mock.Anything, 44).Return(nil, sql.ErrNoRows)

		service := New(repo, testLogger)
		// отсутствие записи сообщается даже чужому пользователю
		assert.ErrorIs(t, service.Remove(ctx, 7, 44), ErrCompletionNotFound)
	})

	t.Run("чужая запись", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("GetCompletion", mock.Anything, 1).
			Return(&models.CompletedExercise{ID: 1, UserID: 8}, nil)

		service := New(repo, testLogger)
		assert.ErrorIs(t, service.Remove(ctx, 7, 1), ErrNotOwner)
		repo.AssertNotCalled(t, "RemoveCompletion", mock.Anything, mock.Anything)
	})
}
