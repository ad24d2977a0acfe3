package auth

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/fitness-tracker/internal/lib/jwt"
	"github.com/magabrotheeeer/fitness-tracker/internal/lib/password"
	"github.com/magabrotheeeer/fitness-tracker/internal/models"
	"github.com/magabrotheeeer/fitness-tracker/internal/storage"
)

// MockUserRepository реализует интерфейс auth.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) CreateUser(ctx context.Context, user models.User) (int, error) {
	args := m.Called(ctx, user)
	return args.Int(0), args.Error(1)
}

func (m *MockUserRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetUser(ctx context.Context, id int) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

// MockMaker реализует интерфейс jwt.Maker
type MockMaker struct {
	mock.Mock
}

func (m *MockMaker) GenerateToken(userID int) (string, error) {
	args := m.Called(userID)
	return args.String(0), args.Error(1)
}

func (m *MockMaker) ParseToken(tokenStr string) (*jwt.Claims, error) {
	args := m.Called(tokenStr)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*jwt.Claims), args.Error(1)
}

func TestRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("успешная регистрация с ролью по умолчанию", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("GetUserByEmail", mock.Anything, "new@example.com").
			Return(nil, sql.ErrNoRows)
		repo.On("CreateUser", mock.Anything, mock.AnythingOfType("models.User")).
			Return(5, nil)

		service := New(repo, new(MockMaker))
		user, err := service.Register(ctx, models.RegisterRequest{
			Email:    "New@Example.com",
			Password: "secret123",
		})

		require.NoError(t, err)
		assert.Equal(t, 5, user.ID)
		assert.Equal(t, "new@example.com", user.Email)
		assert.Equal(t, models.RoleUser, user.Role)
		assert.NoError(t, password.CompareHash(user.PasswordHash, "secret123"))
		repo.AssertExpectations(t)
	})

	t.Run("email уже занят независимо от регистра", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("GetUserByEmail", mock.Anything, "taken@example.com").
			Return(&models.User{ID: 1, Email: "taken@example.com"}, nil)

		service := New(repo, new(MockMaker))
		user, err := service.Register(ctx, models.RegisterRequest{
			Email:    "Taken@Example.COM",
			Password: "secret123",
		})

		assert.ErrorIs(t, err, ErrEmailTaken)
		assert.Nil(t, user)
		repo.AssertNotCalled(t, "CreateUser", mock.Anything, mock.Anything)
	})

	t.Run("явная роль ADMIN сохраняется", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("GetUserByEmail", mock.Anything, "admin@example.com").
			Return(nil, sql.ErrNoRows)
		repo.On("CreateUser", mock.Anything, mock.MatchedBy(func(u models.User) bool {
			return u.Role == models.RoleAdmin
		})).Return(2, nil)

		role := models.RoleAdmin
		service := New(repo, new(MockMaker))
		user, err := service.Register(ctx, models.RegisterRequest{
			Email:    "admin@example.com",
			Password: "secret123",
			Role:     &role,
		})

		require.NoError(t, err)
		assert.Equal(t, models.RoleAdmin, user.Role)
		repo.AssertExpectations(t)
	})

	t.Run("конкурентная регистрация упирается в уникальный индекс", func(t *testing.T) {
		// Предварительная проверка email прошла, но параллельная регистрация
		// успела вставить ту же запись раньше.
		repo := new(MockUserRepository)
		repo.On("GetUserByEmail", mock.Anything, "race@example.com").
			Return(nil, sql.ErrNoRows)
		repo.On("CreateUser", mock.Anything, mock.AnythingOfType("models.User")).
			Return(0, fmt.Errorf("storage.CreateUser: %w", storage.ErrDuplicateEmail))

		service := New(repo, new(MockMaker))
		user, err := service.Register(ctx, models.RegisterRequest{
			Email:    "race@example.com",
			Password: "secret123",
		})

		assert.ErrorIs(t, err, ErrEmailTaken)
		assert.Nil(t, user)
		repo.AssertExpectations(t)
	})

	t.Run("ошибка хранилища при проверке email", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("GetUserByEmail", mock.Anything, "user@example.com").
			Return(nil, errors.New("db error"))

		service := New(repo, new(MockMaker))
		_, err := service.Register(ctx, models.RegisterRequest{
			Email:    "user@example.com",
			Password: "secret123",
		})

		assert.Error(t, err)
		assert.NotErrorIs(t, err, ErrEmailTaken)
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()

	hash, err := password.GetHash("secret123")
	require.NoError(t, err)
	stored := &models.User{ID: 9, Email: "user@example.com", PasswordHash: hash, Role: models.RoleUser}

	t.Run("успешный вход", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("GetUserByEmail", mock.Anything, "user@example.com").Return(stored, nil)
		maker := new(MockMaker)
		maker.On("GenerateToken", 9).Return("signed-token", nil)

		service := New(repo, maker)
		token, err := service.Login(ctx, "User@Example.com", "secret123")

		require.NoError(t, err)
		assert.Equal(t, "signed-token", token)
		maker.AssertExpectations(t)
	})

	t.Run("неизвестный email", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("GetUserByEmail", mock.Anything, "ghost@example.com").
			Return(nil, sql.ErrNoRows)

		service := New(repo, new(MockMaker))
		_, err := service.Login(ctx, "ghost@example.com", "secret123")

		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("неверный пароль", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("GetUserByEmail", mock.Anything, "user@example.com").Return(stored, nil)

		service := New(repo, new(MockMaker))
		_, err := service.Login(ctx, "user@example.com", "wrongpassword")

		// неизвестный email и неверный пароль неразличимы для клиента
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestIdentify(t *testing.T) {
	ctx := context.Background()

	t.Run("валидный токен существующего пользователя", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("GetUser", mock.Anything, 3).
			Return(&models.User{ID: 3, Role: models.RoleAdmin}, nil)

		realMaker := jwt.NewMaker("test-secret", time.Hour)
		token, err := realMaker.GenerateToken(3)
		require.NoError(t, err)

		service := New(repo, realMaker)
		identity, err := service.Identify(ctx, token)

		require.NoError(t, err)
		assert.Equal(t, 3, identity.ID)
		assert.True(t, identity.IsAdmin())
	})

	t.Run("испорченный токен", func(t *testing.T) {
		maker := new(MockMaker)
		maker.On("ParseToken", "garbage").Return(nil, errors.New("invalid token"))

		service := New(new(MockUserRepository), maker)
		_, err := service.Identify(ctx, "garbage")

		assert.ErrorIs(t, err, ErrUnauthenticated)
	})

	t.Run("пользователь удален после выдачи токена", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("GetUser", mock.Anything, 4).Return(nil, sql.ErrNoRows)

		realMaker := jwt.NewMaker("test-secret", time.Hour)
		token, err := realMaker.GenerateToken(4)
		require.NoError(t, err)

		service := New(repo, realMaker)
		_, err = service.Identify(ctx, token)

		assert.ErrorIs(t, err, ErrUnauthenticated)
	})
}
