// Package user содержит бизнес-логику для работы с учётными записями пользователей.
package user

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/magabrotheeeer/fitness-tracker/internal/models"
)

// Ошибки бизнес-логики пользователей.
var (
	// ErrUserNotFound — пользователь с указанным ID отсутствует.
	ErrUserNotFound = errors.New("user not found")
	// ErrForbidden — обычный пользователь запросил чужой профиль.
	ErrForbidden = errors.New("access to another user's profile is forbidden")
)

// Repository определяет методы для работы с пользователями в хранилище.
type Repository interface {
	// ListUsers возвращает всех пользователей.
	ListUsers(ctx context.Context) ([]*models.User, error)
	// GetUser возвращает пользователя по ID.
	GetUser(ctx context.Context, id int) (*models.User, error)
	// UpdateUser частично обновляет пользователя, возвращает число изменённых строк.
	UpdateUser(ctx context.Context, id int, req models.UpdateUserRequest) (int, error)
}

// Service реализует бизнес-логику работы с пользователями.
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

// List возвращает всех пользователей. Урезание полей для обычных
// пользователей выполняется на уровне обработчика.
func (s *Service) List(ctx context.Context) ([]*models.User, error) {
	return s.repo.ListUsers(ctx)
}

// Get возвращает профиль пользователя. Администратор может запросить любой,
// обычный пользователь — только свой собственный (иначе ErrForbidden).
func (s *Service) Get(ctx context.Context, caller models.Identity, id int) (*models.User, error) {
	if !caller.IsAdmin() && caller.ID != id {
		return nil, ErrForbidden
	}

	u, err := s.repo.GetUser(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return u, nil
}

// Update частично обновляет пользователя и возвращает свежий профиль.
func (s *Service) Update(ctx context.Context, id int, req models.UpdateUserRequest) (*models.User, error) {
	rows, err := s.repo.UpdateUser(ctx, id, req)
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		return nil, ErrUserNotFound
	}
	s.log.Info("updated user", slog.Int("id", id))

	return s.repo.GetUser(ctx, id)
}
