// Package auth содержит бизнес-логику регистрации, входа и проверки личности пользователя.
package auth

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/magabrotheeeer/fitness-tracker/internal/lib/jwt"
	"github.com/magabrotheeeer/fitness-tracker/internal/lib/password"
	"github.com/magabrotheeeer/fitness-tracker/internal/models"
	"github.com/magabrotheeeer/fitness-tracker/internal/storage"
)

// Ошибки бизнес-логики аутентификации.
var (
	// ErrEmailTaken — email уже занят другим пользователем.
	ErrEmailTaken = errors.New("email already in use")
	// ErrInvalidCredentials — неизвестный email или неверный пароль.
	// Оба случая намеренно неразличимы для клиента.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrUnauthenticated — токен отсутствует, испорчен, просрочен
	// или ссылается на несуществующего пользователя.
	ErrUnauthenticated = errors.New("user is not authenticated")
)

// UserRepository описывает контракт для работы с пользователями в базе данных.
type UserRepository interface {
	// CreateUser сохраняет нового пользователя и возвращает его ID.
	CreateUser(ctx context.Context, user models.User) (int, error)

	// GetUserByEmail возвращает пользователя по email (без учёта регистра).
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)

	// GetUser возвращает пользователя по ID.
	GetUser(ctx context.Context, id int) (*models.User, error)
}

// Service отвечает за регистрацию, авторизацию и восстановление личности из JWT.
type Service struct {
	users    UserRepository
	jwtMaker jwt.Maker
}

// New создает новый экземпляр Service.
func New(users UserRepository, jwtMaker jwt.Maker) *Service {
	return &Service{
		users:    users,
		jwtMaker: jwtMaker,
	}
}

// Register создает нового пользователя. Email приводится к нижнему регистру,
// пароль хэшируется до сохранения, роль по умолчанию — USER.
// Возвращает ErrEmailTaken, если email уже занят.
func (s *Service) Register(ctx context.Context, req models.RegisterRequest) (*models.User, error) {
	const op = "auth.Register"

	email := strings.ToLower(req.Email)
	if _, err := s.users.GetUserByEmail(ctx, email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	hashed, err := password.GetHash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	role := models.RoleUser
	if req.Role != nil {
		role = *req.Role
	}
	user := models.User{
		Email:        email,
		PasswordHash: hashed,
		Role:         role,
		Name:         req.Name,
		Surname:      req.Surname,
		NickName:     req.NickName,
		Age:          req.Age,
	}

	id, err := s.users.CreateUser(ctx, user)
	if err != nil {
		// Конкурентная регистрация того же email проходит мимо предварительной
		// проверки и упирается в уникальный индекс.
		if errors.Is(err, storage.ErrDuplicateEmail) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	user.ID = id
	return &user, nil
}

// Login проверяет пароль пользователя и выдаёт JWT с его идентификатором.
// Неизвестный email и неверный пароль дают один и тот же результат —
// ErrInvalidCredentials.
func (s *Service) Login(ctx context.Context, email, rawPassword string) (string, error) {
	const op = "auth.Login"

	user, err := s.users.GetUserByEmail(ctx, strings.ToLower(email))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrInvalidCredentials
		}
		return "", fmt.Errorf("%s: %w", op, err)
	}
	if err := password.CompareHash(user.PasswordHash, rawPassword); err != nil {
		return "", ErrInvalidCredentials
	}

	token, err := s.jwtMaker.GenerateToken(user.ID)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return token, nil
}

// Identify проверяет токен и восстанавливает личность вызывающего по хранилищу.
// Любая причина отказа (испорченный или просроченный токен, удалённый
// пользователь) сворачивается в ErrUnauthenticated.
func (s *Service) Identify(ctx context.Context, token string) (*models.Identity, error) {
	claims, err := s.jwtMaker.ParseToken(token)
	if err != nil {
		return nil, ErrUnauthenticated
	}
	id, err := claims.UserID()
	if err != nil {
		return nil, ErrUnauthenticated
	}
	user, err := s.users.GetUser(ctx, id)
	if err != nil {
		return nil, ErrUnauthenticated
	}
	return &models.Identity{
		ID:   user.ID,
		Role: user.Role,
	}, nil
}
