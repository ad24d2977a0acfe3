// Package middlewarectx содержит HTTP middleware для аутентификации запросов
// и авторизации по роли.
//
// Authenticate проверяет bearer-токен из заголовка Authorization, восстанавливает
// личность вызывающего через сервис аутентификации и кладёт её в контекст запроса.
// RequireAdmin — составной guard: он сам выполняет аутентификацию и сразу
// проверяет роль, поэтому не зависит от порядка подключения middleware.
//
// Любая причина отказа аутентификации возвращает один и тот же ответ
// HTTP 401 без уточнения, что именно не так с токеном.
package middlewarectx

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/fitness-tracker/internal/http/response"
	"github.com/magabrotheeeer/fitness-tracker/internal/lib/locale"
	"github.com/magabrotheeeer/fitness-tracker/internal/lib/sl"
	"github.com/magabrotheeeer/fitness-tracker/internal/models"
)

// Key тип для ключей контекста HTTP-запроса.
type Key string

// IdentityKey — ключ для личности вызывающего в контексте.
const IdentityKey Key = "identity"

// Service описывает интерфейс сервиса для восстановления личности из токена.
type Service interface {
	Identify(ctx context.Context, token string) (*models.Identity, error)
}

// Identity извлекает личность вызывающего из контекста запроса.
func Identity(ctx context.Context) (models.Identity, bool) {
	identity, ok := ctx.Value(IdentityKey).(models.Identity)
	return identity, ok
}

var errMissingToken = errors.New("missing or invalid authorization header")

func resolveIdentity(r *http.Request, auth Service) (*models.Identity, error) {
	authHeader := r.Header.Get("Authorization")
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return nil, errMissingToken
	}
	tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
	return auth.Identify(r.Context(), tokenStr)
}

// Authenticate возвращает HTTP middleware, которое проверяет bearer-токен
// и кладёт личность вызывающего в контекст запроса.
//
// При любой ошибке проверки возвращает HTTP 401 с общим сообщением.
func Authenticate(auth Service, log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			const op = "middlewarectx.Authenticate"
			log := log.With(
				slog.String("op", op),
				slog.String("request_id", middleware.GetReqID(r.Context())),
			)

			identity, err := resolveIdentity(r, auth)
			if err != nil {
				log.Error("authentication failed", sl.Err(err))
				w.WriteHeader(http.StatusUnauthorized)
				render.JSON(w, r, response.Error(
					locale.Localize(r.Header.Get("Language"), "User is not authenticated")))
				return
			}

			ctx := context.WithValue(r.Context(), IdentityKey, *identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAdmin возвращает HTTP middleware, которое аутентифицирует вызывающего
// и сразу проверяет, что его роль — ADMIN. Обе проверки выполняются вместе,
// поэтому guard нельзя подключить "мимо" аутентификации.
func RequireAdmin(auth Service, log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			const op = "middlewarectx.RequireAdmin"
			log := log.With(
				slog.String("op", op),
				slog.String("request_id", middleware.GetReqID(r.Context())),
			)

			identity, err := resolveIdentity(r, auth)
			if err != nil {
				log.Error("authentication failed", sl.Err(err))
				w.WriteHeader(http.StatusUnauthorized)
				render.JSON(w, r, response.Error(
					locale.Localize(r.Header.Get("Language"), "User is not authenticated")))
				return
			}
			if !identity.IsAdmin() {
				log.Error("admin role required", slog.Int("user_id", identity.ID))
				w.WriteHeader(http.StatusForbidden)
				render.JSON(w, r, response.Error(
					locale.Localize(r.Header.Get("Language"), "Unauthorized")))
				return
			}

			ctx := context.WithValue(r.Context(), IdentityKey, *identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
