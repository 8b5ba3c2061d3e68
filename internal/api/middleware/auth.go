package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// Заголовки идентичности, проставляются внешним шлюзом после аутентификации
const (
	HeaderUserID   = "X-User-ID"
	HeaderUserRole = "X-User-Role"
)

type actorCtxKey struct{}

// Auth извлекает идентичность пользователя из заголовков запроса
// и кладёт Actor в контекст. Запросы без заголовков пропускаются дальше,
// проверку наличия Actor выполняют сами обработчики
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userIDStr := r.Header.Get(HeaderUserID)
		roleStr := r.Header.Get(HeaderUserRole)

		if userIDStr == "" || roleStr == "" {
			next.ServeHTTP(w, r)
			return
		}

		userID, err := strconv.ParseInt(userIDStr, 10, 64)
		if err != nil || userID <= 0 {
			next.ServeHTTP(w, r)
			return
		}

		role := domain.UserRole(roleStr)
		if !domain.ValidUserRole(role) {
			next.ServeHTTP(w, r)
			return
		}

		actor := domain.Actor{UserID: userID, Role: role}
		ctx := context.WithValue(r.Context(), actorCtxKey{}, actor)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetActor возвращает Actor из контекста запроса
func GetActor(ctx context.Context) (domain.Actor, bool) {
	actor, ok := ctx.Value(actorCtxKey{}).(domain.Actor)
	return actor, ok
}

// GetUserID возвращает ID пользователя из контекста запроса
func GetUserID(ctx context.Context) (int64, bool) {
	actor, ok := GetActor(ctx)
	if !ok {
		return 0, false
	}
	return actor.UserID, true
}
