package middleware

import (
	"blackjack_backend/pkg/resp"
	"blackjack_backend/pkg/token"
	"context"
	"net/http"
	"strings"

	"github.com/charmbracelet/log"
)

type ctxKey struct{}

// WithUserID кладет ID пользователя в контекст
func WithUserID(ctx context.Context, userID int) context.Context {
	return context.WithValue(ctx, ctxKey{}, userID)
}

// UserIDFromContext ID пользователя, которого пропустил Auth
func UserIDFromContext(ctx context.Context) (int, bool) {
	id, ok := ctx.Value(ctxKey{}).(int)
	return id, ok
}

// Auth проверяет access токен из заголовка Authorization: Bearer <token>.
// Токены выдает сервис авторизации, здесь только проверка подписи и срока
func Auth(secretKey []byte, logger *log.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			tokenStr, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || tokenStr == "" {
				resp.WriteError(w, http.StatusUnauthorized, "missing bearer token")
				return
			}

			claims, err := token.VerifyToken(tokenStr, secretKey)
			if err != nil {
				logger.Debug("token rejected", "err", err)
				resp.WriteError(w, http.StatusUnauthorized, "invalid token")
				return
			}

			userID, err := claims.UserID()
			if err != nil {
				resp.WriteError(w, http.StatusUnauthorized, "invalid token")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), userID)))
		})
	}
}
