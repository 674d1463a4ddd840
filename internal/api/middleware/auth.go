package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-FitnessBookingService/internal/api/handlers"
)

// ProfileIDHeader заголовок с ID профиля, выставляется шлюзом аутентификации
const ProfileIDHeader = "X-Profile-ID"

type contextKey struct{}

var profileIDKey = contextKey{}

// Auth кладет ID профиля из заголовка в контекст.
// Запрос без заголовка проходит дальше, обработчик сам решает, нужен ли профиль.
// Некорректный UUID отклоняется с 401.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.Header.Get(ProfileIDHeader)
		if raw == "" {
			next.ServeHTTP(w, r)
			return
		}

		id, err := uuid.Parse(raw)
		if err != nil || id == uuid.Nil {
			handlers.RespondUnauthorized(w, "некорректный ID профиля")
			return
		}

		next.ServeHTTP(w, r.WithContext(WithProfileID(r.Context(), id)))
	})
}

// WithProfileID возвращает контекст с ID профиля
func WithProfileID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, profileIDKey, id)
}

// GetProfileID извлекает ID профиля из контекста
func GetProfileID(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(profileIDKey).(uuid.UUID)
	return id, ok
}
