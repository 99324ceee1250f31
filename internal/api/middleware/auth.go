package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/forgeline/workshop-booking-service/internal/api/handlers"
	"github.com/forgeline/workshop-booking-service/internal/domain"
	teammemberRepo "github.com/forgeline/workshop-booking-service/internal/infra/storage/teammember"
)

const headerUserID = "X-User-ID"

type contextKey string

const memberContextKey contextKey = "team_member"

// MemberProvider интерфейс для получения сотрудника по ID пользователя
type MemberProvider interface {
	GetByUserID(ctx context.Context, userID string) (*domain.TeamMember, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Auth проверяет заголовок X-User-ID и разрешает доступ только
// действующим членам команды. Найденный сотрудник кладётся в контекст
func Auth(members MemberProvider, logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID := r.Header.Get(headerUserID)
			if userID == "" {
				logger.Warn("Auth: missing %s header for %s %s", headerUserID, r.Method, r.URL.Path)
				handlers.RespondError(w, http.StatusUnauthorized, "missing X-User-ID header")
				return
			}

			member, err := members.GetByUserID(r.Context(), userID)
			if err != nil {
				if errors.Is(err, teammemberRepo.ErrMemberNotFound) {
					logger.Warn("Auth: unknown user=%s for %s %s", userID, r.Method, r.URL.Path)
					handlers.RespondForbidden(w, "access denied")
					return
				}
				logger.Error("Auth: failed to resolve user=%s: %v", userID, err)
				handlers.RespondInternalError(w)
				return
			}

			ctx := context.WithValue(r.Context(), memberContextKey, member)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// MemberFromContext возвращает сотрудника, положенного Auth middleware
func MemberFromContext(ctx context.Context) (*domain.TeamMember, bool) {
	member, ok := ctx.Value(memberContextKey).(*domain.TeamMember)
	return member, ok
}
