package middleware

import (
	"context"
	"net/http"
	"strings"

	"financeflow/internal/domain/auth"
	"financeflow/internal/transport/http/api"
)

type ctxKey int

const ctxKeySession ctxKey = iota

// Auth resolves the bearer token into a session. Requests without a token
// (or with an invalid one) pass through unauthenticated; guarded routes
// reject them via RequireSession.
func Auth(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				next.ServeHTTP(w, r)
				return
			}
			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
				next.ServeHTTP(w, r)
				return
			}

			session, err := auth.ParseToken(secret, parts[1])
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			ctx := context.WithValue(r.Context(), ctxKeySession, session)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func GetSession(ctx context.Context) (auth.Session, bool) {
	session, ok := ctx.Value(ctxKeySession).(auth.Session)
	return session, ok
}

// RequireSession guards routes that need a session of either kind.
func RequireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := GetSession(r.Context()); !ok {
			api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", GetRequestID(r.Context()))
			return
		}
		next.ServeHTTP(w, r)
	})
}
