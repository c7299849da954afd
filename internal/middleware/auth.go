package middleware

import (
	"context"
	"net/http"
	"strings"

	"app/internal/auth"

	"github.com/rs/zerolog"
)

// contextKey keeps request-context values from colliding with other packages.
type contextKey string

// UserContextKey holds the authenticated user ID.
const UserContextKey = contextKey("user")

// AuthMiddleware rejects requests without a valid bearer token and injects
// the verified user ID into the request context.
func AuthMiddleware(authority *auth.Authority, logger zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				http.Error(w, "Authorization header missing", http.StatusUnauthorized)
				return
			}
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || parts[0] != "Bearer" {
				http.Error(w, "Invalid authorization header", http.StatusUnauthorized)
				return
			}
			userID, err := authority.Verify(parts[1])
			if err != nil {
				logger.Debug().Err(err).Msg("Rejected bearer token")
				http.Error(w, "Invalid token", http.StatusUnauthorized)
				return
			}
			ctx := context.WithValue(r.Context(), UserContextKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
