package middleware

import (
	"context"
	"net/http"
	"strings"

	"kassa/internal/shared/auth"
)

type ContextKey string

// UserIDKey carries the verified subject id of the caller. Handlers read it
// and pass it explicitly into every repository call.
const UserIDKey ContextKey = "user_id"

// Auth requires an "Authorization: Bearer <token>" header and verifies the
// token with the external identity provider on every request. No tokens are
// cached locally.
func Auth(verifier auth.TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				http.Error(w, "Authentication required", http.StatusUnauthorized)
				return
			}

			token, ok := strings.CutPrefix(authHeader, "Bearer ")
			if !ok || token == "" {
				http.Error(w, "Invalid authorization header format", http.StatusUnauthorized)
				return
			}

			userID, err := verifier.Verify(r.Context(), token)
			if err != nil {
				http.Error(w, "Invalid or expired token", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), UserIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
