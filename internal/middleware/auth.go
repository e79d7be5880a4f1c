package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/shoplist/shoplist-go/internal/crypto"
)

type contextKey string

const userIDKey contextKey = "userID"

// JWTAuth returns middleware that validates a bearer token from the
// Authorization header. The token is the second whitespace-separated
// segment of the header value. On success the resolved user identity is
// bound into the request context; on any failure the request stops with
// a 401 carrying the failure reason.
func JWTAuth(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				writeJSONMessage(w, http.StatusUnauthorized, "missing authorization header")
				return
			}

			fields := strings.Fields(authHeader)
			if len(fields) < 2 {
				writeJSONMessage(w, http.StatusUnauthorized, "invalid authorization format")
				return
			}

			claims, err := crypto.ValidateToken(fields[1], secret)
			if err != nil {
				// err is one of crypto.ErrTokenExpired or
				// crypto.ErrInvalidToken; its text is the reason.
				writeJSONMessage(w, http.StatusUnauthorized, err.Error())
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey, claims.UserID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserIDFromContext extracts the authenticated user ID from the request context.
func UserIDFromContext(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(userIDKey).(int64)
	return id, ok
}

// WithUserID returns a context carrying the given user identity.
// Exposed for handler tests.
func WithUserID(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

func writeJSONMessage(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"message": msg})
}
