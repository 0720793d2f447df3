package middleware

import (
	"context"
	"log"
	"net/http"
	"strings"

	"github.com/sinawatra/TamDan/internal/domain/user"
	"github.com/sinawatra/TamDan/internal/shared/auth"
)

type ContextKey string

const (
	// UserIDKey carries the authenticated user's id.
	UserIDKey ContextKey = "user_id"
	// UserKey carries the resolved *user.User record.
	UserKey ContextKey = "user"
	// RequestIDKey carries the per-request id set by RequestID.
	RequestIDKey ContextKey = "request_id"
)

// UserFromContext returns the authenticated user attached by Auth.
func UserFromContext(ctx context.Context) (*user.User, bool) {
	u, ok := ctx.Value(UserKey).(*user.User)
	return u, ok
}

// Auth guards a handler behind token authentication. The token comes from
// the access_token HttpOnly cookie (browser clients) or the Authorization
// Bearer header (API clients). The embedded user id must still resolve to
// a stored user; a token for a deleted account is rejected.
func Auth(jwt *auth.JWT, users user.Repository) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := extractToken(r)
			if !ok {
				unauthorized(w, "Authentication required")
				return
			}

			userID, err := jwt.Validate(token)
			if err != nil {
				log.Printf("Rejected token: %v", err)
				unauthorized(w, "Invalid or expired token")
				return
			}

			u, err := users.GetByID(r.Context(), userID)
			if err != nil {
				unauthorized(w, "Invalid or expired token")
				return
			}

			ctx := context.WithValue(r.Context(), UserIDKey, u.ID)
			ctx = context.WithValue(ctx, UserKey, u)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func extractToken(r *http.Request) (string, bool) {
	// Try HttpOnly cookie first (browser requests)
	if cookie, err := r.Cookie("access_token"); err == nil && cookie.Value != "" {
		return cookie.Value, true
	}

	// Fall back to Authorization header (API clients)
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", false
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}

func unauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	w.Write([]byte(`{"status":"fail","message":"` + message + `"}`))
}
