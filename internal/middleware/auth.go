package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/fittrack/fittrack-backend/internal/services"
)

type contextKey string

const userIDKey contextKey = "user_id"

// ExtractBearerToken pulls the token out of an "Authorization: Bearer ..."
// header. Returns "" when the header is missing or malformed.
func ExtractBearerToken(header string) string {
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// RequireAuth is the access guard for the protected surface: it verifies the
// bearer token before any handler logic runs and injects the resolved user id
// into the request context. This is the sole authorization mechanism; no
// roles or scopes exist beyond owner-only record access.
func RequireAuth(tokens *services.TokenService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := ExtractBearerToken(r.Header.Get("Authorization"))
			if token == "" {
				unauthorized(w, "Authentication required")
				return
			}

			userID, err := tokens.VerifyToken(token)
			if err != nil {
				if err == services.ErrTokenExpired {
					unauthorized(w, "Token expired")
				} else {
					unauthorized(w, "Invalid token")
				}
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserID returns the authenticated user id injected by RequireAuth.
func UserID(r *http.Request) string {
	id, _ := r.Context().Value(userIDKey).(string)
	return id
}

func unauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": false,
		"message": message,
	})
}
