package middleware

import (
	"context"
	"log"
	"net/http"
	"strings"

	"github.com/arya/movie-mate-backend/internal/service"
)

type contextKey string

const (
	UserIDKey contextKey = "userID"
)

// BearerToken extracts the opaque session token from the Authorization
// header.
func BearerToken(r *http.Request) (string, bool) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", false
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", false
	}
	return parts[1], true
}

// Auth resolves the session token to a user id and stores it on the request
// context. Resolving also refreshes the session's idle timer.
func Auth(authService *service.AuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := BearerToken(r)
			if !ok {
				log.Printf("ERROR [middleware.Auth] missing or malformed authorization header")
				http.Error(w, "Authorization header required", http.StatusUnauthorized)
				return
			}

			userID, err := authService.CurrentUser(token)
			if err != nil {
				log.Printf("ERROR [middleware.Auth] session lookup failed: %v", err)
				http.Error(w, "Invalid or expired session", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), UserIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func GetUserID(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(UserIDKey).(string)
	return userID, ok
}
