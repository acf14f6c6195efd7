package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/forgo/roam/api/internal/model"
	"github.com/forgo/roam/api/pkg/jwt"
)

// AuthService defines the interface for token validation
type AuthService interface {
	ValidateAccessToken(token string) (*jwt.Claims, error)
}

// Auth returns a middleware that validates JWT tokens
func Auth(authService AuthService) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r)
			if !ok {
				model.NewUnauthorizedError("missing or malformed authorization header").WriteJSON(w)
				return
			}

			claims, err := authService.ValidateAccessToken(token)
			if err != nil {
				switch {
				case errors.Is(err, jwt.ErrTokenExpired):
					model.NewUnauthorizedError("token expired").WriteJSON(w)
				case errors.Is(err, jwt.ErrInvalidSignature):
					model.NewUnauthorizedError("invalid token signature").WriteJSON(w)
				default:
					model.NewUnauthorizedError("invalid token").WriteJSON(w)
				}
				return
			}

			ctx := context.WithValue(r.Context(), UserIDKey, claims.UserID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// OptionalAuth sets user info in context when a valid token is present and
// lets the request through either way. Read surfaces use this so guests get
// the guest view instead of a 401.
func OptionalAuth(authService AuthService) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r)
			if !ok {
				next.ServeHTTP(w, r)
				return
			}

			claims, err := authService.ValidateAccessToken(token)
			if err != nil {
				// Invalid token on an optional route: treat as guest
				next.ServeHTTP(w, r)
				return
			}

			ctx := context.WithValue(r.Context(), UserIDKey, claims.UserID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetUserID extracts the user ID from context. Empty for guests.
func GetUserID(ctx context.Context) string {
	if id, ok := ctx.Value(UserIDKey).(string); ok {
		return id
	}
	return ""
}

// bearerToken extracts the token from the Authorization header
func bearerToken(r *http.Request) (string, bool) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", false
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	return parts[1], true
}
