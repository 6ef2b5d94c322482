package identity

import (
	"context"
	"eventService/internal/lib/logger/sl"
	"eventService/internal/models"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

type contextKey string

const userKey contextKey = "user"

type Claims struct {
	UserID string      `json:"uid"`
	Role   models.Role `json:"role"`
	jwt.RegisteredClaims
}

// New returns a middleware that parses the Bearer token and, when it is
// valid, attaches the caller identity to the request context. Requests
// without a usable identity pass through untouched: rejecting them is the
// handlers' decision, not the middleware's.
func New(log *slog.Logger, secret string) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		log = log.With(
			slog.String("component", "middleware/identity"),
		)

		fn := func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				next.ServeHTTP(w, r)
				return
			}

			tokenStr := strings.TrimPrefix(authHeader, "Bearer ")

			claims := &Claims{}
			token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
				if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
				}

				return []byte(secret), nil
			})
			if err != nil {
				log.Warn("failed to parse token", sl.Err(err))
				next.ServeHTTP(w, r)
				return
			}

			if !token.Valid {
				log.Warn("invalid token")
				next.ServeHTTP(w, r)
				return
			}

			user := models.User{
				ID:   claims.UserID,
				Role: claims.Role,
			}

			next.ServeHTTP(w, r.WithContext(ContextWithUser(r.Context(), user)))
		}

		return http.HandlerFunc(fn)
	}
}

// UserFromContext returns the caller identity attached by the middleware.
func UserFromContext(ctx context.Context) (models.User, bool) {
	user, ok := ctx.Value(userKey).(models.User)
	return user, ok
}

func ContextWithUser(ctx context.Context, user models.User) context.Context {
	return context.WithValue(ctx, userKey, user)
}
