package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/medihive/medihive/internal/platform/token"
)

type contextKey string

const identityKey contextKey = "identity"

// Identity is the authenticated caller resolved from a bearer token and
// attached to the request context for downstream handlers.
type Identity struct {
	UserID uuid.UUID
	Email  string
	Role   Role
}

// Authenticate returns middleware that validates the Authorization header
// against the token codec and stores the resolved Identity on the request
// context. Every request is authenticated independently; there is no
// session store.
func Authenticate(codec *token.Codec) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization format")
			}

			claims, err := codec.Verify(parts[1])
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token")
			}

			role, err := ParseRole(claims.Role)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token")
			}

			ident := Identity{UserID: claims.UserID, Email: claims.Email, Role: role}
			ctx := context.WithValue(c.Request().Context(), identityKey, ident)
			c.SetRequest(c.Request().WithContext(ctx))

			return next(c)
		}
	}
}

// IdentityFromContext returns the authenticated identity, if any.
func IdentityFromContext(ctx context.Context) (Identity, bool) {
	ident, ok := ctx.Value(identityKey).(Identity)
	return ident, ok
}

// WithIdentity returns a context carrying the given identity. Used by
// handler tests to simulate an authenticated request.
func WithIdentity(ctx context.Context, ident Identity) context.Context {
	return context.WithValue(ctx, identityKey, ident)
}
