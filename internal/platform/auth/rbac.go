package auth

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// RequireRole returns middleware that rejects callers whose role is not in
// the allowed set. Unlike broader RBAC schemes there is no implicit admin
// override: an endpoint that wants admins lists them.
func RequireRole(roles ...Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ident, ok := IdentityFromContext(c.Request().Context())
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}
			for _, required := range roles {
				if ident.Role == required {
					return next(c)
				}
			}
			names := make([]string, len(roles))
			for i, r := range roles {
				names[i] = r.String()
			}
			return echo.NewHTTPError(http.StatusForbidden,
				fmt.Sprintf("required role: %s", strings.Join(names, " or ")))
		}
	}
}

// IsOwner reports whether the caller's profile id matches either side of an
// appointment. Cancel and complete both gate on this single predicate.
func IsOwner(patientID, doctorID, callerProfileID uuid.UUID) bool {
	return callerProfileID != uuid.Nil &&
		(callerProfileID == patientID || callerProfileID == doctorID)
}
