package http

import (
	"slices"
	"strconv"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/user"
	"eats/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

const (
	HeaderUserID   = "X-User-Id"
	HeaderUserRole = "X-User-Role"

	userContextKey = "eats.user"
)

// Identity reads the caller from the gateway headers. Requests without a valid
// identity are rejected as forbidden.
func Identity() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			u, err := userFromHeaders(c.Request().Header.Get(HeaderUserID), c.Request().Header.Get(HeaderUserRole))
			if err != nil {
				return writeError(c, errs.NewForbiddenError("authenticate", err.Error()))
			}
			c.Set(userContextKey, u)
			return next(c)
		}
	}
}

// RequireRole lets through only callers with one of roles.
func RequireRole(roles ...user.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			u, ok := currentUser(c)
			if !ok || !slices.Contains(roles, u.Role()) {
				return writeError(c, errs.NewForbiddenError(c.Path(), "role not allowed"))
			}
			return next(c)
		}
	}
}

func currentUser(c echo.Context) (user.User, bool) {
	u, ok := c.Get(userContextKey).(user.User)
	return u, ok
}

func userFromHeaders(rawID, rawRole string) (user.User, error) {
	if rawID == "" {
		return user.User{}, errs.NewValueIsRequiredError(HeaderUserID)
	}
	n, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		return user.User{}, errs.NewValueIsInvalidErrorWithCause(HeaderUserID, err)
	}
	role, err := user.ParseRole(rawRole)
	if err != nil {
		return user.User{}, err
	}
	return user.NewUser(kernel.ID(n), role)
}
