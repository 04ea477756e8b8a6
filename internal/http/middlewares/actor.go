package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/AMSkillPower/TaskMngrCommenti/internal/constants"
)

const (
	HeaderUsername = "X-Username"
	actorKey       = "actor"
)

// Actor binds the username of the caller, taken from the X-Username header,
// into the request context.
func Actor() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			username := strings.TrimSpace(c.Request().Header.Get(HeaderUsername))
			if username == "" {
				username = constants.UnknownActor
			}
			c.Set(actorKey, username)
			return next(c)
		}
	}
}

// ActorFrom returns the username bound by Actor, or "Unknown" outside of it.
func ActorFrom(c echo.Context) string {
	if username, ok := c.Get(actorKey).(string); ok {
		return username
	}
	return constants.UnknownActor
}
