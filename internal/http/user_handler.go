package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ListUsers returns the active users that tasks can be assigned to.
func (h *Handler) ListUsers(c echo.Context) error {
	users, err := h.userService.List(c.Request().Context(), true)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}

func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
}
