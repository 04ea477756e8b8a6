package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

func (h *Handler) ListLogs(c echo.Context) error {
	entries, err := h.taskService.ListLogs(c.Request().Context(), c.QueryParam("codiceTask"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, entries)
}

func (h *Handler) ListUserLogs(c echo.Context) error {
	entries, err := h.taskService.ListLogsByUser(c.Request().Context(), c.Param("username"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, entries)
}
