package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	middleware "github.com/AMSkillPower/TaskMngrCommenti/internal/http/middlewares"
)

// ListNotifications returns the notifications addressed to the caller.
// ?unread=true restricts the list to unread ones.
func (h *Handler) ListNotifications(c echo.Context) error {
	unreadOnly, _ := strconv.ParseBool(c.QueryParam("unread"))

	views, err := h.notificationService.ListForUser(c.Request().Context(), middleware.ActorFrom(c), unreadOnly)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, views)
}

func (h *Handler) MarkNotificationRead(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	if err := h.notificationService.MarkRead(c.Request().Context(), id, middleware.ActorFrom(c)); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) MarkAllNotificationsRead(c echo.Context) error {
	n, err := h.notificationService.MarkAllRead(c.Request().Context(), middleware.ActorFrom(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"updated": n})
}
