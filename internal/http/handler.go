package http

import (
	"strconv"

	"github.com/labstack/echo/v4"

	apperrors "github.com/AMSkillPower/TaskMngrCommenti/internal/errors"
	"github.com/AMSkillPower/TaskMngrCommenti/internal/services"
)

type Handler struct {
	taskService         *services.TaskService
	commentService      *services.CommentService
	attachmentService   *services.AttachmentService
	notificationService *services.NotificationService
	userService         *services.UserService
}

func NewHandler(
	taskService *services.TaskService,
	commentService *services.CommentService,
	attachmentService *services.AttachmentService,
	notificationService *services.NotificationService,
	userService *services.UserService,
) *Handler {
	return &Handler{
		taskService:         taskService,
		commentService:      commentService,
		attachmentService:   attachmentService,
		notificationService: notificationService,
		userService:         userService,
	}
}

// bind decodes the JSON body into dst.
func bind(c echo.Context, dst any) error {
	if err := c.Bind(dst); err != nil {
		return apperrors.ErrInvalidJSON
	}
	return nil
}

func paramID(c echo.Context, name string) (uint, error) {
	raw := c.Param(name)
	if raw == "" {
		return 0, apperrors.ErrTaskIDRequired
	}

	id, err := strconv.ParseUint(raw, 10, 0)
	if err != nil || id == 0 {
		return 0, apperrors.ErrInvalidID
	}
	return uint(id), nil
}
