package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	dto "github.com/AMSkillPower/TaskMngrCommenti/internal/data_models"
	apperrors "github.com/AMSkillPower/TaskMngrCommenti/internal/errors"
	middleware "github.com/AMSkillPower/TaskMngrCommenti/internal/http/middlewares"
	"github.com/AMSkillPower/TaskMngrCommenti/internal/http/validators"
)

func (h *Handler) ListTaskComments(c echo.Context) error {
	taskID, err := paramID(c, "taskId")
	if err != nil {
		return err
	}

	comments, err := h.commentService.ListByTask(c.Request().Context(), taskID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, comments)
}

func (h *Handler) TaskCommentHours(c echo.Context) error {
	taskID, err := paramID(c, "taskId")
	if err != nil {
		return err
	}

	total, err := h.commentService.TotalHours(c.Request().Context(), taskID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dto.TotalHoursResponse{TotalHours: total})
}

func (h *Handler) ListUserComments(c echo.Context) error {
	comments, err := h.commentService.ListByUser(c.Request().Context(), c.Param("username"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, comments)
}

func (h *Handler) GetComment(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	comment, err := h.commentService.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, comment)
}

func (h *Handler) CreateComment(c echo.Context) error {
	var req dto.CreateCommentRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	if err := validators.ValidateCreateCommentRequest(&req); err != nil {
		return err
	}

	comment, err := h.commentService.Create(c.Request().Context(), &req, middleware.ActorFrom(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, comment)
}

// UpdateComment lets only the author rewrite a comment.
func (h *Handler) UpdateComment(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	var req dto.UpdateCommentRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	if err := validators.ValidateUpdateCommentRequest(&req); err != nil {
		return err
	}

	ctx := c.Request().Context()
	existing, err := h.commentService.Get(ctx, id)
	if err != nil {
		return err
	}
	if existing.Author != middleware.ActorFrom(c) {
		return apperrors.ErrCommentEditForbidden
	}

	comment, err := h.commentService.Update(ctx, id, &req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, comment)
}

func (h *Handler) DeleteComment(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	ctx := c.Request().Context()
	existing, err := h.commentService.Get(ctx, id)
	if err != nil {
		return err
	}
	if existing.Author != middleware.ActorFrom(c) {
		return apperrors.ErrCommentDeleteForbidden
	}

	if err := h.commentService.Delete(ctx, id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
