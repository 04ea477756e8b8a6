package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	dto "github.com/AMSkillPower/TaskMngrCommenti/internal/data_models"
)

func (h *Handler) ListAttachments(c echo.Context) error {
	taskID, err := paramID(c, "id")
	if err != nil {
		return err
	}

	attachments, err := h.attachmentService.ListByTask(c.Request().Context(), taskID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, attachments)
}

func (h *Handler) CreateAttachment(c echo.Context) error {
	taskID, err := paramID(c, "id")
	if err != nil {
		return err
	}

	var req dto.CreateAttachmentRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	attachment, err := h.attachmentService.Create(c.Request().Context(), taskID, req.Data)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, attachment)
}

func (h *Handler) DeleteAttachment(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	if err := h.attachmentService.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
