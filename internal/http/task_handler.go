package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/AMSkillPower/TaskMngrCommenti/internal/constants"
	dto "github.com/AMSkillPower/TaskMngrCommenti/internal/data_models"
	middleware "github.com/AMSkillPower/TaskMngrCommenti/internal/http/middlewares"
	"github.com/AMSkillPower/TaskMngrCommenti/internal/http/validators"
)

func (h *Handler) CreateTask(c echo.Context) error {
	var req dto.CreateTaskRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	if err := validators.ValidateTaskRequest(&req); err != nil {
		return err
	}

	task, err := h.taskService.CreateTask(c.Request().Context(), &req, middleware.ActorFrom(c))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, dto.NewTaskResponse(task))
}

func (h *Handler) UpdateTask(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	var req dto.UpdateTaskRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	if err := validators.ValidateTaskRequest(&req); err != nil {
		return err
	}

	task, err := h.taskService.UpdateTask(c.Request().Context(), id, &req, middleware.ActorFrom(c))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.NewTaskResponse(task))
}

func (h *Handler) DeleteTask(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	if err := h.taskService.DeleteTask(c.Request().Context(), id, middleware.ActorFrom(c)); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) GetTask(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	task, err := h.taskService.GetTask(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.NewTaskResponse(task))
}

func (h *Handler) ListTasks(c echo.Context) error {
	filter := dto.TaskFilter{
		Status:   constants.TaskStatus(c.QueryParam("stato")),
		Priority: constants.Priority(c.QueryParam("priorità")),
		Software: c.QueryParam("software"),
		Client:   c.QueryParam("clienti"),
		Assignee: c.QueryParam("utente"),
	}
	if filter.Priority == "" {
		filter.Priority = constants.Priority(c.QueryParam("priorita"))
	}

	tasks, err := h.taskService.ListTasks(c.Request().Context(), filter)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.NewTaskResponses(tasks))
}
