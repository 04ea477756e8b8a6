package http

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	middleware "github.com/AMSkillPower/TaskMngrCommenti/internal/http/middlewares"
)

type Options struct {
	RateLimitPerMinute int
	AllowedOrigins     []string
}

func Register(e *echo.Echo, h *Handler, opts Options) {
	e.HideBanner = true
	e.HTTPErrorHandler = ErrorHandler

	e.Use(echomw.Recover())
	e.Use(echomw.RequestIDWithConfig(echomw.RequestIDConfig{Generator: uuid.NewString}))
	e.Use(middleware.Actor())
	e.Use(middleware.RequestLogger())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: opts.AllowedOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, middleware.HeaderUsername},
	}))
	e.Use(echomw.BodyLimit("20M"))
	e.Use(middleware.RateLimiter(opts.RateLimitPerMinute, time.Minute, "/health"))

	e.GET("/health", h.Health)

	e.GET("/tasks", h.ListTasks)
	e.POST("/tasks", h.CreateTask)
	e.GET("/tasks/:id", h.GetTask)
	e.PUT("/tasks/:id", h.UpdateTask)
	e.DELETE("/tasks/:id", h.DeleteTask)
	e.GET("/tasks/:id/attachments", h.ListAttachments)
	e.POST("/tasks/:id/attachments", h.CreateAttachment)
	e.DELETE("/attachments/:id", h.DeleteAttachment)

	e.GET("/comments/task/:taskId", h.ListTaskComments)
	e.GET("/comments/task/:taskId/hours", h.TaskCommentHours)
	e.GET("/comments/user/:username", h.ListUserComments)
	e.GET("/comments/:id", h.GetComment)
	e.POST("/comments", h.CreateComment)
	e.PUT("/comments/:id", h.UpdateComment)
	e.DELETE("/comments/:id", h.DeleteComment)

	e.GET("/logs", h.ListLogs)
	e.GET("/logs/user/:username", h.ListUserLogs)

	e.GET("/notifications", h.ListNotifications)
	e.PUT("/notifications/read-all", h.MarkAllNotificationsRead)
	e.PUT("/notifications/:id/read", h.MarkNotificationRead)

	e.GET("/users", h.ListUsers)
}
