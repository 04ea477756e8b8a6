package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "github.com/AMSkillPower/TaskMngrCommenti/internal/errors"
	"github.com/AMSkillPower/TaskMngrCommenti/internal/logging"
)

// ErrorHandler renders every error as {"error": "<message>"}.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status := http.StatusInternalServerError
	message := http.StatusText(status)

	var appErr *apperrors.Exception
	var httpErr *echo.HTTPError
	switch {
	case errors.As(err, &appErr):
		status = appErr.StatusCode
		message = appErr.Error()
	case errors.As(err, &httpErr):
		status = httpErr.Code
		message = fmt.Sprint(httpErr.Message)
	}

	if status >= http.StatusInternalServerError {
		logging.Logger.WithError(err).WithField("path", c.Request().URL.Path).Error("request error")
	}

	if c.Request().Method == http.MethodHead {
		err = c.NoContent(status)
	} else {
		err = c.JSON(status, echo.Map{"error": message})
	}
	if err != nil {
		logging.Logger.WithError(err).Error("failed to write error response")
	}
}
