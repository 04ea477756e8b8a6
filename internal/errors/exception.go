package errors

import (
	"errors"
	"fmt"
	"net/http"
)

type Exception struct {
	Message    string
	StatusCode int
	Err        error
}

func (e *Exception) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Exception) Unwrap() error {
	return e.Err
}

func StatusCode(err error) int {
	var appErr *Exception
	if errors.As(err, &appErr) {
		return appErr.StatusCode
	}
	return http.StatusInternalServerError
}

func Validation(format string, args ...any) *Exception {
	return &Exception{Message: fmt.Sprintf(format, args...), StatusCode: http.StatusBadRequest}
}

func Conflict(format string, args ...any) *Exception {
	return &Exception{Message: fmt.Sprintf(format, args...), StatusCode: http.StatusConflict}
}

func Forbidden(format string, args ...any) *Exception {
	return &Exception{Message: fmt.Sprintf(format, args...), StatusCode: http.StatusForbidden}
}

// Store wraps a persistence failure, keeping the cause in the message.
func Store(msg string, err error) *Exception {
	return &Exception{Message: msg, StatusCode: http.StatusInternalServerError, Err: err}
}
