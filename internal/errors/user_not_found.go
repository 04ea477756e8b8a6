package errors

import "net/http"

var ErrUserNotFound = &Exception{
	Message:    "user not found or inactive",
	StatusCode: http.StatusNotFound,
}
