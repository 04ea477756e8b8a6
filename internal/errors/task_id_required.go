package errors

import "net/http"

var ErrTaskIDRequired = &Exception{
	Message:    "task id must be a positive integer",
	StatusCode: http.StatusBadRequest,
}

var ErrInvalidID = &Exception{
	Message:    "id must be a positive integer",
	StatusCode: http.StatusBadRequest,
}
