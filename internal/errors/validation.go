package errors

import "net/http"

var ErrTaskCodeRequired = &Exception{
	Message:    "codiceTask is required",
	StatusCode: http.StatusBadRequest,
}

var ErrAssigneeRequired = &Exception{
	Message:    "at least one assigned user is required",
	StatusCode: http.StatusBadRequest,
}

var ErrCommentTextRequired = &Exception{
	Message:    "comment text is required",
	StatusCode: http.StatusBadRequest,
}

var ErrCommentTaskRequired = &Exception{
	Message:    "idTask is required",
	StatusCode: http.StatusBadRequest,
}

var ErrNegativeHours = &Exception{
	Message:    "hours must not be negative",
	StatusCode: http.StatusBadRequest,
}

var ErrInvalidJSON = &Exception{
	Message:    "invalid JSON payload",
	StatusCode: http.StatusBadRequest,
}
