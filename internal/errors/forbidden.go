package errors

import "net/http"

var ErrCommentEditForbidden = &Exception{
	Message:    "cannot modify comments of other users",
	StatusCode: http.StatusForbidden,
}

var ErrCommentDeleteForbidden = &Exception{
	Message:    "cannot delete comments of other users",
	StatusCode: http.StatusForbidden,
}

var ErrNotificationForbidden = &Exception{
	Message:    "notification belongs to another user",
	StatusCode: http.StatusForbidden,
}
