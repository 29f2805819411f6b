package errors

import "net/http"

var ErrTitleTooLong = &Exception{
	Message:    "title must be at most 100 characters",
	StatusCode: http.StatusBadRequest,
}
