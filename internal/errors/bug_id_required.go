package errors

import "net/http"

var ErrBugIDRequired = &Exception{
	Message:    "bug id is required",
	StatusCode: http.StatusBadRequest,
}
