package errors

import "net/http"

var ErrBugNotFound = &Exception{
	Message:    "bug not found",
	StatusCode: http.StatusNotFound,
}
