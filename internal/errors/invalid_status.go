package errors

import "net/http"

var ErrInvalidStatus = &Exception{
	Message:    "status must be one of: open, in-progress, resolved",
	StatusCode: http.StatusBadRequest,
}
