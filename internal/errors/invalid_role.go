package errors

import "net/http"

var ErrInvalidRole = &Exception{
	Message:    "role must be admin, user or viewer",
	StatusCode: http.StatusBadRequest,
}
