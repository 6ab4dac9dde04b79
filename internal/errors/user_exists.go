package errors

import "net/http"

var ErrUserExists = &Exception{
	Message:    "user with this name already exists",
	StatusCode: http.StatusConflict,
}
