package errors

import "net/http"

var ErrInvalidCredentials = &Exception{
	Message:    "invalid name or password",
	StatusCode: http.StatusUnauthorized,
}
