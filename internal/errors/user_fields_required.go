package errors

import "net/http"

var ErrUserFieldsRequired = &Exception{
	Message:    "name and password are required",
	StatusCode: http.StatusBadRequest,
}
