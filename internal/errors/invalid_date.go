package errors

import "net/http"

var ErrInvalidDate = &Exception{
	Message:    "date must be YYYY-MM-DD",
	StatusCode: http.StatusBadRequest,
}
