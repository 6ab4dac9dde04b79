package errors

import "net/http"

var ErrInvalidScheduledTime = &Exception{
	Message:    "scheduled time must be HH:MM",
	StatusCode: http.StatusBadRequest,
}
