package errors

import "net/http"

var ErrCannotCompleteTask = &Exception{
	Message:    "task cannot be completed by current user",
	StatusCode: http.StatusForbidden,
}
