package errors

import "net/http"

var ErrDefaultAdminProtected = &Exception{
	Message:    "default admin cannot be deleted",
	StatusCode: http.StatusBadRequest,
}
