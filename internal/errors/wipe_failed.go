package errors

import "net/http"

var ErrWipeFailed = &Exception{
	Message:    "failed to wipe app data",
	StatusCode: http.StatusInternalServerError,
}
