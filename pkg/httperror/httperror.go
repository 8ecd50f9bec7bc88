package httperror

import (
	"fmt"
	"net/http"
)

// Error is a failure the HTTP boundary renders as {"code", "message", "details"}.
type Error struct {
	Status  int
	Code    string
	Message string
	Details any
}

func (e *Error) Error() string {
	return fmt.Sprintf("%d %s: %s", e.Status, e.Code, e.Message)
}

func New(status int, code, message string, details any) *Error {
	return &Error{
		Status:  status,
		Code:    code,
		Message: message,
		Details: details,
	}
}

func BadRequest(code, message string, details any) *Error {
	return New(http.StatusBadRequest, code, message, details)
}

func NotFound(code, message string, details any) *Error {
	return New(http.StatusNotFound, code, message, details)
}

func Conflict(code, message string, details any) *Error {
	return New(http.StatusConflict, code, message, details)
}

func TooManyRequests(code, message string, details any) *Error {
	return New(http.StatusTooManyRequests, code, message, details)
}

func InternalServerError(code, message string, details any) *Error {
	return New(http.StatusInternalServerError, code, message, details)
}

// NoContent signals a successful request with an empty body.
func NoContent(code, message string, details any) *Error {
	return New(http.StatusNoContent, code, message, details)
}
