package constant

import "net/http"

type ErrorType int

const (
	Successful ErrorType = iota
	ErrInternal
	ErrNotFound
	ErrInvalidRequest
	ErrEmailExists
	ErrTimeout
)

var ErrorTypeMessage = map[ErrorType]string{
	Successful:        "success",
	ErrInternal:       "error internal",
	ErrNotFound:       "user not found",
	ErrInvalidRequest: "invalid request",
	ErrEmailExists:    "Email is already in use",
	ErrTimeout:        "request timed out",
}

var ErrorTypeHTTPCode = map[ErrorType]int{
	Successful:        http.StatusOK,
	ErrInternal:       http.StatusInternalServerError,
	ErrNotFound:       http.StatusNotFound,
	ErrInvalidRequest: http.StatusBadRequest,
	ErrEmailExists:    http.StatusConflict,
	ErrTimeout:        http.StatusInternalServerError,
}
