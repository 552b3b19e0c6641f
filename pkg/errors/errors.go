package errors

import (
	"fmt"
	"net/http"
)

// Error codes for the booking taxonomy. Every code except CodeInternal is a
// client-input error and maps to HTTP 400.
const (
	CodeMalformedRequest = "MALFORMED_REQUEST"
	CodeOutOfHours       = "OUT_OF_HOURS"
	CodeCapacityExceeded = "CAPACITY_EXCEEDED"
	CodeInternal         = "INTERNAL_ERROR"
)

// Messages surfaced to clients. The texts are part of the API contract and
// must not be reworded.
const (
	MsgOutOfHours       = "Booking time must be within the 9am to 9pm"
	MsgCapacityExceeded = "Maximum number of tables booked at this time. Please choose a different time."
	MsgInvalidBooking   = "Invalid booking request"
	MsgInvalidDate      = "Invalid date parameter"
)

type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func (e *AppError) StatusCode() int {
	return e.HTTPStatus
}

func New(code, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

func Wrap(err error, code, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// MalformedRequest covers unparseable bodies, missing fields and invalid
// date formats. The message varies by which part of the request failed.
func MalformedRequest(message string) *AppError {
	return &AppError{
		Code:       CodeMalformedRequest,
		Message:    message,
		HTTPStatus: http.StatusBadRequest,
	}
}

func OutOfHours() *AppError {
	return &AppError{
		Code:       CodeOutOfHours,
		Message:    MsgOutOfHours,
		HTTPStatus: http.StatusBadRequest,
	}
}

func CapacityExceeded() *AppError {
	return &AppError{
		Code:       CodeCapacityExceeded,
		Message:    MsgCapacityExceeded,
		HTTPStatus: http.StatusBadRequest,
	}
}

func Internal(message string, err error) *AppError {
	return &AppError{
		Code:       CodeInternal,
		Message:    message,
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

func IsAppError(err error) bool {
	_, ok := err.(*AppError)
	return ok
}

// AsAppError returns err as an AppError, wrapping anything unexpected as an
// internal error so handlers never leak raw error strings.
func AsAppError(err error) *AppError {
	if appErr, ok := err.(*AppError); ok {
		return appErr
	}
	return Internal("An unexpected error occurred", err)
}
