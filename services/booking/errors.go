package booking

import (
	"errors"
	"fmt"

	bookingRepo "carwash/database/repository/booking"
	"carwash/models"
)

// ErrorCode classifies a BookingError for the transport layer.
type ErrorCode string

const (
	CodeValidation   ErrorCode = "validation"
	CodeNotFound     ErrorCode = "not_found"
	CodeBadRequest   ErrorCode = "bad_request"
	CodeStoreFailure ErrorCode = "store_failure"
)

// BookingError is returned by every BookingService operation that fails.
type BookingError struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *BookingError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *BookingError) Unwrap() error { return e.Err }

// Detail is the human-readable cause suitable for an API error field.
func (e *BookingError) Detail() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

func newBookingError(code ErrorCode, msg string, err error) *BookingError {
	return &BookingError{Code: code, Message: msg, Err: err}
}

// CodeOf returns the code carried by err, or CodeStoreFailure for anything else.
func CodeOf(err error) ErrorCode {
	var be *BookingError
	if errors.As(err, &be) {
		return be.Code
	}
	return CodeStoreFailure
}

// classify maps store errors onto service error codes.
func classify(msg string, err error) *BookingError {
	switch {
	case errors.Is(err, bookingRepo.ErrNotFound):
		return newBookingError(CodeNotFound, msg, err)
	case models.IsValidationError(err):
		return newBookingError(CodeValidation, msg, err)
	default:
		return newBookingError(CodeStoreFailure, msg, err)
	}
}
