// Package errors provides unified error handling for the caption service.
// It implements structured error types with machine-readable codes and HTTP
// status mapping. Every failure is converted to the API's flat
// {error, message} JSON shape at the handler boundary.
package errors

import (
	"fmt"
	"net/http"
)

// AppError is the unified application error type.
type AppError struct {
	// Code is a machine-readable error code.
	Code ErrorCode `json:"code"`
	// Label is the short human-readable error title (the "error" field).
	Label string `json:"error"`
	// Message is the human-readable error description.
	Message string `json:"message"`
	// HTTPStatus is the HTTP status code for this error.
	HTTPStatus int `json:"-"`
	// Cause is the underlying error that caused this error.
	Cause error `json:"-"`
}

// Error returns the string representation of the error.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause of the error.
func (e *AppError) Unwrap() error { return e.Cause }

// WithCause sets the underlying cause of the error and returns the receiver.
func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

// New creates a new AppError.
func New(code ErrorCode, label, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Label:      label,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// --- Common Error Constructors ---

// MissingField creates a new AppError for a missing required field.
func MissingField(field string) *AppError {
	return &AppError{
		Code: ErrCodeMissingField, Label: fmt.Sprintf("Missing %s", field),
		Message:    fmt.Sprintf("Please provide a valid %s in the request body", field),
		HTTPStatus: http.StatusBadRequest,
	}
}

// InvalidInput creates a new AppError for invalid input.
func InvalidInput(label, reason string) *AppError {
	return &AppError{
		Code: ErrCodeInvalidInput, Label: label, Message: reason,
		HTTPStatus: http.StatusBadRequest,
	}
}

// Validation creates a new AppError for validation errors.
func Validation(message string) *AppError {
	return &AppError{
		Code: ErrCodeInvalidInput, Label: "Validation error", Message: message,
		HTTPStatus: http.StatusBadRequest,
	}
}

// CaptionsUnavailable creates a new AppError for a video without usable captions.
// It covers all three collaborator conditions: no transcript, transcripts
// disabled, and video unavailable.
func CaptionsUnavailable() *AppError {
	return &AppError{
		Code: ErrCodeCaptionsUnavailable, Label: "Captions unavailable",
		Message:    "No captions/subtitles available for this video or they are disabled",
		HTTPStatus: http.StatusNotFound,
	}
}

// NotFound creates a new AppError for a resource that was not found.
func NotFound() *AppError {
	return &AppError{
		Code: ErrCodeNotFound, Label: "Not found",
		Message:    "The requested resource was not found on this server",
		HTTPStatus: http.StatusNotFound,
	}
}

// MethodNotAllowed creates a new AppError for an unsupported HTTP method.
func MethodNotAllowed() *AppError {
	return &AppError{
		Code: ErrCodeMethodNotAllowed, Label: "Method not allowed",
		Message:    "The method is not allowed for the requested URL",
		HTTPStatus: http.StatusMethodNotAllowed,
	}
}

// Internal creates a new AppError for an unexpected failure. The cause text
// is carried into the message so clients see what went wrong.
func Internal(cause error) *AppError {
	message := "An internal server error occurred"
	if cause != nil {
		message = fmt.Sprintf("An error occurred while processing the captions: %s", cause)
	}
	return &AppError{
		Code: ErrCodeInternal, Label: "Server error", Message: message,
		HTTPStatus: http.StatusInternalServerError, Cause: cause,
	}
}
