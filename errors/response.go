package errors

import (
	stderrors "errors"
)

// ErrorResponse is the flat JSON structure returned to clients. Every error
// endpoint in the API returns this same {error, message} pair.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// ToResponse converts an AppError to an ErrorResponse for JSON serialization.
func (e *AppError) ToResponse() ErrorResponse {
	return ErrorResponse{
		Error:   e.Label,
		Message: e.Message,
	}
}

// IsAppError checks if an error is an AppError.
func IsAppError(err error) bool {
	var appErr *AppError
	return stderrors.As(err, &appErr)
}

// AsAppError converts an error to an AppError if possible.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
