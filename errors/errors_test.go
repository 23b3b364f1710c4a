package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"strings"
	"testing"
)

func TestAppError_New_Success(t *testing.T) {
	err := New(ErrCodeNotFound, "Not found", "nothing here", http.StatusNotFound)
	if err.Code != ErrCodeNotFound {
		t.Errorf("expected code %s, got %s", ErrCodeNotFound, err.Code)
	}
	if err.Label != "Not found" {
		t.Errorf("expected label 'Not found', got %q", err.Label)
	}
	if err.Message != "nothing here" {
		t.Errorf("expected message 'nothing here', got %q", err.Message)
	}
	if err.HTTPStatus != http.StatusNotFound {
		t.Errorf("expected status %d, got %d", http.StatusNotFound, err.HTTPStatus)
	}
}

func TestAppError_MissingField(t *testing.T) {
	err := MissingField("YouTube URL")
	if err.Code != ErrCodeMissingField {
		t.Errorf("expected MISSING_FIELD, got %s", err.Code)
	}
	if err.HTTPStatus != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", err.HTTPStatus)
	}
	if err.Label != "Missing YouTube URL" {
		t.Errorf("unexpected label %q", err.Label)
	}
}

func TestAppError_InvalidInput(t *testing.T) {
	err := InvalidInput("Invalid YouTube URL", "not a watch URL")
	if err.Code != ErrCodeInvalidInput {
		t.Errorf("expected INVALID_INPUT, got %s", err.Code)
	}
	if err.HTTPStatus != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", err.HTTPStatus)
	}
	if err.Message != "not a watch URL" {
		t.Errorf("unexpected message %q", err.Message)
	}
}

func TestAppError_CaptionsUnavailable(t *testing.T) {
	err := CaptionsUnavailable()
	if err.Code != ErrCodeCaptionsUnavailable {
		t.Errorf("expected CAPTIONS_UNAVAILABLE, got %s", err.Code)
	}
	if err.HTTPStatus != http.StatusNotFound {
		t.Errorf("expected 404, got %d", err.HTTPStatus)
	}
	if err.Label != "Captions unavailable" {
		t.Errorf("unexpected label %q", err.Label)
	}
}

func TestAppError_Internal_CauseInMessage(t *testing.T) {
	cause := fmt.Errorf("decoder exploded")
	err := Internal(cause)
	if err.Code != ErrCodeInternal {
		t.Errorf("expected INTERNAL_ERROR, got %s", err.Code)
	}
	if err.HTTPStatus != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", err.HTTPStatus)
	}
	if !strings.Contains(err.Message, "decoder exploded") {
		t.Errorf("expected cause text in message, got %q", err.Message)
	}
	if err.Cause != cause {
		t.Error("expected cause to be set")
	}
}

func TestAppError_Internal_NilCause(t *testing.T) {
	err := Internal(nil)
	if err.Message != "An internal server error occurred" {
		t.Errorf("unexpected message %q", err.Message)
	}
}

func TestAppError_MethodNotAllowed(t *testing.T) {
	err := MethodNotAllowed()
	if err.HTTPStatus != http.StatusMethodNotAllowed {
		t.Errorf("expected 405, got %d", err.HTTPStatus)
	}
}

// TestConstructors_StatusTaxonomy pins every constructor to the API's status
// set: 400 for bad input, 404 for missing things, 405 for bad methods, and
// 500 for everything else.
func TestConstructors_StatusTaxonomy(t *testing.T) {
	allowed := map[int]bool{
		http.StatusBadRequest:          true,
		http.StatusNotFound:            true,
		http.StatusMethodNotAllowed:    true,
		http.StatusInternalServerError: true,
	}

	constructors := []*AppError{
		MissingField("YouTube URL"),
		InvalidInput("Invalid YouTube URL", "not a watch URL"),
		Validation("url: is required"),
		CaptionsUnavailable(),
		NotFound(),
		MethodNotAllowed(),
		Internal(nil),
		Internal(fmt.Errorf("decoder exploded")),
	}

	for _, err := range constructors {
		if !allowed[err.HTTPStatus] {
			t.Errorf("%s maps to status %d, outside the API taxonomy", err.Code, err.HTTPStatus)
		}
	}
}

func TestAppError_ErrorString(t *testing.T) {
	err := InvalidInput("Invalid input", "bad url").WithCause(fmt.Errorf("parse failed"))
	s := err.Error()
	if !strings.Contains(s, "INVALID_INPUT") || !strings.Contains(s, "parse failed") {
		t.Errorf("unexpected error string %q", s)
	}
}

func TestAppError_Unwrap(t *testing.T) {
	cause := fmt.Errorf("root")
	err := Internal(cause)
	if stderrors.Unwrap(err) != cause {
		t.Error("expected Unwrap to return the cause")
	}
}

func TestToResponse(t *testing.T) {
	err := CaptionsUnavailable()
	resp := err.ToResponse()
	if resp.Error != "Captions unavailable" {
		t.Errorf("unexpected error field %q", resp.Error)
	}
	if resp.Message == "" {
		t.Error("expected non-empty message")
	}
}

func TestAsAppError(t *testing.T) {
	inner := CaptionsUnavailable()
	wrapped := fmt.Errorf("handler: %w", inner)

	appErr, ok := AsAppError(wrapped)
	if !ok {
		t.Fatal("expected AsAppError to unwrap")
	}
	if appErr.Code != ErrCodeCaptionsUnavailable {
		t.Errorf("expected CAPTIONS_UNAVAILABLE, got %s", appErr.Code)
	}

	if IsAppError(stderrors.New("plain")) {
		t.Error("plain error should not be an AppError")
	}
}
