package failure_test

import (
	"errors"
	"fmt"
	"hotelops/shared/failure"
	"net/http"
	"testing"
)

func TestFailure_Error(t *testing.T) {
	f := &failure.Failure{
		Code:    http.StatusBadRequest,
		Message: "test error message",
	}

	if f.Error() != "test error message" {
		t.Errorf("expected error message to be 'test error message', got %s", f.Error())
	}
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		code    int
		message string
	}{
		{
			name:    "bad request",
			err:     failure.BadRequest(errors.New("broken")),
			code:    http.StatusBadRequest,
			message: "broken",
		},
		{
			name:    "bad request from string",
			err:     failure.BadRequestFromString("invalid"),
			code:    http.StatusBadRequest,
			message: "invalid",
		},
		{
			name:    "not found",
			err:     failure.NotFound("room not found"),
			code:    http.StatusNotFound,
			message: "room not found",
		},
		{
			name:    "conflict",
			err:     failure.Conflict("room already booked"),
			code:    http.StatusConflict,
			message: "room already booked",
		},
		{
			name:    "bad gateway",
			err:     failure.BadGateway("payment provider unavailable"),
			code:    http.StatusBadGateway,
			message: "payment provider unavailable",
		},
		{
			name:    "internal error",
			err:     failure.InternalError(errors.New("boom")),
			code:    http.StatusInternalServerError,
			message: "boom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if code := failure.GetCode(tt.err); code != tt.code {
				t.Errorf("expected code %d, got %d", tt.code, code)
			}

			if tt.err.Error() != tt.message {
				t.Errorf("expected message %q, got %q", tt.message, tt.err.Error())
			}
		})
	}
}

func TestNilErrorsStayNil(t *testing.T) {
	if failure.BadRequest(nil) != nil {
		t.Error("expected BadRequest(nil) to be nil")
	}

	if failure.InternalError(nil) != nil {
		t.Error("expected InternalError(nil) to be nil")
	}
}

func TestFieldErrors(t *testing.T) {
	err := failure.FieldError("check_out_date", "Check-out date must be after check-in date")

	fields := failure.GetFields(err)
	if fields["check_out_date"] != "Check-out date must be after check-in date" {
		t.Errorf("unexpected field errors: %v", fields)
	}

	wrapped := fmt.Errorf("create booking: %w", failure.ConflictField("item_code", "item code already exists"))

	if failure.GetCode(wrapped) != http.StatusConflict {
		t.Errorf("expected wrapped conflict to keep its code, got %d", failure.GetCode(wrapped))
	}

	if failure.GetFields(wrapped)["item_code"] == "" {
		t.Error("expected wrapped conflict to keep its field errors")
	}
}

func TestGetCodeForPlainError(t *testing.T) {
	if code := failure.GetCode(errors.New("plain")); code != http.StatusInternalServerError {
		t.Errorf("expected 500 for plain errors, got %d", code)
	}

	if failure.GetFields(errors.New("plain")) != nil {
		t.Error("expected nil fields for plain errors")
	}
}
