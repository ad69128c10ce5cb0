package validation

import (
	"testing"

	"github.com/ishwor/authcookbook/errors"
)

type registerPayload struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

func TestValidate_Success(t *testing.T) {
	p := registerPayload{Email: "a@x.com", Password: "password1"}
	if err := Validate(p); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}

func TestValidate_MissingFields(t *testing.T) {
	err := Validate(registerPayload{})
	if err == nil {
		t.Fatal("expected validation error")
	}
	appErr, ok := errors.AsAppError(err)
	if !ok {
		t.Fatal("expected an AppError")
	}
	if appErr.Code != errors.ErrCodeInvalidInput {
		t.Errorf("expected INVALID_INPUT, got %s", appErr.Code)
	}
	if appErr.Details["fields"] == nil {
		t.Error("expected field details")
	}
}

func TestValidate_BadEmail(t *testing.T) {
	err := Validate(registerPayload{Email: "nope", Password: "password1"})
	if err == nil {
		t.Fatal("expected validation error for bad email")
	}
}

func TestValidate_ShortPassword(t *testing.T) {
	err := Validate(registerPayload{Email: "a@x.com", Password: "pw1"})
	if err == nil {
		t.Fatal("expected validation error for short password")
	}
}
