package utils

import (
	"errors"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
)

func TestSanitizeValidationErrorFieldMessages(t *testing.T) {
	type loginForm struct {
		Username string `validate:"required"`
		Email    string `validate:"required,email"`
		Password string `validate:"min=6"`
	}

	v := validator.New()
	err := v.Struct(loginForm{Email: "not-an-email", Password: "abc"})
	if err == nil {
		t.Fatal("expected validation to fail")
	}

	msg := SanitizeValidationError(err)
	if !strings.Contains(msg, "username is required") {
		t.Errorf("expected required message, got %q", msg)
	}
	if !strings.Contains(msg, "email must be a valid email address") {
		t.Errorf("expected email message, got %q", msg)
	}
	if !strings.Contains(msg, "password must be at least 6 characters") {
		t.Errorf("expected min-length message, got %q", msg)
	}
	if strings.Contains(msg, "loginForm") {
		t.Errorf("struct name leaked into message: %q", msg)
	}
}

func TestSanitizeValidationErrorGenericFallback(t *testing.T) {
	if msg := SanitizeValidationError(errors.New("json: cannot unmarshal string into Go value")); msg != "Invalid request body" {
		t.Errorf("expected generic message, got %q", msg)
	}
	if msg := SanitizeValidationError(nil); msg != "" {
		t.Errorf("expected empty message for nil, got %q", msg)
	}
}
