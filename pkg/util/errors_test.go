package util

import (
	"errors"
	"strings"
	"testing"
)

func TestPreconditionError(t *testing.T) {
	err := NewPreconditionError("run", "device command channel available", "SSH dial failed")

	msg := err.Error()
	if !strings.Contains(msg, "run") {
		t.Errorf("Error message should contain operation: %s", msg)
	}
	if !strings.Contains(msg, "device command channel available") {
		t.Errorf("Error message should contain precondition: %s", msg)
	}
	if !strings.Contains(msg, "SSH dial failed") {
		t.Errorf("Error message should contain details: %s", msg)
	}

	if !errors.Is(err, ErrPreconditionFailed) {
		t.Errorf("PreconditionError should unwrap to ErrPreconditionFailed")
	}
}

func TestPreconditionErrorNoDetails(t *testing.T) {
	err := NewPreconditionError("check", "plan file present", "")
	if strings.HasSuffix(err.Error(), "()") {
		t.Errorf("Error message should not have empty details: %s", err.Error())
	}
}

func TestValidationError(t *testing.T) {
	t.Run("single error", func(t *testing.T) {
		err := (&ValidationBuilder{}).Add(false, "target is required").Build()
		if err == nil {
			t.Fatal("Build() should return error")
		}
		if !strings.Contains(err.Error(), "target is required") {
			t.Errorf("Error message should contain the error: %s", err.Error())
		}
		if !errors.Is(err, ErrValidationFailed) {
			t.Errorf("ValidationError should unwrap to ErrValidationFailed")
		}
	})

	t.Run("multiple errors", func(t *testing.T) {
		err := (&ValidationBuilder{}).
			Add(false, "primary port is required").
			Add(false, "poll interval must be positive").
			Build()
		msg := err.Error()
		if !strings.Contains(msg, "primary port") || !strings.Contains(msg, "poll interval") {
			t.Errorf("Error message should contain all errors: %s", msg)
		}
	})
}

func TestValidationBuilder(t *testing.T) {
	t.Run("no errors", func(t *testing.T) {
		v := &ValidationBuilder{}
		v.Add(true, "this should not appear")

		if v.HasErrors() {
			t.Error("Should not have errors when all conditions are true")
		}
		if err := v.Build(); err != nil {
			t.Errorf("Build() should return nil when no errors: %v", err)
		}
	})

	t.Run("with errors", func(t *testing.T) {
		v := &ValidationBuilder{}
		v.Add(false, "first error")
		v.Add(true, "this passes")
		v.AddErrorf("stable duration (%ds) must be less than timeout (%ds)", 120, 60)

		if !v.HasErrors() {
			t.Error("Should have errors")
		}

		err := v.Build()
		if err == nil {
			t.Fatal("Build() should return error")
		}

		validationErr, ok := err.(*ValidationError)
		if !ok {
			t.Fatalf("Expected *ValidationError, got %T", err)
		}
		if len(validationErr.Errors) != 2 {
			t.Errorf("Expected 2 errors, got %d", len(validationErr.Errors))
		}
	})
}
