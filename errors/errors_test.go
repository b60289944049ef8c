/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package errors

import (
	"errors"
	"testing"
)

func TestNotFoundError(t *testing.T) {
	err := NewNotFoundError("Pandey")

	// Test error message
	expected := "Pandey not found"
	if err.Error() != expected {
		t.Errorf("Expected error message %q, got %q", expected, err.Error())
	}

	// Test Is method
	if !errors.Is(err, ErrNotFound) {
		t.Error("NotFoundError should match ErrNotFound")
	}

	// Test helper function
	if !IsNotFound(err) {
		t.Error("IsNotFound should return true for NotFoundError")
	}
}

func TestUnknownOperationError(t *testing.T) {
	err := NewUnknownOperationError("getWidget")

	expected := `no such operation "getWidget"`
	if err.Error() != expected {
		t.Errorf("Expected error message %q, got %q", expected, err.Error())
	}

	if !errors.Is(err, ErrUnknownOperation) {
		t.Error("UnknownOperationError should match ErrUnknownOperation")
	}

	if !IsUnknownOperation(err) {
		t.Error("IsUnknownOperation should return true for UnknownOperationError")
	}
}

func TestValidationError(t *testing.T) {
	err := NewValidationError("id", "required argument missing")

	expected := `validation failed for field "id": required argument missing`
	if err.Error() != expected {
		t.Errorf("Expected error message %q, got %q", expected, err.Error())
	}

	if !errors.Is(err, ErrInvalidInput) {
		t.Error("ValidationError should match ErrInvalidInput")
	}

	if !IsValidationError(err) {
		t.Error("IsValidationError should return true for ValidationError")
	}
}

func TestValidationErrorWithoutField(t *testing.T) {
	err := NewValidationError("", "something went wrong")

	expected := "validation failed: something went wrong"
	if err.Error() != expected {
		t.Errorf("Expected error message %q, got %q", expected, err.Error())
	}
}

func TestErrorsDoNotMatchEachOther(t *testing.T) {
	if IsNotFound(NewUnknownOperationError("x")) {
		t.Error("UnknownOperationError should not match ErrNotFound")
	}
	if IsUnknownOperation(NewNotFoundError("X")) {
		t.Error("NotFoundError should not match ErrUnknownOperation")
	}
}
