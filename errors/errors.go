/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package errors

import (
	"errors"
	"fmt"
)

// Common sentinel errors
var (
	// ErrNotFound is returned when an entity is not found
	ErrNotFound = errors.New("entity not found")

	// ErrUnknownOperation is returned when no operation is registered for a key
	ErrUnknownOperation = errors.New("no such operation")

	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")
)

// NotFoundError is the single error kind surfaced by the operation layer.
// It identifies the entity by name only; the underlying cause (a genuinely
// empty result or a failed store execution) is logged before being folded
// into this error and is deliberately not distinguishable by callers.
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// UnknownOperationError is returned by the registry when a dispatch key
// has no registered operation. The schema layer maps it to an
// unknown-field condition.
type UnknownOperationError struct {
	Key string
}

func (e *UnknownOperationError) Error() string {
	return fmt.Sprintf("no such operation %q", e.Key)
}

func (e *UnknownOperationError) Is(target error) bool {
	return target == ErrUnknownOperation
}

// ValidationError represents an input validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for field %q: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// Helper functions for creating errors

// NewNotFoundError creates a new NotFoundError for the named entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewUnknownOperationError creates a new UnknownOperationError
func NewUnknownOperationError(key string) error {
	return &UnknownOperationError{Key: key}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsUnknownOperation checks if an error is an unknown operation error
func IsUnknownOperation(err error) bool {
	return errors.Is(err, ErrUnknownOperation)
}

// IsValidationError checks if an error is an input validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}
