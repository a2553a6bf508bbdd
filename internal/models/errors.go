package models

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is matched by every "not found" error of the API
	ErrNotFound = errors.New("not found")
	// ErrLessonNotFound is returned when no lesson has the requested ID
	ErrLessonNotFound = fmt.Errorf("lesson %w", ErrNotFound)
	// ErrQuizNotFound is returned when no quiz has the requested ID
	ErrQuizNotFound = fmt.Errorf("quiz %w", ErrNotFound)
	// ErrValidation is matched by every ValidationError
	ErrValidation = errors.New("validation error")
)

// ValidationError describes input rejected before any lookup takes place
type ValidationError struct {
	Message string
}

// NewValidationError creates a new validation error with the given message
func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Is makes errors.Is(err, ErrValidation) true for any ValidationError
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}
