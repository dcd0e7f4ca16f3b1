package store

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNotFound   = errors.New("course not found")
	ErrValidation = errors.New("invalid course")
)

// FieldViolation is one failed rule of a course input.
type FieldViolation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError carries every violation of an input, in form field order.
type ValidationError struct {
	Violations []FieldViolation
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Messages(), ", ")
}

func (e *ValidationError) Messages() []string {
	out := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		out[i] = v.Message
	}
	return out
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

type NotFoundError struct {
	ID uint
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("course %d not found", e.ID)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}
