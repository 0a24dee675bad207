package services

import (
	"errors"
	"sort"
	"strings"
)

var (
	ErrNotFound          = errors.New("record not found")
	ErrUnauthorized      = errors.New("authentication required")
	ErrForbidden         = errors.New("you do not have permission")
	ErrInvalidTransition = errors.New("order status cannot change from its current state")
)

// ValidationError maps form fields to a message. The operation was not performed.
type ValidationError struct {
	Fields map[string]string
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: message}}
}

func (e *ValidationError) Add(field, message string) {
	if e.Fields == nil {
		e.Fields = make(map[string]string)
	}
	e.Fields[field] = message
}

func (e *ValidationError) Empty() bool {
	return len(e.Fields) == 0
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}
