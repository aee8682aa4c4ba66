package service

import (
	"errors"
	"fmt"
)

// ErrInvalidCredentials is deliberately generic: callers cannot distinguish
// an unknown username from a wrong password.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ValidationError aborts a workflow before anything is persisted.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func invalidf(field, format string, args ...any) *ValidationError {
	return &ValidationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

// NotFoundError reports a by-id lookup that matched nothing. Workflows
// return it instead of silently dropping the mutation.
type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Entity, e.ID)
}

func notFound(entity, id string) *NotFoundError {
	return &NotFoundError{Entity: entity, ID: id}
}
