package domain

import (
	"errors"
	"fmt"
)

var ErrNotFound = errors.New("record not found")
var ErrInvalidTransition = errors.New("invalid status transition")
var ErrForbidden = errors.New("access forbidden")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrUserNotFound = errors.New("user not found")
var ErrUserExists = errors.New("user already exists")

// OperationError is the single failure kind surfaced by collection
// operations. Message carries the backend-provided error text when one
// exists, else the per-operation fallback ("failed to fetch categories", …).
type OperationError struct {
	Op      string // fetch, create, update, delete
	Entity  string
	Message string
	Cause   error
}

func (e *OperationError) Error() string {
	return e.Message
}

func (e *OperationError) Unwrap() error {
	return e.Cause
}

// NewOperationError wraps cause into an OperationError. A nil or
// message-less cause falls back to "failed to <op> <entity>".
func NewOperationError(op, entity string, cause error) *OperationError {
	msg := ""
	if cause != nil {
		msg = cause.Error()
	}
	if msg == "" {
		msg = fmt.Sprintf("failed to %s %s", op, entity)
	}
	return &OperationError{Op: op, Entity: entity, Message: msg, Cause: cause}
}
