package domain

import (
	"errors"
	"net/http"
)

// HTTPError is implemented by errors that carry their own response status.
type HTTPError interface {
	error
	StatusCode() int
}

type (
	// NotFoundError is returned both for missing entities and for entities
	// owned by someone else, so callers cannot probe for existence.
	NotFoundError struct {
		Message string
	}

	ValidationError struct {
		Message string
	}

	UnauthorizedError struct {
		Message string
	}
)

func (e *NotFoundError) Error() string { return e.Message }
func (e *ValidationError) Error() string { return e.Message }
func (e *UnauthorizedError) Error() string { return e.Message }

func (e *NotFoundError) StatusCode() int { return http.StatusNotFound }
func (e *ValidationError) StatusCode() int { return http.StatusBadRequest }
func (e *UnauthorizedError) StatusCode() int { return http.StatusUnauthorized }

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }
func (e *ValidationError) Is(target error) bool { return target == ErrValidation }
func (e *UnauthorizedError) Is(target error) bool { return target == ErrUnauthorized }

// Sentinel errors, for use with errors.Is.
var (
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("already exists")
	ErrValidation   = errors.New("validation failed")
	ErrUnauthorized = errors.New("unauthorized")
)

// ConflictError reports a uniqueness violation on a resource.
type ConflictError struct {
	Message      string
	ResourceType string
}

func (e *ConflictError) Error() string { return e.Message }
func (e *ConflictError) StatusCode() int { return http.StatusConflict }
func (e *ConflictError) Is(target error) bool { return target == ErrConflict }

func NotFound(msg string) error { return &NotFoundError{Message: msg} }
func Invalid(msg string) error { return &ValidationError{Message: msg} }
func Unauthorized(msg string) error { return &UnauthorizedError{Message: msg} }
