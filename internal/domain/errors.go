package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for the analytics domain.
var (
	ErrNotFound     = errors.New("resource not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrNoData       = errors.New("no analysis data available")
	ErrInternal     = errors.New("internal error")
)

// DomainError pairs a machine-readable code with a user-facing
// message, wrapping a sentinel for errors.Is checks.
type DomainError struct {
	Code    string
	Message string
	Err     error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// UserMessage returns the message safe to put on the wire.
func (e *DomainError) UserMessage() string {
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// NewNotFoundError reports a missing resource, e.g. an unknown plant.
func NewNotFoundError(resourceType, id string) error {
	return &DomainError{
		Code:    "NOT_FOUND",
		Message: fmt.Sprintf("%s '%s' not found", resourceType, id),
		Err:     ErrNotFound,
	}
}

// NewInvalidInputError reports a rejected request parameter.
func NewInvalidInputError(message string) error {
	return &DomainError{
		Code:    "INVALID_INPUT",
		Message: message,
		Err:     ErrInvalidInput,
	}
}

// NewNoDataError reports that the analytics dataset has not been
// loaded, mirroring a fresh deployment before the first analysis run.
func NewNoDataError() error {
	return &DomainError{
		Code:    "NO_DATA",
		Message: "no analysis results available. Run analysis first.",
		Err:     ErrNoData,
	}
}

// NewInternalError wraps an unexpected failure without exposing its
// details to clients.
func NewInternalError(err error) error {
	return &DomainError{
		Code:    "INTERNAL_ERROR",
		Message: "an internal error occurred",
		Err:     fmt.Errorf("%w: %v", ErrInternal, err),
	}
}

// Code extracts the machine-readable error code, defaulting to
// INTERNAL_ERROR for unclassified errors.
func Code(err error) string {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Code
	}
	return "INTERNAL_ERROR"
}

func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func IsInvalidInput(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

func IsNoData(err error) bool {
	return errors.Is(err, ErrNoData)
}
