package trip

import (
	"errors"
	"fmt"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrCityNotFound       = errors.New("city not found")
	ErrAttractionNotFound = errors.New("attraction not found")
)

// ValidationError reports a violated input constraint. Callers surface it to
// the user; values are never corrected silently.
type ValidationError struct {
	Field      string
	Constraint string
	Message    string
}

func NewValidationError(field, constraint, message string) *ValidationError {
	return &ValidationError{Field: field, Constraint: constraint, Message: message}
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func IsValidation(err error) bool {
	var target *ValidationError
	return errors.As(err, &target)
}

// PersistenceError wraps a failed read or write against the store.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

func WrapPersistence(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrUserNotFound) || errors.Is(err, ErrCityNotFound) || errors.Is(err, ErrAttractionNotFound) {
		return err
	}
	var existing *PersistenceError
	if errors.As(err, &existing) {
		return err
	}
	return &PersistenceError{Op: op, Err: err}
}

func IsPersistence(err error) bool {
	var target *PersistenceError
	return errors.As(err, &target)
}
