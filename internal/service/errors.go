package service

import (
	"errors"
	"fmt"
	"strings"
)

// ErrRecipeNotFound is returned when no recipe matches the requested id
var ErrRecipeNotFound = errors.New("recipe not found")

// ValidationError reports the required fields missing from a request
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("missing required fields: %s", strings.Join(e.Fields, ", "))
}

// StorageError wraps a failure of the underlying database. The cause is
// for logs only and must not be shown to clients.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("recipe store: %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

func storageErr(op string, err error) error {
	return &StorageError{Op: op, Err: err}
}
