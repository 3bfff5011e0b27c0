package services

import (
	"fmt"

	"github.com/harishcmuthyala/app/models"
)

// ValidationError reports input that failed schema constraints. Nothing is
// persisted when it is returned.
type ValidationError struct {
	Errors models.ValidationErrors
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s", e.Errors.Error())
}

// PersistenceError reports a store failure. The wrapped error is for logs
// only and must not be shown to callers.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("failed to %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
