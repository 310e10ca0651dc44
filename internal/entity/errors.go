package entity

import (
	"errors"
	"fmt"
)

var ErrAlreadyExists = errors.New("already exists")

// ConstraintViolationError reports a row rejected by a unique constraint.
type ConstraintViolationError struct {
	Table      string
	Constraint string
	Err        error
}

func (e *ConstraintViolationError) Error() string {
	return fmt.Sprintf("unique constraint %q on %q violated: %v", e.Constraint, e.Table, e.Err)
}

func (e *ConstraintViolationError) Unwrap() error {
	return e.Err
}

func (e *ConstraintViolationError) Is(target error) bool {
	return target == ErrAlreadyExists
}
