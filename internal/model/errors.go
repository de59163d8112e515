package model

import (
	"errors"
	"fmt"
)

// ErrInvalidID is returned when an external identifier does not parse as a
// product id.
var ErrInvalidID = errors.New("invalid id format specified")

// ErrNotFound is returned when no product matches a well-formed identifier.
var ErrNotFound = errors.New("product not found")

// MissingFieldError reports a required create field that was absent from the
// request payload.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing field: %s", e.Field)
}
