package models

import (
	"errors"
	"fmt"
)

// Sentinel errors for the auth and contact flows. Handlers map these to
// HTTP statuses at the boundary.
var (
	ErrDuplicateEmail     = errors.New("user already exists with this email")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
)

// ValidationError reports which field failed input validation and the
// message to surface to the client.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}
