package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrDuplicateEmail      = errors.New("user with this email already exists")
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrUnauthenticated     = errors.New("invalid token")
	ErrInternInactive      = errors.New("intern account is not active")
	ErrUserNotFound        = errors.New("user not found")
	ErrApplicationNotFound = errors.New("application not found")
	ErrInternNotFound      = errors.New("intern not found")
	ErrInvalidStatus       = errors.New("invalid status")
)

// ValidationError reports every missing required field of a request, not
// just the first one found.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("Missing required fields: %s", strings.Join(e.Fields, ", "))
}
