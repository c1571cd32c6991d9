package order

import (
	"errors"
	"fmt"
)

// ServiceError mirrors the booking package's typed errors so handlers can map
// order failures to HTTP statuses without string matching.
type ServiceError struct {
	Code    string
	Message string
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func newNotFoundError(msg string) error {
	return &ServiceError{Code: "notFound", Message: msg}
}

func newConflictError(msg string) error {
	return &ServiceError{Code: "conflict", Message: msg}
}

func newValidationError(msg string) error {
	return &ServiceError{Code: "validationError", Message: msg}
}

func errCode(err error) string {
	var se *ServiceError
	if errors.As(err, &se) {
		return se.Code
	}
	return ""
}

// IsNotFound reports whether the error is a not-found service error.
func IsNotFound(err error) bool { return errCode(err) == "notFound" }

// IsConflict reports whether the error is a conflict service error.
func IsConflict(err error) bool { return errCode(err) == "conflict" }

// IsValidation reports whether the error is a validation service error.
func IsValidation(err error) bool { return errCode(err) == "validationError" }
