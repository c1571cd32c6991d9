package booking

import (
	"errors"
	"fmt"
)

// ServiceError carries a machine-readable code next to the message so
// handlers can map failures to the right HTTP status.
type ServiceError struct {
	Code    string
	Message string
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewValidationError(msg string) error {
	return &ServiceError{Code: "validationError", Message: msg}
}

func NewNotFoundError(msg string) error {
	return &ServiceError{Code: "notFound", Message: msg}
}

func NewConflictError(msg string) error {
	return &ServiceError{Code: "conflict", Message: msg}
}

func NewStepGateError(msg string) error {
	return &ServiceError{Code: "stepIncomplete", Message: msg}
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
func IsValidation(err error) bool {
	return errCode(err) == "validationError" || errCode(err) == "stepIncomplete"
}
