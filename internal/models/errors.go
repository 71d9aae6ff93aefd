package models

import (
	"errors"
	"fmt"
)

// Error codes carried by AppError.
const (
	CodeDuplicateName = "DUPLICATE_NAME"
	CodeNotFound      = "NOT_FOUND"
	CodeConstraint    = "CONSTRAINT"
	CodeValidation    = "VALIDATION_ERROR"
	CodeNoCurrentUser = "NO_CURRENT_USER"
	CodeInternal      = "INTERNAL_ERROR"
)

// Sentinels for errors.Is checks. Any AppError with the same code matches.
var (
	ErrDuplicateName = &AppError{Code: CodeDuplicateName, Message: "name already taken"}
	ErrNotFound      = &AppError{Code: CodeNotFound, Message: "not found"}
	ErrConstraint    = &AppError{Code: CodeConstraint, Message: "constraint violated"}
	ErrValidation    = &AppError{Code: CodeValidation, Message: "invalid input"}
	ErrNoCurrentUser = &AppError{Code: CodeNoCurrentUser, Message: "no current user"}
)

// AppError represents a custom application error
type AppError struct {
	Code    string
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Is matches on Code so that wrapped constructors compare equal to the
// package sentinels. A missing current user is also a not-found condition.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	if e.Code == t.Code {
		return true
	}
	return e.Code == CodeNoCurrentUser && t.Code == CodeNotFound
}

// Predefined error constructors
func NewDuplicateNameError(name string) *AppError {
	return &AppError{
		Code:    CodeDuplicateName,
		Message: fmt.Sprintf("user name %q is already taken", name),
	}
}

func NewNotFoundError(resource string, id interface{}) *AppError {
	return &AppError{
		Code:    CodeNotFound,
		Message: fmt.Sprintf("%s with ID %v not found", resource, id),
	}
}

func NewConstraintError(message string, err error) *AppError {
	return &AppError{
		Code:    CodeConstraint,
		Message: message,
		Err:     err,
	}
}

func NewValidationError(message string) *AppError {
	return &AppError{
		Code:    CodeValidation,
		Message: message,
	}
}

func NewInternalError(err error) *AppError {
	return &AppError{
		Code:    CodeInternal,
		Message: "internal error",
		Err:     err,
	}
}

// CodeOf returns the AppError code found in err's chain, or "" if none.
func CodeOf(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return ""
}
