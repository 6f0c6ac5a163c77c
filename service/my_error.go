package service

import (
	"errors"
	"fmt"
)

const (
	// ErrInternalServerError means that an internal server error has occurred.
	ErrInternalServerError = "internal_server_error"
	// ErrEntityNotFound means that record or row is absent in repository or storage.
	ErrEntityNotFound = "entity_not_found"
	// ErrBadParameter means that provided parameter does not match declared.
	ErrBadParameter = "bad_parameter"
	// ErrInvalidUserOrPassword means that login failed; deliberately does not
	// distinguish unknown email from wrong password.
	ErrInvalidUserOrPassword = "invalid_user_or_password"
	// ErrUnauthenticated means that the bearer token is missing, expired or unknown.
	ErrUnauthenticated = "unauthenticated"
	// ErrConflict means that the entity to create already exists.
	ErrConflict = "conflict"
)

// MyError represents an error within the context of myplatform services.
type MyError struct {
	// Code is a machine-readable code.
	Code string `json:"code,omitempty"`
	// Message is a human-readable message.
	Message string `json:"message"`
	// Inner is a wrapped error that is never shown to API consumers.
	Inner error `json:"-"`
}

// NewMyError creates a new MyError.
func NewMyError(code string, message string, inner error) *MyError {
	return &MyError{
		Code:    code,
		Message: message,
		Inner:   inner,
	}
}

func NewInternalServerError(message string, inner error) *MyError {
	myInner := ToMyError(inner)
	if myInner != nil {
		return myInner
	}

	return NewMyError(ErrInternalServerError, message, inner)
}

func NewEntityNotFoundError(message string, inner error) *MyError {
	myInner := ToMyError(inner)
	if myInner != nil {
		return myInner
	}

	return NewMyError(ErrEntityNotFound, message, inner)
}

func NewBadParameterError(message string, inner error) *MyError {
	myInner := ToMyError(inner)
	if myInner != nil {
		return myInner
	}

	return NewMyError(ErrBadParameter, message, inner)
}

func NewInvalidUserOrPasswordError(message string, inner error) *MyError {
	return NewMyError(ErrInvalidUserOrPassword, message, inner)
}

func NewUnauthenticatedError(message string, inner error) *MyError {
	return NewMyError(ErrUnauthenticated, message, inner)
}

func NewConflictError(message string, inner error) *MyError {
	return NewMyError(ErrConflict, message, inner)
}

func (e MyError) Error() string {
	if e.Inner != nil {
		return fmt.Sprintf("%s %s: %v", e.Code, e.Message, e.Inner)
	}

	return fmt.Sprintf("%s %s", e.Code, e.Message)
}

// Unwrap the error returning the error's reason.
func (e MyError) Unwrap() error {
	return e.Inner
}

// ToMyError returns a pointer to a myplatform error, or nil if it is not a myplatform error.
func ToMyError(err error) *MyError {
	var e *MyError
	if errors.As(err, &e) {
		return e
	}

	return nil
}

// ToMyErrorCode returns the code of the error, if available.
func ToMyErrorCode(err error) string {
	myerror := ToMyError(err)
	if myerror != nil {
		return myerror.Code
	}
	return ""
}

func IsMyError(err error, code string) bool {
	myerror := ToMyError(err)
	if myerror != nil {
		return myerror.Code == code
	}
	return false
}

func IsInternalServerError(err error) bool {
	return IsMyError(err, ErrInternalServerError)
}

func IsEntityNotFoundError(err error) bool {
	return IsMyError(err, ErrEntityNotFound)
}

func IsBadParameterError(err error) bool {
	return IsMyError(err, ErrBadParameter)
}

func IsInvalidUserOrPasswordError(err error) bool {
	return IsMyError(err, ErrInvalidUserOrPassword)
}

func IsUnauthenticatedError(err error) bool {
	return IsMyError(err, ErrUnauthenticated)
}

func IsConflictError(err error) bool {
	return IsMyError(err, ErrConflict)
}
