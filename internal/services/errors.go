package services

import "errors"

// ErrorCode is the programmatic discriminant for a failed operation. Callers
// branch on the code; Message is display text only and is localized.
type ErrorCode string

const (
	ErrorInvalid            ErrorCode = "invalid"
	ErrorUnauthenticated    ErrorCode = "unauthenticated"
	ErrorInvalidCredentials ErrorCode = "invalid_credentials"
	ErrorDuplicateEmail     ErrorCode = "duplicate_email"
	ErrorNotFound           ErrorCode = "not_found"
	ErrorInvalidOption      ErrorCode = "invalid_option"
	ErrorAlreadyVoted       ErrorCode = "already_voted"
	ErrorMethodNotAllowed   ErrorCode = "method_not_allowed"
)

type ServiceError struct {
	Code    ErrorCode
	Message string
}

func (e *ServiceError) Error() string { return e.Message }

func NewInvalidError(msg string) error { return &ServiceError{Code: ErrorInvalid, Message: msg} }
func NewUnauthenticatedError(msg string) error {
	return &ServiceError{Code: ErrorUnauthenticated, Message: msg}
}
func NewInvalidCredentialsError(msg string) error {
	return &ServiceError{Code: ErrorInvalidCredentials, Message: msg}
}
func NewDuplicateEmailError(msg string) error {
	return &ServiceError{Code: ErrorDuplicateEmail, Message: msg}
}
func NewNotFoundError(msg string) error { return &ServiceError{Code: ErrorNotFound, Message: msg} }
func NewInvalidOptionError(msg string) error {
	return &ServiceError{Code: ErrorInvalidOption, Message: msg}
}
func NewAlreadyVotedError(msg string) error {
	return &ServiceError{Code: ErrorAlreadyVoted, Message: msg}
}
func NewMethodNotAllowedError(msg string) error {
	return &ServiceError{Code: ErrorMethodNotAllowed, Message: msg}
}

func AsServiceError(err error) (*ServiceError, bool) {
	var se *ServiceError
	if errors.As(err, &se) {
		return se, true
	}
	return nil, false
}

// CodeOf returns the error's code, or empty for non-service errors.
func CodeOf(err error) ErrorCode {
	if se, ok := AsServiceError(err); ok {
		return se.Code
	}
	return ""
}
