package domain

import "errors"

// ErrorKind identifies one failure in the closed, provider-independent
// taxonomy exposed to callers. Anything the provider reports that is not
// covered by a specific kind collapses to KindInternal.
type ErrorKind string

const (
	KindUserAlreadyExists       ErrorKind = "USER_ALREADY_EXISTS"
	KindRequirementsNotMet      ErrorKind = "REQUIREMENTS_NOT_MET"
	KindInvalidVerificationCode ErrorKind = "INVALID_VERIFICATION_CODE"
	KindExpiredVerificationCode ErrorKind = "EXPIRED_VERIFICATION_CODE"
	KindUserNotFound            ErrorKind = "USER_NOT_FOUND"
	KindUserNotConfirmed        ErrorKind = "USER_NOT_CONFIRMED"
	KindUnauthorized            ErrorKind = "UNAUTHORIZED"
	KindInvalidCredentials      ErrorKind = "INVALID_CREDENTIALS"
	KindLimitExceeded           ErrorKind = "LIMIT_EXCEEDED"
	KindTooManyRequests         ErrorKind = "TOO_MANY_REQUESTS"
	KindValidation              ErrorKind = "VALIDATION_FAILED"
	KindInternal                ErrorKind = "INTERNAL_ERROR"
)

// AuthError is the only error type the adapter surfaces to callers. The
// original provider failure is kept as Cause for diagnostics but callers
// branch on Kind alone.
type AuthError struct {
	Kind    ErrorKind
	Message string
	Cause   error
}

func (e *AuthError) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *AuthError) Unwrap() error {
	return e.Cause
}

// NewAuthError creates a new domain auth error
func NewAuthError(kind ErrorKind, message string, cause error) *AuthError {
	return &AuthError{
		Kind:    kind,
		Message: message,
		Cause:   cause,
	}
}

// KindOf extracts the error kind from an error chain. Errors that do not
// carry an AuthError are reported as KindInternal, never as success.
func KindOf(err error) ErrorKind {
	var authErr *AuthError
	if errors.As(err, &authErr) {
		return authErr.Kind
	}
	return KindInternal
}

// IsKind reports whether the error chain carries an AuthError of the given kind
func IsKind(err error, kind ErrorKind) bool {
	return err != nil && KindOf(err) == kind
}
