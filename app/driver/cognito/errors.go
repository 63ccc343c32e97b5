package cognito

import (
	"errors"

	"github.com/aws/smithy-go"

	"cognito-auth-service/app/domain"
)

// codeTable maps a provider error-code string to a domain error kind for
// one operation. Codes missing from a table, and failures that carry no
// provider code at all, collapse to domain.KindInternal so that an
// unanticipated provider error can never leak through as something more
// specific.
type codeTable map[string]domain.ErrorKind

var (
	signUpErrors = codeTable{
		"UsernameExistsException":  domain.KindUserAlreadyExists,
		"InvalidPasswordException": domain.KindRequirementsNotMet,
	}

	confirmSignUpErrors = codeTable{
		"CodeMismatchException":   domain.KindInvalidVerificationCode,
		"ExpiredCodeException":    domain.KindExpiredVerificationCode,
		"UserNotFoundException":   domain.KindUserNotFound,
		"NotAuthorizedException":  domain.KindUnauthorized,
	}

	resendConfirmationCodeErrors = codeTable{
		"UserNotFoundException":  domain.KindUserNotFound,
		"LimitExceededException": domain.KindLimitExceeded,
	}

	getUserErrors = codeTable{
		"UserNotFoundException": domain.KindUserNotFound,
	}

	// Cognito reports both an unknown user and a wrong password for a known
	// user as NotAuthorizedException on this flow, so signin cannot leak
	// which of the two happened. UserNotFoundException only appears when
	// the pool is configured to reveal it; keep the mapping for that case.
	initiateAuthErrors = codeTable{
		"UserNotFoundException":     domain.KindUserNotFound,
		"UserNotConfirmedException": domain.KindUserNotConfirmed,
		"NotAuthorizedException":    domain.KindInvalidCredentials,
	}

	forgotPasswordErrors = codeTable{
		"UserNotFoundException": domain.KindUserNotFound,
	}

	confirmForgotPasswordErrors = codeTable{
		"ExpiredCodeException":  domain.KindExpiredVerificationCode,
		"CodeMismatchException": domain.KindInvalidVerificationCode,
	}

	changePasswordErrors = codeTable{
		"NotAuthorizedException": domain.KindInvalidCredentials,
		"LimitExceededException": domain.KindLimitExceeded,
	}

	refreshTokenErrors = codeTable{
		"LimitExceededException": domain.KindLimitExceeded,
	}

	globalSignOutErrors = codeTable{
		"NotAuthorizedException":   domain.KindInvalidCredentials,
		"TooManyRequestsException": domain.KindTooManyRequests,
	}
)

// kindMessages are the caller-facing messages per domain error kind
var kindMessages = map[domain.ErrorKind]string{
	domain.KindUserAlreadyExists:       "user already exists",
	domain.KindRequirementsNotMet:      "password does not meet the requirements",
	domain.KindInvalidVerificationCode: "the provided code does not match the expected value",
	domain.KindExpiredVerificationCode: "the provided code has expired",
	domain.KindUserNotFound:            "user not found",
	domain.KindUserNotConfirmed:        "please verify your account",
	domain.KindUnauthorized:            "not authorized",
	domain.KindInvalidCredentials:      "incorrect username or password",
	domain.KindLimitExceeded:           "attempt limit exceeded, please try again later",
	domain.KindTooManyRequests:         "too many requests",
	domain.KindInternal:                "internal server error",
}

// translateError converts a provider failure into a domain error using the
// operation's code table. The raw provider payload is logged here, once,
// and kept as the wrapped cause; callers only ever see the domain kind.
func (a *Adapter) translateError(err error, operation string, table codeTable) error {
	var apiErr smithy.APIError
	if !errors.As(err, &apiErr) {
		// Network fault, malformed response, context cancellation
		a.logger.Error("cognito call failed without provider error code",
			"operation", operation,
			"error", err)
		return domain.NewAuthError(domain.KindInternal, kindMessages[domain.KindInternal], err)
	}

	code := apiErr.ErrorCode()
	a.logger.Error("cognito call failed",
		"operation", operation,
		"error_code", code,
		"error_message", apiErr.ErrorMessage(),
		"error_fault", apiErr.ErrorFault().String())

	kind, ok := table[code]
	if !ok {
		kind = domain.KindInternal
	}
	return domain.NewAuthError(kind, kindMessages[kind], err)
}
