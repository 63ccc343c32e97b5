package cognito

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cognito-auth-service/app/domain"
)

// newFailingAPI builds a stub that returns the same error from every
// Cognito operation
func newFailingAPI(err error) *stubAPI {
	return &stubAPI{err: err}
}

func testAdapter(api API) *Adapter {
	return &Adapter{
		api:      api,
		poolID:   "us-east-1_testpool",
		clientID: "test-client-id",
		logger:   slog.New(slog.NewJSONHandler(io.Discard, nil)),
	}
}

// operations drives every adapter method with throwaway input so each
// per-operation code table can be exercised in one sweep
var operations = map[string]struct {
	table codeTable
	call  func(context.Context, *Adapter) error
}{
	"sign_up": {
		table: signUpErrors,
		call: func(ctx context.Context, a *Adapter) error {
			_, err := a.SignUp(ctx, &domain.SignupRequest{Email: "a@x.com", Password: "Abc12345!", Role: "patient"})
			return err
		},
	},
	"confirm_sign_up": {
		table: confirmSignUpErrors,
		call: func(ctx context.Context, a *Adapter) error {
			return a.ConfirmSignUp(ctx, "a@x.com", "123456")
		},
	},
	"resend_confirmation_code": {
		table: resendConfirmationCodeErrors,
		call: func(ctx context.Context, a *Adapter) error {
			_, err := a.ResendConfirmationCode(ctx, "a@x.com")
			return err
		},
	},
	"admin_get_user": {
		table: getUserErrors,
		call: func(ctx context.Context, a *Adapter) error {
			_, err := a.GetUser(ctx, "a@x.com")
			return err
		},
	},
	"initiate_auth": {
		table: initiateAuthErrors,
		call: func(ctx context.Context, a *Adapter) error {
			_, err := a.InitiateAuth(ctx, &domain.SigninRequest{Email: "a@x.com", Password: "Abc12345!"})
			return err
		},
	},
	"forgot_password": {
		table: forgotPasswordErrors,
		call: func(ctx context.Context, a *Adapter) error {
			_, err := a.ForgotPassword(ctx, "a@x.com")
			return err
		},
	},
	"confirm_forgot_password": {
		table: confirmForgotPasswordErrors,
		call: func(ctx context.Context, a *Adapter) error {
			return a.ConfirmForgotPassword(ctx, &domain.ConfirmPasswordResetRequest{
				Email:            "a@x.com",
				ConfirmationCode: "123456",
				NewPassword:      "Abc12345!",
			})
		},
	},
	"change_password": {
		table: changePasswordErrors,
		call: func(ctx context.Context, a *Adapter) error {
			return a.ChangePassword(ctx, &domain.ChangePasswordRequest{
				OldPassword: "Abc12345!",
				NewPassword: "Xyz98765!",
				AccessToken: "access-token",
			})
		},
	},
	"refresh_token": {
		table: refreshTokenErrors,
		call: func(ctx context.Context, a *Adapter) error {
			_, err := a.RefreshAccessToken(ctx, "refresh-token")
			return err
		},
	},
	"global_sign_out": {
		table: globalSignOutErrors,
		call: func(ctx context.Context, a *Adapter) error {
			return a.GlobalSignOut(ctx, "access-token")
		},
	},
}

func TestTranslateError_ListedCodes(t *testing.T) {
	for name, op := range operations {
		for code, expectedKind := range op.table {
			t.Run(name+"/"+code, func(t *testing.T) {
				providerErr := &smithy.GenericAPIError{Code: code, Message: "provider message"}
				adapter := testAdapter(newFailingAPI(providerErr))

				err := op.call(context.Background(), adapter)

				require.Error(t, err)
				assert.Equal(t, expectedKind, domain.KindOf(err))
				assert.ErrorIs(t, err, providerErr, "original failure must stay in the chain")
			})
		}
	}
}

func TestTranslateError_UnlistedCodeCollapsesToInternal(t *testing.T) {
	for name, op := range operations {
		t.Run(name, func(t *testing.T) {
			providerErr := &smithy.GenericAPIError{Code: "InternalErrorException", Message: "boom"}
			adapter := testAdapter(newFailingAPI(providerErr))

			err := op.call(context.Background(), adapter)

			require.Error(t, err)
			assert.Equal(t, domain.KindInternal, domain.KindOf(err))
		})
	}
}

func TestTranslateError_NonProviderFailure(t *testing.T) {
	for name, op := range operations {
		t.Run(name, func(t *testing.T) {
			cause := errors.New("connection refused")
			adapter := testAdapter(newFailingAPI(cause))

			err := op.call(context.Background(), adapter)

			require.Error(t, err)
			assert.Equal(t, domain.KindInternal, domain.KindOf(err))
			assert.ErrorIs(t, err, cause)
		})
	}
}

func TestTranslateError_SigninDoesNotLeakUserExistence(t *testing.T) {
	// Wrong password and unknown user both surface as NotAuthorizedException
	// on this flow; both must map to invalid credentials, never to
	// user-not-found.
	providerErr := &smithy.GenericAPIError{Code: "NotAuthorizedException", Message: "Incorrect username or password."}
	adapter := testAdapter(newFailingAPI(providerErr))

	_, err := adapter.InitiateAuth(context.Background(), &domain.SigninRequest{
		Email:    "a@x.com",
		Password: "wrong-password",
	})

	require.Error(t, err)
	assert.Equal(t, domain.KindInvalidCredentials, domain.KindOf(err))
	assert.NotEqual(t, domain.KindUserNotFound, domain.KindOf(err))
}

func TestTranslateError_VerifyKeepsUserNotFoundDistinct(t *testing.T) {
	providerErr := &smithy.GenericAPIError{Code: "UserNotFoundException", Message: "User does not exist."}
	adapter := testAdapter(newFailingAPI(providerErr))

	err := adapter.ConfirmSignUp(context.Background(), "a@x.com", "123456")

	require.Error(t, err)
	assert.Equal(t, domain.KindUserNotFound, domain.KindOf(err))
}

func TestKindMessages_CoverEveryKind(t *testing.T) {
	kinds := []domain.ErrorKind{
		domain.KindUserAlreadyExists,
		domain.KindRequirementsNotMet,
		domain.KindInvalidVerificationCode,
		domain.KindExpiredVerificationCode,
		domain.KindUserNotFound,
		domain.KindUserNotConfirmed,
		domain.KindUnauthorized,
		domain.KindInvalidCredentials,
		domain.KindLimitExceeded,
		domain.KindTooManyRequests,
		domain.KindInternal,
	}
	for _, kind := range kinds {
		assert.NotEmpty(t, kindMessages[kind], "missing message for %s", kind)
	}
}
