package gateway

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"cognito-auth-service/app/domain"
	mock_port "cognito-auth-service/app/mocks"
)

func newTestGateway(t *testing.T) (*AuthGateway, *mock_port.MockCognitoClient) {
	ctrl := gomock.NewController(t)
	client := mock_port.NewMockCognitoClient(ctrl)
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	return NewAuthGateway(client, logger), client
}

func TestAuthGateway_SignUp(t *testing.T) {
	t.Run("passes request through and returns result", func(t *testing.T) {
		gw, client := newTestGateway(t)
		req := &domain.SignupRequest{Email: "a@x.com", Password: "Abc12345!", Role: domain.RolePatient}
		expected := &domain.SignupResult{UserID: "uuid-1", CodeDeliveryType: "EMAIL"}

		client.EXPECT().SignUp(gomock.Any(), req).Return(expected, nil)

		result, err := gw.SignUp(context.Background(), req)

		require.NoError(t, err)
		assert.Equal(t, expected, result)
	})

	t.Run("wrapped error keeps domain kind", func(t *testing.T) {
		gw, client := newTestGateway(t)
		providerErr := domain.NewAuthError(domain.KindUserAlreadyExists, "user already exists", nil)

		client.EXPECT().SignUp(gomock.Any(), gomock.Any()).Return(nil, providerErr)

		result, err := gw.SignUp(context.Background(), &domain.SignupRequest{Email: "a@x.com"})

		require.Error(t, err)
		assert.Nil(t, result)
		assert.Equal(t, domain.KindUserAlreadyExists, domain.KindOf(err))
	})
}

func TestAuthGateway_SignIn(t *testing.T) {
	gw, client := newTestGateway(t)
	req := &domain.SigninRequest{Email: "a@x.com", Password: "Abc12345!"}
	tokens := &domain.AccessTokenResult{
		AccessToken:  "access-token",
		TokenType:    "Bearer",
		ExpiresIn:    3600,
		RefreshToken: "refresh-token",
		IDToken:      "id-token",
	}

	client.EXPECT().InitiateAuth(gomock.Any(), req).Return(tokens, nil)

	result, err := gw.SignIn(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, tokens, result)
}

func TestAuthGateway_VerifyAccount(t *testing.T) {
	gw, client := newTestGateway(t)

	client.EXPECT().ConfirmSignUp(gomock.Any(), "a@x.com", "123456").Return(nil)

	err := gw.VerifyAccount(context.Background(), "a@x.com", "123456")

	assert.NoError(t, err)
}

func TestAuthGateway_RefreshAccessToken(t *testing.T) {
	gw, client := newTestGateway(t)
	tokens := &domain.AccessTokenResult{AccessToken: "fresh", TokenType: "Bearer", ExpiresIn: 3600, IDToken: "id"}

	client.EXPECT().RefreshAccessToken(gomock.Any(), "refresh-token").Return(tokens, nil)

	result, err := gw.RefreshAccessToken(context.Background(), "refresh-token")

	require.NoError(t, err)
	assert.Empty(t, result.RefreshToken)
	assert.Equal(t, "fresh", result.AccessToken)
}

func TestAuthGateway_ErrorKindsPassThrough(t *testing.T) {
	// Each failure path keeps the translated kind observable after the
	// gateway's own wrapping
	tests := []struct {
		name string
		kind domain.ErrorKind
		call func(gw *AuthGateway, client *mock_port.MockCognitoClient, err error) error
	}{
		{
			name: "verify with expired code",
			kind: domain.KindExpiredVerificationCode,
			call: func(gw *AuthGateway, client *mock_port.MockCognitoClient, err error) error {
				client.EXPECT().ConfirmSignUp(gomock.Any(), gomock.Any(), gomock.Any()).Return(err)
				return gw.VerifyAccount(context.Background(), "a@x.com", "000000")
			},
		},
		{
			name: "resend against unknown user",
			kind: domain.KindUserNotFound,
			call: func(gw *AuthGateway, client *mock_port.MockCognitoClient, err error) error {
				client.EXPECT().ResendConfirmationCode(gomock.Any(), gomock.Any()).Return(nil, err)
				_, callErr := gw.ResendConfirmationCode(context.Background(), "a@x.com")
				return callErr
			},
		},
		{
			name: "logout with expired token",
			kind: domain.KindInvalidCredentials,
			call: func(gw *AuthGateway, client *mock_port.MockCognitoClient, err error) error {
				client.EXPECT().GlobalSignOut(gomock.Any(), gomock.Any()).Return(err)
				return gw.Logout(context.Background(), "stale-token")
			},
		},
		{
			name: "change password rate limited",
			kind: domain.KindLimitExceeded,
			call: func(gw *AuthGateway, client *mock_port.MockCognitoClient, err error) error {
				client.EXPECT().ChangePassword(gomock.Any(), gomock.Any()).Return(err)
				return gw.ChangePassword(context.Background(), &domain.ChangePasswordRequest{})
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gw, client := newTestGateway(t)
			cause := domain.NewAuthError(tt.kind, "provider failure", nil)

			err := tt.call(gw, client, cause)

			require.Error(t, err)
			assert.Equal(t, tt.kind, domain.KindOf(err))
		})
	}
}
