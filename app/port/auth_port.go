package port

//go:generate mockgen -source=auth_port.go -destination=../mocks/mock_auth_port.go

import (
	"context"

	"cognito-auth-service/app/domain"
)

// CognitoClient defines the provider-facing operations implemented by the
// cognito driver. One method per remote operation; every error returned
// already carries a domain.ErrorKind.
type CognitoClient interface {
	SignUp(ctx context.Context, req *domain.SignupRequest) (*domain.SignupResult, error)
	ConfirmSignUp(ctx context.Context, email, code string) error
	ResendConfirmationCode(ctx context.Context, email string) (*domain.CodeDeliveryInfo, error)
	GetUser(ctx context.Context, email string) (*domain.UserRecord, error)
	InitiateAuth(ctx context.Context, req *domain.SigninRequest) (*domain.AccessTokenResult, error)
	ForgotPassword(ctx context.Context, email string) (*domain.CodeDeliveryInfo, error)
	ConfirmForgotPassword(ctx context.Context, req *domain.ConfirmPasswordResetRequest) error
	ChangePassword(ctx context.Context, req *domain.ChangePasswordRequest) error
	RefreshAccessToken(ctx context.Context, refreshToken string) (*domain.AccessTokenResult, error)
	GlobalSignOut(ctx context.Context, accessToken string) error
}

// AuthGateway defines the anti-corruption layer between use cases and the
// identity provider driver
type AuthGateway interface {
	SignUp(ctx context.Context, req *domain.SignupRequest) (*domain.SignupResult, error)
	VerifyAccount(ctx context.Context, email, code string) error
	ResendConfirmationCode(ctx context.Context, email string) (*domain.CodeDeliveryInfo, error)
	GetUser(ctx context.Context, email string) (*domain.UserRecord, error)
	SignIn(ctx context.Context, req *domain.SigninRequest) (*domain.AccessTokenResult, error)
	ForgotPassword(ctx context.Context, email string) (*domain.CodeDeliveryInfo, error)
	ConfirmForgotPassword(ctx context.Context, req *domain.ConfirmPasswordResetRequest) error
	ChangePassword(ctx context.Context, req *domain.ChangePasswordRequest) error
	RefreshAccessToken(ctx context.Context, refreshToken string) (*domain.AccessTokenResult, error)
	Logout(ctx context.Context, accessToken string) error
}

// AuthUsecase defines authentication business logic interface
type AuthUsecase interface {
	SignUp(ctx context.Context, req *domain.SignupRequest) (*domain.SignupResult, error)
	VerifyAccount(ctx context.Context, req *domain.VerifyRequest) error
	ResendConfirmationCode(ctx context.Context, email string) (*domain.CodeDeliveryInfo, error)
	GetUser(ctx context.Context, email string) (*domain.UserRecord, error)
	SignIn(ctx context.Context, req *domain.SigninRequest) (*domain.AccessTokenResult, error)
	ForgotPassword(ctx context.Context, req *domain.PasswordResetRequest) (*domain.CodeDeliveryInfo, error)
	ConfirmForgotPassword(ctx context.Context, req *domain.ConfirmPasswordResetRequest) error
	ChangePassword(ctx context.Context, req *domain.ChangePasswordRequest) error
	RefreshAccessToken(ctx context.Context, req *domain.RefreshTokenRequest) (*domain.AccessTokenResult, error)
	Logout(ctx context.Context, req *domain.LogoutRequest) error
}

// AuditRepository defines the append-only auth event trail
type AuditRepository interface {
	RecordEvent(ctx context.Context, event *domain.AuthEvent) error
	RecentEvents(ctx context.Context, limit int) ([]*domain.AuthEvent, error)
}
