package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"cognito-auth-service/app/domain"
	"cognito-auth-service/app/port"
	"cognito-auth-service/app/utils/validator"
)

// Operation names recorded in the audit trail
const (
	opSignUp                = "signup"
	opVerifyAccount         = "verify_account"
	opResendCode            = "resend_confirmation_code"
	opGetUser               = "get_user"
	opSignIn                = "signin"
	opForgotPassword        = "forgot_password"
	opConfirmForgotPassword = "confirm_forgot_password"
	opChangePassword        = "change_password"
	opRefreshToken          = "refresh_token"
	opLogout                = "logout"
)

// AuthUseCase implements port.AuthUsecase. Requests are validated before
// any remote dispatch; every dispatch outcome lands in the audit trail
// best-effort.
type AuthUseCase struct {
	gateway   port.AuthGateway
	audit     port.AuditRepository
	validator *validator.Validator
	logger    *slog.Logger
}

// NewAuthUseCase creates a new auth use case
func NewAuthUseCase(gateway port.AuthGateway, audit port.AuditRepository, v *validator.Validator, logger *slog.Logger) *AuthUseCase {
	return &AuthUseCase{
		gateway:   gateway,
		audit:     audit,
		validator: v,
		logger:    logger.With("component", "auth_usecase"),
	}
}

// SignUp registers a new account
func (u *AuthUseCase) SignUp(ctx context.Context, req *domain.SignupRequest) (*domain.SignupResult, error) {
	if err := u.validator.Validate(req); err != nil {
		return nil, domain.NewAuthError(domain.KindValidation, err.Error(), err)
	}

	result, err := u.gateway.SignUp(ctx, req)
	u.recordEvent(ctx, opSignUp, req.Email, err)
	if err != nil {
		return nil, err
	}
	return result, nil
}

// VerifyAccount confirms an account with its confirmation code
func (u *AuthUseCase) VerifyAccount(ctx context.Context, req *domain.VerifyRequest) error {
	if err := u.validator.Validate(req); err != nil {
		return domain.NewAuthError(domain.KindValidation, err.Error(), err)
	}

	err := u.gateway.VerifyAccount(ctx, req.Email, req.ConfirmationCode)
	u.recordEvent(ctx, opVerifyAccount, req.Email, err)
	return err
}

// ResendConfirmationCode requests a fresh confirmation code. There is no
// local throttling: each call reaches the provider and only the provider's
// own limit can refuse it.
func (u *AuthUseCase) ResendConfirmationCode(ctx context.Context, email string) (*domain.CodeDeliveryInfo, error) {
	if email == "" {
		return nil, domain.NewAuthError(domain.KindValidation, "email is required", nil)
	}

	info, err := u.gateway.ResendConfirmationCode(ctx, email)
	u.recordEvent(ctx, opResendCode, email, err)
	if err != nil {
		return nil, err
	}
	return info, nil
}

// GetUser looks up a stored user record
func (u *AuthUseCase) GetUser(ctx context.Context, email string) (*domain.UserRecord, error) {
	if email == "" {
		return nil, domain.NewAuthError(domain.KindValidation, "email is required", nil)
	}

	record, err := u.gateway.GetUser(ctx, email)
	if err != nil {
		return nil, err
	}
	return record, nil
}

// SignIn authenticates with password credentials
func (u *AuthUseCase) SignIn(ctx context.Context, req *domain.SigninRequest) (*domain.AccessTokenResult, error) {
	if err := u.validator.Validate(req); err != nil {
		return nil, domain.NewAuthError(domain.KindValidation, err.Error(), err)
	}

	tokens, err := u.gateway.SignIn(ctx, req)
	u.recordEvent(ctx, opSignIn, req.Email, err)
	if err != nil {
		return nil, err
	}
	return tokens, nil
}

// ForgotPassword starts the password-reset flow
func (u *AuthUseCase) ForgotPassword(ctx context.Context, req *domain.PasswordResetRequest) (*domain.CodeDeliveryInfo, error) {
	if err := u.validator.Validate(req); err != nil {
		return nil, domain.NewAuthError(domain.KindValidation, err.Error(), err)
	}

	info, err := u.gateway.ForgotPassword(ctx, req.Email)
	u.recordEvent(ctx, opForgotPassword, req.Email, err)
	if err != nil {
		return nil, err
	}
	return info, nil
}

// ConfirmForgotPassword completes the password-reset flow
func (u *AuthUseCase) ConfirmForgotPassword(ctx context.Context, req *domain.ConfirmPasswordResetRequest) error {
	if err := u.validator.Validate(req); err != nil {
		return domain.NewAuthError(domain.KindValidation, err.Error(), err)
	}

	err := u.gateway.ConfirmForgotPassword(ctx, req)
	u.recordEvent(ctx, opConfirmForgotPassword, req.Email, err)
	return err
}

// ChangePassword rotates the password of an authenticated user
func (u *AuthUseCase) ChangePassword(ctx context.Context, req *domain.ChangePasswordRequest) error {
	if err := u.validator.Validate(req); err != nil {
		return domain.NewAuthError(domain.KindValidation, err.Error(), err)
	}

	err := u.gateway.ChangePassword(ctx, req)
	u.recordEvent(ctx, opChangePassword, "", err)
	return err
}

// RefreshAccessToken exchanges a refresh token for a new access token
func (u *AuthUseCase) RefreshAccessToken(ctx context.Context, req *domain.RefreshTokenRequest) (*domain.AccessTokenResult, error) {
	if err := u.validator.Validate(req); err != nil {
		return nil, domain.NewAuthError(domain.KindValidation, err.Error(), err)
	}

	tokens, err := u.gateway.RefreshAccessToken(ctx, req.RefreshToken)
	u.recordEvent(ctx, opRefreshToken, "", err)
	if err != nil {
		return nil, err
	}
	return tokens, nil
}

// Logout revokes every token for the access token's session
func (u *AuthUseCase) Logout(ctx context.Context, req *domain.LogoutRequest) error {
	if err := u.validator.Validate(req); err != nil {
		return domain.NewAuthError(domain.KindValidation, err.Error(), err)
	}

	err := u.gateway.Logout(ctx, req.AccessToken)
	u.recordEvent(ctx, opLogout, "", err)
	return err
}

// recordEvent appends the dispatch outcome to the audit trail. Audit
// failures are logged and swallowed: the trail never decides a call.
func (u *AuthUseCase) recordEvent(ctx context.Context, operation, email string, callErr error) {
	outcome := domain.OutcomeSuccess
	var kind domain.ErrorKind
	if callErr != nil {
		outcome = domain.OutcomeFailure
		kind = domain.KindOf(callErr)
	}

	event := domain.NewAuthEvent(operation, email, outcome, kind)
	if err := u.audit.RecordEvent(ctx, event); err != nil {
		u.logger.Warn("failed to record auth event",
			"operation", operation,
			"error", fmt.Sprintf("%v", err))
	}
}
