package gateway

import (
	"context"
	"fmt"
	"log/slog"

	"cognito-auth-service/app/domain"
	"cognito-auth-service/app/port"
)

// AuthGateway implements port.AuthGateway on top of the Cognito driver.
// It acts as an anti-corruption layer between the domain and the identity
// provider: use cases speak domain verbs, the driver speaks provider
// operations. Errors pass through wrapped so the domain kind survives
// errors.As further up.
type AuthGateway struct {
	cognitoClient port.CognitoClient
	logger        *slog.Logger
}

// NewAuthGateway creates a new AuthGateway instance
func NewAuthGateway(cognitoClient port.CognitoClient, logger *slog.Logger) *AuthGateway {
	return &AuthGateway{
		cognitoClient: cognitoClient,
		logger:        logger.With("component", "auth_gateway"),
	}
}

// SignUp registers a new account with the identity provider
func (g *AuthGateway) SignUp(ctx context.Context, req *domain.SignupRequest) (*domain.SignupResult, error) {
	g.logger.Info("registering user", "email", domain.MaskEmail(req.Email), "role", req.Role)

	result, err := g.cognitoClient.SignUp(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to sign up user: %w", err)
	}

	g.logger.Info("user registered",
		"user_id", result.UserID,
		"confirmed", result.UserConfirmed,
		"delivery", result.CodeDeliveryType)
	return result, nil
}

// VerifyAccount confirms account ownership with a confirmation code
func (g *AuthGateway) VerifyAccount(ctx context.Context, email, code string) error {
	g.logger.Info("verifying account", "email", domain.MaskEmail(email))

	if err := g.cognitoClient.ConfirmSignUp(ctx, email, code); err != nil {
		return fmt.Errorf("failed to verify account: %w", err)
	}

	g.logger.Info("account verified", "email", domain.MaskEmail(email))
	return nil
}

// ResendConfirmationCode requests a fresh confirmation code
func (g *AuthGateway) ResendConfirmationCode(ctx context.Context, email string) (*domain.CodeDeliveryInfo, error) {
	g.logger.Info("resending confirmation code", "email", domain.MaskEmail(email))

	info, err := g.cognitoClient.ResendConfirmationCode(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to resend confirmation code: %w", err)
	}
	return info, nil
}

// GetUser looks up the stored user record
func (g *AuthGateway) GetUser(ctx context.Context, email string) (*domain.UserRecord, error) {
	g.logger.Info("looking up user", "email", domain.MaskEmail(email))

	record, err := g.cognitoClient.GetUser(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return record, nil
}

// SignIn authenticates with password credentials
func (g *AuthGateway) SignIn(ctx context.Context, req *domain.SigninRequest) (*domain.AccessTokenResult, error) {
	g.logger.Info("signing in user", "email", domain.MaskEmail(req.Email))

	tokens, err := g.cognitoClient.InitiateAuth(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to sign in: %w", err)
	}

	g.logger.Info("user signed in", "email", domain.MaskEmail(req.Email), "expires_in", tokens.ExpiresIn)
	return tokens, nil
}

// ForgotPassword starts the password-reset flow
func (g *AuthGateway) ForgotPassword(ctx context.Context, email string) (*domain.CodeDeliveryInfo, error) {
	g.logger.Info("starting password reset", "email", domain.MaskEmail(email))

	info, err := g.cognitoClient.ForgotPassword(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to start password reset: %w", err)
	}
	return info, nil
}

// ConfirmForgotPassword completes the password-reset flow
func (g *AuthGateway) ConfirmForgotPassword(ctx context.Context, req *domain.ConfirmPasswordResetRequest) error {
	g.logger.Info("confirming password reset", "email", domain.MaskEmail(req.Email))

	if err := g.cognitoClient.ConfirmForgotPassword(ctx, req); err != nil {
		return fmt.Errorf("failed to confirm password reset: %w", err)
	}

	g.logger.Info("password reset confirmed", "email", domain.MaskEmail(req.Email))
	return nil
}

// ChangePassword rotates the password of an authenticated user
func (g *AuthGateway) ChangePassword(ctx context.Context, req *domain.ChangePasswordRequest) error {
	g.logger.Info("changing password")

	if err := g.cognitoClient.ChangePassword(ctx, req); err != nil {
		return fmt.Errorf("failed to change password: %w", err)
	}

	g.logger.Info("password changed")
	return nil
}

// RefreshAccessToken exchanges a refresh token for new tokens
func (g *AuthGateway) RefreshAccessToken(ctx context.Context, refreshToken string) (*domain.AccessTokenResult, error) {
	g.logger.Info("refreshing access token")

	tokens, err := g.cognitoClient.RefreshAccessToken(ctx, refreshToken)
	if err != nil {
		return nil, fmt.Errorf("failed to refresh access token: %w", err)
	}
	return tokens, nil
}

// Logout revokes every token for the access token's session
func (g *AuthGateway) Logout(ctx context.Context, accessToken string) error {
	g.logger.Info("logging out user")

	if err := g.cognitoClient.GlobalSignOut(ctx, accessToken); err != nil {
		return fmt.Errorf("failed to log out: %w", err)
	}

	g.logger.Info("user logged out")
	return nil
}
