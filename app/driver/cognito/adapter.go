package cognito

import (
	"context"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider/types"

	"cognito-auth-service/app/domain"
	"cognito-auth-service/app/port"
)

// Custom user-pool attribute names. cpf is the national ID, crm the
// professional registration ID; the wire names are fixed by the pool schema.
const (
	attrName           = "name"
	attrEmail          = "email"
	attrRole           = "custom:role"
	attrNationalID     = "custom:cpf"
	attrProfessionalID = "custom:crm"

	// Substituted when the optional professional ID is absent; the pool
	// schema marks the attribute as required.
	emptyProfessionalID = "-"
)

// Adapter implements port.CognitoClient on top of the Cognito SDK client.
// It is stateless: pool and client identifiers are fixed at construction
// and every method is a single request/response unit.
type Adapter struct {
	api      API
	poolID   string
	clientID string
	logger   *slog.Logger
}

// NewAdapter creates a new Cognito adapter
func NewAdapter(client *Client, logger *slog.Logger) port.CognitoClient {
	return &Adapter{
		api:      client.API(),
		poolID:   client.PoolID(),
		clientID: client.ClientID(),
		logger:   logger.With("component", "cognito_adapter"),
	}
}

// SignUp registers a new account with the constant attribute set the
// domain always attaches to a user record
func (a *Adapter) SignUp(ctx context.Context, req *domain.SignupRequest) (*domain.SignupResult, error) {
	professionalID := req.ProfessionalID
	if professionalID == "" {
		professionalID = emptyProfessionalID
	}

	out, err := a.api.SignUp(ctx, &cognitoidentityprovider.SignUpInput{
		ClientId: aws.String(a.clientID),
		Username: aws.String(req.Email),
		Password: aws.String(req.Password),
		UserAttributes: []types.AttributeType{
			{Name: aws.String(attrName), Value: aws.String(req.FullName)},
			{Name: aws.String(attrEmail), Value: aws.String(req.Email)},
			{Name: aws.String(attrRole), Value: aws.String(req.Role)},
			{Name: aws.String(attrNationalID), Value: aws.String(req.NationalID)},
			{Name: aws.String(attrProfessionalID), Value: aws.String(professionalID)},
		},
	})
	if err != nil {
		return nil, a.translateError(err, "sign_up", signUpErrors)
	}

	return transformSignUpResponse(out), nil
}

// ConfirmSignUp verifies an account with the out-of-band confirmation code
func (a *Adapter) ConfirmSignUp(ctx context.Context, email, code string) error {
	_, err := a.api.ConfirmSignUp(ctx, &cognitoidentityprovider.ConfirmSignUpInput{
		ClientId:         aws.String(a.clientID),
		Username:         aws.String(email),
		ConfirmationCode: aws.String(code),
	})
	if err != nil {
		return a.translateError(err, "confirm_sign_up", confirmSignUpErrors)
	}
	return nil
}

// ResendConfirmationCode requests a new confirmation code. Each call is an
// independent dispatch; only the provider's own limit can refuse it.
func (a *Adapter) ResendConfirmationCode(ctx context.Context, email string) (*domain.CodeDeliveryInfo, error) {
	out, err := a.api.ResendConfirmationCode(ctx, &cognitoidentityprovider.ResendConfirmationCodeInput{
		ClientId: aws.String(a.clientID),
		Username: aws.String(email),
	})
	if err != nil {
		return nil, a.translateError(err, "resend_confirmation_code", resendConfirmationCodeErrors)
	}
	return transformCodeDeliveryDetails(out.CodeDeliveryDetails), nil
}

// GetUser looks up a user record through the admin API of the pool
func (a *Adapter) GetUser(ctx context.Context, email string) (*domain.UserRecord, error) {
	out, err := a.api.AdminGetUser(ctx, &cognitoidentityprovider.AdminGetUserInput{
		UserPoolId: aws.String(a.poolID),
		Username:   aws.String(email),
	})
	if err != nil {
		return nil, a.translateError(err, "admin_get_user", getUserErrors)
	}
	return transformUserResponse(out), nil
}

// InitiateAuth performs password authentication and returns the full token
// bundle including the refresh token
func (a *Adapter) InitiateAuth(ctx context.Context, req *domain.SigninRequest) (*domain.AccessTokenResult, error) {
	out, err := a.api.InitiateAuth(ctx, &cognitoidentityprovider.InitiateAuthInput{
		ClientId: aws.String(a.clientID),
		AuthFlow: types.AuthFlowTypeUserPasswordAuth,
		AuthParameters: map[string]string{
			"USERNAME": req.Email,
			"PASSWORD": req.Password,
		},
	})
	if err != nil {
		return nil, a.translateError(err, "initiate_auth", initiateAuthErrors)
	}
	if out.AuthenticationResult == nil {
		// A challenge response instead of tokens; the service does not
		// negotiate auth challenges.
		a.logger.Error("cognito returned no authentication result",
			"operation", "initiate_auth",
			"challenge", string(out.ChallengeName))
		return nil, domain.NewAuthError(domain.KindInternal, kindMessages[domain.KindInternal], nil)
	}

	return transformAuthenticationResult(out.AuthenticationResult, true), nil
}

// ForgotPassword starts the password-reset flow
func (a *Adapter) ForgotPassword(ctx context.Context, email string) (*domain.CodeDeliveryInfo, error) {
	out, err := a.api.ForgotPassword(ctx, &cognitoidentityprovider.ForgotPasswordInput{
		ClientId: aws.String(a.clientID),
		Username: aws.String(email),
	})
	if err != nil {
		return nil, a.translateError(err, "forgot_password", forgotPasswordErrors)
	}
	return transformCodeDeliveryDetails(out.CodeDeliveryDetails), nil
}

// ConfirmForgotPassword completes the password-reset flow
func (a *Adapter) ConfirmForgotPassword(ctx context.Context, req *domain.ConfirmPasswordResetRequest) error {
	_, err := a.api.ConfirmForgotPassword(ctx, &cognitoidentityprovider.ConfirmForgotPasswordInput{
		ClientId:         aws.String(a.clientID),
		Username:         aws.String(req.Email),
		ConfirmationCode: aws.String(req.ConfirmationCode),
		Password:         aws.String(req.NewPassword),
	})
	if err != nil {
		return a.translateError(err, "confirm_forgot_password", confirmForgotPasswordErrors)
	}
	return nil
}

// ChangePassword rotates the password for the session behind the access token
func (a *Adapter) ChangePassword(ctx context.Context, req *domain.ChangePasswordRequest) error {
	_, err := a.api.ChangePassword(ctx, &cognitoidentityprovider.ChangePasswordInput{
		PreviousPassword: aws.String(req.OldPassword),
		ProposedPassword: aws.String(req.NewPassword),
		AccessToken:      aws.String(req.AccessToken),
	})
	if err != nil {
		return a.translateError(err, "change_password", changePasswordErrors)
	}
	return nil
}

// RefreshAccessToken exchanges a refresh token for a new access token. The
// result never carries a refresh token.
func (a *Adapter) RefreshAccessToken(ctx context.Context, refreshToken string) (*domain.AccessTokenResult, error) {
	out, err := a.api.InitiateAuth(ctx, &cognitoidentityprovider.InitiateAuthInput{
		ClientId: aws.String(a.clientID),
		AuthFlow: types.AuthFlowTypeRefreshTokenAuth,
		AuthParameters: map[string]string{
			"REFRESH_TOKEN": refreshToken,
		},
	})
	if err != nil {
		return nil, a.translateError(err, "refresh_token", refreshTokenErrors)
	}
	if out.AuthenticationResult == nil {
		a.logger.Error("cognito returned no authentication result",
			"operation", "refresh_token",
			"challenge", string(out.ChallengeName))
		return nil, domain.NewAuthError(domain.KindInternal, kindMessages[domain.KindInternal], nil)
	}

	return transformAuthenticationResult(out.AuthenticationResult, false), nil
}

// GlobalSignOut revokes every token issued for the access token's session
func (a *Adapter) GlobalSignOut(ctx context.Context, accessToken string) error {
	_, err := a.api.GlobalSignOut(ctx, &cognitoidentityprovider.GlobalSignOutInput{
		AccessToken: aws.String(accessToken),
	})
	if err != nil {
		return a.translateError(err, "global_sign_out", globalSignOutErrors)
	}
	return nil
}
