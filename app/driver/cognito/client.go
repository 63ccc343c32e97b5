package cognito

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider"

	"cognito-auth-service/app/config"
)

// API is the subset of the Cognito identity provider client this service
// invokes. The SDK client satisfies it; tests substitute their own.
type API interface {
	SignUp(ctx context.Context, params *cognitoidentityprovider.SignUpInput, optFns ...func(*cognitoidentityprovider.Options)) (*cognitoidentityprovider.SignUpOutput, error)
	ConfirmSignUp(ctx context.Context, params *cognitoidentityprovider.ConfirmSignUpInput, optFns ...func(*cognitoidentityprovider.Options)) (*cognitoidentityprovider.ConfirmSignUpOutput, error)
	ResendConfirmationCode(ctx context.Context, params *cognitoidentityprovider.ResendConfirmationCodeInput, optFns ...func(*cognitoidentityprovider.Options)) (*cognitoidentityprovider.ResendConfirmationCodeOutput, error)
	AdminGetUser(ctx context.Context, params *cognitoidentityprovider.AdminGetUserInput, optFns ...func(*cognitoidentityprovider.Options)) (*cognitoidentityprovider.AdminGetUserOutput, error)
	InitiateAuth(ctx context.Context, params *cognitoidentityprovider.InitiateAuthInput, optFns ...func(*cognitoidentityprovider.Options)) (*cognitoidentityprovider.InitiateAuthOutput, error)
	ForgotPassword(ctx context.Context, params *cognitoidentityprovider.ForgotPasswordInput, optFns ...func(*cognitoidentityprovider.Options)) (*cognitoidentityprovider.ForgotPasswordOutput, error)
	ConfirmForgotPassword(ctx context.Context, params *cognitoidentityprovider.ConfirmForgotPasswordInput, optFns ...func(*cognitoidentityprovider.Options)) (*cognitoidentityprovider.ConfirmForgotPasswordOutput, error)
	ChangePassword(ctx context.Context, params *cognitoidentityprovider.ChangePasswordInput, optFns ...func(*cognitoidentityprovider.Options)) (*cognitoidentityprovider.ChangePasswordOutput, error)
	GlobalSignOut(ctx context.Context, params *cognitoidentityprovider.GlobalSignOutInput, optFns ...func(*cognitoidentityprovider.Options)) (*cognitoidentityprovider.GlobalSignOutOutput, error)
}

// Client wraps the AWS Cognito identity provider client
type Client struct {
	api      API
	poolID   string
	clientID string
	logger   *slog.Logger
}

// NewClient creates a new Cognito client from configuration. Transport,
// retry and credential resolution stay inside the SDK.
func NewClient(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Client, error) {
	if cfg.CognitoUserPoolID == "" {
		return nil, fmt.Errorf("cognito user pool ID is required")
	}
	if cfg.CognitoAppClientID == "" {
		return nil, fmt.Errorf("cognito app client ID is required")
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.AWSRegion))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}

	api := cognitoidentityprovider.NewFromConfig(awsCfg, func(o *cognitoidentityprovider.Options) {
		if cfg.CognitoEndpoint != "" {
			// Local stacks (e.g. cognito-local) expose a custom endpoint
			o.BaseEndpoint = aws.String(cfg.CognitoEndpoint)
		}
	})

	logger.Info("Cognito client initialized",
		"region", cfg.AWSRegion,
		"user_pool_id", cfg.CognitoUserPoolID)

	return &Client{
		api:      api,
		poolID:   cfg.CognitoUserPoolID,
		clientID: cfg.CognitoAppClientID,
		logger:   logger,
	}, nil
}

// API returns the underlying Cognito API client
func (c *Client) API() API {
	return c.api
}

// PoolID returns the configured user pool identifier
func (c *Client) PoolID() string {
	return c.poolID
}

// ClientID returns the configured app client identifier
func (c *Client) ClientID() string {
	return c.clientID
}
