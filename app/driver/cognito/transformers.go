package cognito

import (
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider/types"

	"cognito-auth-service/app/domain"
)

// Pure response transformations from Cognito shapes to domain results.
// No call leaves this file; nothing here may fail.

// transformSignUpResponse copies the provider's registration outcome
// verbatim into a SignupResult
func transformSignUpResponse(out *cognitoidentityprovider.SignUpOutput) *domain.SignupResult {
	result := &domain.SignupResult{
		UserID:        aws.ToString(out.UserSub),
		UserConfirmed: out.UserConfirmed,
	}
	if out.CodeDeliveryDetails != nil {
		result.CodeDeliveryDestination = aws.ToString(out.CodeDeliveryDetails.Destination)
		result.CodeDeliveryType = string(out.CodeDeliveryDetails.DeliveryMedium)
	}
	return result
}

// transformAuthenticationResult flattens the nested authentication result.
// withRefreshToken is false on token-refresh responses: Cognito does not
// reissue the refresh token there and the field must stay empty.
func transformAuthenticationResult(result *types.AuthenticationResultType, withRefreshToken bool) *domain.AccessTokenResult {
	token := &domain.AccessTokenResult{
		AccessToken: aws.ToString(result.AccessToken),
		TokenType:   aws.ToString(result.TokenType),
		ExpiresIn:   result.ExpiresIn,
		IDToken:     aws.ToString(result.IdToken),
	}
	if withRefreshToken {
		token.RefreshToken = aws.ToString(result.RefreshToken)
	}
	return token
}

// transformUserResponse maps a provider user record, preserving attribute
// ordering and normalizing both timestamps to RFC3339 text
func transformUserResponse(out *cognitoidentityprovider.AdminGetUserOutput) *domain.UserRecord {
	attributes := make([]domain.UserAttribute, 0, len(out.UserAttributes))
	for _, attr := range out.UserAttributes {
		attributes = append(attributes, domain.UserAttribute{
			Name:  aws.ToString(attr.Name),
			Value: aws.ToString(attr.Value),
		})
	}

	return &domain.UserRecord{
		Username:       aws.ToString(out.Username),
		Attributes:     attributes,
		CreatedAt:      formatTimestamp(out.UserCreateDate),
		LastModifiedAt: formatTimestamp(out.UserLastModifiedDate),
		Status:         string(out.UserStatus),
		Enabled:        out.Enabled,
	}
}

// transformCodeDeliveryDetails maps the masked delivery info attached to
// resend-code and forgot-password responses
func transformCodeDeliveryDetails(details *types.CodeDeliveryDetailsType) *domain.CodeDeliveryInfo {
	if details == nil {
		return &domain.CodeDeliveryInfo{}
	}
	return &domain.CodeDeliveryInfo{
		Destination:  aws.ToString(details.Destination),
		DeliveryType: string(details.DeliveryMedium),
	}
}

func formatTimestamp(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
