package domain

// SignupRequest carries everything needed to register a new account with
// the identity provider. NationalID and ProfessionalID land in custom user
// attributes; ProfessionalID is optional and only meaningful for doctors.
type SignupRequest struct {
	Email          string `json:"email" validate:"required,email"`
	Password       string `json:"password" validate:"required,min=8"`
	FullName       string `json:"full_name" validate:"required"`
	Role           string `json:"role" validate:"required,role"`
	NationalID     string `json:"national_id" validate:"required"`
	ProfessionalID string `json:"professional_id,omitempty" validate:"omitempty"`
}

// SigninRequest carries password-based login credentials
type SigninRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// VerifyRequest confirms account ownership with an out-of-band code
type VerifyRequest struct {
	Email            string `json:"email" validate:"required,email"`
	ConfirmationCode string `json:"confirmation_code" validate:"required"`
}

// PasswordResetRequest starts the forgot-password flow
type PasswordResetRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// ConfirmPasswordResetRequest completes the forgot-password flow
type ConfirmPasswordResetRequest struct {
	Email            string `json:"email" validate:"required,email"`
	ConfirmationCode string `json:"confirmation_code" validate:"required"`
	NewPassword      string `json:"new_password" validate:"required,min=8"`
}

// ChangePasswordRequest rotates the password of an authenticated user
type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=8"`
	AccessToken string `json:"access_token" validate:"required"`
}

// RefreshTokenRequest exchanges a refresh token for a fresh access token
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// LogoutRequest revokes every token issued for the access token's session
type LogoutRequest struct {
	AccessToken string `json:"access_token" validate:"required"`
}

// SignupResult is the provider's registration outcome with stable field
// names. All four fields are copied verbatim from the provider response.
type SignupResult struct {
	UserID                  string `json:"user_id"`
	UserConfirmed           bool   `json:"user_confirmed"`
	CodeDeliveryDestination string `json:"code_delivery_destination"`
	CodeDeliveryType        string `json:"code_delivery_type"`
}

// AccessTokenResult is the token bundle returned by signin and refresh.
// RefreshToken is empty on refresh responses: the provider does not reissue
// it there.
type AccessTokenResult struct {
	AccessToken  string `json:"access_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int32  `json:"expires_in"`
	RefreshToken string `json:"refresh_token,omitempty"`
	IDToken      string `json:"id_token"`
}

// CodeDeliveryInfo describes where a confirmation code was sent. The
// destination is masked by the provider (e.g. "a***@x.com").
type CodeDeliveryInfo struct {
	Destination  string `json:"code_delivery_destination"`
	DeliveryType string `json:"code_delivery_type"`
}
