package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"cognito-auth-service/app/domain"
	"cognito-auth-service/app/port"
	"cognito-auth-service/app/utils/validator"
)

// AuthHandler handles authentication HTTP requests
type AuthHandler struct {
	authUsecase port.AuthUsecase
	logger      *slog.Logger
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authUsecase port.AuthUsecase, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
		logger:      logger,
	}
}

// ErrorResponse is the JSON error envelope shared by all endpoints
type ErrorResponse struct {
	Error   string            `json:"error"`
	Code    string            `json:"code"`
	Details map[string]string `json:"details,omitempty"`
}

// MessageResponse is returned by endpoints with no payload
type MessageResponse struct {
	Message string `json:"message"`
}

// SignUp handles POST /v1/auth/signup
// @Summary Register a new account
// @Tags authentication
// @Accept json
// @Produce json
// @Success 201 {object} domain.SignupResult
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /v1/auth/signup [post]
func (h *AuthHandler) SignUp(c echo.Context) error {
	req := new(domain.SignupRequest)
	if err := c.Bind(req); err != nil {
		return badRequest(c, "invalid request body")
	}

	result, err := h.authUsecase.SignUp(c.Request().Context(), req)
	if err != nil {
		return h.writeError(c, err)
	}

	return c.JSON(http.StatusCreated, result)
}

// Verify handles POST /v1/auth/verify
// @Summary Confirm an account with its verification code
// @Tags authentication
// @Accept json
// @Produce json
// @Success 200 {object} MessageResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /v1/auth/verify [post]
func (h *AuthHandler) Verify(c echo.Context) error {
	req := new(domain.VerifyRequest)
	if err := c.Bind(req); err != nil {
		return badRequest(c, "invalid request body")
	}

	if err := h.authUsecase.VerifyAccount(c.Request().Context(), req); err != nil {
		return h.writeError(c, err)
	}

	return c.JSON(http.StatusOK, MessageResponse{Message: "account verified"})
}

// resendCodeRequest is the body of POST /v1/auth/resend-code
type resendCodeRequest struct {
	Email string `json:"email"`
}

// ResendCode handles POST /v1/auth/resend-code
// @Summary Send a fresh verification code
// @Tags authentication
// @Accept json
// @Produce json
// @Success 200 {object} domain.CodeDeliveryInfo
// @Failure 404 {object} ErrorResponse
// @Failure 429 {object} ErrorResponse
// @Router /v1/auth/resend-code [post]
func (h *AuthHandler) ResendCode(c echo.Context) error {
	req := new(resendCodeRequest)
	if err := c.Bind(req); err != nil {
		return badRequest(c, "invalid request body")
	}

	info, err := h.authUsecase.ResendConfirmationCode(c.Request().Context(), req.Email)
	if err != nil {
		return h.writeError(c, err)
	}

	return c.JSON(http.StatusOK, info)
}

// GetUser handles GET /v1/auth/user
// @Summary Look up a stored user record
// @Tags authentication
// @Produce json
// @Param email query string true "User email"
// @Success 200 {object} domain.UserRecord
// @Failure 404 {object} ErrorResponse
// @Router /v1/auth/user [get]
func (h *AuthHandler) GetUser(c echo.Context) error {
	email := c.QueryParam("email")

	record, err := h.authUsecase.GetUser(c.Request().Context(), email)
	if err != nil {
		return h.writeError(c, err)
	}

	return c.JSON(http.StatusOK, record)
}

// SignIn handles POST /v1/auth/signin
// @Summary Authenticate with password credentials
// @Tags authentication
// @Accept json
// @Produce json
// @Success 200 {object} domain.AccessTokenResult
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Router /v1/auth/signin [post]
func (h *AuthHandler) SignIn(c echo.Context) error {
	req := new(domain.SigninRequest)
	if err := c.Bind(req); err != nil {
		return badRequest(c, "invalid request body")
	}

	tokens, err := h.authUsecase.SignIn(c.Request().Context(), req)
	if err != nil {
		return h.writeError(c, err)
	}

	return c.JSON(http.StatusOK, tokens)
}

// ForgotPassword handles POST /v1/auth/forgot-password
// @Summary Start the password-reset flow
// @Tags authentication
// @Accept json
// @Produce json
// @Success 200 {object} domain.CodeDeliveryInfo
// @Failure 404 {object} ErrorResponse
// @Router /v1/auth/forgot-password [post]
func (h *AuthHandler) ForgotPassword(c echo.Context) error {
	req := new(domain.PasswordResetRequest)
	if err := c.Bind(req); err != nil {
		return badRequest(c, "invalid request body")
	}

	info, err := h.authUsecase.ForgotPassword(c.Request().Context(), req)
	if err != nil {
		return h.writeError(c, err)
	}

	return c.JSON(http.StatusOK, info)
}

// ConfirmForgotPassword handles POST /v1/auth/confirm-forgot-password
// @Summary Complete the password-reset flow
// @Tags authentication
// @Accept json
// @Produce json
// @Success 200 {object} MessageResponse
// @Failure 400 {object} ErrorResponse
// @Router /v1/auth/confirm-forgot-password [post]
func (h *AuthHandler) ConfirmForgotPassword(c echo.Context) error {
	req := new(domain.ConfirmPasswordResetRequest)
	if err := c.Bind(req); err != nil {
		return badRequest(c, "invalid request body")
	}

	if err := h.authUsecase.ConfirmForgotPassword(c.Request().Context(), req); err != nil {
		return h.writeError(c, err)
	}

	return c.JSON(http.StatusOK, MessageResponse{Message: "password reset"})
}

// ChangePassword handles POST /v1/auth/change-password
// @Summary Rotate the password of an authenticated user
// @Tags authentication
// @Accept json
// @Produce json
// @Success 200 {object} MessageResponse
// @Failure 401 {object} ErrorResponse
// @Failure 429 {object} ErrorResponse
// @Router /v1/auth/change-password [post]
func (h *AuthHandler) ChangePassword(c echo.Context) error {
	req := new(domain.ChangePasswordRequest)
	if err := c.Bind(req); err != nil {
		return badRequest(c, "invalid request body")
	}

	if err := h.authUsecase.ChangePassword(c.Request().Context(), req); err != nil {
		return h.writeError(c, err)
	}

	return c.JSON(http.StatusOK, MessageResponse{Message: "password changed"})
}

// Refresh handles POST /v1/auth/refresh
// @Summary Exchange a refresh token for a new access token
// @Tags authentication
// @Accept json
// @Produce json
// @Success 200 {object} domain.AccessTokenResult
// @Failure 429 {object} ErrorResponse
// @Router /v1/auth/refresh [post]
func (h *AuthHandler) Refresh(c echo.Context) error {
	req := new(domain.RefreshTokenRequest)
	if err := c.Bind(req); err != nil {
		return badRequest(c, "invalid request body")
	}

	tokens, err := h.authUsecase.RefreshAccessToken(c.Request().Context(), req)
	if err != nil {
		return h.writeError(c, err)
	}

	return c.JSON(http.StatusOK, tokens)
}

// Logout handles POST /v1/auth/logout
// @Summary Revoke every token for the access token's session
// @Tags authentication
// @Accept json
// @Produce json
// @Success 200 {object} MessageResponse
// @Failure 401 {object} ErrorResponse
// @Router /v1/auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	req := new(domain.LogoutRequest)
	if err := c.Bind(req); err != nil {
		return badRequest(c, "invalid request body")
	}

	if err := h.authUsecase.Logout(c.Request().Context(), req); err != nil {
		return h.writeError(c, err)
	}

	return c.JSON(http.StatusOK, MessageResponse{Message: "logged out"})
}

// kindStatus maps every domain error kind to its HTTP status. Unknown kinds
// fall through to 500.
var kindStatus = map[domain.ErrorKind]int{
	domain.KindUserAlreadyExists:       http.StatusConflict,
	domain.KindRequirementsNotMet:      http.StatusBadRequest,
	domain.KindInvalidVerificationCode: http.StatusBadRequest,
	domain.KindExpiredVerificationCode: http.StatusBadRequest,
	domain.KindValidation:              http.StatusBadRequest,
	domain.KindUserNotFound:            http.StatusNotFound,
	domain.KindUserNotConfirmed:        http.StatusForbidden,
	domain.KindUnauthorized:            http.StatusForbidden,
	domain.KindInvalidCredentials:      http.StatusUnauthorized,
	domain.KindLimitExceeded:           http.StatusTooManyRequests,
	domain.KindTooManyRequests:         http.StatusTooManyRequests,
	domain.KindInternal:                http.StatusInternalServerError,
}

// writeError translates a domain error into the JSON error envelope
func (h *AuthHandler) writeError(c echo.Context, err error) error {
	kind := domain.KindOf(err)

	status, ok := kindStatus[kind]
	if !ok {
		status = http.StatusInternalServerError
	}

	response := ErrorResponse{
		Code: string(kind),
	}

	var authErr *domain.AuthError
	if errors.As(err, &authErr) {
		response.Error = authErr.Message
	} else {
		response.Error = "internal server error"
	}

	// Field-level messages for validation failures
	var vErr *validator.ValidationError
	if errors.As(err, &vErr) {
		response.Details = vErr.Errors
	}

	if status >= http.StatusInternalServerError {
		h.logger.Error("request failed",
			"path", c.Request().URL.Path,
			"kind", string(kind),
			"error", err)
	}

	return c.JSON(status, response)
}

func badRequest(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, ErrorResponse{
		Error: message,
		Code:  string(domain.KindValidation),
	})
}
