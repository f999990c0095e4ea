package handlers

import (
	"errors"
	"time"

	"github.com/amirphl/copydesk/app/dto"
	"github.com/amirphl/copydesk/app/middleware"
	"github.com/amirphl/copydesk/app/services"
	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"
)

// AuthHandlerInterface defines the contract for token handlers
type AuthHandlerInterface interface {
	RefreshToken(c fiber.Ctx) error
	Logout(c fiber.Ctx) error
}

// AuthHandler exchanges and revokes tokens. Tokens are issued by the identity provider.
type AuthHandler struct {
	baseHandler
	tokenService services.TokenService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(tokenService services.TokenService, timeout time.Duration, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		baseHandler:  newBaseHandler(timeout, logger, "auth_handler"),
		tokenService: tokenService,
	}
}

// RefreshToken exchanges a refresh token for a new token pair
// @Summary Refresh Token
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body dto.RefreshTokenRequest true "Refresh token"
// @Success 200 {object} dto.APIResponse{data=dto.TokenPairResponse} "Token refreshed successfully"
// @Failure 400 {object} dto.APIResponse "Validation error or invalid request"
// @Failure 401 {object} dto.APIResponse "Refresh token expired, revoked or invalid"
// @Router /api/v1/auth/refresh [post]
func (h *AuthHandler) RefreshToken(c fiber.Ctx) error {
	var req dto.RefreshTokenRequest
	if err := decodeBody(c, &req); err != nil {
		return h.invalidBody(c, err)
	}
	if msgs := h.validationMessages(&req); msgs != nil {
		return h.invalidRequest(c, msgs)
	}

	ctx, cancel := h.createRequestContext(c, "/api/v1/auth/refresh")
	defer cancel()

	accessToken, refreshToken, err := h.tokenService.RefreshToken(ctx, req.RefreshToken)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrTokenExpired):
			return h.ErrorResponse(c, fiber.StatusUnauthorized, "Refresh token has expired", "TOKEN_EXPIRED", nil)
		case errors.Is(err, services.ErrTokenRevoked):
			return h.ErrorResponse(c, fiber.StatusUnauthorized, "Refresh token has been revoked", "TOKEN_REVOKED", nil)
		case errors.Is(err, services.ErrTokenInvalid), errors.Is(err, services.ErrNotRefresh):
			return h.ErrorResponse(c, fiber.StatusUnauthorized, "Invalid refresh token", "TOKEN_INVALID", nil)
		}
		h.logger.Error("token refresh failed", zap.String("request_id", requestID(c)), zap.Error(err))
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Token refresh failed", "INTERNAL_ERROR", nil)
	}

	return h.SuccessResponse(c, fiber.StatusOK, "Token refreshed successfully", dto.TokenPairResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    "Bearer",
	})
}

// Logout revokes the access token used to authenticate the request and the
// refresh token sent in the body, if any
// @Summary Logout
// @Tags Authentication
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.LogoutRequest false "Refresh token to revoke"
// @Success 200 {object} dto.APIResponse{data=dto.LogoutResponse} "Logged out successfully"
// @Failure 400 {object} dto.APIResponse "Invalid request body"
// @Failure 401 {object} dto.APIResponse "Unauthorized or refresh token invalid"
// @Router /api/v1/auth/logout [post]
func (h *AuthHandler) Logout(c fiber.Ctx) error {
	token, ok := c.Locals(middleware.LocalAccessToken).(string)
	if !ok || token == "" {
		return h.ErrorResponse(c, fiber.StatusUnauthorized, "Authentication required", "UNAUTHORIZED", nil)
	}

	var req dto.LogoutRequest
	if err := decodeBody(c, &req); err != nil {
		return h.invalidBody(c, err)
	}

	ctx, cancel := h.createRequestContext(c, "/api/v1/auth/logout")
	defer cancel()

	if err := h.tokenService.Logout(ctx, token, req.RefreshToken); err != nil {
		if errors.Is(err, services.ErrTokenInvalid) || errors.Is(err, services.ErrNotRefresh) {
			return h.ErrorResponse(c, fiber.StatusUnauthorized, "Invalid refresh token", "TOKEN_INVALID", nil)
		}
		h.logger.Error("logout failed", zap.String("request_id", requestID(c)), zap.Error(err))
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Logout failed", "INTERNAL_ERROR", nil)
	}

	return h.SuccessResponse(c, fiber.StatusOK, "Logged out successfully", dto.LogoutResponse{Success: true})
}
