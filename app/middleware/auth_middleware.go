// Package middleware contains HTTP middleware functions for request processing
package middleware

import (
	"errors"
	"strings"

	"github.com/amirphl/copydesk/app/dto"
	"github.com/amirphl/copydesk/app/services"
	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"
)

// Locals keys set by Authenticate
const (
	LocalUserID      = "user_id"
	LocalTokenID     = "token_id"
	LocalTokenClaims = "token_claims"
	LocalRequestID   = "request_id"
	LocalAccessToken = "access_token"
)

// AuthMiddleware handles JWT token validation for protected endpoints
type AuthMiddleware struct {
	tokenService services.TokenService
	logger       *zap.Logger
}

// NewAuthMiddleware creates a new authentication middleware
func NewAuthMiddleware(tokenService services.TokenService, logger *zap.Logger) *AuthMiddleware {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthMiddleware{
		tokenService: tokenService,
		logger:       logger.Named("auth_middleware"),
	}
}

// Authenticate is the middleware function that validates access tokens
func (m *AuthMiddleware) Authenticate() fiber.Handler {
	return func(c fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return unauthorized(c, "MISSING_AUTHORIZATION_HEADER", "Authorization header is required")
		}

		if !strings.HasPrefix(authHeader, "Bearer ") {
			return unauthorized(c, "INVALID_AUTHORIZATION_FORMAT", "Invalid authorization header format. Expected 'Bearer <token>'")
		}

		token := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
		if token == "" {
			return unauthorized(c, "MISSING_ACCESS_TOKEN", "Access token is required")
		}

		claims, err := m.tokenService.ValidateToken(c.Context(), token)
		if err != nil {
			var errorCode, message string
			switch {
			case errors.Is(err, services.ErrTokenExpired):
				errorCode = "TOKEN_EXPIRED"
				message = "Access token has expired"
			case errors.Is(err, services.ErrTokenInvalid):
				errorCode = "TOKEN_INVALID"
				message = "Invalid access token"
			case errors.Is(err, services.ErrTokenRevoked):
				errorCode = "TOKEN_REVOKED"
				message = "Access token has been revoked"
			default:
				m.logger.Warn("token validation failed", zap.Error(err))
				errorCode = "TOKEN_VALIDATION_FAILED"
				message = "Token validation failed"
			}
			return unauthorized(c, errorCode, message)
		}

		if claims.TokenType != services.TokenTypeAccess {
			return unauthorized(c, "TOKEN_TYPE_INVALID", "An access token is required")
		}

		c.Locals(LocalUserID, claims.UserID)
		c.Locals(LocalTokenID, claims.TokenID)
		c.Locals(LocalTokenClaims, claims)
		c.Locals(LocalAccessToken, token)

		if requestID := c.Get("X-Request-ID"); requestID != "" {
			c.Locals(LocalRequestID, requestID)
		}

		return c.Next()
	}
}

func unauthorized(c fiber.Ctx, code, message string) error {
	return c.Status(fiber.StatusUnauthorized).JSON(dto.APIResponse{
		Success: false,
		Message: message,
		Error: dto.ErrorDetail{
			Code: code,
		},
	})
}
