// Package services provides technical concerns used by the HTTP layer, such as token issuance and revocation
package services

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/amirphl/copydesk/utils"
	"github.com/golang-jwt/jwt/v5"
)

// Token service error constants
var (
	ErrTokenExpired = errors.New("token has expired")
	ErrTokenInvalid = errors.New("invalid token")
	ErrTokenRevoked = errors.New("token has been revoked")
	ErrNotRefresh   = errors.New("token is not a refresh token")
)

// Token types carried in the token_type claim
const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

// TokenService handles JWT token generation, validation and revocation
type TokenService interface {
	GenerateTokens(userID string) (accessToken, refreshToken string, err error)
	ValidateToken(ctx context.Context, token string) (*TokenClaims, error)
	RefreshToken(ctx context.Context, refreshToken string) (newAccessToken, newRefreshToken string, err error)
	RevokeToken(ctx context.Context, token string) error
	Logout(ctx context.Context, accessToken, refreshToken string) error
	IsTokenRevoked(ctx context.Context, tokenID string) (bool, error)
}

// TokenClaims represents the claims in a JWT token
type TokenClaims struct {
	UserID    string    `json:"user_id"`
	IssuedAt  time.Time `json:"issued_at"`
	ExpiresAt time.Time `json:"expires_at"`
	TokenType string    `json:"token_type"` // "access" or "refresh"
	TokenID   string    `json:"jti"`
}

// TokenServiceImpl implements TokenService
type TokenServiceImpl struct {
	accessTokenTTL  time.Duration
	refreshTokenTTL time.Duration
	signingMethod   jwt.SigningMethod
	privateKey      *rsa.PrivateKey
	publicKey       *rsa.PublicKey
	secretKey       []byte
	useRSAKeys      bool
	issuer          string
	audience        string
	revocations     RevocationStore
}

// NewTokenService creates a new token service. A nil store keeps revocations in memory.
func NewTokenService(
	accessTokenTTL, refreshTokenTTL time.Duration,
	issuer, audience string,
	useRSAKeys bool,
	privateKeyPEM, publicKeyPEM, secretKey string,
	revocations RevocationStore,
) (TokenService, error) {
	var privateKey *rsa.PrivateKey
	var publicKey *rsa.PublicKey
	var secretKeyBytes []byte
	var signingMethod jwt.SigningMethod

	if useRSAKeys {
		var err error
		privateKey, publicKey, err = parseRSAKeys(privateKeyPEM, publicKeyPEM)
		if err != nil {
			return nil, fmt.Errorf("failed to parse RSA keys: %w", err)
		}
		signingMethod = jwt.SigningMethodRS256
	} else {
		if secretKey == "" {
			return nil, fmt.Errorf("secret key is required when not using RSA keys")
		}
		secretKeyBytes = []byte(secretKey)
		signingMethod = jwt.SigningMethodHS256
	}

	if revocations == nil {
		revocations = NewMemoryRevocationStore()
	}
	if accessTokenTTL == 0 {
		accessTokenTTL = utils.AccessTokenTTL
	}
	if refreshTokenTTL == 0 {
		refreshTokenTTL = utils.RefreshTokenTTL
	}

	return &TokenServiceImpl{
		accessTokenTTL:  accessTokenTTL,
		refreshTokenTTL: refreshTokenTTL,
		signingMethod:   signingMethod,
		privateKey:      privateKey,
		publicKey:       publicKey,
		secretKey:       secretKeyBytes,
		useRSAKeys:      useRSAKeys,
		issuer:          issuer,
		audience:        audience,
		revocations:     revocations,
	}, nil
}

// parseRSAKeys parses RSA private and public keys from PEM format
func parseRSAKeys(privateKeyPEM, publicKeyPEM string) (*rsa.PrivateKey, *rsa.PublicKey, error) {
	if privateKeyPEM == "" || publicKeyPEM == "" {
		return nil, nil, fmt.Errorf("both private and public keys are required")
	}

	privateKeyBlock, _ := pem.Decode([]byte(privateKeyPEM))
	if privateKeyBlock == nil {
		return nil, nil, fmt.Errorf("failed to decode private key")
	}

	privateKey, err := x509.ParsePKCS1PrivateKey(privateKeyBlock.Bytes)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse private key: %w", err)
	}

	publicKeyBlock, _ := pem.Decode([]byte(publicKeyPEM))
	if publicKeyBlock == nil {
		return nil, nil, fmt.Errorf("failed to decode public key")
	}

	publicKey, err := x509.ParsePKIXPublicKey(publicKeyBlock.Bytes)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse public key: %w", err)
	}

	rsaPublicKey, ok := publicKey.(*rsa.PublicKey)
	if !ok {
		return nil, nil, fmt.Errorf("public key is not RSA")
	}

	return privateKey, rsaPublicKey, nil
}

// GenerateTokens generates access and refresh tokens for a user
func (s *TokenServiceImpl) GenerateTokens(userID string) (accessToken, refreshToken string, err error) {
	if strings.TrimSpace(userID) == "" {
		return "", "", fmt.Errorf("user id is required")
	}

	now := utils.UTCNow()

	accessToken, err = s.issue(userID, TokenTypeAccess, now, s.accessTokenTTL)
	if err != nil {
		return "", "", err
	}

	refreshToken, err = s.issue(userID, TokenTypeRefresh, now, s.refreshTokenTTL)
	if err != nil {
		return "", "", err
	}

	return accessToken, refreshToken, nil
}

func (s *TokenServiceImpl) issue(userID, tokenType string, now time.Time, ttl time.Duration) (string, error) {
	tokenID, err := generateTokenID()
	if err != nil {
		return "", err
	}

	claims := jwt.MapClaims{
		"user_id":    userID,
		"token_type": tokenType,
		"jti":        tokenID,
		"iat":        now.Unix(),
		"exp":        now.Add(ttl).Unix(),
		"iss":        s.issuer,
		"aud":        s.audience,
	}

	return s.generateToken(claims)
}

// ValidateToken validates a JWT token and returns claims
func (s *TokenServiceImpl) ValidateToken(ctx context.Context, token string) (*TokenClaims, error) {
	claims, err := s.parse(token)
	if err != nil {
		return nil, err
	}

	revoked, err := s.IsTokenRevoked(ctx, claims.TokenID)
	if err != nil {
		return nil, fmt.Errorf("failed to check token revocation: %w", err)
	}
	if revoked {
		return nil, ErrTokenRevoked
	}

	return claims, nil
}

// parse verifies the signature and expiry of token without consulting the revocation list
func (s *TokenServiceImpl) parse(token string) (*TokenClaims, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{s.signingMethod.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if s.issuer != "" {
		opts = append(opts, jwt.WithIssuer(s.issuer))
	}
	if s.audience != "" {
		opts = append(opts, jwt.WithAudience(s.audience))
	}

	parsedToken, err := jwt.Parse(token, func(token *jwt.Token) (any, error) {
		if s.useRSAKeys {
			if _, ok := token.Method.(*jwt.SigningMethodRSA); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return s.publicKey, nil
		}
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secretKey, nil
	}, opts...)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}

	if !parsedToken.Valid {
		return nil, ErrTokenInvalid
	}

	claims, ok := parsedToken.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrTokenInvalid
	}

	userID, ok := claims["user_id"].(string)
	if !ok || strings.TrimSpace(userID) == "" {
		return nil, ErrTokenInvalid
	}

	tokenType, ok := claims["token_type"].(string)
	if !ok {
		return nil, ErrTokenInvalid
	}

	tokenID, ok := claims["jti"].(string)
	if !ok || tokenID == "" {
		return nil, ErrTokenInvalid
	}

	issuedAt, ok := claims["iat"].(float64)
	if !ok {
		return nil, ErrTokenInvalid
	}

	expiresAt, ok := claims["exp"].(float64)
	if !ok {
		return nil, ErrTokenInvalid
	}

	if utils.UTCNow().After(time.Unix(int64(expiresAt), 0)) {
		return nil, ErrTokenExpired
	}

	return &TokenClaims{
		UserID:    userID,
		TokenType: tokenType,
		TokenID:   tokenID,
		IssuedAt:  time.Unix(int64(issuedAt), 0).UTC(),
		ExpiresAt: time.Unix(int64(expiresAt), 0).UTC(),
	}, nil
}

// RefreshToken exchanges a refresh token for a new pair and revokes the old refresh token
func (s *TokenServiceImpl) RefreshToken(ctx context.Context, refreshToken string) (newAccessToken, newRefreshToken string, err error) {
	claims, err := s.ValidateToken(ctx, refreshToken)
	if err != nil {
		return "", "", fmt.Errorf("invalid refresh token: %w", err)
	}

	if claims.TokenType != TokenTypeRefresh {
		return "", "", ErrNotRefresh
	}

	// a concurrent refresh with the same token may have passed validation too;
	// only the caller that revokes it first gets a new pair
	first, err := s.revoke(ctx, claims)
	if err != nil {
		return "", "", err
	}
	if !first {
		return "", "", ErrTokenRevoked
	}

	return s.GenerateTokens(claims.UserID)
}

// RevokeToken adds the token id to the revocation list until the token would expire anyway
func (s *TokenServiceImpl) RevokeToken(ctx context.Context, token string) error {
	claims, err := s.parse(token)
	if err != nil {
		return err
	}
	_, err = s.revoke(ctx, claims)
	return err
}

// Logout revokes accessToken and, when given, the refresh token of the same user.
// An expired refresh token is already unusable and is skipped.
func (s *TokenServiceImpl) Logout(ctx context.Context, accessToken, refreshToken string) error {
	access, err := s.parse(accessToken)
	if err != nil {
		return err
	}

	var refresh *TokenClaims
	if refreshToken != "" {
		refresh, err = s.parse(refreshToken)
		switch {
		case errors.Is(err, ErrTokenExpired):
			refresh = nil
		case err != nil:
			return err
		case refresh.TokenType != TokenTypeRefresh:
			return ErrNotRefresh
		case refresh.UserID != access.UserID:
			return ErrTokenInvalid
		}
	}

	if _, err := s.revoke(ctx, access); err != nil {
		return err
	}
	if refresh != nil {
		if _, err := s.revoke(ctx, refresh); err != nil {
			return err
		}
	}
	return nil
}

func (s *TokenServiceImpl) revoke(ctx context.Context, claims *TokenClaims) (bool, error) {
	ttl := time.Until(claims.ExpiresAt)
	if ttl <= 0 {
		return true, nil
	}
	first, err := s.revocations.Revoke(ctx, claims.TokenID, ttl)
	if err != nil {
		return false, fmt.Errorf("failed to revoke token: %w", err)
	}
	return first, nil
}

// IsTokenRevoked checks the revocation list for tokenID
func (s *TokenServiceImpl) IsTokenRevoked(ctx context.Context, tokenID string) (bool, error) {
	return s.revocations.IsRevoked(ctx, tokenID)
}

// generateToken creates a signed JWT token
func (s *TokenServiceImpl) generateToken(claims jwt.MapClaims) (string, error) {
	token := jwt.NewWithClaims(s.signingMethod, claims)

	var signedString string
	var err error

	if s.useRSAKeys {
		signedString, err = token.SignedString(s.privateKey)
	} else {
		signedString, err = token.SignedString(s.secretKey)
	}

	if err != nil {
		return "", err
	}

	return signedString, nil
}

// generateTokenID generates a unique token ID
func generateTokenID() (string, error) {
	bytes := make([]byte, 16)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return fmt.Sprintf("%x", bytes), nil
}
