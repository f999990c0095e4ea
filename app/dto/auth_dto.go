package dto

// RefreshTokenRequest exchanges a refresh token for a new token pair
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

// TokenPairResponse carries a freshly issued token pair
type TokenPairResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	TokenType    string `json:"tokenType"`
}

// LogoutRequest optionally names the refresh token issued with the access token
type LogoutRequest struct {
	RefreshToken string `json:"refreshToken,omitempty"`
}

// LogoutResponse acknowledges revoked tokens
type LogoutResponse struct {
	Success bool `json:"success"`
}
