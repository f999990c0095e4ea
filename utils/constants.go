package utils

import (
	"errors"
	"time"
)

// Token time constants
const (
	// AccessTokenTTL is the time-to-live for access tokens (24 hours)
	AccessTokenTTL = 24 * time.Hour

	// RefreshTokenTTL is the time-to-live for refresh tokens (7 days)
	RefreshTokenTTL = 7 * 24 * time.Hour

	// RequestTimeout bounds a single API request end to end
	RequestTimeout = 30 * time.Second
)

// CORS and security constants
const (
	// CORSMaxAge is the maximum age for CORS preflight requests (24 hours)
	CORSMaxAge = 86400
)

type contextKey string

// Request-scoped context keys
const (
	UserIDKey    contextKey = "user_id"
	RequestIDKey contextKey = "request_id"
	EndpointKey  contextKey = "endpoint"
)

var ErrEmptyUUID = errors.New("uuid is empty")
