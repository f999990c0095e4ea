// Package businessflow contains the core business logic and use cases for ad copy management
package businessflow

import (
	"errors"
	"fmt"
)

// Error codes surfaced in the result envelope
const (
	CodeUnauthorized = "UNAUTHORIZED"
	CodeNotFound     = "NOT_FOUND"
	CodeValidation   = "VALIDATION_ERROR"
	CodeInternal     = "INTERNAL_ERROR"
)

// MsgNoUpdateFields is returned when an update request carries no fields
const MsgNoUpdateFields = "At least one field must be provided to update"

// Business flow error constants
var (
	// Identity errors
	ErrUnauthorized = errors.New("unauthorized")

	// Ownership errors
	ErrCampaignNotFound = errors.New("campaign not found")
	ErrAdCopyNotFound   = errors.New("ad copy not found")

	// Validation errors
	ErrNoUpdateFields         = errors.New("at least one field must be provided to update")
	ErrInvalidID              = errors.New("id must be a valid UUID")
	ErrCampaignNameRequired   = errors.New("campaign name is required")
	ErrPrimaryTextRequired    = errors.New("primary text is required")
	ErrInvalidPerformanceDate = errors.New("date must be formatted as YYYY-MM-DD")
	ErrNegativeMetric         = errors.New("impressions, clicks and conversions must not be negative")
	ErrNegativeSpend          = errors.New("spend must not be negative")
	ErrInvalidSpend           = errors.New("spend must be below 1000000000000 with at most 2 decimal places")
	ErrInvalidCurrency        = errors.New("currency must be a three letter code")
)

type BusinessError struct {
	Code    string
	Message string
	Err     error
}

func (e *BusinessError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *BusinessError) Unwrap() error {
	return e.Err
}

func NewBusinessError(code, message string, err error) *BusinessError {
	return &BusinessError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// validationError wraps a validation sentinel, using its text as the message
func validationError(err error) *BusinessError {
	return NewBusinessError(CodeValidation, err.Error(), err)
}

// ErrorCode returns the envelope code carried by err, INTERNAL_ERROR when none
func ErrorCode(err error) string {
	var be *BusinessError
	if errors.As(err, &be) {
		return be.Code
	}
	return CodeInternal
}

func IsUnauthorized(err error) bool {
	return errors.Is(err, ErrUnauthorized)
}

func IsNotFound(err error) bool {
	return ErrorCode(err) == CodeNotFound
}

func IsValidation(err error) bool {
	return ErrorCode(err) == CodeValidation
}

func IsCampaignNotFound(err error) bool {
	return errors.Is(err, ErrCampaignNotFound)
}

func IsAdCopyNotFound(err error) bool {
	return errors.Is(err, ErrAdCopyNotFound)
}

func IsNoUpdateFields(err error) bool {
	return errors.Is(err, ErrNoUpdateFields)
}
