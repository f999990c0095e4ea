// Package handlers contains HTTP request handlers and presentation layer logic for the API endpoints
package handlers

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/amirphl/copydesk/app/dto"
	"github.com/amirphl/copydesk/app/middleware"
	businessflow "github.com/amirphl/copydesk/business_flow"
	"github.com/amirphl/copydesk/utils"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// statusByCode maps business error codes to HTTP statuses
var statusByCode = map[string]int{
	businessflow.CodeUnauthorized: fiber.StatusUnauthorized,
	businessflow.CodeNotFound:     fiber.StatusNotFound,
	businessflow.CodeValidation:   fiber.StatusBadRequest,
	businessflow.CodeInternal:     fiber.StatusInternalServerError,
}

// newValidator builds a validator that reports JSON field names and
// understands utils.Optional and decimal.Decimal fields
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if opt, ok := field.Interface().(utils.Optional[string]); ok {
			if value, present := opt.Get(); present {
				return value
			}
		}
		return nil
	}, utils.Optional[string]{})

	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := d.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})

	// decimal fields reach tag validation as float64, so scale is checked on the struct
	v.RegisterStructValidation(func(sl validator.StructLevel) {
		req, ok := sl.Current().Interface().(dto.LogAdPerformanceRequest)
		if ok && req.Spend != nil && !utils.FitsAmountColumn(*req.Spend) {
			sl.ReportError(req.Spend, "spend", "Spend", "amount", "")
		}
	}, dto.LogAdPerformanceRequest{})

	return v
}

func getValidationErrorMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return err.Field() + " is required"
	case "min":
		return err.Field() + " must be at least " + err.Param() + " characters"
	case "max":
		return err.Field() + " must be at most " + err.Param() + " characters"
	case "len":
		return err.Field() + " must be exactly " + err.Param() + " characters"
	case "oneof":
		return err.Field() + " must be one of: " + err.Param()
	case "uuid":
		return err.Field() + " must be a valid UUID"
	case "url":
		return err.Field() + " must be an absolute URL"
	case "datetime":
		return err.Field() + " must be formatted as YYYY-MM-DD"
	case "iso4217":
		return err.Field() + " must be an ISO-4217 currency code"
	case "gte":
		return fmt.Sprintf("%s must be greater than or equal to %s", err.Field(), err.Param())
	case "lte":
		return fmt.Sprintf("%s must be less than or equal to %s", err.Field(), err.Param())
	case "amount":
		return err.Field() + " must be below 1000000000000 with at most 2 decimal places"
	default:
		return err.Field() + " is invalid"
	}
}

// baseHandler carries what every resource handler shares
type baseHandler struct {
	validator *validator.Validate
	timeout   time.Duration
	logger    *zap.Logger
}

func newBaseHandler(timeout time.Duration, logger *zap.Logger, name string) baseHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	if timeout <= 0 {
		timeout = utils.RequestTimeout
	}
	return baseHandler{
		validator: newValidator(),
		timeout:   timeout,
		logger:    logger.Named(name),
	}
}

func (h *baseHandler) ErrorResponse(c fiber.Ctx, statusCode int, message, errorCode string, details any) error {
	return c.Status(statusCode).JSON(dto.APIResponse{
		Success: false,
		Message: message,
		Error: dto.ErrorDetail{
			Code:    errorCode,
			Details: details,
		},
	})
}

func (h *baseHandler) SuccessResponse(c fiber.Ctx, statusCode int, message string, data any) error {
	return c.Status(statusCode).JSON(dto.APIResponse{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// decodeBody decodes the body into req; an empty body leaves req untouched
func decodeBody(c fiber.Ctx, req any) error {
	if len(c.Body()) == 0 {
		return nil
	}
	return c.Bind().JSON(req)
}

// validationMessages runs struct validation and returns one message per
// failing field, nil when req is valid
func (h *baseHandler) validationMessages(req any) []string {
	err := h.validator.Struct(req)
	if err == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return []string{err.Error()}
	}

	messages := make([]string, 0, len(fieldErrors))
	for _, fe := range fieldErrors {
		messages = append(messages, getValidationErrorMessage(fe))
	}
	return messages
}

func (h *baseHandler) invalidBody(c fiber.Ctx, err error) error {
	return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", "INVALID_REQUEST", err.Error())
}

func (h *baseHandler) invalidRequest(c fiber.Ctx, messages []string) error {
	return h.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", businessflow.CodeValidation, messages)
}

// flowError renders a business flow error as the result envelope
func (h *baseHandler) flowError(c fiber.Ctx, operation string, err error) error {
	code := businessflow.ErrorCode(err)
	status, ok := statusByCode[code]
	if !ok {
		status = fiber.StatusInternalServerError
	}

	var be *businessflow.BusinessError
	message := "Internal server error"
	if errors.As(err, &be) && code != businessflow.CodeInternal {
		message = be.Message
	}

	if status >= fiber.StatusInternalServerError {
		h.logger.Error(operation+" failed",
			zap.String("request_id", requestID(c)),
			zap.Error(err),
		)
	}

	return h.ErrorResponse(c, status, message, code, nil)
}

// createRequestContext creates a context with the request timeout and
// request-scoped values, including the authenticated user when present
func (h *baseHandler) createRequestContext(c fiber.Ctx, endpoint string) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithTimeout(context.Background(), h.timeout)

	ctx = context.WithValue(ctx, utils.RequestIDKey, requestID(c))
	ctx = context.WithValue(ctx, utils.EndpointKey, endpoint)
	if userID, ok := c.Locals(middleware.LocalUserID).(string); ok {
		ctx = businessflow.WithUserID(ctx, userID)
	}

	return ctx, cancel
}

func requestID(c fiber.Ctx) string {
	if id, ok := c.Locals(middleware.LocalRequestID).(string); ok && id != "" {
		return id
	}
	return c.Get("X-Request-ID")
}
