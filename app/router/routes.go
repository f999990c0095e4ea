// Package router provides HTTP routing, middleware configuration, and server setup for the web application
package router

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"io"
	"os"
	"strings"
	"time"

	"github.com/amirphl/copydesk/app/dto"
	"github.com/amirphl/copydesk/app/handlers"
	"github.com/amirphl/copydesk/app/middleware"
	"github.com/amirphl/copydesk/config"
	_ "github.com/amirphl/copydesk/docs"
	"github.com/amirphl/copydesk/utils"
	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/gofiber/fiber/v3/middleware/compress"
	"github.com/gofiber/fiber/v3/middleware/cors"
	"github.com/gofiber/fiber/v3/middleware/helmet"
	"github.com/gofiber/fiber/v3/middleware/limiter"
	"github.com/gofiber/fiber/v3/middleware/logger"
	"github.com/gofiber/fiber/v3/middleware/recover"
	"github.com/gofiber/fiber/v3/middleware/requestid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/swaggo/swag"
	"go.uber.org/zap"
)

// Router interface for HTTP routing
type Router interface {
	SetupRoutes()
	Start(address string) error
	GetApp() *fiber.App
}

// HealthCheck reports whether a dependency is reachable
type HealthCheck func(ctx context.Context) error

// Handlers groups the HTTP handlers mounted by the router
type Handlers struct {
	Auth        handlers.AuthHandlerInterface
	Campaign    handlers.CampaignHandlerInterface
	AdCopy      handlers.AdCopyHandlerInterface
	Performance handlers.PerformanceHandlerInterface
}

// FiberRouter implements Router using Fiber v3
type FiberRouter struct {
	app            *fiber.App
	cfg            *config.ProductionConfig
	handlers       Handlers
	authMiddleware *middleware.AuthMiddleware
	healthCheck    HealthCheck
	logger         *zap.Logger
	accessLog      io.Writer
}

// NewFiberRouter creates a new Fiber router. accessLog receives one JSON line
// per request; nil means stdout.
func NewFiberRouter(
	cfg *config.ProductionConfig,
	h Handlers,
	authMiddleware *middleware.AuthMiddleware,
	healthCheck HealthCheck,
	log *zap.Logger,
	accessLog io.Writer,
) *FiberRouter {
	if log == nil {
		log = zap.NewNop()
	}
	if accessLog == nil {
		accessLog = os.Stdout
	}
	log = log.Named("router")

	app := fiber.New(fiber.Config{
		AppName:      "Copydesk API",
		ServerHeader: "Copydesk",
		ErrorHandler: newErrorHandler(log),
		BodyLimit:    cfg.Server.BodyLimit,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		JSONEncoder:  json.Marshal,
		JSONDecoder:  json.Unmarshal,
	})

	return &FiberRouter{
		app:            app,
		cfg:            cfg,
		handlers:       h,
		authMiddleware: authMiddleware,
		healthCheck:    healthCheck,
		logger:         log,
		accessLog:      accessLog,
	}
}

// SetupRoutes configures all application routes
func (r *FiberRouter) SetupRoutes() {
	r.setupMiddleware()

	if r.cfg.Metrics.Enabled {
		r.app.Get(r.cfg.Metrics.Path, adaptor.HTTPHandler(promhttp.Handler()))
	}

	api := r.app.Group("/api/v1")

	// Health check route (no rate limiting)
	api.Get("/health", r.health)

	if !r.cfg.Server.IsProduction() {
		api.Get("/swagger.json", r.serveSwaggerJSON)
	}

	api.Use(limiter.New(limiter.Config{
		Max:        r.cfg.Security.GlobalRateLimit,
		Expiration: r.cfg.Security.RateLimitWindow,
		KeyGenerator: func(c fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: rateLimitReached,
		Next: func(c fiber.Ctx) bool {
			return c.Path() == "/api/v1/health"
		},
	}))

	authenticate := r.authMiddleware.Authenticate()

	// Token endpoints with stricter rate limiting
	auth := api.Group("/auth")
	auth.Use(limiter.New(limiter.Config{
		Max:        r.cfg.Security.AuthRateLimit,
		Expiration: r.cfg.Security.RateLimitWindow,
		KeyGenerator: func(c fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: rateLimitReached,
	}))
	auth.Post("/refresh", r.handlers.Auth.RefreshToken)
	auth.Post("/logout", authenticate, r.handlers.Auth.Logout)

	campaigns := api.Group("/campaigns", authenticate)
	campaigns.Post("", r.handlers.Campaign.CreateCampaign)
	campaigns.Get("", r.handlers.Campaign.ListCampaigns)
	campaigns.Get("/:id", r.handlers.Campaign.GetCampaign)
	campaigns.Patch("/:id", r.handlers.Campaign.UpdateCampaign)

	campaigns.Post("/:campaignId/ad-copies", r.handlers.AdCopy.CreateAdCopy)
	campaigns.Get("/:campaignId/ad-copies", r.handlers.AdCopy.ListAdCopies)
	campaigns.Patch("/:campaignId/ad-copies/:id", r.handlers.AdCopy.UpdateAdCopy)
	campaigns.Delete("/:campaignId/ad-copies/:id", r.handlers.AdCopy.DeleteAdCopy)

	adCopies := api.Group("/ad-copies", authenticate)
	adCopies.Post("/:adCopyId/performance", r.handlers.Performance.LogAdPerformance)
	adCopies.Get("/:adCopyId/performance", r.handlers.Performance.ListAdPerformance)
	adCopies.Get("/:adCopyId/performance/summary", r.handlers.Performance.SummarizeAdPerformance)
	adCopies.Get("/:adCopyId/performance/export", r.handlers.Performance.ExportAdPerformance)

	r.app.Use(r.notFoundHandler)

	r.logger.Info("routes configured")
}

// setupMiddleware configures global middleware
func (r *FiberRouter) setupMiddleware() {
	// Request ID middleware - must be first
	r.app.Use(requestid.New(requestid.Config{
		Header:    "X-Request-ID",
		Generator: generateRequestID,
	}))
	r.app.Use(func(c fiber.Ctx) error {
		c.Locals(middleware.LocalRequestID, requestid.FromContext(c))
		return c.Next()
	})

	r.app.Use(helmet.New(helmet.Config{
		XSSProtection:             "1; mode=block",
		ContentTypeNosniff:        "nosniff",
		XFrameOptions:             r.cfg.Security.XFrameOptions,
		HSTSMaxAge:                r.cfg.Security.HSTSMaxAge,
		ContentSecurityPolicy:     r.cfg.Security.CSPPolicy,
		ReferrerPolicy:            r.cfg.Security.ReferrerPolicy,
		CrossOriginEmbedderPolicy: "require-corp",
		CrossOriginOpenerPolicy:   "same-origin",
		CrossOriginResourcePolicy: "cross-origin",
		OriginAgentCluster:        "?1",
		XDNSPrefetchControl:       "off",
		XDownloadOptions:          "noopen",
		XPermittedCrossDomain:     "none",
	}))

	r.app.Use(cors.New(cors.Config{
		AllowOrigins:     r.cfg.Security.AllowedOrigins,
		AllowMethods:     r.cfg.Security.AllowedMethods,
		AllowHeaders:     r.cfg.Security.AllowedHeaders,
		ExposeHeaders:    []string{"X-Request-ID", "Content-Disposition"},
		AllowCredentials: r.cfg.Security.AllowCredentials,
		MaxAge:           r.cfg.Security.CORSMaxAge,
	}))

	if r.cfg.Server.EnableCompression {
		r.app.Use(compress.New(compress.Config{
			Level: compress.LevelBestSpeed,
			Next: func(c fiber.Ctx) bool {
				// xlsx exports are already zip archives
				return strings.HasSuffix(c.Path(), "/performance/export")
			},
		}))
	}

	if r.cfg.Logging.EnableAccessLog {
		r.app.Use(logger.New(logger.Config{
			Format:     `{"time":"${time}","request_id":"${respHeader:X-Request-ID}","level":"info","method":"${method}","path":"${path}","ip":"${ip}","user_agent":"${ua}","status":${status},"latency":"${latency}","bytes_in":${bytesReceived},"bytes_out":${bytesSent}}` + "\n",
			TimeFormat: time.RFC3339,
			TimeZone:   "UTC",
			Stream:     r.accessLog,
			Next: func(c fiber.Ctx) bool {
				return c.Path() == "/api/v1/health"
			},
		}))
	}

	if r.cfg.Metrics.Enabled {
		r.app.Use(middleware.Metrics())
	}

	r.app.Use(recover.New(recover.Config{
		EnableStackTrace: true,
		StackTraceHandler: func(c fiber.Ctx, e any) {
			r.logger.Error("panic recovered",
				zap.Any("panic", e),
				zap.String("request_id", requestid.FromContext(c)),
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
			)
		},
	}))
}

// Start starts the HTTP server
func (r *FiberRouter) Start(address string) error {
	r.logger.Info("starting server", zap.String("address", address))
	return r.app.Listen(address)
}

// GetApp returns the Fiber app instance
func (r *FiberRouter) GetApp() *fiber.App {
	return r.app
}

// health reports liveness plus the reachability of the database
func (r *FiberRouter) health(c fiber.Ctx) error {
	status := "ok"
	code := fiber.StatusOK
	if r.healthCheck != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := r.healthCheck(ctx); err != nil {
			r.logger.Warn("health check failed", zap.Error(err))
			status = "degraded"
			code = fiber.StatusServiceUnavailable
		}
	}

	return c.Status(code).JSON(dto.APIResponse{
		Success: code == fiber.StatusOK,
		Message: "Service health",
		Data: fiber.Map{
			"status":    status,
			"timestamp": utils.UTCNow().Unix(),
			"service":   "copydesk-api",
		},
	})
}

// serveSwaggerJSON renders the registered API document
func (r *FiberRouter) serveSwaggerJSON(c fiber.Ctx) error {
	doc, err := swag.ReadDoc()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.APIResponse{
			Success: false,
			Message: "Failed to load Swagger documentation",
			Error: dto.ErrorDetail{
				Code: "SWAGGER_LOAD_ERROR",
			},
		})
	}

	c.Set("Content-Type", "application/json")
	return c.SendString(doc)
}

func (r *FiberRouter) notFoundHandler(c fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(dto.APIResponse{
		Success: false,
		Message: "The requested resource was not found",
		Error: dto.ErrorDetail{
			Code: "NOT_FOUND",
			Details: fiber.Map{
				"path":       c.Path(),
				"method":     c.Method(),
				"request_id": requestid.FromContext(c),
			},
		},
	})
}

func rateLimitReached(c fiber.Ctx) error {
	return c.Status(fiber.StatusTooManyRequests).JSON(dto.APIResponse{
		Success: false,
		Message: "Too many requests. Please try again later.",
		Error: dto.ErrorDetail{
			Code: "RATE_LIMIT_EXCEEDED",
		},
	})
}

// newErrorHandler renders errors that escape handlers as the result envelope
func newErrorHandler(log *zap.Logger) fiber.ErrorHandler {
	return func(c fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		errorCode := "INTERNAL_ERROR"
		message := "An internal server error occurred"

		var fe *fiber.Error
		if errors.As(err, &fe) {
			code = fe.Code
			message = fe.Message
			switch code {
			case fiber.StatusNotFound:
				errorCode = "NOT_FOUND"
			case fiber.StatusMethodNotAllowed:
				errorCode = "METHOD_NOT_ALLOWED"
			case fiber.StatusRequestEntityTooLarge:
				errorCode = "REQUEST_TOO_LARGE"
			case fiber.StatusBadRequest:
				errorCode = "INVALID_REQUEST"
			}
		}

		if code >= fiber.StatusInternalServerError {
			log.Error("request failed",
				zap.Int("status", code),
				zap.String("request_id", requestid.FromContext(c)),
				zap.Error(err),
			)
		}

		return c.Status(code).JSON(dto.APIResponse{
			Success: false,
			Message: message,
			Error: dto.ErrorDetail{
				Code: errorCode,
				Details: fiber.Map{
					"timestamp":  utils.UTCNow().Unix(),
					"request_id": requestid.FromContext(c),
				},
			},
		})
	}
}

// generateRequestID creates a unique request ID
func generateRequestID() string {
	bytes := make([]byte, 8)
	_, _ = rand.Read(bytes)
	return hex.EncodeToString(bytes)
}
