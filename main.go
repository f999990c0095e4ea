// Package main provides the main entry point for the Copydesk ad copy management API
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/amirphl/copydesk/app/handlers"
	applogger "github.com/amirphl/copydesk/app/logger"
	"github.com/amirphl/copydesk/app/middleware"
	"github.com/amirphl/copydesk/app/router"
	"github.com/amirphl/copydesk/app/services"
	businessflow "github.com/amirphl/copydesk/business_flow"
	"github.com/amirphl/copydesk/config"
	_ "github.com/amirphl/copydesk/docs"
	"github.com/amirphl/copydesk/repository"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// @title Copydesk API
// @version 1.0
// @description Campaigns, ad copies and ad performance tracking
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the access token.

// Application represents the main application structure
type Application struct {
	router    *router.FiberRouter
	config    *config.ProductionConfig
	logger    *applogger.Logger
	stopFuncs []func()
}

func main() {
	cfg, err := config.LoadProductionConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appLogger, err := applogger.New(cfg.Logging)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() { _ = appLogger.Close() }()

	logger := appLogger.Logger
	logger.Info("starting copydesk", zap.String("environment", cfg.Server.Environment))

	app, err := initializeApplication(cfg, appLogger)
	if err != nil {
		logger.Fatal("failed to initialize application", zap.Error(err))
	}

	app.router.SetupRoutes()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
		if err := app.router.Start(address); err != nil {
			logger.Fatal("failed to start server", zap.Error(err))
		}
	}()

	<-sigChan
	logger.Info("shutting down gracefully")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()

	if err := app.router.GetApp().ShutdownWithContext(shutdownCtx); err != nil {
		logger.Error("error during shutdown", zap.Error(err))
	}

	// Stop background workers and release connections once requests drained
	for _, fn := range app.stopFuncs {
		fn()
	}

	logger.Info("server stopped")
}

// initializeDatabase initializes the database connection with connection pooling
func initializeDatabase(cfg config.DatabaseConfig, logger *zap.Logger) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		Logger: gormlogger.New(zap.NewStdLog(logger.Named("gorm")), gormlogger.Config{
			SlowThreshold:             cfg.SlowQueryTime,
			LogLevel:                  gormlogger.Warn,
			IgnoreRecordNotFoundError: true,
		}),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	sqlDB.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logger.Info("database connection established",
		zap.Int("max_open_conns", cfg.MaxOpenConns),
		zap.Int("max_idle_conns", cfg.MaxIdleConns),
	)

	return db, nil
}

// initializeCache initializes the Redis client and verifies connectivity.
// It returns nil when the cache is disabled or not backed by Redis.
func initializeCache(cfg config.CacheConfig, logger *zap.Logger) (*redis.Client, error) {
	if !cfg.Enabled || cfg.Provider != "redis" {
		return nil, nil
	}

	opt, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}
	opt.DB = cfg.RedisDB

	rc := redis.NewClient(opt)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rc.Ping(ctx).Err(); err != nil {
		_ = rc.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	logger.Info("redis connection established", zap.Int("db", cfg.RedisDB))
	return rc, nil
}

// startCacheHealthMonitor periodically pings Redis until the returned function is called
func startCacheHealthMonitor(parent context.Context, client *redis.Client, interval time.Duration, logger *zap.Logger) func() {
	monitorCtx, cancel := context.WithCancel(parent)
	if interval <= 0 {
		interval = 30 * time.Second
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-monitorCtx.Done():
				return
			case <-ticker.C:
				ctx, c := context.WithTimeout(monitorCtx, 3*time.Second)
				if err := client.Ping(ctx).Err(); err != nil {
					logger.Warn("redis healthcheck failed", zap.Error(err))
				}
				c()
			}
		}
	}()
	return cancel
}

func initializeApplication(cfg *config.ProductionConfig, appLogger *applogger.Logger) (*Application, error) {
	logger := appLogger.Logger
	var stopFuncs []func()

	if cfg.Database.RunMigrations {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		applied, err := repository.RunMigrations(ctx, cfg.Database.DSN())
		cancel()
		if err != nil {
			return nil, err
		}
		logger.Info("migrations applied", zap.Strings("files", applied))
	}

	db, err := initializeDatabase(cfg.Database, logger)
	if err != nil {
		return nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	stopFuncs = append(stopFuncs, func() { _ = sqlDB.Close() })

	rc, err := initializeCache(cfg.Cache, logger)
	if err != nil {
		return nil, err
	}

	var revocations services.RevocationStore
	if rc != nil {
		stopFuncs = append(stopFuncs, startCacheHealthMonitor(context.Background(), rc, cfg.Cache.HealthCheckInterval, logger))
		stopFuncs = append(stopFuncs, func() { _ = rc.Close() })
		revocations = services.NewRedisRevocationStore(rc)
	} else {
		logger.Warn("redis disabled, token revocations are kept in memory")
		revocations = services.NewMemoryRevocationStore()
	}

	tokenService, err := services.NewTokenService(
		cfg.JWT.AccessTokenTTL,
		cfg.JWT.RefreshTokenTTL,
		cfg.JWT.Issuer,
		cfg.JWT.Audience,
		cfg.JWT.UseRSAKeys,
		cfg.JWT.PrivateKey,
		cfg.JWT.PublicKey,
		cfg.JWT.SecretKey,
		revocations,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize token service: %w", err)
	}

	// Initialize repositories
	campaignRepo := repository.NewCampaignRepository(db)
	adCopyRepo := repository.NewAdCopyRepository(db)
	performanceRepo := repository.NewPerformanceRecordRepository(db)

	// Initialize business flows
	campaignFlow := businessflow.NewCampaignFlow(campaignRepo, logger)
	adCopyFlow := businessflow.NewAdCopyFlow(campaignRepo, adCopyRepo, logger)
	performanceFlow := businessflow.NewPerformanceFlow(campaignRepo, adCopyRepo, performanceRepo, logger)

	// Initialize handlers
	timeout := cfg.Server.RequestTimeout
	h := router.Handlers{
		Auth:        handlers.NewAuthHandler(tokenService, timeout, logger),
		Campaign:    handlers.NewCampaignHandler(campaignFlow, timeout, logger),
		AdCopy:      handlers.NewAdCopyHandler(adCopyFlow, timeout, logger),
		Performance: handlers.NewPerformanceHandler(performanceFlow, timeout, logger),
	}

	authMiddleware := middleware.NewAuthMiddleware(tokenService, logger)

	healthCheck := func(ctx context.Context) error {
		return sqlDB.PingContext(ctx)
	}

	fiberRouter := router.NewFiberRouter(cfg, h, authMiddleware, healthCheck, logger, appLogger.Writer)

	return &Application{
		router:    fiberRouter,
		config:    cfg,
		logger:    appLogger,
		stopFuncs: stopFuncs,
	}, nil
}
