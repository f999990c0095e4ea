// Package config provides configuration management and environment variable handling for the application
package config

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/amirphl/copydesk/utils"
	"github.com/joho/godotenv"
)

// ProductionConfig holds all configuration for production environment
type ProductionConfig struct {
	Database DatabaseConfig `json:"database"`
	Server   ServerConfig   `json:"server"`
	Security SecurityConfig `json:"security"`
	JWT      JWTConfig      `json:"jwt"`
	Logging  LoggingConfig  `json:"logging"`
	Metrics  MetricsConfig  `json:"metrics"`
	Cache    CacheConfig    `json:"cache"`
}

type DatabaseConfig struct {
	Host            string        `json:"host"`
	Port            int           `json:"port"`
	Name            string        `json:"name"`
	User            string        `json:"user"`
	Password        string        `json:"password"`
	SSLMode         string        `json:"ssl_mode"`
	MaxOpenConns    int           `json:"max_open_conns"`
	MaxIdleConns    int           `json:"max_idle_conns"`
	ConnMaxLifetime time.Duration `json:"conn_max_lifetime"`
	ConnMaxIdleTime time.Duration `json:"conn_max_idle_time"`
	SlowQueryTime   time.Duration `json:"slow_query_time"`
	RunMigrations   bool          `json:"run_migrations"`
}

// DSN returns the key/value connection string understood by lib/pq and pgx
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

type ServerConfig struct {
	Host              string        `json:"host"`
	Port              int           `json:"port"`
	Environment       string        `json:"environment"`
	ReadTimeout       time.Duration `json:"read_timeout"`
	WriteTimeout      time.Duration `json:"write_timeout"`
	IdleTimeout       time.Duration `json:"idle_timeout"`
	ShutdownTimeout   time.Duration `json:"shutdown_timeout"`
	RequestTimeout    time.Duration `json:"request_timeout"`
	BodyLimit         int           `json:"body_limit"`
	EnableCompression bool          `json:"enable_compression"`
}

// IsProduction reports whether the service runs in production. API docs are
// only served outside production.
func (c ServerConfig) IsProduction() bool {
	return c.Environment == "production"
}

type SecurityConfig struct {
	HSTSMaxAge int `json:"hsts_max_age"`

	// CORS
	AllowedOrigins   []string `json:"allowed_origins"`
	AllowedMethods   []string `json:"allowed_methods"`
	AllowedHeaders   []string `json:"allowed_headers"`
	AllowCredentials bool     `json:"allow_credentials"`
	CORSMaxAge       int      `json:"cors_max_age"`

	// Rate Limiting
	AuthRateLimit   int           `json:"auth_rate_limit"`   // requests per window
	GlobalRateLimit int           `json:"global_rate_limit"` // requests per window
	RateLimitWindow time.Duration `json:"rate_limit_window"`

	// Content Security
	CSPPolicy      string `json:"csp_policy"`
	XFrameOptions  string `json:"x_frame_options"`
	ReferrerPolicy string `json:"referrer_policy"`
}

type JWTConfig struct {
	SecretKey       string        `json:"secret_key"`
	PrivateKey      string        `json:"private_key"`  // RSA private key in PEM format
	PublicKey       string        `json:"public_key"`   // RSA public key in PEM format
	UseRSAKeys      bool          `json:"use_rsa_keys"` // Whether to use RSA keys instead of secret key
	AccessTokenTTL  time.Duration `json:"access_token_ttl"`
	RefreshTokenTTL time.Duration `json:"refresh_token_ttl"`
	Issuer          string        `json:"issuer"`
	Audience        string        `json:"audience"`
}

type LoggingConfig struct {
	Level            string `json:"level"`  // debug, info, warn, error
	Format           string `json:"format"` // json, console
	Output           string `json:"output"` // stdout, file, both
	FilePath         string `json:"file_path"`
	MaxSize          int    `json:"max_size"` // MB
	MaxBackups       int    `json:"max_backups"`
	MaxAge           int    `json:"max_age"` // days
	Compress         bool   `json:"compress"`
	EnableCaller     bool   `json:"enable_caller"`
	EnableStacktrace bool   `json:"enable_stacktrace"`
	EnableAccessLog  bool   `json:"enable_access_log"`
}

type MetricsConfig struct {
	Enabled bool   `json:"enabled"`
	Path    string `json:"path"`
}

type CacheConfig struct {
	Enabled             bool          `json:"enabled"`
	Provider            string        `json:"provider"` // redis, memory
	RedisURL            string        `json:"redis_url"`
	RedisDB             int           `json:"redis_db"`
	HealthCheckInterval time.Duration `json:"health_check_interval"`
}

// LoadProductionConfig loads and validates configuration from environment variables
func LoadProductionConfig() (*ProductionConfig, error) {
	if err := loadEnvFile(".env"); err != nil {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	cfg := &ProductionConfig{
		Database: DatabaseConfig{
			Host:            getEnvString("DB_HOST", "localhost"),
			Port:            getEnvInt("DB_PORT", 5432),
			Name:            getEnvString("DB_NAME", "copydesk"),
			User:            getEnvString("DB_USER", "postgres"),
			Password:        getEnvString("DB_PASSWORD", ""),
			SSLMode:         getEnvString("DB_SSL_MODE", "require"),
			MaxOpenConns:    getEnvInt("DB_MAX_OPEN_CONNS", 50),
			MaxIdleConns:    getEnvInt("DB_MAX_IDLE_CONNS", 10),
			ConnMaxLifetime: getEnvDuration("DB_CONN_MAX_LIFETIME", 30*time.Minute),
			ConnMaxIdleTime: getEnvDuration("DB_CONN_MAX_IDLE_TIME", 15*time.Minute),
			SlowQueryTime:   getEnvDuration("DB_SLOW_QUERY_TIME", 1*time.Second),
			RunMigrations:   getEnvBool("DB_RUN_MIGRATIONS", true),
		},
		Server: ServerConfig{
			Host:              getEnvString("SERVER_HOST", "0.0.0.0"),
			Port:              getEnvInt("SERVER_PORT", 8080),
			Environment:       getEnvString("APP_ENV", "production"),
			ReadTimeout:       getEnvDuration("SERVER_READ_TIMEOUT", 30*time.Second),
			WriteTimeout:      getEnvDuration("SERVER_WRITE_TIMEOUT", 30*time.Second),
			IdleTimeout:       getEnvDuration("SERVER_IDLE_TIMEOUT", 120*time.Second),
			ShutdownTimeout:   getEnvDuration("SERVER_SHUTDOWN_TIMEOUT", 30*time.Second),
			RequestTimeout:    getEnvDuration("SERVER_REQUEST_TIMEOUT", utils.RequestTimeout),
			BodyLimit:         getEnvInt("SERVER_BODY_LIMIT", 4*1024*1024), // 4MB
			EnableCompression: getEnvBool("SERVER_ENABLE_COMPRESSION", true),
		},
		Security: SecurityConfig{
			HSTSMaxAge:       getEnvInt("HSTS_MAX_AGE", 31536000), // 1 year
			AllowedOrigins:   getEnvStringSlice("CORS_ALLOWED_ORIGINS", []string{"http://localhost:3000"}),
			AllowedMethods:   getEnvStringSlice("CORS_ALLOWED_METHODS", []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"}),
			AllowedHeaders:   getEnvStringSlice("CORS_ALLOWED_HEADERS", []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With", "X-Request-ID"}),
			AllowCredentials: getEnvBool("CORS_ALLOW_CREDENTIALS", false),
			CORSMaxAge:       getEnvInt("CORS_MAX_AGE", utils.CORSMaxAge),
			AuthRateLimit:    getEnvInt("AUTH_RATE_LIMIT", 20),
			GlobalRateLimit:  getEnvInt("GLOBAL_RATE_LIMIT", 2000),
			RateLimitWindow:  getEnvDuration("RATE_LIMIT_WINDOW", 1*time.Minute),
			CSPPolicy:        getEnvString("CSP_POLICY", "default-src 'self'; frame-ancestors 'none';"),
			XFrameOptions:    getEnvString("X_FRAME_OPTIONS", "DENY"),
			ReferrerPolicy:   getEnvString("REFERRER_POLICY", "strict-origin-when-cross-origin"),
		},
		JWT: JWTConfig{
			SecretKey:       getEnvString("JWT_SECRET_KEY", ""),
			PrivateKey:      getEnvString("JWT_PRIVATE_KEY", ""),
			PublicKey:       getEnvString("JWT_PUBLIC_KEY", ""),
			UseRSAKeys:      getEnvBool("JWT_USE_RSA_KEYS", false),
			AccessTokenTTL:  getEnvDuration("JWT_ACCESS_TOKEN_TTL", utils.AccessTokenTTL),
			RefreshTokenTTL: getEnvDuration("JWT_REFRESH_TOKEN_TTL", utils.RefreshTokenTTL),
			Issuer:          getEnvString("JWT_ISSUER", "copydesk"),
			Audience:        getEnvString("JWT_AUDIENCE", "copydesk-api"),
		},
		Logging: LoggingConfig{
			Level:            getEnvString("LOG_LEVEL", "info"),
			Format:           getEnvString("LOG_FORMAT", "json"),
			Output:           getEnvString("LOG_OUTPUT", "stdout"),
			FilePath:         getEnvString("LOG_FILE_PATH", "/var/log/copydesk/app.log"),
			MaxSize:          getEnvInt("LOG_MAX_SIZE", 100),
			MaxBackups:       getEnvInt("LOG_MAX_BACKUPS", 10),
			MaxAge:           getEnvInt("LOG_MAX_AGE", 30),
			Compress:         getEnvBool("LOG_COMPRESS", true),
			EnableCaller:     getEnvBool("LOG_ENABLE_CALLER", true),
			EnableStacktrace: getEnvBool("LOG_ENABLE_STACKTRACE", false),
			EnableAccessLog:  getEnvBool("LOG_ENABLE_ACCESS", true),
		},
		Metrics: MetricsConfig{
			Enabled: getEnvBool("METRICS_ENABLED", true),
			Path:    getEnvString("METRICS_PATH", "/metrics"),
		},
		Cache: CacheConfig{
			Enabled:             getEnvBool("CACHE_ENABLED", true),
			Provider:            getEnvString("CACHE_PROVIDER", "redis"),
			RedisURL:            getEnvString("CACHE_REDIS_URL", "redis://localhost:6379"),
			RedisDB:             getEnvInt("CACHE_REDIS_DB", 0),
			HealthCheckInterval: getEnvDuration("CACHE_HEALTH_CHECK_INTERVAL", 30*time.Second),
		},
	}

	if err := ValidateProductionConfig(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// loadEnvFile loads path into the environment when it exists. Variables
// already present in the process environment win.
func loadEnvFile(path string) error {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return godotenv.Load(path)
}

// Helper functions for environment variable parsing
func getEnvString(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvStringSlice(key string, defaultValue []string) []string {
	if value := os.Getenv(key); value != "" {
		var result []string
		for _, item := range strings.Split(value, ",") {
			if trimmed := strings.TrimSpace(item); trimmed != "" {
				result = append(result, trimmed)
			}
		}
		if len(result) > 0 {
			return result
		}
	}
	return defaultValue
}

// ValidateProductionConfig validates the production configuration
func ValidateProductionConfig(cfg *ProductionConfig) error {
	var errs []string

	if cfg.Database.Host == "" {
		errs = append(errs, "DB_HOST is required")
	}
	if cfg.Database.Port <= 0 || cfg.Database.Port > 65535 {
		errs = append(errs, "DB_PORT must be between 1 and 65535")
	}
	if cfg.Database.Name == "" {
		errs = append(errs, "DB_NAME is required")
	}
	if cfg.Database.User == "" {
		errs = append(errs, "DB_USER is required")
	}

	if cfg.JWT.UseRSAKeys {
		if cfg.JWT.PrivateKey == "" || cfg.JWT.PublicKey == "" {
			errs = append(errs, "JWT_PRIVATE_KEY and JWT_PUBLIC_KEY are required when JWT_USE_RSA_KEYS is set")
		}
	} else if len(cfg.JWT.SecretKey) < 32 {
		errs = append(errs, "JWT_SECRET_KEY must be at least 32 characters long")
	}
	if cfg.JWT.AccessTokenTTL <= 0 {
		errs = append(errs, "JWT_ACCESS_TOKEN_TTL must be positive")
	}
	if cfg.JWT.RefreshTokenTTL <= 0 {
		errs = append(errs, "JWT_REFRESH_TOKEN_TTL must be positive")
	}

	if cfg.Server.Port <= 0 || cfg.Server.Port > 65535 {
		errs = append(errs, "SERVER_PORT must be between 1 and 65535")
	}
	if cfg.Server.ReadTimeout <= 0 {
		errs = append(errs, "SERVER_READ_TIMEOUT must be positive")
	}
	if cfg.Server.WriteTimeout <= 0 {
		errs = append(errs, "SERVER_WRITE_TIMEOUT must be positive")
	}
	if cfg.Server.RequestTimeout <= 0 {
		errs = append(errs, "SERVER_REQUEST_TIMEOUT must be positive")
	}

	if cfg.Security.GlobalRateLimit <= 0 || cfg.Security.AuthRateLimit <= 0 {
		errs = append(errs, "GLOBAL_RATE_LIMIT and AUTH_RATE_LIMIT must be positive")
	}

	validLevels := []string{"debug", "info", "warn", "error"}
	if cfg.Logging.Level != "" && !slices.Contains(validLevels, cfg.Logging.Level) {
		errs = append(errs, fmt.Sprintf("LOG_LEVEL must be one of: %v", validLevels))
	}
	validOutputs := []string{"stdout", "file", "both"}
	if !slices.Contains(validOutputs, cfg.Logging.Output) {
		errs = append(errs, fmt.Sprintf("LOG_OUTPUT must be one of: %v", validOutputs))
	}
	if cfg.Logging.Output != "stdout" && cfg.Logging.FilePath == "" {
		errs = append(errs, "LOG_FILE_PATH is required when logging to a file")
	}

	if cfg.Cache.Enabled && cfg.Cache.Provider == "redis" && cfg.Cache.RedisURL == "" {
		errs = append(errs, "CACHE_REDIS_URL is required when cache is enabled with redis provider")
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
	}

	return nil
}
