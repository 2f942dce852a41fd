package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"docyo/internal/logger"
)

type Config struct {
	Port        string
	GinMode     string
	JWTSecret   string
	CORSOrigins []string
	DB          DBConfig
	Redis       RedisConfig
	Catalog     CatalogConfig
	Logger      logger.Config
}

type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
	TimeZone string
}

// DSN renders the libpq-style connection string used by the postgres driver.
func (c DBConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s "+
			"application_name=docyo TimeZone=%s",
		c.Host, c.User, c.Password, c.DBName, c.Port, c.SSLMode, c.TimeZone,
	)
}

type RedisConfig struct {
	URL        string
	CatalogTTL time.Duration
}

type CatalogConfig struct {
	// RefreshInterval of zero disables the periodic reload.
	RefreshInterval time.Duration
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func parseLogLevel(level string) logger.LogLevel {
	switch strings.ToLower(level) {
	case "debug":
		return logger.LevelDebug
	case "warn", "warning":
		return logger.LevelWarn
	case "error":
		return logger.LevelError
	default:
		return logger.LevelInfo
	}
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// Load reads configuration from the environment. The JWT secret is the only required value.
func Load() (*Config, error) {
	ttl, err := time.ParseDuration(getEnvOrDefault("CATALOG_CACHE_TTL", "1h"))
	if err != nil {
		return nil, fmt.Errorf("invalid CATALOG_CACHE_TTL: %w", err)
	}
	refresh, err := time.ParseDuration(getEnvOrDefault("CATALOG_REFRESH_INTERVAL", "30m"))
	if err != nil {
		return nil, fmt.Errorf("invalid CATALOG_REFRESH_INTERVAL: %w", err)
	}
	if _, err := strconv.Atoi(getEnvOrDefault("PORT", "8080")); err != nil {
		return nil, fmt.Errorf("invalid PORT: %w", err)
	}

	cfg := &Config{
		Port:        getEnvOrDefault("PORT", "8080"),
		GinMode:     getEnvOrDefault("GIN_MODE", "release"),
		JWTSecret:   os.Getenv("JWT_SECRET_KEY"),
		CORSOrigins: splitList(getEnvOrDefault("CORS_ORIGINS", "http://localhost:3000")),
		DB: DBConfig{
			Host:     getEnvOrDefault("DB_HOST", "localhost"),
			Port:     getEnvOrDefault("DB_PORT", "5432"),
			User:     getEnvOrDefault("DB_USER", "postgres"),
			Password: getEnvOrDefault("DB_PASSWORD", "postgres"),
			DBName:   getEnvOrDefault("DB_NAME", "docyo"),
			SSLMode:  getEnvOrDefault("DB_SSLMODE", "disable"),
			TimeZone: getEnvOrDefault("DB_TIMEZONE", "UTC"),
		},
		Redis: RedisConfig{
			URL:        os.Getenv("REDIS_URL"),
			CatalogTTL: ttl,
		},
		Catalog: CatalogConfig{
			RefreshInterval: refresh,
		},
		Logger: logger.Config{
			Level:      parseLogLevel(getEnvOrDefault("LOG_LEVEL", "info")),
			OutputPath: getEnvOrDefault("LOG_OUTPUT", "stdout"),
			Format:     getEnvOrDefault("LOG_FORMAT", "json"),
		},
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET_KEY must be set")
	}

	return cfg, nil
}
