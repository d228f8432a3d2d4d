package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	envProduction = "production"
	devJWTSecret  = "dev-secret"
)

// ErrMissingSecret is returned when production runs without AUTH_JWT_SECRET.
var ErrMissingSecret = errors.New("AUTH_JWT_SECRET is required in production")

// Config aggregates runtime configuration for both servers. It is built once
// at startup and never mutated afterwards.
type Config struct {
	App      AppConfig
	Edge     EdgeConfig
	Postgres PostgresConfig
	Redis    RedisConfig
	Logger   LoggerConfig
	Auth     AuthConfig
	CORS     CORSConfig
}

// AppConfig controls API server level behavior.
type AppConfig struct {
	Name                  string
	Env                   string
	Host                  string
	Port                  string
	Version               string
	RequestTimeoutSeconds int
}

// EdgeConfig controls the page-serving edge server.
type EdgeConfig struct {
	Host        string
	Port        string
	UpstreamURL string
	StaticDir   string
	CookieName  string
}

// PostgresConfig holds DB connection values.
type PostgresConfig struct {
	DSN            string
	MaxConns       int32
	MinConns       int32
	ConnMaxIdleSec int32
	ConnMaxLifeSec int32
}

// RedisConfig holds Redis connection values.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// LoggerConfig configures logging behavior.
type LoggerConfig struct {
	Level string
}

// AuthConfig defines authentication parameters.
type AuthConfig struct {
	JWTSecret             string
	AccessTokenTTLMinutes int
}

// CORSConfig lists origins allowed to call the API from a browser.
type CORSConfig struct {
	AllowedOrigins []string
}

// Load reads configuration from environment variables, applying defaults where possible.
func Load() (*Config, error) {
	_ = godotenv.Load()

	redisDB, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
	}

	cfg := &Config{
		App: AppConfig{
			Name:                  getEnv("APP_NAME", "admin-gate"),
			Env:                   getEnv("APP_ENV", "development"),
			Host:                  getEnv("APP_HOST", "0.0.0.0"),
			Port:                  getEnv("APP_PORT", "8080"),
			Version:               getEnv("APP_VERSION", "dev"),
			RequestTimeoutSeconds: getEnvAsInt("HTTP_REQUEST_TIMEOUT_SECONDS", 30),
		},
		Edge: EdgeConfig{
			Host:        getEnv("EDGE_HOST", "0.0.0.0"),
			Port:        getEnv("EDGE_PORT", "3000"),
			UpstreamURL: os.Getenv("EDGE_UPSTREAM_URL"),
			StaticDir:   getEnv("EDGE_STATIC_DIR", "./public"),
			CookieName:  getEnv("EDGE_COOKIE_NAME", "token"),
		},
		Postgres: PostgresConfig{
			DSN:            os.Getenv("POSTGRES_DSN"),
			MaxConns:       int32(getEnvAsInt("POSTGRES_MAX_CONNS", 10)),
			MinConns:       int32(getEnvAsInt("POSTGRES_MIN_CONNS", 2)),
			ConnMaxIdleSec: int32(getEnvAsInt("POSTGRES_CONN_MAX_IDLE_SECONDS", 30)),
			ConnMaxLifeSec: int32(getEnvAsInt("POSTGRES_CONN_MAX_LIFE_SECONDS", 300)),
		},
		Redis: RedisConfig{
			Addr:     os.Getenv("REDIS_ADDR"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       redisDB,
		},
		Logger: LoggerConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		Auth: AuthConfig{
			JWTSecret:             os.Getenv("AUTH_JWT_SECRET"),
			AccessTokenTTLMinutes: getEnvAsInt("AUTH_ACCESS_TOKEN_TTL_MINUTES", 60*24*30),
		},
		CORS: CORSConfig{
			AllowedOrigins: getEnvAsList("CORS_ALLOWED_ORIGINS", []string{"http://localhost:3000"}),
		},
	}

	// Production never falls back to the dev secret. Processes that verify
	// or sign tokens call RequireSecret; the edge server never holds one.
	if cfg.Auth.JWTSecret == "" && !cfg.App.IsProduction() {
		cfg.Auth.JWTSecret = devJWTSecret
	}

	return cfg, nil
}

// RequireSecret fails when no signing secret is available.
func (c *Config) RequireSecret() error {
	if c.Auth.JWTSecret == "" {
		return ErrMissingSecret
	}
	return nil
}

// IsProduction reports whether production-like behavior (no stack traces in
// error responses) is in effect.
func (a AppConfig) IsProduction() bool {
	return strings.EqualFold(a.Env, envProduction)
}

// Addr returns the HTTP bind address.
func (a AppConfig) Addr() string {
	return fmt.Sprintf("%s:%s", a.Host, a.Port)
}

// RequestTimeout returns the configured request timeout duration.
func (a AppConfig) RequestTimeout() time.Duration {
	if a.RequestTimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(a.RequestTimeoutSeconds) * time.Second
}

// Addr returns the edge server bind address.
func (e EdgeConfig) Addr() string {
	return fmt.Sprintf("%s:%s", e.Host, e.Port)
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvAsList(key string, fallback []string) []string {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	var out []string
	for _, item := range strings.Split(val, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}
