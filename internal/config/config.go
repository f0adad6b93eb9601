package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	defaultAppName        = "MyHost"
	defaultAppEnv         = "development"
	defaultPort           = "3000"
	defaultLogLevel       = "info"
	defaultShutdownDelay  = 10 * time.Second
	defaultTokenTTL       = 24 * time.Hour
	defaultBcryptCost     = 10
	defaultRequestTimeout = 10 * time.Second
	defaultIdempotencyTTL = 24 * time.Hour
	defaultStatsCacheTTL  = time.Minute
	defaultMigrationsDir  = "migrations"
	defaultLoginRateLimit = 5

	// DefaultJWTSecret is the fallback signing secret used when JWT_SECRET is
	// unset. It is deliberately recognizable; main logs a warning whenever it
	// is in effect and production deployments must override it.
	DefaultJWTSecret = "myhost_secret_key_2024"
)

// Config captures application runtime configuration loaded from environment variables.
type Config struct {
	AppName          string
	AppEnv           string
	Port             string
	LogLevel         string
	DatabaseURL      string
	RedisURL         string
	MigrationsDir    string
	JWTSecret        string
	TokenTTL         time.Duration
	BcryptCost       int
	SMTPHost         string
	SMTPPort         string
	SMTPUser         string
	SMTPPass         string
	ContactRecipient string
	ShutdownPeriod   time.Duration
	RequestTimeout   time.Duration
	IdempotencyTTL   time.Duration
	StatsCacheTTL    time.Duration
	LoginRateLimit   int
}

// Load reads configuration values from the environment and populates a Config instance.
func Load() (Config, error) {
	cfg := Config{
		AppName:          getEnv("APP_NAME", defaultAppName),
		AppEnv:           getEnv("APP_ENV", defaultAppEnv),
		Port:             getEnv("PORT", defaultPort),
		LogLevel:         strings.ToLower(getEnv("LOG_LEVEL", defaultLogLevel)),
		DatabaseURL:      os.Getenv("DATABASE_URL"),
		RedisURL:         os.Getenv("REDIS_URL"),
		MigrationsDir:    getEnv("MIGRATIONS_DIR", defaultMigrationsDir),
		JWTSecret:        getEnv("JWT_SECRET", DefaultJWTSecret),
		TokenTTL:         defaultTokenTTL,
		BcryptCost:       defaultBcryptCost,
		SMTPHost:         os.Getenv("SMTP_HOST"),
		SMTPPort:         getEnv("SMTP_PORT", "587"),
		SMTPUser:         os.Getenv("SMTP_USER"),
		SMTPPass:         os.Getenv("SMTP_PASS"),
		ContactRecipient: os.Getenv("CONTACT_RECIPIENT"),
		ShutdownPeriod:   defaultShutdownDelay,
		RequestTimeout:   defaultRequestTimeout,
		IdempotencyTTL:   defaultIdempotencyTTL,
		StatsCacheTTL:    defaultStatsCacheTTL,
		LoginRateLimit:   defaultLoginRateLimit,
	}

	var err error
	if cfg.TokenTTL, err = durationEnv("TOKEN_TTL", cfg.TokenTTL); err != nil {
		return Config{}, err
	}
	if cfg.ShutdownPeriod, err = durationEnv("SHUTDOWN_TIMEOUT", cfg.ShutdownPeriod); err != nil {
		return Config{}, err
	}
	if cfg.RequestTimeout, err = durationEnv("REQUEST_TIMEOUT", cfg.RequestTimeout); err != nil {
		return Config{}, err
	}
	if cfg.IdempotencyTTL, err = durationEnv("IDEMPOTENCY_TTL", cfg.IdempotencyTTL); err != nil {
		return Config{}, err
	}
	if cfg.StatsCacheTTL, err = durationEnv("STATS_CACHE_TTL", cfg.StatsCacheTTL); err != nil {
		return Config{}, err
	}
	if cfg.BcryptCost, err = intEnv("BCRYPT_COST", cfg.BcryptCost); err != nil {
		return Config{}, err
	}
	if cfg.LoginRateLimit, err = intEnv("LOGIN_RATE_LIMIT", cfg.LoginRateLimit); err != nil {
		return Config{}, err
	}

	// Outside of dev the backing stores are mandatory; dev mode runs against
	// in-memory repositories so the service can start with nothing configured.
	if !cfg.IsDev() {
		if cfg.DatabaseURL == "" {
			return Config{}, fmt.Errorf("DATABASE_URL must be set when APP_ENV=%s", cfg.AppEnv)
		}
		if cfg.RedisURL == "" {
			return Config{}, fmt.Errorf("REDIS_URL must be set when APP_ENV=%s", cfg.AppEnv)
		}
	}

	return cfg, nil
}

// IsDev reports whether the service runs in a development environment.
func (c Config) IsDev() bool {
	switch strings.ToLower(c.AppEnv) {
	case "dev", "development", "local":
		return true
	default:
		return false
	}
}

// UsesDefaultSecret reports whether the insecure fallback signing secret is in effect.
func (c Config) UsesDefaultSecret() bool {
	return c.JWTSecret == DefaultJWTSecret
}

// Address returns the listen address in the format Fiber expects.
func (c Config) Address() string {
	if strings.HasPrefix(c.Port, ":") {
		return c.Port
	}
	return fmt.Sprintf(":%s", c.Port)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func durationEnv(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	if seconds, err := strconv.Atoi(v); err == nil {
		return time.Duration(seconds) * time.Second, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}

func intEnv(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}
