// Package config loads the application configuration from environment
// variables once at startup. Services receive the resulting struct through
// their constructors and never read the process environment themselves.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Config holds every runtime setting of the portal.
type Config struct {
	// Port is the HTTP port the server listens on.
	Port string

	// Database connection settings.
	DBHost string
	DBPort string
	DBUser string
	DBPass string
	DBName string

	// RunMigrations enables gorm auto-migration at startup.
	RunMigrations bool

	// JWTSecret signs session tokens. Required.
	JWTSecret string

	// TokenTTL is the session token lifetime.
	TokenTTL time.Duration

	// BcryptCost is the password hashing work factor.
	BcryptCost int

	// HashWorkers bounds the number of concurrent bcrypt operations.
	HashWorkers int

	// Redis settings. Empty host means "run without cache".
	RedisHost     string
	RedisPort     string
	RedisPassword string

	// SMTP settings for the outbound notifier.
	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	FromEmail    string
	FromName     string

	// BaseURL is the public origin used in verification links.
	BaseURL string

	// MailPerMinute caps outbound email throughput.
	MailPerMinute int
}

// Load reads the configuration from the environment. It returns an error for
// any missing required variable so the caller can fail fast at startup.
func Load() (*Config, error) {
	cfg := &Config{
		Port:          getenv("PORT", "8080"),
		DBHost:        getenv("DB_HOST", "localhost"),
		DBPort:        getenv("DB_PORT", "5432"),
		DBUser:        os.Getenv("DB_USER"),
		DBPass:        os.Getenv("DB_PASSWORD"),
		DBName:        os.Getenv("DB_NAME"),
		RunMigrations: os.Getenv("RUN_MIGRATIONS") == "true",
		JWTSecret:     os.Getenv("JWT_SECRET"),
		RedisHost:     os.Getenv("REDIS_HOST"),
		RedisPort:     getenv("REDIS_PORT", "6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		SMTPHost:      os.Getenv("SMTP_SERVER"),
		SMTPUsername:  os.Getenv("SMTP_USERNAME"),
		SMTPPassword:  os.Getenv("SMTP_PASSWORD"),
		FromEmail:     os.Getenv("FROM_EMAIL"),
		FromName:      getenv("FROM_NAME", "Portal"),
		BaseURL:       os.Getenv("BASE_URL"),
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	var err error
	if cfg.TokenTTL, err = getenvDuration("TOKEN_TTL", 24*time.Hour); err != nil {
		return nil, err
	}
	if cfg.BcryptCost, err = getenvInt("BCRYPT_COST", bcrypt.DefaultCost); err != nil {
		return nil, err
	}
	if cfg.HashWorkers, err = getenvInt("HASH_WORKERS", 8); err != nil {
		return nil, err
	}
	if cfg.SMTPPort, err = getenvInt("SMTP_PORT", 587); err != nil {
		return nil, err
	}
	if cfg.MailPerMinute, err = getenvInt("MAIL_PER_MINUTE", 60); err != nil {
		return nil, err
	}

	return cfg, nil
}

// DSN builds the Postgres connection string.
func (c *Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.DBHost, c.DBPort, c.DBUser, c.DBPass, c.DBName)
}

// RedisAddr returns the redis address, or "" when Redis is not configured.
func (c *Config) RedisAddr() string {
	if c.RedisHost == "" {
		return ""
	}
	return c.RedisHost + ":" + c.RedisPort
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid int for %s: %q", key, v)
	}
	return n, nil
}

func getenvDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid duration for %s: %q", key, v)
	}
	return d, nil
}
