package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

type Config struct {
	// Database
	PostgresAddress  string
	PostgresPort     string
	PostgresDB       string
	PostgresUsername string
	PostgresPassword string
	AutoMigrate      bool

	// HTTP Server
	HTTPPort string
	LogLevel string

	// Auth
	JWTSecret string
	JWTExpiry time.Duration

	// Narrative advisor
	GoogleAPIKey   string
	GeminiModel    string
	AdvisorTimeout time.Duration

	LedgerTimeout   time.Duration
	OperatorWorkers int
}

// ProcessEnvironmentVariables reads the configuration from the environment,
// after loading a .env file from the working directory when one exists.
func ProcessEnvironmentVariables() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("loading .env: %w", err)
	}

	// In all cases the default behavior should be for the docker compose setup
	env := Config{
		PostgresAddress:  getEnv("POSTGRES_ADDRESS", "localhost"),
		PostgresPort:     getEnv("POSTGRES_PORT", "5433"),
		PostgresDB:       getEnv("POSTGRES_DB", "postgres"),
		PostgresUsername: getEnv("POSTGRES_USERNAME", "postgres"),
		PostgresPassword: getEnv("POSTGRES_PASSWORD", "testpassword"),
		AutoMigrate:      getEnvBool("AUTO_MIGRATE", true),

		HTTPPort: getEnv("HTTP_PORT", "9446"),
		LogLevel: getEnv("LOG_LEVEL", "info"),

		JWTSecret: getEnv("JWT_SECRET", "local-development-secret"),
		JWTExpiry: getEnvDuration("JWT_EXPIRY", 24*time.Hour),

		GoogleAPIKey:   getEnv("GOOGLE_API_KEY", ""),
		GeminiModel:    getEnv("GEMINI_MODEL", "gemini-2.0-flash"),
		AdvisorTimeout: getEnvDuration("ADVISOR_TIMEOUT", 20*time.Second),

		LedgerTimeout:   getEnvDuration("LEDGER_TIMEOUT", 5*time.Second),
		OperatorWorkers: getEnvInt("OPERATOR_WORKERS", 4),
	}

	return &env, nil
}

// Validate checks every field and reports all problems in one error.
func (c *Config) Validate() error {
	var problems []string

	if port, err := strconv.Atoi(c.HTTPPort); err != nil {
		problems = append(problems, fmt.Sprintf("invalid http port '%s': must be a number", c.HTTPPort))
	} else if port < 1 || port > 65535 {
		problems = append(problems, fmt.Sprintf("invalid http port %d: must be between 1 and 65535", port))
	}

	if _, err := strconv.Atoi(c.PostgresPort); err != nil {
		problems = append(problems, fmt.Sprintf("invalid postgres port '%s': must be a number", c.PostgresPort))
	}
	if c.PostgresAddress == "" {
		problems = append(problems, "postgres address cannot be empty")
	}
	if c.PostgresDB == "" {
		problems = append(problems, "postgres database cannot be empty")
	}

	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		problems = append(problems, fmt.Sprintf("invalid log level '%s'", c.LogLevel))
	}

	if len(c.JWTSecret) < 16 {
		problems = append(problems, "jwt secret must be at least 16 characters")
	}
	if c.JWTExpiry < time.Minute {
		problems = append(problems, fmt.Sprintf("invalid jwt expiry %v: must be at least 1 minute", c.JWTExpiry))
	}

	if c.GoogleAPIKey != "" && c.GeminiModel == "" {
		problems = append(problems, "gemini model is required when a google api key is provided")
	}
	if c.AdvisorTimeout <= 0 {
		problems = append(problems, fmt.Sprintf("invalid advisor timeout %v: must be positive", c.AdvisorTimeout))
	}
	if c.LedgerTimeout <= 0 {
		problems = append(problems, fmt.Sprintf("invalid ledger timeout %v: must be positive", c.LedgerTimeout))
	}

	if c.OperatorWorkers < 1 {
		problems = append(problems, fmt.Sprintf("invalid operator workers %d: must be at least 1", c.OperatorWorkers))
	} else if c.OperatorWorkers > 64 {
		problems = append(problems, fmt.Sprintf("invalid operator workers %d: must be at most 64", c.OperatorWorkers))
	}

	if len(problems) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(problems, "\n- "))
	}
	return nil
}

// PostgresURL is the connection string shared by the server and the migration tool.
func (c *Config) PostgresURL() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.PostgresUsername, c.PostgresPassword),
		Host:     c.PostgresAddress + ":" + c.PostgresPort,
		Path:     "/" + c.PostgresDB,
		RawQuery: "sslmode=disable",
	}
	return u.String()
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
