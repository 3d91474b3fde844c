package config

import (
	cryptoRand "crypto/rand"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
)

const (
	// MaxResumeSize is the hard cap on a resume submission body, in bytes.
	MaxResumeSize = 50000

	// BcryptCost is the fixed work factor for admin password hashing.
	BcryptCost = 12
)

// Config holds application configuration
type Config struct {
	Port int

	DBHost     string
	DBPort     int
	DBUser     string
	DBPassword string
	DBName     string

	SessionExpiryHours int
	AllowedOrigins     []string
	SecretKey          string

	LogLevel  string
	LogFormat string
}

// Load loads configuration from environment variables
func Load() *Config {
	cfg := &Config{
		Port: getEnvInt("PORT", 8080),

		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnvInt("DB_PORT", 5432),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", ""),
		DBName:     getEnv("DB_NAME", "resume_vault"),

		SessionExpiryHours: getEnvInt("SESSION_EXPIRY_HOURS", 24),
		AllowedOrigins:     splitOrigins(getEnv("ALLOWED_ORIGINS", "http://localhost:5173,http://localhost:3000")),
		SecretKey:          getEnv("SECRET_KEY", ""),

		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "json"),
	}

	// Generate a secret if not provided
	if cfg.SecretKey == "" {
		cfg.SecretKey = generateRandomSecret(32)
	}

	return cfg
}

// DatabaseURL assembles a pgx connection string from the DB_* settings.
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s",
		url.QueryEscape(c.DBUser),
		url.QueryEscape(c.DBPassword),
		c.DBHost,
		c.DBPort,
		url.PathEscape(c.DBName),
	)
}

func splitOrigins(value string) []string {
	var origins []string
	for _, o := range strings.Split(value, ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

// generateRandomSecret generates a cryptographically secure random secret
func generateRandomSecret(length int) string {
	const charset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	result := make([]byte, length)
	if _, err := cryptoRand.Read(result); err != nil {
		panic("failed to generate random secret: " + err.Error())
	}
	for i := range result {
		result[i] = charset[result[i]%byte(len(charset))]
	}
	return string(result)
}
