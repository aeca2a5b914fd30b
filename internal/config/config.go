package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

// DSN returns the PostgreSQL connection string.
func (c *DBConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

type AuthConfig struct {
	// EnforceTokenExpiry makes token resolution reject tokens past their
	// expires_at. Off by default; expiry timestamps are recorded either way.
	EnforceTokenExpiry bool
	TokenTTL           time.Duration
}

type ServerConfig struct {
	Port        string
	Env         string
	CORSOrigins []string
}

type Config struct {
	ServiceName string
	Server      ServerConfig
	DB          DBConfig
	Auth        AuthConfig
	LogLevel    string
	GinMode     string
}

// Load reads configuration from the environment, with an optional .env file.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on system environment variables")
	}

	return &Config{
		ServiceName: getEnv("SERVICE_NAME", "hockeylive-api"),
		Server: ServerConfig{
			Port:        getEnv("SERVER_PORT", "8080"),
			Env:         getEnv("APP_ENV", "development"),
			CORSOrigins: []string{getEnv("FRONTEND_URL", "http://localhost:3000")},
		},
		DB: DBConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "password"),
			Name:     getEnv("DB_NAME", "hockey_live"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Auth: AuthConfig{
			EnforceTokenExpiry: getEnvAsBool("AUTH_ENFORCE_TOKEN_EXPIRY", false),
			TokenTTL:           time.Duration(getEnvAsInt("AUTH_TOKEN_TTL_HOURS", 24)) * time.Hour,
		},
		LogLevel: getEnv("LOG_LEVEL", "info"),
		GinMode:  getEnv("GIN_MODE", "debug"),
	}
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, err := strconv.Atoi(getEnv(key, "")); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value, err := strconv.ParseBool(getEnv(key, "")); err == nil {
		return value
	}
	return defaultValue
}
