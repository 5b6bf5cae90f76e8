package config

import (
	"os"
	"strconv"
	"strings"
	"sync"
)

var (
	config     *Config
	configOnce sync.Once
)

// Config stores all configuration of the application
type Config struct {
	// Environment type
	EnvType string

	// Server
	ServerPort string

	// Session token auth
	SessionSecret   string
	SessionTTLHours int

	// Default admin bootstrap
	DefaultAdminUsername string
	DefaultAdminPassword string

	// Redis (optional backing for the session blacklist)
	RedisEnabled bool
	RedisHost    string
	RedisPort    string
	RedisDB      int

	// CORS
	AllowedOrigin string

	// Logging
	LogLevel string
}

// LoadConfig loads config from environment variables
func LoadConfig() *Config {
	envType := strings.ToUpper(getEnv("ENV_TYPE", "LOCAL"))

	return &Config{
		EnvType: envType,

		ServerPort: getEnv("SERVER_PORT", "8080"),

		SessionSecret:   getEnv("SESSION_SECRET", "sanskruti-travels-secret"),
		SessionTTLHours: getEnvAsInt("SESSION_TTL_HOURS", 24),

		DefaultAdminUsername: getEnv("DEFAULT_ADMIN_USERNAME", "admin"),
		DefaultAdminPassword: getEnv("DEFAULT_ADMIN_PASSWORD", "sanskruti123"),

		RedisEnabled: getEnvAsBool("REDIS_ENABLED", false),
		RedisHost:    getEnv("REDIS_HOST", "localhost"),
		RedisPort:    getEnv("REDIS_PORT", "6379"),
		RedisDB:      getEnvAsInt("REDIS_DB", 0),

		AllowedOrigin: getEnv("ALLOWED_ORIGIN", "http://localhost:3000"),

		LogLevel: getEnv("LOG_LEVEL", "info"),
	}
}

// GetConfig returns the application configuration as a singleton
func GetConfig() *Config {
	configOnce.Do(func() {
		config = LoadConfig()
	})
	return config
}

// GetRedisAddr returns the Redis address
func (c *Config) GetRedisAddr() string {
	return c.RedisHost + ":" + c.RedisPort
}

// Helper function to get environment variable with default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// Helper function to get environment variable as integer with default value
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

// Helper function to get environment variable as boolean with default value
func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}
