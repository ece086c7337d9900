package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	Server     ServerConfig
	DataSource DataSourceConfig
	Supabase   SupabaseConfig
	Redis      RedisConfig
	OTEL       OTELConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Host string
	Port int
}

// DataSourceConfig selects where entity reads come from.
// Mode is one of "mock", "supabase" or "auto"; anything else means auto.
type DataSourceConfig struct {
	Mode string
}

// SupabaseConfig holds the remote backend credentials
type SupabaseConfig struct {
	URL            string
	AnonKey        string
	ServiceRoleKey string
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// OTELConfig holds OpenTelemetry configuration
type OTELConfig struct {
	ServiceName    string
	ServiceVersion string
	Endpoint       string
	Enabled        bool
}

// Load loads configuration from the environment. A local .env.local file is
// read first when present; values already set in the environment win over
// the file.
func Load() (*Config, error) {
	_ = godotenv.Load(".env.local")

	return &Config{
		Server: ServerConfig{
			Host: getEnv("SERVER_HOST", "0.0.0.0"),
			Port: getEnvAsInt("SERVER_PORT", 8080),
		},
		DataSource: DataSourceConfig{
			Mode: getEnv("DATA_SOURCE", ""),
		},
		Supabase: SupabaseConfig{
			URL:            getEnv("SUPABASE_URL", ""),
			AnonKey:        getEnv("SUPABASE_ANON_KEY", ""),
			ServiceRoleKey: getEnv("SUPABASE_SERVICE_ROLE_KEY", ""),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnvAsInt("REDIS_PORT", 6379),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
		},
		OTEL: OTELConfig{
			ServiceName:    getEnv("OTEL_SERVICE_NAME", "hamsafar-mirza"),
			ServiceVersion: getEnv("OTEL_SERVICE_VERSION", "1.0.0"),
			Endpoint:       getEnv("OTEL_ENDPOINT", ""),
			Enabled:        getEnvAsBool("OTEL_ENABLED", false),
		},
	}, nil
}

// IsConfigured reports whether the remote backend can be reached at all
func (c *SupabaseConfig) IsConfigured() bool {
	return c.URL != "" && c.ReadKey() != ""
}

// ReadKey returns the key used for read access
func (c *SupabaseConfig) ReadKey() string {
	return c.AnonKey
}

// WriteKey returns the key used for batch writes, preferring the elevated
// service role key over the anonymous one
func (c *SupabaseConfig) WriteKey() string {
	if c.ServiceRoleKey != "" {
		return c.ServiceRoleKey
	}
	return c.AnonKey
}

// RedisAddr returns the Redis address
func (c *RedisConfig) RedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}
