package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds application level configuration loaded from environment variables.
type Config struct {
	ServerPort        string
	MySQLDSN          string
	SwaggerHost       string
	DBConnectAttempts int
	DBConnectBackoff  time.Duration
}

// Load builds Config from environment with sensible defaults.
func Load() *Config {
	return &Config{
		ServerPort:        getEnv("SERVER_PORT", "8080"),
		MySQLDSN:          getEnv("MYSQL_DSN", "user:password@tcp(localhost:3306)/postboard?charset=utf8mb4&parseTime=True&loc=Local"),
		SwaggerHost:       os.Getenv("SWAGGER_HOST"),
		DBConnectAttempts: getEnvInt("DB_CONNECT_ATTEMPTS", 15),
		DBConnectBackoff:  time.Duration(getEnvInt("DB_CONNECT_BACKOFF_SECONDS", 2)) * time.Second,
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return def
}
