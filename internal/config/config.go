package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds runtime configuration parsed from environment variables.
type Config struct {
	HTTPAddr        string
	BackendURL      string
	BackendTimeout  time.Duration
	AdminPassword   string
	CartDataDir     string
	CartDBConnStr   string
	CORSOrigins     []string
	ShutdownTimeout time.Duration
}

// FromEnv builds Config with defaults, overridden by environment variables.
// Setting CART_DB_DSN switches cart persistence from the file store to Postgres.
func FromEnv() Config {
	return Config{
		HTTPAddr:        envOrDefault("HTTP_ADDR", ":8080"),
		BackendURL:      envOrDefault("BACKEND_API_URL", "http://localhost:3001"),
		BackendTimeout:  envDuration("BACKEND_TIMEOUT_SECONDS", 15*time.Second),
		AdminPassword:   envOrDefault("ADMIN_PASSWORD", "admin123"),
		CartDataDir:     envOrDefault("CART_DATA_DIR", "./data/carts"),
		CartDBConnStr:   envOrDefault("CART_DB_DSN", ""),
		CORSOrigins:     envList("CORS_ALLOW_ORIGINS", []string{"*"}),
		ShutdownTimeout: envDuration("SHUTDOWN_TIMEOUT_SECONDS", 10*time.Second),
	}
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		seconds, err := strconv.Atoi(v)
		if err == nil {
			return time.Duration(seconds) * time.Second
		}
	}
	return def
}

func envList(key string, def []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}
