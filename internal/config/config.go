package config

import (
	"os"
	"strconv"
	"time"
)

// Config roombook client configuration.
type Config struct {
	Backend struct {
		BaseURL     string
		Timeout     time.Duration
		ListPage    int // page size for list-all scans
		AccessToken string
	}
	Log struct {
		Level  string
		Format string
	}
}

// Load reads configuration from environment variables with defaults
// suitable for a local backend. Call godotenv.Load first when a .env
// file should participate.
func Load() *Config {
	cfg := &Config{}

	cfg.Backend.BaseURL = getEnv("ROOMBOOK_BASE_URL", "http://localhost:5000/api")
	cfg.Backend.Timeout = time.Duration(parseInt(getEnv("ROOMBOOK_HTTP_TIMEOUT_SECONDS", "30"), 30)) * time.Second
	cfg.Backend.ListPage = parseInt(getEnv("ROOMBOOK_LIST_PAGE_SIZE", "1000"), 1000)
	cfg.Backend.AccessToken = getEnv("ROOMBOOK_ACCESS_TOKEN", "")

	cfg.Log.Level = getEnv("LOG_LEVEL", "info")
	cfg.Log.Format = getEnv("LOG_FORMAT", "console")

	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func parseInt(s string, def int) int {
	i, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return i
}
