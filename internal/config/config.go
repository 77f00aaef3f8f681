package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port            int           // HTTP listen port
	StorageType     string        // "memory" or "redis"
	RedisURL        string        // Redis connection URL
	AdminUsernames  []string      // usernames granted admin on registration
	SessionDuration time.Duration // how long login sessions last
	IncludeAdmins   bool          // whether admins appear in the leaderboard
}

// Load reads configuration from environment variables, loading a .env file
// first if one is present.
func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		Port:            8080,
		StorageType:     "memory",
		RedisURL:        "redis://localhost:6379",
		SessionDuration: 24 * time.Hour,
	}

	if v := os.Getenv("PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Port = port
		}
	}
	if v := os.Getenv("STORAGE_TYPE"); v != "" {
		cfg.StorageType = v
	}
	if v := os.Getenv("REDIS_URL"); v != "" {
		cfg.RedisURL = v
	}
	if v := os.Getenv("ADMIN_USERNAMES"); v != "" {
		for _, name := range strings.Split(v, ",") {
			if name = strings.TrimSpace(name); name != "" {
				cfg.AdminUsernames = append(cfg.AdminUsernames, name)
			}
		}
	}
	if v := os.Getenv("SESSION_DURATION"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.SessionDuration = d
		}
	}
	cfg.IncludeAdmins = os.Getenv("LEADERBOARD_INCLUDE_ADMINS") == "true"

	return cfg
}
