package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Output backends
const (
	OutputFile  = "file"
	OutputRedis = "redis"
)

type Config struct {
	Environment string
	LogLevel    slog.Level

	// Generation
	Suspects    int
	Weapons     int
	Seed        uint64
	SettingFile string

	// Output
	Output   string
	GameDir  string
	RedisURL string
	RedisTTL time.Duration
}

// Load reads configuration from the environment. A .env file in the working
// directory is applied first when present; real environment variables win.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	cfg := &Config{
		Environment: getEnv("ENVIRONMENT", "development"),
		LogLevel:    parseLogLevel(getEnv("LOG_LEVEL", "info")),
		SettingFile: getEnv("SETTING_FILE", ""),
		Output:      strings.ToLower(getEnv("OUTPUT", OutputFile)),
		GameDir:     getEnv("GAME_DIR", "game"),
		RedisURL:    getEnv("REDIS_URL", "redis://localhost:6379"),
	}

	var err error
	if cfg.Suspects, err = strconv.Atoi(getEnv("NUM_SUSPECTS", "3")); err != nil {
		return nil, fmt.Errorf("invalid NUM_SUSPECTS: %w", err)
	}
	if cfg.Weapons, err = strconv.Atoi(getEnv("NUM_WEAPONS", "3")); err != nil {
		return nil, fmt.Errorf("invalid NUM_WEAPONS: %w", err)
	}
	if cfg.Seed, err = strconv.ParseUint(getEnv("MYSTERY_SEED", "0"), 10, 64); err != nil {
		return nil, fmt.Errorf("invalid MYSTERY_SEED: %w", err)
	}
	if cfg.RedisTTL, err = time.ParseDuration(getEnv("REDIS_TTL", "24h")); err != nil {
		return nil, fmt.Errorf("invalid REDIS_TTL: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks settings that cannot be silently corrected.
func (c *Config) Validate() error {
	switch c.Output {
	case OutputFile:
		if c.GameDir == "" {
			return fmt.Errorf("GAME_DIR must not be empty")
		}
	case OutputRedis:
		if c.RedisURL == "" {
			return fmt.Errorf("REDIS_URL is required when OUTPUT is redis")
		}
	default:
		return fmt.Errorf("invalid OUTPUT %q: supported values are %q and %q", c.Output, OutputFile, OutputRedis)
	}
	return nil
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
