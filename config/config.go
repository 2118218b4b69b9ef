package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the service settings. Every field has a usable default.
type Config struct {
	Addr          string
	RedisAddr     string // empty selects the in-memory cache
	CacheTTL      time.Duration
	RateLimit     int
	RateWindow    time.Duration
	HistorySize   int
	SweepWorkers  int
	LogFile       string // empty logs to stdout only
	MaxLogSizeMB  int64
	MaxLogBackups int
}

// Load reads an optional .env file, then the RVB_* environment variables.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	return Config{
		Addr:          getEnv("RVB_ADDR", ":8080"),
		RedisAddr:     getEnv("RVB_REDIS_ADDR", ""),
		CacheTTL:      getEnvAsDuration("RVB_CACHE_TTL", time.Hour),
		RateLimit:     getEnvAsInt("RVB_RATE_LIMIT", 5),
		RateWindow:    getEnvAsDuration("RVB_RATE_WINDOW", time.Minute),
		HistorySize:   getEnvAsInt("RVB_HISTORY_SIZE", 1000),
		SweepWorkers:  getEnvAsInt("RVB_SWEEP_WORKERS", 4),
		LogFile:       getEnv("RVB_LOG_FILE", ""),
		MaxLogSizeMB:  int64(getEnvAsInt("RVB_LOG_MAX_MB", 10)),
		MaxLogBackups: getEnvAsInt("RVB_LOG_BACKUPS", 3),
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	val, err := strconv.Atoi(valueStr)
	if err != nil || val <= 0 {
		log.Printf("Warning: Invalid value %q for %s, using default %d", valueStr, key, fallback)
		return fallback
	}
	return val
}

func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	val, err := time.ParseDuration(valueStr)
	if err != nil || val < 0 {
		log.Printf("Warning: Invalid duration %q for %s, using default %s", valueStr, key, fallback)
		return fallback
	}
	return val
}
