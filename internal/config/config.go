package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config groups every tunable of the pipeline. It is loaded once at
// startup and passed by value into constructors; nothing mutates it
// afterwards.
type Config struct {
	LLM      LLMConfig
	Pool     PoolConfig
	Fetch    FetchConfig
	Redis    RedisConfig
	Database DatabaseConfig
}

// LLMConfig describes how to reach the generation service.
type LLMConfig struct {
	Enabled     bool
	BaseURL     string
	APIKey      string
	Model       string
	Timeout     time.Duration
	MaxRetries  int
	RetryDelay  time.Duration
	Temperature float64
}

// PoolConfig bounds the worker pool shared by entity and summary tasks.
type PoolConfig struct {
	Workers int
}

// FetchConfig controls the article content fetcher.
type FetchConfig struct {
	Timeout   time.Duration
	UserAgent string
}

// RedisConfig describes the optional LLM response cache. An empty Addr
// disables caching.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	TTL      time.Duration
}

// DatabaseConfig describes the optional Postgres sink. An empty URL
// disables it.
type DatabaseConfig struct {
	URL string
}

func Load() (*Config, error) {
	cfg := &Config{
		LLM: LLMConfig{
			Enabled:     getEnvAsBool("LLM_ENABLED", true),
			BaseURL:     getEnv("LLM_BASE_URL", "http://localhost:11434/v1"),
			APIKey:      getEnv("LLM_API_KEY", "ollama"),
			Model:       getEnv("LLM_MODEL", "mistral:7b-instruct"),
			Timeout:     getEnvAsDuration("LLM_TIMEOUT", 30*time.Second),
			MaxRetries:  getEnvAsInt("LLM_MAX_RETRIES", 2),
			RetryDelay:  getEnvAsDuration("LLM_RETRY_DELAY", time.Second),
			Temperature: getEnvAsFloat("LLM_TEMPERATURE", 0.3),
		},
		Pool: PoolConfig{
			Workers: getEnvAsInt("WORKER_COUNT", 6),
		},
		Fetch: FetchConfig{
			Timeout:   getEnvAsDuration("FETCH_TIMEOUT", 20*time.Second),
			UserAgent: getEnv("FETCH_USER_AGENT", "vetwatch/1.0"),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", ""),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
			TTL:      getEnvAsDuration("REDIS_TTL", 7*24*time.Hour),
		},
		Database: DatabaseConfig{
			URL: getEnv("POSTGRES_URL", ""),
		},
	}

	if cfg.LLM.Enabled && cfg.LLM.Model == "" {
		return nil, fmt.Errorf("LLM_MODEL is required when LLM_ENABLED is true")
	}
	if cfg.Pool.Workers < 1 {
		return nil, fmt.Errorf("WORKER_COUNT must be at least 1, got %d", cfg.Pool.Workers)
	}
	if cfg.LLM.MaxRetries < 0 {
		return nil, fmt.Errorf("LLM_MAX_RETRIES must not be negative, got %d", cfg.LLM.MaxRetries)
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
