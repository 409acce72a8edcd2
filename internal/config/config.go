package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	StoreSSM            = "ssm"
	StoreSecretsManager = "secretsmanager"
	StoreEnv            = "env"
)

type Config struct {
	Port     string
	LogLevel string

	SecretStore string
	SSMPath     string
	SecretID    string
	AppKey      string
	UserKey     string

	RedisAddr     string
	RedisPassword string
	DedupeTTL     time.Duration

	MetricsAddr string
	DocsEnabled bool
}

// Load reads an optional .env file and then the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:          getEnv("PORT", "8080"),
		LogLevel:      getEnv("LOG_LEVEL", "debug"),
		SecretStore:   getEnv("SECRET_STORE", StoreSSM),
		SSMPath:       getEnv("SSM_PATH", "/pushover/sms"),
		SecretID:      getEnv("SECRET_ID", "pushover/sms"),
		AppKey:        getEnv("PUSHOVER_APP_KEY", ""),
		UserKey:       getEnv("PUSHOVER_USER_KEY", ""),
		RedisAddr:     getEnv("REDIS_ADDR", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		MetricsAddr:   getEnv("METRICS_ADDR", ""),
	}

	ttl, err := time.ParseDuration(getEnv("DEDUPE_TTL", "24h"))
	if err != nil {
		return nil, fmt.Errorf("invalid DEDUPE_TTL: %w", err)
	}
	cfg.DedupeTTL = ttl

	docs, err := strconv.ParseBool(getEnv("DOCS_ENABLED", "false"))
	if err != nil {
		return nil, fmt.Errorf("invalid DOCS_ENABLED: %w", err)
	}
	cfg.DocsEnabled = docs

	switch cfg.SecretStore {
	case StoreSSM, StoreSecretsManager, StoreEnv:
	default:
		return nil, fmt.Errorf("unknown SECRET_STORE %q", cfg.SecretStore)
	}
	return cfg, nil
}

func getEnv(key string, defaultVal string) string {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	return val
}
