package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	AppURL                      string
	DatabaseDSN                 string
	RateLimit                   int
	RedisAddr                   string
	RedisLeaseKey               string
	OverdueScanIntervalSeconds  int
	OverdueWorkers              int
	OverdueQueueSize            int
	OverdueBatchSize            int
	NotifyBreakerFailures       int
	NotifyBreakerTimeoutSeconds int
	ShutdownTimeoutSeconds      int
	CORSAllowedOrigins          []string
	LogLevel                    string
	LogFormat                   string
	LogFile                     string
}

func Load() (Config, error) {
	appHost := getEnv("APP_HOST", "127.0.0.1")
	appPort := getEnv("APP_PORT", "8080")

	cfg := Config{
		AppURL:             fmt.Sprintf("%s:%s", appHost, appPort),
		DatabaseDSN:        getEnv("DATABASE_DSN", "tasks.db"),
		RedisAddr:          os.Getenv("REDIS_ADDR"),
		RedisLeaseKey:      getEnv("REDIS_LEASE_KEY", "task_tracker:overdue_sweep"),
		CORSAllowedOrigins: getEnvAsList("CORS_ALLOWED_ORIGINS", []string{"http://localhost:3000", "http://localhost:5173"}),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		LogFormat:          getEnv("LOG_FORMAT", "text"),
		LogFile:            os.Getenv("LOG_FILE"),
	}

	var err error
	ints := []struct {
		dst *int
		key string
		def int
	}{
		{&cfg.RateLimit, "RATE_LIMIT_PER_MINUTE", 120},
		{&cfg.OverdueScanIntervalSeconds, "OVERDUE_SCAN_INTERVAL_SECONDS", 300},
		{&cfg.OverdueWorkers, "OVERDUE_WORKERS", 2},
		{&cfg.OverdueQueueSize, "OVERDUE_QUEUE_SIZE", 100},
		{&cfg.OverdueBatchSize, "OVERDUE_BATCH_SIZE", 50},
		{&cfg.NotifyBreakerFailures, "NOTIFY_BREAKER_FAILURES", 5},
		{&cfg.NotifyBreakerTimeoutSeconds, "NOTIFY_BREAKER_TIMEOUT_SECONDS", 30},
		{&cfg.ShutdownTimeoutSeconds, "SHUTDOWN_TIMEOUT_SECONDS", 20},
	}
	for _, v := range ints {
		if *v.dst, err = getEnvAsInt(v.key, v.def); err != nil {
			return Config{}, err
		}
	}

	if err := validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func validate(cfg Config) error {
	if cfg.AppURL == "" {
		return errors.New("APP_HOST/APP_PORT must not be empty (e.g. 127.0.0.1:8080)")
	}
	if cfg.DatabaseDSN == "" {
		return errors.New("DATABASE_DSN must not be empty")
	}
	if cfg.RateLimit <= 0 {
		return errors.New("RATE_LIMIT_PER_MINUTE must be greater than 0")
	}
	if cfg.OverdueScanIntervalSeconds <= 0 {
		return errors.New("OVERDUE_SCAN_INTERVAL_SECONDS must be greater than 0")
	}
	if cfg.OverdueWorkers <= 0 {
		return errors.New("OVERDUE_WORKERS must be greater than 0")
	}
	if cfg.OverdueQueueSize <= 0 {
		return errors.New("OVERDUE_QUEUE_SIZE must be greater than 0")
	}
	if cfg.OverdueBatchSize <= 0 {
		return errors.New("OVERDUE_BATCH_SIZE must be greater than 0")
	}
	if cfg.NotifyBreakerFailures <= 0 {
		return errors.New("NOTIFY_BREAKER_FAILURES must be greater than 0")
	}
	if cfg.NotifyBreakerTimeoutSeconds <= 0 {
		return errors.New("NOTIFY_BREAKER_TIMEOUT_SECONDS must be greater than 0")
	}
	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return fmt.Errorf("LOG_FORMAT must be text or json, got %q", cfg.LogFormat)
	}
	return nil
}

func getEnv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvAsInt(key string, defaultVal int) (int, error) {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err != nil {
			return 0, fmt.Errorf("invalid integer value for %s: %q", key, v)
		}
		return i, nil
	}
	return defaultVal, nil
}

func getEnvAsList(key string, defaultVal []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}

	var out []string
	for _, item := range strings.Split(v, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
