package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	StoreBackendJSON   = "json"
	StoreBackendSQLite = "sqlite"
)

type Config struct {
	App   AppConfig
	HTTP  ServerConfig
	Log   LogConfig
	Store StoreConfig
}

type AppConfig struct {
	ServiceName string
}

type ServerConfig struct {
	Host string
	Port string
}

type LogConfig struct {
	Level string
}

// StoreConfig selects the transaction recorder backend once at startup.
// Backend is the single explicit switch between the flat-file ledger and
// the document store; nothing re-reads it after construction.
type StoreConfig struct {
	Backend     string
	LedgerPath  string
	SQLitePath  string
	HTTPTimeout time.Duration
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	backend := getEnv("STORE_BACKEND", StoreBackendJSON)
	if backend != StoreBackendJSON && backend != StoreBackendSQLite {
		return nil, fmt.Errorf("STORE_BACKEND must be %q or %q, got %q", StoreBackendJSON, StoreBackendSQLite, backend)
	}

	return &Config{
		App: AppConfig{
			ServiceName: getEnv("APP_SERVICE_NAME", "transactify"),
		},
		HTTP: ServerConfig{
			Host: getEnv("HTTP_HOST", "0.0.0.0"),
			Port: getEnv("HTTP_PORT", "8080"),
		},
		Log: LogConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		Store: StoreConfig{
			Backend:     backend,
			LedgerPath:  getEnv("TRANSACTIONS_PATH", "transactions.json"),
			SQLitePath:  getEnv("SQLITE_PATH", "transactions.db"),
			HTTPTimeout: getSecondsEnv("PROVIDER_HTTP_TIMEOUT_SECONDS", 10*time.Second),
		},
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getSecondsEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if seconds, err := strconv.Atoi(value); err == nil {
			return time.Duration(seconds) * time.Second
		}
	}
	return defaultValue
}
