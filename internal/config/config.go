package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/vytor/dialoguedeck/internal/logger"
)

const (
	BackendSQLite = "sqlite"
	BackendFile   = "file"
	BackendMemory = "memory"
)

type Config struct {
	Addr             string
	StoreBackend     string
	DBPath           string
	StoreFile        string
	StoreKey         string
	StoreTimeoutMS   int
	SeedFile         string
	ClipboardEnabled bool
	LogLevel         string
}

// Load reads configuration from a .env file (if present) and environment variables,
// applying sensible defaults when values are missing or invalid.
func Load() Config {
	// Ignore error so the app still starts when .env is absent.
	_ = godotenv.Load()

	return Config{
		Addr:             envOr("ADDR", "127.0.0.1:8080"),
		StoreBackend:     strings.ToLower(envOr("STORE_BACKEND", BackendSQLite)),
		DBPath:           envOr("DB_PATH", "file:dialoguedeck.db"),
		StoreFile:        envOr("STORE_FILE", "dialoguedeck.json"),
		StoreKey:         envOr("STORE_KEY", "conv-decks"),
		StoreTimeoutMS:   envIntOr("STORE_TIMEOUT_MS", 2000),
		SeedFile:         os.Getenv("SEED_FILE"),
		ClipboardEnabled: envBoolOr("CLIPBOARD_ENABLED", true),
		LogLevel:         envOr("LOG_LEVEL", "INFO"),
	}
}

// Validate reports every invalid setting at once.
func (c Config) Validate() error {
	var problems []string

	if strings.TrimSpace(c.Addr) == "" {
		problems = append(problems, "ADDR cannot be empty")
	}
	switch c.StoreBackend {
	case BackendSQLite:
		if strings.TrimSpace(c.DBPath) == "" {
			problems = append(problems, "DB_PATH cannot be empty for the sqlite backend")
		}
	case BackendFile:
		if strings.TrimSpace(c.StoreFile) == "" {
			problems = append(problems, "STORE_FILE cannot be empty for the file backend")
		}
	case BackendMemory:
	default:
		problems = append(problems, fmt.Sprintf("STORE_BACKEND must be one of sqlite, file, memory (got %q)", c.StoreBackend))
	}
	if strings.TrimSpace(c.StoreKey) == "" {
		problems = append(problems, "STORE_KEY cannot be empty")
	}
	if c.StoreTimeoutMS <= 0 {
		problems = append(problems, fmt.Sprintf("STORE_TIMEOUT_MS must be positive (got %d)", c.StoreTimeoutMS))
	}
	if c.SeedFile != "" {
		if _, err := os.Stat(c.SeedFile); err != nil {
			problems = append(problems, fmt.Sprintf("SEED_FILE %s is not readable: %v", c.SeedFile, err))
		}
	}
	if _, ok := logger.LookupLevel(c.LogLevel); !ok {
		problems = append(problems, fmt.Sprintf("LOG_LEVEL must be DEBUG, INFO, WARN or ERROR (got %q)", c.LogLevel))
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
	}
	return nil
}

func (c Config) StoreTimeout() time.Duration {
	return time.Duration(c.StoreTimeoutMS) * time.Millisecond
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envIntOr(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
		log.Printf("invalid value for %s=%q, using default %d", key, v, def)
	}
	return def
}

func envBoolOr(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
		log.Printf("invalid value for %s=%q, using default %t", key, v, def)
	}
	return def
}
