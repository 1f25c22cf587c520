// apps/go-server/internal/config/config.go
//
// Configuration: server settings loaded from the environment.

package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration.
type Config struct {
	Server  ServerConfig
	Game    GameConfig
	Store   StoreConfig
	Session SessionConfig
	Logging LoggingConfig
}

// ServerConfig holds HTTP settings.
type ServerConfig struct {
	Host           string
	Port           string
	Env            string // "development" or "production"
	RequestTimeout time.Duration
}

// GameConfig holds content and word-selection settings.
type GameConfig struct {
	WordsFile      string
	CatalogFile    string
	DailySalt      string
	AllowFixedWord bool // lets API clients choose the secret word (testing only)
}

// StoreConfig selects and configures the game store.
type StoreConfig struct {
	Driver        string // memory | sqlite | redis
	SQLitePath    string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	SweepInterval time.Duration
}

// SessionConfig holds the session cookie settings.
type SessionConfig struct {
	Secret     string
	CookieName string
	TTL        time.Duration
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string
	Format string // "console" or "json"
}

// Load reads configuration from environment variables with defaults.
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Host:           getEnv("HOST", ""),
			Port:           getEnv("PORT", "5175"),
			Env:            getEnv("ENV", "development"),
			RequestTimeout: getEnvDuration("REQUEST_TIMEOUT", 10*time.Second),
		},
		Game: GameConfig{
			WordsFile:      getEnv("WORDS_FILE", ""),
			CatalogFile:    getEnv("CATALOG_FILE", ""),
			DailySalt:      getEnv("DAILY_SALT", "local_dev_salt"),
			AllowFixedWord: getEnvBool("ALLOW_FIXED_WORD", false),
		},
		Store: StoreConfig{
			Driver:        getEnv("STORE_DRIVER", "memory"),
			SQLitePath:    getEnv("SQLITE_PATH", "./data/endgame.db"),
			RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
			RedisPassword: getEnv("REDIS_PASSWORD", ""),
			RedisDB:       getEnvInt("REDIS_DB", 0),
			SweepInterval: getEnvDuration("SWEEP_INTERVAL", 10*time.Minute),
		},
		Session: SessionConfig{
			Secret:     getEnv("SESSION_SECRET", "dev_secret_change_me"),
			CookieName: getEnv("COOKIE_NAME", "endgame_session"),
			TTL:        getEnvDuration("SESSION_TTL", 24*time.Hour),
		},
		Logging: LoggingConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "console"),
		},
	}
}

// IsProduction reports whether ENV=production.
func (c *Config) IsProduction() bool {
	return c.Server.Env == "production"
}

// Addr returns the listen address in host:port form.
func (c *Config) Addr() string {
	return c.Server.Host + ":" + c.Server.Port
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

// getEnvDuration accepts Go durations ("90s", "2h").
func getEnvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
