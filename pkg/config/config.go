package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/joho/godotenv"
)

var (
	once     sync.Once
	instance *Config
)

const defaultEnvFile = "./configs/.env"

type Config struct {
}

// New loads ./configs/.env once. Variables already set in the environment win,
// and a missing file only produces a warning.
func New() *Config {
	once.Do(func() {
		envFile := os.Getenv("ENV_FILE")
		if envFile == "" {
			envFile = defaultEnvFile
		}
		if err := godotenv.Load(envFile); err != nil {
			slog.Warn("env file not loaded, using process environment", slog.String("file", envFile), slog.String("error", err.Error()))
		}
		instance = &Config{}
	})
	return instance
}

func (c *Config) GetString(key string) string {
	return os.Getenv(key)
}

func (c *Config) GetStringOr(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

func (c *Config) GetInt(key string, def int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return def
	}
	return v
}

func (c *Config) GetFloat(key string, def float64) float64 {
	v, err := strconv.ParseFloat(os.Getenv(key), 64)
	if err != nil {
		return def
	}
	return v
}

func (c *Config) GetBool(key string, def bool) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return def
	}
	return v
}

func (c *Config) GetDuration(key string, def time.Duration) time.Duration {
	v, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return def
	}
	return v
}

// GetList splits a comma separated value, dropping blanks.
func (c *Config) GetList(key string, def []string) []string {
	raw := os.Getenv(key)
	if raw == "" {
		return def
	}
	res := make([]string, 0)
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			res = append(res, part)
		}
	}
	if len(res) == 0 {
		return def
	}
	return res
}

// GetLocation resolves an IANA zone name. Empty or unknown names fall back to time.Local.
func (c *Config) GetLocation(key string) *time.Location {
	name := os.Getenv(key)
	if name == "" {
		return time.Local
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		slog.Warn("unknown time zone, using local", slog.String("key", key), slog.String("value", name))
		return time.Local
	}
	return loc
}
