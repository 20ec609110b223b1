// ABOUTME: Seed tool configuration from environment, .env file, and flags.
// ABOUTME: Resolves the database path, random seed, and log level.

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/erkannt/rechenschaftspflicht-seed/internal/storage"
)

// Environment variables read by Load. SQLITE_PATH is shared with the
// consuming app so both point at the same file.
const (
	EnvSQLitePath = "SQLITE_PATH"
	EnvSeed       = "SEED_RANDOM"
	EnvLogLevel   = "LOG_LEVEL"
)

// Problems maps a field name to what is wrong with it.
type Problems map[string]string

// Config stores seed tool configuration.
type Config struct {
	// DBPath is the SQLite file to seed. Supports ~ expansion.
	// Defaults to storage.DefaultDBPath.
	DBPath string

	// Seed fixes the random source when HasSeed is set.
	Seed    int64
	HasSeed bool

	// LogLevel is a zerolog level name. Defaults to "info".
	LogLevel string
}

// GetDBPath returns the configured database path with ~ expanded.
func (c *Config) GetDBPath() string {
	if c.DBPath == "" {
		return storage.DefaultDBPath
	}
	return ExpandPath(c.DBPath)
}

// GetLogLevel returns the configured log level, defaulting to "info".
func (c *Config) GetLogLevel() string {
	if c.LogLevel == "" {
		return "info"
	}
	return strings.ToLower(c.LogLevel)
}

// Valid reports every problem with the configuration.
func (c *Config) Valid() Problems {
	problems := Problems{}
	if _, err := zerolog.ParseLevel(c.GetLogLevel()); err != nil {
		problems["LogLevel"] = fmt.Sprintf("unknown log level %q", c.LogLevel)
	}
	if strings.TrimSpace(c.DBPath) == "" && c.DBPath != "" {
		problems["DBPath"] = "database path is blank"
	}
	return problems
}

// Err joins the problems into one error, or returns nil when there are none.
func (p Problems) Err() error {
	if len(p) == 0 {
		return nil
	}
	msgs := make([]string, 0, len(p))
	for field, msg := range p {
		msgs = append(msgs, fmt.Sprintf("%s: %s", field, msg))
	}
	sort.Strings(msgs)
	return fmt.Errorf("invalid config: %s", strings.Join(msgs, ", "))
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) string {
	if path == "" {
		return ""
	}
	if path == "~" {
		home, _ := os.UserHomeDir()
		return home
	}
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[2:])
	}
	return path
}

// LoadDotenv loads variables from a .env file into the process environment.
// Variables already set are kept. A missing file is not an error.
func LoadDotenv(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// Load builds a Config from environment lookups.
func Load(getenv func(string) string) (*Config, error) {
	cfg := &Config{
		DBPath:   getenv(EnvSQLitePath),
		LogLevel: getenv(EnvLogLevel),
	}

	if s := getenv(EnvSeed); s != "" {
		seed, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", EnvSeed, err)
		}
		cfg.Seed = seed
		cfg.HasSeed = true
	}

	if err := cfg.Valid().Err(); err != nil {
		return nil, err
	}
	return cfg, nil
}
