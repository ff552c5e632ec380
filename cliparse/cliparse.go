// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"golang.org/x/text/language"
)

// Storage backends
const (
	StoreFile     = "file"
	StoreMemory   = "memory"
	StoreSQLite   = "sqlite"
	StorePostgres = "postgres"
	StoreRedis    = "redis"
)

const (
	DefaultPort     = 3318
	DefaultFilePath = "prefgrid.json"
	DefaultKey      = "participantOptionsData"
	DefaultLocale   = "en"
)

type Config struct {
	Port      int
	StoreType string
	StoreURL  string
	StoreKey  string
	Locale    language.Tag
}

// LoadEnvFile loads variables from a .env file without overriding ones
// already set. A missing file is not an error.
func LoadEnvFile(path string) error {
	err := godotenv.Load(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// ParseFlags validates flags and falls back to environment variables
func ParseFlags(args []string) (Config, error) {
	var cfg Config
	var locale string

	fs := flag.NewFlagSet("prefgrid", flag.ContinueOnError)

	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.StoreType, "s", "", "Store type (file, memory, sqlite, postgres, redis)")
	fs.StringVar(&cfg.StoreURL, "d", "", "Store location: file path, database DSN or redis URL")
	fs.StringVar(&cfg.StoreKey, "k", "", "Storage key for the snapshot")
	fs.StringVar(&locale, "l", "", "Locale for name ordering (BCP 47)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = DefaultPort
		}
	}

	if cfg.StoreType == "" {
		cfg.StoreType = os.Getenv("STORE")
	}
	if cfg.StoreType == "" {
		cfg.StoreType = StoreFile
	}
	cfg.StoreType = strings.ToLower(cfg.StoreType)

	if cfg.StoreURL == "" {
		cfg.StoreURL = os.Getenv("STORE_URL")
	}

	switch cfg.StoreType {
	case StoreFile:
		if cfg.StoreURL == "" {
			cfg.StoreURL = DefaultFilePath
		}
	case StoreMemory:
	case StoreSQLite, StorePostgres:
		if cfg.StoreURL == "" {
			cfg.StoreURL = os.Getenv("DATABASE_URL")
		}
		if cfg.StoreURL == "" {
			return Config{}, errors.New("database URL required (use -d, STORE_URL or DATABASE_URL env)")
		}
	case StoreRedis:
		if cfg.StoreURL == "" {
			cfg.StoreURL = os.Getenv("REDIS_URL")
		}
		if cfg.StoreURL == "" {
			return Config{}, errors.New("redis URL required (use -d, STORE_URL or REDIS_URL env)")
		}
	default:
		return Config{}, fmt.Errorf("unknown store type %q", cfg.StoreType)
	}

	if cfg.StoreKey == "" {
		cfg.StoreKey = os.Getenv("STORE_KEY")
	}
	if cfg.StoreKey == "" {
		cfg.StoreKey = DefaultKey
	}

	if locale == "" {
		locale = os.Getenv("LOCALE")
	}
	if locale == "" {
		locale = DefaultLocale
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return Config{}, fmt.Errorf("invalid locale %q: %w", locale, err)
	}
	cfg.Locale = tag

	return cfg, nil
}
