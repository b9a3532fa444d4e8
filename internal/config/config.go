package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Storage backends.
const (
	StorageSQLite = "sqlite"
	StoragePebble = "pebble"
)

// ErrUnknownStorage is returned for a storage value other than sqlite or pebble.
var ErrUnknownStorage = errors.New("unknown storage backend")

type Config struct {
	Storage  string `koanf:"storage"`   // "sqlite" or "pebble" (default: "sqlite")
	DataDir  string `koanf:"data_dir"`  // empty means the XDG data home
	LogFile  string `koanf:"log_file"`  // empty means the XDG state home
	LogLevel string `koanf:"log_level"` // "debug", "info", "warn" or "error" (default: "info")
}

func Load() (*Config, error) {
	return LoadFiles(getConfigPaths()...)
}

// LoadFiles loads the given TOML files in order; later files win and missing
// files are skipped.
func LoadFiles(paths ...string) (*Config, error) {
	k := koanf.New(".")

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, err
			}
		}
	}

	cfg := &Config{
		Storage:  StorageSQLite,
		LogLevel: "info",
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	cfg.Storage = strings.ToLower(strings.TrimSpace(cfg.Storage))
	if cfg.Storage == "" {
		cfg.Storage = StorageSQLite
	}
	if cfg.Storage != StorageSQLite && cfg.Storage != StoragePebble {
		return nil, fmt.Errorf("%w: %q", ErrUnknownStorage, cfg.Storage)
	}

	cfg.DataDir = expandPath(cfg.DataDir)
	cfg.LogFile = expandPath(cfg.LogFile)

	return cfg, nil
}

func getConfigPaths() []string {
	paths := []string{}

	// 1. ~/.config/carfilter/config.toml
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "carfilter", "config.toml"))
	}

	// 2. ./config.toml (pwd, highest priority)
	paths = append(paths, "config.toml")

	return paths
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// LogPath returns the log file path, creating its directory.
func (c *Config) LogPath() (string, error) {
	if c.LogFile == "" {
		return xdg.StateFile(filepath.Join("carfilter", "carfilter.log"))
	}
	if err := os.MkdirAll(filepath.Dir(c.LogFile), 0o755); err != nil {
		return "", err
	}
	return c.LogFile, nil
}

// SlogLevel maps LogLevel to a slog level. Unknown values mean info.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
