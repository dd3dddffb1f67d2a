// Package config handles the XDG configuration directory, the optional
// config.yaml file and derived storage paths.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	// AppName is the application directory name.
	AppName = "tasklite"

	// ConfigFile is the optional settings filename inside the config directory.
	ConfigFile = "config.yaml"

	// DatabaseFile is the SQLite database filename inside the data directory.
	DatabaseFile = "tasklite.db"

	// StoreDir is the file backend's directory inside the data directory.
	StoreDir = "store"
)

// Storage backends.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

// ErrUnknownBackend is returned for a backend name that is not one of
// BackendFile, BackendSQLite or BackendMemory.
var ErrUnknownBackend = errors.New("unknown backend")

// Config holds configuration paths and settings.
type Config struct {
	// Dir is the configuration directory path.
	Dir string

	// DataDir is where backends keep their data. Defaults to Dir.
	DataDir string

	// Backend selects the storage backend.
	Backend string

	// Debug enables debug logging.
	Debug bool

	// Quiet suppresses informational output.
	Quiet bool

	// Logger receives diagnostics. Nil means discard.
	Logger *slog.Logger
}

// fileSettings mirrors config.yaml.
type fileSettings struct {
	Backend string `yaml:"backend"`
	DataDir string `yaml:"data_dir"`
}

// New creates a Config for the default or specified config directory and
// applies config.yaml from that directory if it exists.
// If configDir is empty, uses XDG_CONFIG_HOME/tasklite or $HOME/.config/tasklite.
func New(configDir string) (*Config, error) {
	dir := configDir
	if dir == "" {
		dir = DefaultConfigDir()
	}
	cfg := &Config{
		Dir:     dir,
		DataDir: dir,
		Backend: BackendFile,
	}
	if err := cfg.loadFile(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) loadFile() error {
	data, err := os.ReadFile(c.FilePath())
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("reading %s: %w", c.FilePath(), err)
	}

	var settings fileSettings
	if err := yaml.Unmarshal(data, &settings); err != nil {
		return fmt.Errorf("parsing %s: %w", c.FilePath(), err)
	}

	if settings.Backend != "" {
		if err := ValidateBackend(settings.Backend); err != nil {
			return fmt.Errorf("%s: %w", c.FilePath(), err)
		}
		c.Backend = settings.Backend
	}
	if settings.DataDir != "" {
		c.DataDir = settings.DataDir
		if !filepath.IsAbs(c.DataDir) {
			c.DataDir = filepath.Join(c.Dir, c.DataDir)
		}
	}
	return nil
}

// ValidateBackend checks that name is a known backend.
func ValidateBackend(name string) error {
	switch name {
	case BackendFile, BackendSQLite, BackendMemory:
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnknownBackend, name)
	}
}

// DefaultConfigDir returns the default configuration directory.
// Uses XDG_CONFIG_HOME if set, otherwise $HOME/.config.
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if home can't be determined
		return AppName
	}
	return filepath.Join(home, ".config", AppName)
}

// FilePath returns the path to config.yaml.
func (c *Config) FilePath() string {
	return filepath.Join(c.Dir, ConfigFile)
}

// StorePath returns the file backend's directory.
func (c *Config) StorePath() string {
	return filepath.Join(c.DataDir, StoreDir)
}

// DatabasePath returns the SQLite backend's database file.
func (c *Config) DatabasePath() string {
	return filepath.Join(c.DataDir, DatabaseFile)
}

// EnsureDataDir creates the data directory with mode 0700 if it doesn't exist.
func (c *Config) EnsureDataDir() error {
	return os.MkdirAll(c.DataDir, 0700)
}

// Log returns the configured logger, or one that discards everything.
func (c *Config) Log() *slog.Logger {
	if c.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return c.Logger
}
