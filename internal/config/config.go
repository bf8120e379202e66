package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/rshade/unitconv/internal/units"
)

// Output formats accepted by the output.default_format setting.
const (
	FormatTable = "table"
	FormatJSON  = "json"
)

const (
	// DefaultConfigFile is the config file name inside the config directory.
	DefaultConfigFile = "config.yaml"

	// DefaultHistoryFile is the history file name inside the config directory.
	DefaultHistoryFile = "history.json"

	defaultMaxEntries  = 20
	defaultRecentLimit = 5
	outputTypeFile     = "file"
)

// ErrInvalidConfig is returned by Validate.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config is the merged unitconv configuration.
type Config struct {
	Logging  LoggingConfig  `yaml:"logging"`
	History  HistoryConfig  `yaml:"history"`
	Output   OutputConfig   `yaml:"output"`
	Defaults DefaultsConfig `yaml:"defaults"`
}

// LoggingConfig controls diagnostic logging.
type LoggingConfig struct {
	Level  string `yaml:"level"  env:"UNITCONV_LOG_LEVEL"`
	Format string `yaml:"format" env:"UNITCONV_LOG_FORMAT"`
	File   string `yaml:"file"   env:"UNITCONV_LOG_FILE"`
}

// HistoryConfig controls the conversion history file.
type HistoryConfig struct {
	File        string `yaml:"file"         env:"UNITCONV_HISTORY_FILE"`
	Disabled    bool   `yaml:"disabled"     env:"UNITCONV_HISTORY_DISABLED"`
	MaxEntries  int    `yaml:"max_entries"`
	RecentLimit int    `yaml:"recent_limit"`
}

// OutputConfig controls CLI output.
type OutputConfig struct {
	DefaultFormat string `yaml:"default_format" env:"UNITCONV_OUTPUT"`
}

// DefaultsConfig holds defaults for interactive use.
type DefaultsConfig struct {
	Category string `yaml:"category"`
}

// New returns a Config populated with defaults. Paths that depend on the
// config directory are left empty when it cannot be determined.
func New() *Config {
	cfg := &Config{
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "console",
		},
		History: HistoryConfig{
			MaxEntries:  defaultMaxEntries,
			RecentLimit: defaultRecentLimit,
		},
		Output: OutputConfig{
			DefaultFormat: FormatTable,
		},
		Defaults: DefaultsConfig{
			Category: units.CategoryLength,
		},
	}

	if dir, err := GetConfigDir(); err == nil {
		cfg.History.File = filepath.Join(dir, DefaultHistoryFile)
	}
	return cfg
}

// Load builds a Config from defaults, the YAML file at path (if it exists)
// and UNITCONV_* environment variables, in that order of precedence.
// An empty path means the default config file in the config directory.
func Load(path string) (*Config, error) {
	cfg := New()

	if path == "" {
		dir, err := GetConfigDir()
		if err != nil {
			return nil, err
		}
		path = filepath.Join(dir, DefaultConfigFile)
	}

	if _, err := os.Stat(path); err == nil {
		if mergeErr := MergeYAML(cfg, path); mergeErr != nil {
			return nil, mergeErr
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("checking config file %s: %w", path, err)
	}

	if err := ParseEnv(cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports settings that cannot work.
func (c *Config) Validate() error {
	var errs []error

	if !slices.Contains([]string{FormatTable, FormatJSON}, c.Output.DefaultFormat) {
		errs = append(errs, fmt.Errorf("output.default_format %q must be %q or %q",
			c.Output.DefaultFormat, FormatTable, FormatJSON))
	}
	if _, ok := units.GetCategoryByID(c.Defaults.Category); !ok {
		errs = append(errs, fmt.Errorf("defaults.category %q is not a known category", c.Defaults.Category))
	}
	if c.History.MaxEntries < 1 {
		errs = append(errs, fmt.Errorf("history.max_entries must be positive, got %d", c.History.MaxEntries))
	}
	if c.History.RecentLimit < 1 {
		errs = append(errs, fmt.Errorf("history.recent_limit must be positive, got %d", c.History.RecentLimit))
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
	}
	return nil
}

// Save writes the config as YAML to path, creating parent directories.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if mkdirErr := os.MkdirAll(filepath.Dir(path), 0o700); mkdirErr != nil {
		return fmt.Errorf("creating config directory: %w", mkdirErr)
	}
	if writeErr := os.WriteFile(path, data, 0o600); writeErr != nil {
		return fmt.Errorf("writing config file %s: %w", path, writeErr)
	}
	return nil
}
