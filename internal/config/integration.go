package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// GlobalConfig holds the configuration for the current invocation.
var GlobalConfig *Config        //nolint:gochecknoglobals // Singleton pattern for configuration
var globalConfigMu sync.RWMutex //nolint:gochecknoglobals // Protects GlobalConfig

// SetGlobalConfig installs cfg as the global configuration.
func SetGlobalConfig(cfg *Config) {
	globalConfigMu.Lock()
	defer globalConfigMu.Unlock()

	GlobalConfig = cfg
}

// ResetGlobalConfigForTest resets the global config for testing purposes.
func ResetGlobalConfigForTest() {
	globalConfigMu.Lock()
	defer globalConfigMu.Unlock()

	GlobalConfig = nil
}

// GetGlobalConfig returns the global configuration, falling back to
// defaults when none has been installed.
func GetGlobalConfig() *Config {
	globalConfigMu.Lock()
	defer globalConfigMu.Unlock()

	if GlobalConfig == nil {
		GlobalConfig = New()
	}
	return GlobalConfig
}

// GetDefaultOutputFormat returns the configured default output format.
func GetDefaultOutputFormat() string {
	return GetGlobalConfig().Output.DefaultFormat
}

// GetDefaultCategory returns the category the interactive converter opens with.
func GetDefaultCategory() string {
	return GetGlobalConfig().Defaults.Category
}

// GetConfigDir returns the unitconv configuration directory: UNITCONV_HOME
// when set, otherwise ~/.unitconv.
func GetConfigDir() (string, error) {
	if home := os.Getenv("UNITCONV_HOME"); home != "" {
		return home, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return filepath.Join(homeDir, ".unitconv"), nil
}

// EnsureConfigDir creates the configuration directory if needed.
func EnsureConfigDir() error {
	dir, err := GetConfigDir()
	if err != nil {
		return err
	}
	return os.MkdirAll(dir, 0o700)
}
