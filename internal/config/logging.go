package config

import (
	"github.com/rshade/unitconv/internal/logging"
)

// ToLoggingConfig converts the logging section into a logging.Config.
// A configured file switches output to that file; otherwise logs go to stderr.
func (lc *LoggingConfig) ToLoggingConfig() logging.Config {
	output := logging.OutputStderr
	if lc.File != "" {
		output = outputTypeFile
	}

	return logging.Config{
		Level:  lc.Level,
		Format: lc.Format,
		Output: output,
		File:   lc.File,
	}
}

// GetLoggingConfig returns a copy of the global logging section.
// Flag overrides such as --debug are applied by the caller.
func GetLoggingConfig() LoggingConfig {
	return GetGlobalConfig().Logging
}
