package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Top-level YAML config keys.
const (
	keyLogging  = "logging"
	keyHistory  = "history"
	keyOutput   = "output"
	keyDefaults = "defaults"
)

// MergeYAML loads a YAML file and decodes its known top-level sections onto
// target. Fields the file leaves out keep their current value. Unknown keys
// are ignored.
func MergeYAML(target *Config, path string) error {
	if target == nil {
		return errors.New("nil target *Config in MergeYAML")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config file %s: %w", path, err)
	}

	var overlay map[string]yaml.Node
	if err = yaml.Unmarshal(data, &overlay); err != nil {
		return fmt.Errorf("parsing config YAML from %s: %w", path, err)
	}

	for key, node := range overlay {
		if err = decodeSection(target, key, &node); err != nil {
			return fmt.Errorf("applying config section %q: %w", key, err)
		}
	}
	return nil
}

func decodeSection(target *Config, key string, node *yaml.Node) error {
	switch key {
	case keyLogging:
		return node.Decode(&target.Logging)
	case keyHistory:
		return node.Decode(&target.History)
	case keyOutput:
		return node.Decode(&target.Output)
	case keyDefaults:
		return node.Decode(&target.Defaults)
	default:
		return nil
	}
}
