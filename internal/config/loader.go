package config

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// FindConfig resolves the config path: the explicit value (from the --config
// flag) when set, otherwise DefaultPath in the working directory.
func FindConfig(explicit string) string {
	if explicit != "" {
		return explicit
	}
	return DefaultPath
}

// Load reads and parses a configuration file from the given path. A missing
// file is not an error: the built-in defaults are returned instead.
func Load(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Defaults(), nil
		}
		return nil, fmt.Errorf("failed to open config file %s: %w", path, err)
	}
	defer file.Close()

	return LoadFromReader(file)
}

// LoadFromReader reads and parses a configuration from an io.Reader. Fields
// left unset in the file are filled from the defaults.
func LoadFromReader(r io.Reader) (*Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	config := Defaults()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return config, nil
}
