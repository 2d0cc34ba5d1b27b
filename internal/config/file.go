package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// overlayFile merges a YAML config file over the env-derived config. Values
// present in the file win; a missing or malformed file leaves the config
// untouched rather than failing startup.
func overlayFile(cfg Config, path string) Config {
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg
	}

	overlay := cfg
	if err := yaml.Unmarshal(data, &overlay); err != nil {
		return cfg
	}
	return overlay
}
