package config

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultGameYAML []byte

// DefaultGameConfig returns the embedded default tuning
func DefaultGameConfig() (*GameConfig, error) {
	var cfg GameConfig
	if err := yaml.Unmarshal(defaultGameYAML, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse embedded default.yaml: %w", err)
	}
	return &cfg, nil
}
