package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const filePerm = 0o644

// LoadFile loads and parses a YAML configuration file from the given path.
// An empty path yields Default.
func LoadFile(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a Config. Values are decoded over Default, so
// an absent key keeps its default while an explicit zero is kept as written.
func Parse(data []byte) (*Config, error) {
	cfg := Default()

	err := yaml.Unmarshal(data, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	applyDefaults(cfg)

	return cfg, nil
}

// applyDefaults fills in blank names and paths.
func applyDefaults(cfg *Config) {
	if cfg.Version == "" {
		cfg.Version = "1"
	}

	l := &cfg.Layers
	setDefault(&l.CageLabels, DefaultCageLabelsLayer)
	setDefault(&l.BasketNumbers, DefaultBasketNumbersLayer)
	setDefault(&l.Sections, DefaultSectionsLayer)
	setDefault(&l.Baskets, DefaultBasketsLayer)
	setDefault(&l.Walls, DefaultWallsLayer)
	setDefault(&l.Coefficients, DefaultCoefficientsLayer)
	setDefault(&l.Areas, DefaultAreasLayer)

	setDefault(&cfg.Logging.Level, DefaultLogLevel)
	setDefault(&cfg.Paths.ChaptersOutput, DefaultChaptersOutput)
	setDefault(&cfg.Paths.WallsOutput, DefaultWallsOutput)
}

func setDefault(field *string, value string) {
	if *field == "" {
		*field = value
	}
}

// Marshal serializes a Config to YAML.
func Marshal(cfg *Config) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// WriteFile writes a Config to the given path.
func WriteFile(cfg *Config, path string) error {
	data, err := Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, filePerm); err != nil {
		return fmt.Errorf("failed to write config file %s: %w", path, err)
	}

	return nil
}
