// Package config provides configuration helpers and TOML parsing.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Data  DataConfig  `toml:"data"`
	Stats StatsConfig `toml:"stats"`
}

// DataConfig maps the input file locations.
type DataConfig struct {
	Catalog *string `toml:"catalog"`
	Solved  *string `toml:"solved"`
}

// StatsConfig maps aggregation settings.
type StatsConfig struct {
	Year        *int `toml:"year"`
	CatalogGoal *int `toml:"catalog-goal"`
	OverallGoal *int `toml:"overall-goal"`
}

// LoadConfig reads a TOML config from the given path. Missing file is not an error.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	return cfg, nil
}
