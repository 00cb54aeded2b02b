// Package config loads the viewer configuration from a YAML file.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// RegionConfig is the requested tree region; the tree expands it to its
// canonical power-of-two square.
type RegionConfig struct {
	XMin int `yaml:"xmin"`
	YMin int `yaml:"ymin"`
	XMax int `yaml:"xmax"`
	YMax int `yaml:"ymax"`
}

type UIConfig struct {
	Grid bool `yaml:"grid"`
	Help bool `yaml:"help"`
}

type Config struct {
	Region RegionConfig `yaml:"region"`
	File   string       `yaml:"file"`
	UI     UIConfig     `yaml:"ui"`
}

// Default is the configuration used when no file is given.
func Default() Config {
	return Config{
		Region: RegionConfig{XMin: 0, YMin: 0, XMax: 64, YMax: 64},
		UI:     UIConfig{Grid: false, Help: true},
	}
}

// Load reads a YAML config file on top of the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.Region.XMax <= c.Region.XMin {
		return fmt.Errorf("region: xmax (%d) must exceed xmin (%d)", c.Region.XMax, c.Region.XMin)
	}
	if c.Region.YMax <= c.Region.YMin {
		return fmt.Errorf("region: ymax (%d) must exceed ymin (%d)", c.Region.YMax, c.Region.YMin)
	}
	return nil
}
