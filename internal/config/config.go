package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config captures optional overrides for the ccdist commands. Everything has
// a working default; a missing config file is not an error.
type Config struct {
	Install InstallConfig `yaml:"install"`
	Docs    DocsConfig    `yaml:"docs"`
}

// InstallConfig overrides installer behaviour.
type InstallConfig struct {
	// Dir is the install directory; the CC_SWITCH_INSTALL_DIR environment
	// variable still wins over this.
	Dir string `yaml:"dir"`
	// Host overrides the releases host, e.g. an internal mirror.
	Host string `yaml:"host"`
	// Fetcher pins the download capability ("http" or "curl").
	Fetcher string `yaml:"fetcher"`
}

// DocsConfig overrides the docs sync file set.
type DocsConfig struct {
	Manifest string   `yaml:"manifest"`
	Readmes  []string `yaml:"readmes"`
}

// Default returns the baseline configuration.
func Default() Config {
	return Config{}
}

// Load reads the YAML config at path. A missing file yields Default; any
// other read or decode failure is surfaced.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects values that would only fail later with a worse message.
func (c Config) Validate() error {
	switch c.Install.Fetcher {
	case "", "http", "curl":
	default:
		return fmt.Errorf("install.fetcher must be \"http\" or \"curl\", got %q", c.Install.Fetcher)
	}
	return nil
}
