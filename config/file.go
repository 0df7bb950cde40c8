package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the top-level configuration of the search_engine program.
type Config struct {
	Server ServerConfig   `yaml:"server"`
	Index  EngineSettings `yaml:"index"`
}

// ServerConfig holds HTTP server settings used in serve mode.
type ServerConfig struct {
	Port        string `yaml:"port"`
	MaxBodySize int64  `yaml:"maxBodySize"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// LoadFile reads a YAML configuration file. Missing values get defaults.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- path comes from the command line
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes YAML configuration data and validates the index settings.
func Parse(data []byte) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.applyDefaults()

	if problems := cfg.Index.Validate(); len(problems) > 0 {
		return nil, fmt.Errorf("invalid index settings: %v", problems)
	}
	return cfg, nil
}

func (cfg *Config) applyDefaults() {
	if cfg.Server.Port == "" {
		cfg.Server.Port = "8080"
	}
	if cfg.Server.MaxBodySize == 0 {
		cfg.Server.MaxBodySize = 10 << 20 // 10MB
	}
	if cfg.Index.Name == "" {
		cfg.Index.Name = DefaultIndexName
	}
	cfg.Index.ApplyDefaults()
}
