// Package config provides configuration loading and structs for the docfinder server and CLI.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the application.
type Config struct {
	Debug     bool            `yaml:"debug"`
	Server    ServerConfig    `yaml:"server"`
	Seed      SeedConfig      `yaml:"seed"`
	Search    SearchConfig    `yaml:"search"`
	Selection SelectionConfig `yaml:"selection"`
	Output    OutputConfig    `yaml:"output"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host           string `yaml:"host"`
	Port           int    `yaml:"port"`
	MetricsEnabled *bool  `yaml:"metrics_enabled"`
}

// MetricsEnabledOrDefault returns whether /metrics is served; defaults to true when unset.
func (s *ServerConfig) MetricsEnabledOrDefault() bool {
	if s.MetricsEnabled != nil {
		return *s.MetricsEnabled
	}
	return true
}

// SeedConfig says where the document collection is loaded from at startup.
// An empty Path selects the built-in sample corpus.
type SeedConfig struct {
	Path   string `yaml:"path"`
	Format string `yaml:"format"`
}

// SearchConfig holds query engine settings.
type SearchConfig struct {
	// TagMatch is "joined" (search the tags joined by a space) or "per_tag".
	TagMatch string `yaml:"tag_match"`
}

// SelectionConfig holds the preview selection policy.
type SelectionConfig struct {
	// Policy is "sticky" (keep a selection that left the results) or "clear".
	Policy string `yaml:"policy"`
}

// OutputConfig holds CLI rendering settings.
type OutputConfig struct {
	SnippetLength int `yaml:"snippet_length"`
}

// Load reads and parses the config file at path, expands paths, and applies defaults.
// Returns an error if the file cannot be read or parsed.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	ApplyDefaults(&cfg)

	if cfg.Seed.Path != "" {
		cfg.Seed.Path = expandPath(cfg.Seed.Path, filepath.Dir(path))
	}
	return &cfg, nil
}

// Default returns a config with every default applied, used when no config file exists.
func Default() *Config {
	cfg := &Config{}
	ApplyDefaults(cfg)
	return cfg
}

// Save writes the config to path.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// expandPath converts a path to absolute. Paths starting with "./" are relative to configDir;
// other relative paths are relative to the home directory.
func expandPath(path string, configDir string) string {
	if filepath.IsAbs(path) {
		return path
	}
	if strings.HasPrefix(path, "./") || path == "." {
		return filepath.Join(configDir, path)
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, path)
	}
	return path
}
