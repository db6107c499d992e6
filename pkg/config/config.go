// Package config loads and saves the wirepack CLI configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the wirepack configuration.
type Config struct {
	// DefaultCodec is used when a command does not name one.
	DefaultCodec string `yaml:"default_codec"`
	// TextSafe wraps emitted frames in Base64 by default.
	TextSafe bool `yaml:"text_safe"`
	// ChunkThreshold is the stream flush threshold in bytes.
	ChunkThreshold int `yaml:"chunk_threshold"`
	// ChunkSize is the transport piece size used by the chunk command.
	ChunkSize int     `yaml:"chunk_size"`
	LZSS      LZSS    `yaml:"lzss"`
	Logging   Logging `yaml:"logging"`
}

// LZSS contains compressor tuning. MinMatch and MaxMatch are part of the
// token encoding; change them only when every decoder agrees.
type LZSS struct {
	Window    int `yaml:"window"`
	MinMatch  int `yaml:"min_match"`
	MaxMatch  int `yaml:"max_match"`
	HashLimit int `yaml:"hash_limit"`
}

// Logging contains logging configuration.
type Logging struct {
	Level string `yaml:"level"`
}

// DefaultConfig returns a default configuration.
func DefaultConfig() *Config {
	return &Config{
		DefaultCodec:   "lzss",
		TextSafe:       false,
		ChunkThreshold: 64 * 1024,
		ChunkSize:      255,
		LZSS: LZSS{
			Window:    4096,
			MinMatch:  3,
			MaxMatch:  18,
			HashLimit: 12,
		},
		Logging: Logging{
			Level: "info",
		},
	}
}

// LoadConfig loads configuration from the specified path.
func LoadConfig(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file does not exist: %s", configPath)
	}

	if !filepath.IsAbs(configPath) {
		absPath, err := filepath.Abs(configPath)
		if err != nil {
			return nil, fmt.Errorf("invalid config path: %w", err)
		}
		configPath = absPath
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &config, nil
}

// SaveConfig saves the configuration to the specified path.
func SaveConfig(config *Config, configPath string) error {
	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// DefaultConfigPath returns the default configuration path for the current
// platform.
func DefaultConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "./wirepack.yaml"
	}
	return filepath.Join(homeDir, ".config", "wirepack", "config.yaml")
}

// ConfigExists checks if a configuration file exists.
func ConfigExists(configPath string) bool {
	_, err := os.Stat(configPath)
	return !os.IsNotExist(err)
}
