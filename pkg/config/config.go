package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// EnvSource is the environment variable that overrides the template
// source directory from the config file.
const EnvSource = "TMPLSYNC_SOURCE"

// Config represents the tmplsync configuration
type Config struct {
	// Source is the template directory to mirror; empty means the
	// default resolution relative to the binary.
	Source string `yaml:"source,omitempty"`
	// GithubDir is the subdirectory created under each target,
	// ".github" when empty.
	GithubDir string `yaml:"github_dir,omitempty"`
	// Targets lists target repository checkouts used when the sync
	// command is invoked without positional arguments.
	Targets []string `yaml:"targets,omitempty"`
	// Exclude lists subpaths never copied and never deleted at the
	// destination. Defaults to ["workflows"] when absent.
	Exclude []string `yaml:"exclude,omitempty"`
}

// LoadConfig loads configuration from the default location
func LoadConfig() (*Config, error) {
	configPath, err := GetConfigPath()
	if err != nil {
		return nil, err
	}

	return LoadConfigFromPath(configPath)
}

// LoadConfigFromPath loads configuration from a specific path
func LoadConfigFromPath(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		config := &Config{}
		config.applyEnv()
		return config, nil // Return empty config if file doesn't exist
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	config.applyEnv()
	return &config, nil
}

// applyEnv overlays environment overrides on the loaded configuration
func (c *Config) applyEnv() {
	if source := os.Getenv(EnvSource); source != "" {
		c.Source = source
	}
}

// SaveConfig saves configuration to the default location
func (c *Config) SaveConfig() error {
	configPath, err := GetConfigPath()
	if err != nil {
		return err
	}

	return c.SaveConfigToPath(configPath)
}

// SaveConfigToPath saves configuration to a specific path
func (c *Config) SaveConfigToPath(path string) error {
	// Create config directory if it doesn't exist
	configDir := filepath.Dir(path)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// GetConfigPath returns the default configuration file path
func GetConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	return filepath.Join(homeDir, ".tmplsync", "config.yaml"), nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.GithubDir != "" {
		if filepath.IsAbs(c.GithubDir) {
			return fmt.Errorf("github_dir must be a relative subdirectory name, got %q", c.GithubDir)
		}
		if strings.Contains(c.GithubDir, "..") {
			return fmt.Errorf("github_dir must not traverse outside the target, got %q", c.GithubDir)
		}
	}

	for _, target := range c.Targets {
		if strings.TrimSpace(target) == "" {
			return fmt.Errorf("targets must not contain empty entries")
		}
	}

	for _, exclude := range c.Exclude {
		if filepath.IsAbs(exclude) {
			return fmt.Errorf("exclude entries must be relative to the template root, got %q", exclude)
		}
		if strings.TrimSpace(exclude) == "" {
			return fmt.Errorf("exclude must not contain empty entries")
		}
	}

	return nil
}
