package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig(t *testing.T) {
	// Create a temporary directory for testing
	tempDir := t.TempDir()

	// Create test config file
	configPath := filepath.Join(tempDir, "config.yaml")
	configContent := `source: "/srv/meta/.github"
github_dir: ".github"
targets:
  - "../service-one"
  - "../service-two"
exclude:
  - "workflows"
  - "CODEOWNERS"
`
	err := os.WriteFile(configPath, []byte(configContent), 0644)
	if err != nil {
		t.Fatalf("Failed to create test config file: %v", err)
	}

	// Load config
	config, err := LoadConfigFromPath(configPath)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if config.Source != "/srv/meta/.github" {
		t.Errorf("Expected Source = /srv/meta/.github, got %s", config.Source)
	}

	if config.GithubDir != ".github" {
		t.Errorf("Expected GithubDir = .github, got %s", config.GithubDir)
	}

	if len(config.Targets) != 2 || config.Targets[0] != "../service-one" {
		t.Errorf("Unexpected targets: %v", config.Targets)
	}

	if len(config.Exclude) != 2 || config.Exclude[0] != "workflows" {
		t.Errorf("Unexpected exclude list: %v", config.Exclude)
	}
}

func TestLoadConfigNonExistent(t *testing.T) {
	// Test loading non-existent config file
	config, err := LoadConfigFromPath("/non/existent/path")
	if err != nil {
		t.Fatalf("Expected no error for non-existent config, got: %v", err)
	}

	// Should return empty config
	if config.Source != "" {
		t.Error("Expected empty Source for non-existent config")
	}
	if len(config.Targets) != 0 {
		t.Error("Expected no targets for non-existent config")
	}
}

func TestLoadConfigEnvOverride(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "config.yaml")
	err := os.WriteFile(configPath, []byte("source: /from/file\n"), 0644)
	if err != nil {
		t.Fatalf("Failed to create test config file: %v", err)
	}

	t.Setenv(EnvSource, "/from/env")

	config, err := LoadConfigFromPath(configPath)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if config.Source != "/from/env" {
		t.Errorf("Expected env override /from/env, got %s", config.Source)
	}
}

func TestSaveConfig(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "nested", "config.yaml")

	config := &Config{
		Source:    "/srv/meta/.github",
		GithubDir: ".github",
		Targets:   []string{"../service-one"},
		Exclude:   []string{"workflows"},
	}

	err := config.SaveConfigToPath(configPath)
	if err != nil {
		t.Fatalf("Failed to save config: %v", err)
	}

	// Load it back and verify round trip
	loaded, err := LoadConfigFromPath(configPath)
	if err != nil {
		t.Fatalf("Failed to load saved config: %v", err)
	}

	if loaded.Source != config.Source {
		t.Errorf("Expected Source = %s, got %s", config.Source, loaded.Source)
	}

	if len(loaded.Targets) != 1 || loaded.Targets[0] != "../service-one" {
		t.Errorf("Unexpected targets after round trip: %v", loaded.Targets)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name:    "empty config is valid",
			config:  Config{},
			wantErr: false,
		},
		{
			name: "full config is valid",
			config: Config{
				Source:    "/srv/meta/.github",
				GithubDir: ".github",
				Targets:   []string{"../service-one"},
				Exclude:   []string{"workflows"},
			},
			wantErr: false,
		},
		{
			name:    "absolute github_dir",
			config:  Config{GithubDir: "/etc/github"},
			wantErr: true,
		},
		{
			name:    "traversing github_dir",
			config:  Config{GithubDir: "../elsewhere"},
			wantErr: true,
		},
		{
			name:    "empty target entry",
			config:  Config{Targets: []string{"../service-one", "  "}},
			wantErr: true,
		},
		{
			name:    "absolute exclude entry",
			config:  Config{Exclude: []string{"/workflows"}},
			wantErr: true,
		},
		{
			name:    "empty exclude entry",
			config:  Config{Exclude: []string{""}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
