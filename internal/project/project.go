package project

import (
	"fmt"
	"os"
	"path/filepath"

	"go.yaml.in/yaml/v3"

	"github.com/webforge-labs/webforge/internal/plugin"
)

const (
	configDir  = ".webforge"
	configFile = "project.yaml"
)

// DevServer holds the project's dev-server preferences. Zero values mean
// "no preference": plugin fragments and tool defaults apply instead.
type DevServer struct {
	Host string `yaml:"host,omitempty"`
	Port int    `yaml:"port,omitempty"`
}

// Config represents the .webforge/project.yaml structure.
type Config struct {
	Name      string              `yaml:"name"`
	Service   string              `yaml:"service"`
	Plugins   []plugin.Descriptor `yaml:"plugins,omitempty"`
	DevServer DevServer           `yaml:"devServer,omitempty"`
}

// ConfigPath returns the full path to .webforge/project.yaml for a project.
func ConfigPath(projectPath string) string {
	return filepath.Join(projectPath, configDir, configFile)
}

// Load reads, validates, and parses the project descriptor file.
func Load(projectPath string) (*Config, error) {
	path := ConfigPath(projectPath)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading project config: %w", err)
	}

	result, err := Validate(data)
	if err != nil {
		return nil, fmt.Errorf("validating project config: %w", err)
	}
	if !result.Valid {
		return nil, fmt.Errorf("project config %s is invalid: %s", path, result.Issues[0].Message)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("parsing project config: %w", err)
	}

	return &config, nil
}

// Save writes the project descriptor to .webforge/project.yaml, creating
// the .webforge directory if needed.
func Save(projectPath string, config *Config) error {
	dir := filepath.Join(projectPath, configDir)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating %s directory: %w", configDir, err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("marshaling project config: %w", err)
	}

	if err := os.WriteFile(ConfigPath(projectPath), data, 0644); err != nil {
		return fmt.Errorf("writing project config: %w", err)
	}

	return nil
}
