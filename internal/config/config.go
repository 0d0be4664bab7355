package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds application configuration
type Config struct {
	Server struct {
		Port string `yaml:"port"`
	} `yaml:"server"`

	Model struct {
		Path        string `yaml:"path"`
		MetricsPath string `yaml:"metrics_path"`
	} `yaml:"model"`
}

// LoadConfig loads configuration from a YAML file. A missing file is not
// an error; defaults and environment overrides still apply, so the server
// can run with no config at all.
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}

	file, err := os.Open(configPath)
	if err == nil {
		defer file.Close()
		decoder := yaml.NewDecoder(file)
		if err := decoder.Decode(config); err != nil {
			return nil, fmt.Errorf("failed to decode config file: %w", err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}

	// Set defaults
	if config.Server.Port == "" {
		config.Server.Port = "5002"
	}
	if config.Model.Path == "" {
		config.Model.Path = "models/model.gob"
	}
	if config.Model.MetricsPath == "" {
		config.Model.MetricsPath = "models/metrics.json"
	}

	// Environment overrides
	if v := os.Getenv("PORT"); v != "" {
		config.Server.Port = v
	}
	if v := os.Getenv("MODEL_PATH"); v != "" {
		config.Model.Path = v
	}
	if v := os.Getenv("METRICS_PATH"); v != "" {
		config.Model.MetricsPath = v
	}

	return config, nil
}
