// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration. Command line flags
// override any value set here.
type Config struct {
	Input           string   `yaml:"input"`
	Report          string   `yaml:"report"`
	Format          string   `yaml:"format"`
	Rename          bool     `yaml:"rename"`
	Recursive       bool     `yaml:"recursive"`
	Workers         int      `yaml:"workers"`
	MinConfidence   float64  `yaml:"min_confidence"`
	NoColor         bool     `yaml:"no_color"`
	ExcludePatterns []string `yaml:"exclude_patterns"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Report:    "report.csv",
		Format:    "csv",
		Recursive: true,
		Workers:   runtime.NumCPU(),
	}
}

// LoadConfig loads configuration from the specified file path. An empty
// path returns the defaults. YAML is a superset of JSON, so a JSON
// params file parses as well.
func LoadConfig(configPath string) (*Config, error) {
	config := Default()
	if configPath == "" {
		return config, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", configPath, err)
	}
	return config, nil
}

// LoadConfigOrDefault loads the config file, falling back to defaults
// (with a warning on stderr) when the file is missing or malformed.
func LoadConfigOrDefault(configPath string) *Config {
	config, err := LoadConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "[WARN] %v\n", err)
		fmt.Fprintf(os.Stderr, "[WARN] Using default configuration\n")
		return Default()
	}
	return config
}

// FindConfigFile looks for a config file in standard locations and
// returns the first one found, or empty string.
func FindConfigFile() string {
	candidates := []string{
		"extcheck.yaml",
		"extcheck.yml",
		"params.json",
	}
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, filepath.Join(home, ".config", "extcheck", "config.yaml"))
	}
	for _, c := range candidates {
		if info, err := os.Stat(c); err == nil && info.Mode().IsRegular() {
			return c
		}
	}
	return ""
}
