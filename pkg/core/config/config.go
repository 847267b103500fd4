// Copyright Resume Extraction Gateway Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the main configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Backend  BackendConfig  `yaml:"backend"`
	Extract  ExtractConfig  `yaml:"extract"`
	Artifact ArtifactConfig `yaml:"artifact_store"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// ServerConfig contains HTTP server configuration.
type ServerConfig struct {
	Host    string        `yaml:"host"`
	Port    int           `yaml:"port"`
	Timeout time.Duration `yaml:"timeout"`
}

// BackendConfig configures the extraction backend client.
type BackendConfig struct {
	Endpoint    string        `yaml:"endpoint"` // OpenAI-compatible base URL
	APIKey      string        `yaml:"api_key"`
	Model       string        `yaml:"model"`
	Temperature float64       `yaml:"temperature"`
	MaxTokens   int           `yaml:"max_tokens"`
	Timeout     time.Duration `yaml:"timeout"`
}

// ExtractConfig configures the text extractor.
type ExtractConfig struct {
	DPI int `yaml:"dpi"` // rasterization resolution for OCR fallback
}

// ArtifactConfig configures the artifact store backend.
type ArtifactConfig struct {
	Type       string `yaml:"type"` // "memory" (default), "filesystem", "s3", "sqlite", "postgres"
	BaseDir    string `yaml:"base_dir"`
	DSN        string `yaml:"dsn"` // sqlite path or postgres connection string
	S3Bucket   string `yaml:"s3_bucket"`
	S3Region   string `yaml:"s3_region"`
	S3Prefix   string `yaml:"s3_prefix"`
	S3Endpoint string `yaml:"s3_endpoint"`
}

// LoggingConfig configures the logger.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Load loads configuration from a YAML file. Environment variables override
// file values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	applyEnvOverrides(&cfg)
	applyDefaults(&cfg)

	return &cfg, nil
}

// Default returns default configuration with environment overrides applied.
func Default() *Config {
	cfg := &Config{}
	applyEnvOverrides(cfg)
	applyDefaults(cfg)
	return cfg
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("OPENAI_API_KEY"); v != "" {
		cfg.Backend.APIKey = v
	}
	if v := os.Getenv("OPENAI_API_ENDPOINT"); v != "" {
		cfg.Backend.Endpoint = v
	}
	if v := os.Getenv("EXTRACTION_MODEL"); v != "" {
		cfg.Backend.Model = v
	}
	if v := os.Getenv("ARTIFACT_STORE"); v != "" {
		cfg.Artifact.Type = v
	}
	if v := os.Getenv("ARTIFACT_BASE_DIR"); v != "" {
		cfg.Artifact.BaseDir = v
	}
	if v := os.Getenv("ARTIFACT_DSN"); v != "" {
		cfg.Artifact.DSN = v
	}
	if v := os.Getenv("ARTIFACT_S3_BUCKET"); v != "" {
		cfg.Artifact.S3Bucket = v
		cfg.Artifact.Type = "s3"
	}
}

func applyDefaults(cfg *Config) {
	if cfg.Server.Host == "" {
		cfg.Server.Host = "0.0.0.0"
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8000
	}
	if cfg.Server.Timeout == 0 {
		cfg.Server.Timeout = 120 * time.Second
	}
	if cfg.Backend.Model == "" {
		cfg.Backend.Model = "gpt-4o-mini"
	}
	if cfg.Backend.MaxTokens == 0 {
		cfg.Backend.MaxTokens = 4096
	}
	if cfg.Backend.Timeout == 0 {
		cfg.Backend.Timeout = 60 * time.Second
	}
	if cfg.Extract.DPI == 0 {
		cfg.Extract.DPI = 300
	}
	if cfg.Artifact.Type == "" {
		cfg.Artifact.Type = "memory"
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "json"
	}
}
