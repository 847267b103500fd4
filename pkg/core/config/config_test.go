// Copyright Resume Extraction Gateway Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"OPENAI_API_KEY", "OPENAI_API_ENDPOINT", "EXTRACTION_MODEL",
		"ARTIFACT_STORE", "ARTIFACT_BASE_DIR", "ARTIFACT_DSN", "ARTIFACT_S3_BUCKET",
	} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestDefault(t *testing.T) {
	clearEnv(t)
	cfg := Default()

	if cfg.Server.Port != 8000 {
		t.Errorf("Server.Port = %d", cfg.Server.Port)
	}
	if cfg.Server.Timeout != 120*time.Second {
		t.Errorf("Server.Timeout = %v", cfg.Server.Timeout)
	}
	if cfg.Backend.Model != "gpt-4o-mini" {
		t.Errorf("Backend.Model = %q", cfg.Backend.Model)
	}
	if cfg.Extract.DPI != 300 {
		t.Errorf("Extract.DPI = %d", cfg.Extract.DPI)
	}
	if cfg.Artifact.Type != "memory" {
		t.Errorf("Artifact.Type = %q", cfg.Artifact.Type)
	}
	if cfg.Logging.Level != "info" || cfg.Logging.Format != "json" {
		t.Errorf("Logging = %+v", cfg.Logging)
	}
}

func TestLoad(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
server:
  port: 9090
backend:
  endpoint: http://localhost:11434/v1
  model: llama3
  max_tokens: 2048
artifact_store:
  type: filesystem
  base_dir: /var/lib/resumegw
logging:
  level: debug
  format: text
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("Server.Port = %d", cfg.Server.Port)
	}
	if cfg.Backend.Endpoint != "http://localhost:11434/v1" || cfg.Backend.Model != "llama3" {
		t.Errorf("Backend = %+v", cfg.Backend)
	}
	if cfg.Backend.MaxTokens != 2048 {
		t.Errorf("Backend.MaxTokens = %d", cfg.Backend.MaxTokens)
	}
	if cfg.Artifact.Type != "filesystem" || cfg.Artifact.BaseDir != "/var/lib/resumegw" {
		t.Errorf("Artifact = %+v", cfg.Artifact)
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.Format != "text" {
		t.Errorf("Logging = %+v", cfg.Logging)
	}
	// Unset file values still get defaults.
	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("Server.Host = %q", cfg.Server.Host)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected an error for a missing config file")
	}
}

func TestEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("EXTRACTION_MODEL", "gpt-4o")
	t.Setenv("ARTIFACT_S3_BUCKET", "resumes-prod")

	cfg := Default()

	if cfg.Backend.APIKey != "sk-test" {
		t.Errorf("Backend.APIKey = %q", cfg.Backend.APIKey)
	}
	if cfg.Backend.Model != "gpt-4o" {
		t.Errorf("Backend.Model = %q", cfg.Backend.Model)
	}
	if cfg.Artifact.S3Bucket != "resumes-prod" || cfg.Artifact.Type != "s3" {
		t.Errorf("setting the bucket should select the s3 store: %+v", cfg.Artifact)
	}
}
