package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadConfig_ValidYAML_PopulatesAllFields(t *testing.T) {
	// Given
	dir := t.TempDir()
	path := filepath.Join(dir, "valid.yaml")
	// No indentation inside the backtick block to avoid YAML parsing errors
	content := `server:
  host: "0.0.0.0"
  port: 9090
  shutdown_timeout: 10s
storage:
  path: "/var/lib/leak-finder/state.db"
analyzer:
  provider: "ollama"
  model: "qwen3"
  base_url: "http://localhost:11434"
  timeout: 3m`
	err := os.WriteFile(path, []byte(content), 0o644)
	if err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	// When
	cfg, err := LoadConfig(path)

	// Then
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("expected Host=0.0.0.0, got %s", cfg.Server.Host)
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("expected Port=9090, got %d", cfg.Server.Port)
	}
	if cfg.Server.ShutdownTimeout != 10*time.Second {
		t.Errorf("expected ShutdownTimeout=10s, got %v", cfg.Server.ShutdownTimeout)
	}
	if cfg.Storage.Path != "/var/lib/leak-finder/state.db" {
		t.Errorf("expected storage path override, got %s", cfg.Storage.Path)
	}
	if cfg.Analyzer.Provider != "ollama" {
		t.Errorf("expected Provider=ollama, got %s", cfg.Analyzer.Provider)
	}
	if cfg.Analyzer.Timeout != 3*time.Minute {
		t.Errorf("expected Timeout=3m, got %v", cfg.Analyzer.Timeout)
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	// Given
	dir := t.TempDir()
	path := filepath.Join(dir, "minimal.yaml")
	err := os.WriteFile(path, []byte("{}"), 0o644)
	if err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	// When
	cfg, err := LoadConfig(path)

	// Then
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("expected default Port=8080, got %d", cfg.Server.Port)
	}
	if cfg.Analyzer.Provider != "gemini" {
		t.Errorf("expected default Provider=gemini, got %s", cfg.Analyzer.Provider)
	}
	if cfg.Analyzer.APIKeyEnv != "GEMINI_API_KEY" {
		t.Errorf("expected default APIKeyEnv=GEMINI_API_KEY, got %s", cfg.Analyzer.APIKeyEnv)
	}
}

func TestLoadConfig_InvalidYAML_ReturnsError(t *testing.T) {
	// Given
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	err := os.WriteFile(path, []byte("server: host: bad"), 0o644)
	if err != nil {
		t.Fatalf("failed to write bad config: %v", err)
	}

	// When
	_, err = LoadConfig(path)

	// Then
	if err == nil {
		t.Error("expected error for invalid YAML, got nil")
	}
}

func TestAnalyzerConfig_APIKey(t *testing.T) {
	t.Setenv("TEST_ANALYZER_KEY", "sk-test")

	cfg := AnalyzerConfig{APIKeyEnv: "TEST_ANALYZER_KEY"}
	if got := cfg.APIKey(); got != "sk-test" {
		t.Errorf("expected key from environment, got %q", got)
	}

	empty := AnalyzerConfig{}
	if got := empty.APIKey(); got != "" {
		t.Errorf("expected empty key without env name, got %q", got)
	}
}
