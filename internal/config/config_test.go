package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/BurntSushi/toml"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.TranscriberURL == "" {
		t.Error("Default TranscriberURL is empty")
	}
	if cfg.TranscriberModel == "" {
		t.Error("Default TranscriberModel is empty")
	}
	if cfg.Language == "" {
		t.Error("Default Language is empty")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Default config does not validate: %v", err)
	}
}

func TestLoadOrDefault_MissingFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.toml")

	cfg, err := LoadOrDefault(configPath)
	if err != nil {
		t.Fatalf("LoadOrDefault on missing file failed: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("LoadOrDefault on missing file = %+v, expected defaults", cfg)
	}
}

func TestLoadOrDefault_FullFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.toml")

	content := `
transcriber_url = "http://localhost:9000/v1/audio/transcriptions"
transcriber_model = "whisper-large"
language = "fr"
theme = "dracula"
`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	cfg, err := LoadOrDefault(configPath)
	if err != nil {
		t.Fatalf("LoadOrDefault failed: %v", err)
	}

	if cfg.TranscriberURL != "http://localhost:9000/v1/audio/transcriptions" {
		t.Errorf("TranscriberURL = %q", cfg.TranscriberURL)
	}
	if cfg.TranscriberModel != "whisper-large" {
		t.Errorf("TranscriberModel = %q", cfg.TranscriberModel)
	}
	if cfg.Language != "fr" {
		t.Errorf("Language = %q", cfg.Language)
	}
	if cfg.Theme != "dracula" {
		t.Errorf("Theme = %q", cfg.Theme)
	}
}

func TestLoadOrDefault_PartialFileFillsDefaults(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.toml")

	content := `language = "de"` + "\n"
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	cfg, err := LoadOrDefault(configPath)
	if err != nil {
		t.Fatalf("LoadOrDefault failed: %v", err)
	}

	defaults := DefaultConfig()
	if cfg.Language != "de" {
		t.Errorf("Language = %q, expected de", cfg.Language)
	}
	if cfg.TranscriberURL != defaults.TranscriberURL {
		t.Errorf("TranscriberURL = %q, expected default", cfg.TranscriberURL)
	}
	if cfg.TranscriberModel != defaults.TranscriberModel {
		t.Errorf("TranscriberModel = %q, expected default", cfg.TranscriberModel)
	}
}

func TestLoadOrDefault_MalformedFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.toml")

	if err := os.WriteFile(configPath, []byte("not [valid toml"), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	if _, err := LoadOrDefault(configPath); err == nil {
		t.Error("LoadOrDefault on malformed file expected error, got nil")
	}
}

func TestLoadOrDefault_InvalidURL(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.toml")

	content := `transcriber_url = "not a url"` + "\n"
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	if _, err := LoadOrDefault(configPath); err == nil {
		t.Error("LoadOrDefault with invalid URL expected error, got nil")
	}
}

func TestNormalize(t *testing.T) {
	cfg := Config{
		TranscriberURL:   "  http://localhost:9000  ",
		TranscriberModel: "",
		Language:         " en ",
		Theme:            " nord ",
	}
	cfg.Normalize()

	if cfg.TranscriberURL != "http://localhost:9000" {
		t.Errorf("TranscriberURL = %q, expected trimmed", cfg.TranscriberURL)
	}
	if cfg.TranscriberModel != DefaultConfig().TranscriberModel {
		t.Errorf("TranscriberModel = %q, expected default", cfg.TranscriberModel)
	}
	if cfg.Language != "en" {
		t.Errorf("Language = %q, expected en", cfg.Language)
	}
	if cfg.Theme != "nord" {
		t.Errorf("Theme = %q, expected nord", cfg.Theme)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		wantErr bool
	}{
		{"https url", "https://api.example.com/v1/audio/transcriptions", false},
		{"http url", "http://localhost:9000/transcribe", false},
		{"missing scheme", "api.example.com/transcribe", true},
		{"unsupported scheme", "ftp://example.com", true},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.TranscriberURL = tt.url
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestGenerateSampleConfig_ParsesAndMatchesDefaults(t *testing.T) {
	sample := GenerateSampleConfig()

	if !strings.Contains(sample, "transcriber_url") {
		t.Error("Sample config missing transcriber_url")
	}

	var cfg Config
	if _, err := toml.Decode(sample, &cfg); err != nil {
		t.Fatalf("Sample config does not parse: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("Sample config = %+v, expected defaults %+v", cfg, DefaultConfig())
	}
}
