package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/xolan/daylog/internal/osutil"
)

const (
	// AppName is the application name used for config directory
	AppName = "daylog"
	// ConfigFile is the name of the TOML configuration file
	ConfigFile = "config.toml"
)

// Config represents the application configuration
type Config struct {
	// TranscriberURL is the endpoint of the speech transcription service
	TranscriberURL string `toml:"transcriber_url"`
	// TranscriberModel is the transcription model requested from the service
	TranscriberModel string `toml:"transcriber_model"`
	// Language is the expected spoken language for transcription (BCP 47 tag)
	Language string `toml:"language"`
	// Theme is the TUI color theme name
	Theme string `toml:"theme"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		TranscriberURL:   "https://api.openai.com/v1/audio/transcriptions",
		TranscriberModel: "whisper-1",
		Language:         "en",
		Theme:            "",
	}
}

// GetConfigPath returns the path to the config file.
// Uses the user config dir for cross-platform XDG-compliant placement.
// Creates the config directory if it doesn't exist.
func GetConfigPath() (string, error) {
	configDir, err := osutil.Provider.ConfigRoot()
	if err != nil {
		return "", err
	}

	appDir := filepath.Join(configDir, AppName)

	// Create config directory if it doesn't exist
	if err := osutil.Provider.EnsureDir(appDir, 0755); err != nil {
		return "", err
	}

	return filepath.Join(appDir, ConfigFile), nil
}

// LoadOrDefault loads the config file at the given path, falling back
// to defaults for any missing fields. Returns the default config if
// the file doesn't exist. Returns an error if the file exists but
// cannot be parsed.
func LoadOrDefault(path string) (Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Normalize cleans up config values (trims whitespace, fills empty
// fields with defaults).
func (c *Config) Normalize() {
	defaults := DefaultConfig()

	c.TranscriberURL = strings.TrimSpace(c.TranscriberURL)
	c.TranscriberModel = strings.TrimSpace(c.TranscriberModel)
	c.Language = strings.TrimSpace(c.Language)
	c.Theme = strings.TrimSpace(c.Theme)

	if c.TranscriberURL == "" {
		c.TranscriberURL = defaults.TranscriberURL
	}
	if c.TranscriberModel == "" {
		c.TranscriberModel = defaults.TranscriberModel
	}
	if c.Language == "" {
		c.Language = defaults.Language
	}
}

// Validate checks that config values are usable.
func (c Config) Validate() error {
	u, err := url.Parse(c.TranscriberURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("invalid transcriber_url %q: must be an absolute http(s) URL", c.TranscriberURL)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("invalid transcriber_url %q: scheme must be http or https", c.TranscriberURL)
	}
	return nil
}

// GenerateSampleConfig returns the contents of a documented sample
// config file populated with the defaults.
func GenerateSampleConfig() string {
	defaults := DefaultConfig()
	return fmt.Sprintf(`# daylog configuration file

# Endpoint of the speech transcription service (OpenAI-style audio API)
transcriber_url = %q

# Transcription model requested from the service
transcriber_model = %q

# Expected spoken language for transcription
language = %q

# TUI color theme (leave empty for the default)
theme = %q
`, defaults.TranscriberURL, defaults.TranscriberModel, defaults.Language, defaults.Theme)
}
