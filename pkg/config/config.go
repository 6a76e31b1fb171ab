// Package config loads runtime configuration: code defaults, then an
// optional YAML file, then environment variables, each layer overriding
// the previous one.
package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Config is the full runtime configuration.
type Config struct {
	Provider string `env:"MIROMA_PROVIDER" yaml:"provider"`
	Model    string `env:"MIROMA_MODEL" yaml:"model"`
	LogLevel string `env:"MIROMA_LOG_LEVEL" yaml:"log_level"`

	AnthropicAPIKey string `env:"ANTHROPIC_API_KEY" yaml:"anthropic_api_key"`
	OpenAIAPIKey    string `env:"OPENAI_API_KEY" yaml:"openai_api_key"`

	Storage  StorageConfig  `yaml:"storage"`
	Telegram TelegramConfig `yaml:"telegram"`
	Digest   DigestConfig   `yaml:"digest"`
}

// StorageConfig selects the snapshot persistence backend.
type StorageConfig struct {
	// Backend is "file" or "sqlite".
	Backend string `env:"MIROMA_STORAGE_BACKEND" yaml:"backend"`
	Path    string `env:"MIROMA_STORAGE_PATH" yaml:"path"`
}

// TelegramConfig seeds the store's notification settings on first run.
type TelegramConfig struct {
	BotToken string `env:"MIROMA_TELEGRAM_TOKEN" yaml:"bot_token"`
	ChatID   string `env:"MIROMA_TELEGRAM_CHAT_ID" yaml:"chat_id"`
	Enabled  bool   `env:"MIROMA_TELEGRAM_ENABLED" yaml:"enabled"`
}

// DigestConfig schedules the revenue digest. An empty cron disables it.
type DigestConfig struct {
	Cron string `env:"MIROMA_DIGEST_CRON" yaml:"cron"`
}

// Default returns the code-level defaults.
func Default() Config {
	return Config{
		Provider: "anthropic",
		LogLevel: "info",
		Storage: StorageConfig{
			Backend: "file",
			Path:    "data/miroma.json",
		},
	}
}

// Load builds the configuration. path may be empty or point to a YAML
// file; a missing file at an explicit path is an error.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// APIKey returns the key for the selected provider.
func (c Config) APIKey() string {
	if c.Provider == "openai" {
		return c.OpenAIAPIKey
	}
	return c.AnthropicAPIKey
}
