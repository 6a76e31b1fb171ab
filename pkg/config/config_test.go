package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.Provider != "anthropic" {
		t.Errorf("provider: %q", cfg.Provider)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("log level: %q", cfg.LogLevel)
	}
	if cfg.Storage.Backend != "file" || cfg.Storage.Path != "data/miroma.json" {
		t.Errorf("storage: %+v", cfg.Storage)
	}
}

func TestLoadYAMLOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	yaml := `
provider: openai
model: gpt-4o-mini
storage:
  backend: sqlite
  path: /tmp/miroma.db
telegram:
  bot_token: tok
  chat_id: "123"
  enabled: true
digest:
  cron: "0 9 1 * *"
`
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.Provider != "openai" || cfg.Model != "gpt-4o-mini" {
		t.Errorf("provider/model: %q/%q", cfg.Provider, cfg.Model)
	}
	if cfg.Storage.Backend != "sqlite" || cfg.Storage.Path != "/tmp/miroma.db" {
		t.Errorf("storage: %+v", cfg.Storage)
	}
	if !cfg.Telegram.Enabled || cfg.Telegram.BotToken != "tok" || cfg.Telegram.ChatID != "123" {
		t.Errorf("telegram: %+v", cfg.Telegram)
	}
	if cfg.Digest.Cron != "0 9 1 * *" {
		t.Errorf("digest: %+v", cfg.Digest)
	}
	// Untouched keys keep their defaults.
	if cfg.LogLevel != "info" {
		t.Errorf("log level: %q", cfg.LogLevel)
	}
}

func TestLoadEnvOverridesYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("provider: openai\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	t.Setenv("MIROMA_PROVIDER", "anthropic")
	t.Setenv("MIROMA_STORAGE_BACKEND", "sqlite")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Provider != "anthropic" {
		t.Errorf("env should win over file: %q", cfg.Provider)
	}
	if cfg.Storage.Backend != "sqlite" {
		t.Errorf("nested env override: %q", cfg.Storage.Backend)
	}
}

func TestLoadMissingExplicitFileFails(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected error for missing explicit config path")
	}
}

func TestAPIKeySelection(t *testing.T) {
	cfg := Config{Provider: "openai", OpenAIAPIKey: "ok", AnthropicAPIKey: "ak"}
	if got := cfg.APIKey(); got != "ok" {
		t.Errorf("openai key: %q", got)
	}
	cfg.Provider = "anthropic"
	if got := cfg.APIKey(); got != "ak" {
		t.Errorf("anthropic key: %q", got)
	}
}
