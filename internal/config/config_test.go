package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadRoot(t *testing.T) {
	t.Run("missing file yields defaults", func(t *testing.T) {
		cfg, err := LoadRoot(filepath.Join(t.TempDir(), "absent.yaml"))
		if err != nil {
			t.Fatalf("LoadRoot() error = %v", err)
		}
		if cfg != Default() {
			t.Errorf("LoadRoot() = %+v, want defaults", cfg)
		}
	})

	t.Run("file overrides only the given fields", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bot.yaml")
		content := `pipeline:
  max_fetch_days: 7
  chat_id: "-100123"
`
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("write config: %v", err)
		}

		cfg, err := LoadRoot(path)
		if err != nil {
			t.Fatalf("LoadRoot() error = %v", err)
		}
		if cfg.Pipeline.MaxFetchDays != 7 {
			t.Errorf("MaxFetchDays = %v, want 7", cfg.Pipeline.MaxFetchDays)
		}
		if cfg.Pipeline.ChatID != "-100123" {
			t.Errorf("ChatID = %q, want %q", cfg.Pipeline.ChatID, "-100123")
		}
		// Неуказанные поля сохраняют значения по умолчанию.
		if cfg.Pipeline.HistoryPath != Default().Pipeline.HistoryPath {
			t.Errorf("HistoryPath = %q, want default %q", cfg.Pipeline.HistoryPath, Default().Pipeline.HistoryPath)
		}
		if cfg.Pipeline.SummaryMaxLen != Default().Pipeline.SummaryMaxLen {
			t.Errorf("SummaryMaxLen = %v, want default %v", cfg.Pipeline.SummaryMaxLen, Default().Pipeline.SummaryMaxLen)
		}
	})

	t.Run("invalid yaml is an error", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bot.yaml")
		if err := os.WriteFile(path, []byte("pipeline: [not a map"), 0644); err != nil {
			t.Fatalf("write config: %v", err)
		}

		if _, err := LoadRoot(path); err == nil {
			t.Error("LoadRoot() should fail on invalid yaml")
		}
	})
}

func TestLoadEnvConfig(t *testing.T) {
	t.Run("token present", func(t *testing.T) {
		t.Setenv("TELEGRAM_BOT_TOKEN", "test-token")

		cfg, err := LoadEnvConfig()
		if err != nil {
			t.Fatalf("LoadEnvConfig() error = %v", err)
		}
		if cfg.TelegramBotToken != "test-token" {
			t.Errorf("TelegramBotToken = %q, want %q", cfg.TelegramBotToken, "test-token")
		}
	})

	t.Run("token missing", func(t *testing.T) {
		t.Setenv("TELEGRAM_BOT_TOKEN", "")

		if _, err := LoadEnvConfig(); err == nil {
			t.Error("LoadEnvConfig() should fail without token")
		}
	})
}
