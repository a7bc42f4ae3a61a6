package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	t.Setenv("STUDYHUB_DB", "")
	t.Setenv("REMINDER_TIME", "")
	t.Setenv("TELEGRAM_TOKEN", "")
	t.Setenv("TELEGRAM_CHAT_ID", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.DatabasePath != "studyhub.db" {
		t.Fatalf("unexpected db path %q", cfg.DatabasePath)
	}
	if cfg.ReminderTime != "21:00" {
		t.Fatalf("unexpected reminder time %q", cfg.ReminderTime)
	}
}

func TestLoadReminderOff(t *testing.T) {
	t.Setenv("REMINDER_TIME", "off")
	t.Setenv("TELEGRAM_TOKEN", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.ReminderTime != "" {
		t.Fatalf("off must disable the reminder, got %q", cfg.ReminderTime)
	}
}

func TestLoadTelegramRequiresChatID(t *testing.T) {
	t.Setenv("TELEGRAM_TOKEN", "123:abc")
	t.Setenv("TELEGRAM_CHAT_ID", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when chat id missing")
	}

	t.Setenv("TELEGRAM_CHAT_ID", "not-a-number")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for malformed chat id")
	}

	t.Setenv("TELEGRAM_CHAT_ID", "42")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.TelegramChatID != 42 {
		t.Fatalf("unexpected chat id %d", cfg.TelegramChatID)
	}
}
