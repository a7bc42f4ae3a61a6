package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config keeps runtime settings for the application.
type Config struct {
	DatabasePath string
	LogMode      string
	ReminderTime string // HH:MM, empty disables the daily reminder
	// Optional outbound notification sink.
	TelegramToken  string
	TelegramChatID int64
}

// Load reads configuration from environment variables with sane defaults.
func Load() (Config, error) {
	cfg := Config{
		DatabasePath:  strings.TrimSpace(os.Getenv("STUDYHUB_DB")),
		LogMode:       strings.TrimSpace(os.Getenv("LOG_MODE")),
		ReminderTime:  strings.TrimSpace(os.Getenv("REMINDER_TIME")),
		TelegramToken: strings.TrimSpace(os.Getenv("TELEGRAM_TOKEN")),
	}

	if cfg.DatabasePath == "" {
		cfg.DatabasePath = "studyhub.db"
	}

	if cfg.ReminderTime == "" {
		cfg.ReminderTime = "21:00"
	} else if strings.EqualFold(cfg.ReminderTime, "off") {
		cfg.ReminderTime = ""
	}

	if raw := strings.TrimSpace(os.Getenv("TELEGRAM_CHAT_ID")); raw != "" {
		chatID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return cfg, fmt.Errorf("TELEGRAM_CHAT_ID must be an integer: %w", err)
		}
		cfg.TelegramChatID = chatID
	}

	if cfg.TelegramToken != "" && cfg.TelegramChatID == 0 {
		return cfg, fmt.Errorf("TELEGRAM_CHAT_ID is required when TELEGRAM_TOKEN is set")
	}

	return cfg, nil
}
