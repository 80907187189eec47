package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config keeps runtime settings for the daemon.
type Config struct {
	DatabaseURL    string
	TickInterval   time.Duration
	SummaryTime    string // HH:MM local time; empty disables the daily summary
	TelegramToken  string
	TelegramChatID int64
	DesktopNotify  bool
}

// Load reads configuration from environment variables with sane defaults.
func Load() (Config, error) {
	cfg := Config{
		DatabaseURL:   strings.TrimSpace(os.Getenv("TASKPILOT_DB")),
		TickInterval:  parseTickInterval(strings.TrimSpace(os.Getenv("TICK_INTERVAL_SECONDS"))),
		SummaryTime:   strings.TrimSpace(os.Getenv("SUMMARY_TIME")),
		TelegramToken: strings.TrimSpace(os.Getenv("TELEGRAM_TOKEN")),
		DesktopNotify: parseBool(strings.TrimSpace(os.Getenv("DESKTOP_NOTIFY")), true),
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = "taskpilot.db"
	}

	if raw := strings.TrimSpace(os.Getenv("TELEGRAM_CHAT_ID")); raw != "" {
		chatID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return cfg, fmt.Errorf("invalid TELEGRAM_CHAT_ID %q: %w", raw, err)
		}
		cfg.TelegramChatID = chatID
	}

	if cfg.TelegramToken != "" && cfg.TelegramChatID == 0 {
		return cfg, fmt.Errorf("TELEGRAM_CHAT_ID is required when TELEGRAM_TOKEN is set")
	}

	return cfg, nil
}

func parseTickInterval(raw string) time.Duration {
	if raw == "" {
		return 60 * time.Second
	}
	seconds, err := strconv.Atoi(raw)
	if err != nil || seconds <= 0 {
		return 60 * time.Second
	}
	return time.Duration(seconds) * time.Second
}

func parseBool(raw string, fallback bool) bool {
	if raw == "" {
		return fallback
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		return fallback
	}
	return value
}
