package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"TASKPILOT_DB", "TICK_INTERVAL_SECONDS", "SUMMARY_TIME", "TELEGRAM_TOKEN", "TELEGRAM_CHAT_ID", "DESKTOP_NOTIFY"} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "taskpilot.db", cfg.DatabaseURL)
	assert.Equal(t, 60*time.Second, cfg.TickInterval)
	assert.Empty(t, cfg.SummaryTime)
	assert.Empty(t, cfg.TelegramToken)
	assert.True(t, cfg.DesktopNotify)
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("TASKPILOT_DB", "/tmp/tasks.db")
	t.Setenv("TICK_INTERVAL_SECONDS", "30")
	t.Setenv("SUMMARY_TIME", "08:00")
	t.Setenv("DESKTOP_NOTIFY", "false")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "/tmp/tasks.db", cfg.DatabaseURL)
	assert.Equal(t, 30*time.Second, cfg.TickInterval)
	assert.Equal(t, "08:00", cfg.SummaryTime)
	assert.False(t, cfg.DesktopNotify)
}

func TestLoadBadTickIntervalFallsBack(t *testing.T) {
	clearEnv(t)
	t.Setenv("TICK_INTERVAL_SECONDS", "soon")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 60*time.Second, cfg.TickInterval)
}

func TestLoadTelegramRequiresChatID(t *testing.T) {
	clearEnv(t)
	t.Setenv("TELEGRAM_TOKEN", "123:abc")

	_, err := Load()
	assert.Error(t, err)

	t.Setenv("TELEGRAM_CHAT_ID", "42")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, int64(42), cfg.TelegramChatID)

	t.Setenv("TELEGRAM_CHAT_ID", "not-a-number")
	_, err = Load()
	assert.Error(t, err)
}
