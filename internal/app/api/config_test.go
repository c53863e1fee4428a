package api

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PORT", "POSTGRES_DSN", "REDIS_ADDR",
		"SESSION_TTL_HOURS", "SESSION_PURGE_INTERVAL_MINUTES", "BOTTLE_TYPES",
		"RESEND_API_KEY", "EMAIL_FROM", "ADMIN_EMAIL",
		"TWILIO_ACCOUNT_SID", "TWILIO_AUTH_TOKEN", "TWILIO_PHONE_NUMBER",
		"ADMIN_PHONE_NUMBER", "SMS_COUNTRY_CODE",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.Equal(t, "8080", cfg.Port)
	require.Equal(t, 24*time.Hour, cfg.SessionTTL)
	require.Zero(t, cfg.SessionPurgeInterval)
	require.Equal(t, DefaultBottleTypes, cfg.BottleTypes)
	require.False(t, cfg.Notify.EmailEnabled())
	require.False(t, cfg.Notify.SMSEnabled())
}

func TestLoadConfig_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9090")
	t.Setenv("SESSION_TTL_HOURS", "48")
	t.Setenv("SESSION_PURGE_INTERVAL_MINUTES", "15")
	t.Setenv("BOTTLE_TYPES", "250ml, 1L ,5L")
	t.Setenv("RESEND_API_KEY", "re_key")
	t.Setenv("ADMIN_EMAIL", "admin@acme.test")
	t.Setenv("TWILIO_ACCOUNT_SID", "AC123")
	t.Setenv("TWILIO_AUTH_TOKEN", "token")
	t.Setenv("TWILIO_PHONE_NUMBER", "+15550001111")
	t.Setenv("ADMIN_PHONE_NUMBER", "9876543210")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.Equal(t, "9090", cfg.Port)
	require.Equal(t, 48*time.Hour, cfg.SessionTTL)
	require.Equal(t, 15*time.Minute, cfg.SessionPurgeInterval)
	require.Equal(t, []string{"250ml", "1L", "5L"}, cfg.BottleTypes)
	require.True(t, cfg.Notify.EmailEnabled())
	require.True(t, cfg.Notify.SMSEnabled())
}

func TestLoadConfig_InvalidDurations(t *testing.T) {
	clearEnv(t)

	t.Setenv("SESSION_TTL_HOURS", "zero")
	_, err := LoadConfig()
	require.Error(t, err)

	t.Setenv("SESSION_TTL_HOURS", "")
	t.Setenv("SESSION_PURGE_INTERVAL_MINUTES", "-5")
	_, err = LoadConfig()
	require.Error(t, err)
}
