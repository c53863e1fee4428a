package api

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/amrutdhara/orders-api/internal/notify"
)

// DefaultBottleTypes is the catalog offered when BOTTLE_TYPES is not set.
var DefaultBottleTypes = []string{"200ml", "300ml", "500ml"}

// Config carries environment-driven settings for the API process.
type Config struct {
	Port                 string
	PostgresDSN          string
	RedisAddr            string
	SessionTTL           time.Duration
	SessionPurgeInterval time.Duration
	BottleTypes          []string
	Notify               notify.Config
}

// LoadConfig reads environment variables, applies defaults, and validates
// basic constraints. Notification credentials are all optional; each absent
// subset only disables its own channel.
func LoadConfig() (Config, error) {
	cfg := Config{
		Port:        envDefault("PORT", "8080"),
		PostgresDSN: strings.TrimSpace(os.Getenv("POSTGRES_DSN")),
		RedisAddr:   strings.TrimSpace(os.Getenv("REDIS_ADDR")),
		SessionTTL:  24 * time.Hour,
		BottleTypes: DefaultBottleTypes,
		Notify: notify.Config{
			EmailAPIKey:    strings.TrimSpace(os.Getenv("RESEND_API_KEY")),
			EmailFrom:      strings.TrimSpace(os.Getenv("EMAIL_FROM")),
			OperatorEmail:  strings.TrimSpace(os.Getenv("ADMIN_EMAIL")),
			SMSAccountSID:  strings.TrimSpace(os.Getenv("TWILIO_ACCOUNT_SID")),
			SMSAuthToken:   strings.TrimSpace(os.Getenv("TWILIO_AUTH_TOKEN")),
			SMSFromNumber:  strings.TrimSpace(os.Getenv("TWILIO_PHONE_NUMBER")),
			OperatorPhone:  strings.TrimSpace(os.Getenv("ADMIN_PHONE_NUMBER")),
			SMSCountryCode: strings.TrimSpace(os.Getenv("SMS_COUNTRY_CODE")),
		},
	}
	if raw := strings.TrimSpace(os.Getenv("SESSION_TTL_HOURS")); raw != "" {
		hours, err := strconv.Atoi(raw)
		if err != nil || hours <= 0 {
			return Config{}, fmt.Errorf("SESSION_TTL_HOURS must be a positive integer")
		}
		cfg.SessionTTL = time.Duration(hours) * time.Hour
	}
	if raw := strings.TrimSpace(os.Getenv("SESSION_PURGE_INTERVAL_MINUTES")); raw != "" {
		minutes, err := strconv.Atoi(raw)
		if err != nil || minutes <= 0 {
			return Config{}, fmt.Errorf("SESSION_PURGE_INTERVAL_MINUTES must be a positive integer")
		}
		cfg.SessionPurgeInterval = time.Duration(minutes) * time.Minute
	}
	if raw := strings.TrimSpace(os.Getenv("BOTTLE_TYPES")); raw != "" {
		cfg.BottleTypes = splitList(raw)
	}
	return cfg, nil
}

func envDefault(key, fallback string) string {
	if val := strings.TrimSpace(os.Getenv(key)); val != "" {
		return val
	}
	return fallback
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
