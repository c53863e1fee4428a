package notify

import "strings"

// Defaults applied by Config when the optional fields are left empty.
const (
	DefaultCountryCode = "+91"
	DefaultEmailFrom   = "Amrut Dhara <onboarding@resend.dev>"
)

// Config carries the operator contact details and provider credentials for
// both notification channels. Every field is optional; each channel is
// independently disabled when its own subset is incomplete.
type Config struct {
	// Email channel.
	EmailAPIKey   string
	EmailFrom     string
	OperatorEmail string

	// SMS channel.
	SMSAccountSID string
	SMSAuthToken  string
	SMSFromNumber string
	OperatorPhone string

	// SMSCountryCode is prefixed to destination numbers that do not already
	// carry a leading "+".
	SMSCountryCode string
}

// EmailEnabled reports whether the email channel has everything it needs.
func (c Config) EmailEnabled() bool {
	return strings.TrimSpace(c.EmailAPIKey) != "" && strings.TrimSpace(c.OperatorEmail) != ""
}

// SMSEnabled reports whether the SMS channel has everything it needs.
func (c Config) SMSEnabled() bool {
	return strings.TrimSpace(c.SMSAccountSID) != "" &&
		strings.TrimSpace(c.SMSAuthToken) != "" &&
		strings.TrimSpace(c.SMSFromNumber) != "" &&
		strings.TrimSpace(c.OperatorPhone) != ""
}

func (c Config) emailFrom() string {
	if strings.TrimSpace(c.EmailFrom) != "" {
		return c.EmailFrom
	}
	return DefaultEmailFrom
}

func (c Config) countryCode() string {
	if strings.TrimSpace(c.SMSCountryCode) != "" {
		return c.SMSCountryCode
	}
	return DefaultCountryCode
}
