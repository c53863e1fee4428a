//go:build pact
// +build pact

package pacttest

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

const (
	ConsumerName       = "orders-api"
	EmailProviderName  = "resend-api"
	SMSProviderName    = "twilio-api"

	StateEmailAccepted  = "email provider accepts transactional sends"
	StateEmailRejected  = "email provider rejects the from address"
	StateSMSAccepted    = "sms provider accepts outbound messages"
	StateSMSRejected    = "sms provider rejects the destination number"
)

const (
	ExampleAPIKey     = "re_pact_key"
	ExampleAccountSID = "ACpact00000000000000000000000000"
	ExampleAuthToken  = "pact-auth-token"

	ExampleFrom      = "Amrut Dhara <onboarding@resend.dev>"
	ExampleOperator  = "admin@example.pact"
	ExampleSMSFrom   = "+15550001111"
	ExampleSMSTo     = "+919876543210"
	ExampleSubject   = "New Order #0f8fad5b - Acme Traders"
	ExampleSMSBody   = "New Order! Acme Traders - Ravi Kumar. 25x 500ml. Delivery: 15 Sep 2026. ID: 0f8fad5b"
)

// PactDir returns the workspace-level directory for generated pact files.
func PactDir(t testing.TB) string {
	t.Helper()
	dir := filepath.Join(projectRoot(t), "pacts")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("create pact dir: %v", err)
	}
	return dir
}

// LogDir returns the log output directory for pact-go.
func LogDir(t testing.TB) string {
	t.Helper()
	dir := filepath.Join(projectRoot(t), "bin", "pact-logs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("create pact log dir: %v", err)
	}
	return dir
}

// projectRoot walks up from this file to the workspace root.
func projectRoot(t testing.TB) string {
	t.Helper()
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("cannot determine caller for pact paths")
	}
	return filepath.Clean(filepath.Join(filepath.Dir(file), "..", ".."))
}
