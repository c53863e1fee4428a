package notify

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type fakeEmailSender struct {
	mu    sync.Mutex
	calls []emailCall
	err   error
	panic string
	delay time.Duration
}

type emailCall struct {
	from, to, subject, html string
}

func (f *fakeEmailSender) SendEmail(_ context.Context, from, to, subject, html string) error {
	if f.delay > 0 {
		time.Sleep(f.delay)
	}
	f.mu.Lock()
	f.calls = append(f.calls, emailCall{from: from, to: to, subject: subject, html: html})
	f.mu.Unlock()
	if f.panic != "" {
		panic(f.panic)
	}
	return f.err
}

func (f *fakeEmailSender) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

type fakeSMSSender struct {
	mu    sync.Mutex
	calls []smsCall
	err   error
	panic string
	delay time.Duration
}

type smsCall struct {
	to, from, body string
}

func (f *fakeSMSSender) SendSMS(_ context.Context, to, from, body string) error {
	if f.delay > 0 {
		time.Sleep(f.delay)
	}
	f.mu.Lock()
	f.calls = append(f.calls, smsCall{to: to, from: from, body: body})
	f.mu.Unlock()
	if f.panic != "" {
		panic(f.panic)
	}
	return f.err
}

func (f *fakeSMSSender) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

type captureJournal struct {
	mu      sync.Mutex
	entries []JournalEntry
	err     error
}

func (j *captureJournal) Record(_ context.Context, entry JournalEntry) error {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.entries = append(j.entries, entry)
	return j.err
}

func (j *captureJournal) last(t *testing.T) JournalEntry {
	t.Helper()
	j.mu.Lock()
	defer j.mu.Unlock()
	require.NotEmpty(t, j.entries)
	return j.entries[len(j.entries)-1]
}

func fullConfig() Config {
	return Config{
		EmailAPIKey:   "re_test",
		OperatorEmail: "admin@example.com",
		SMSAccountSID: "AC123",
		SMSAuthToken:  "token",
		SMSFromNumber: "+15550001111",
		OperatorPhone: "9876543210",
	}
}

func sampleOrder() OrderPlaced {
	return OrderPlaced{
		OrderID:         "0f8fad5b-d9cb-469f-a165-70867728950e",
		CompanyName:     "Acme Traders",
		ContactName:     "Ravi Kumar",
		MobileNumber:    "9876543210",
		BottleType:      "500ml",
		Quantity:        25,
		DeliveryAddress: "14 MG Road, Pune",
		DeliveryDate:    "2026-09-15",
	}
}

func TestDispatch_SendsBothChannels(t *testing.T) {
	email := &fakeEmailSender{}
	sms := &fakeSMSSender{}
	journal := &captureJournal{}
	d := NewDispatcher(fullConfig(), email, sms, WithJournal(journal))

	d.Dispatch(context.Background(), sampleOrder())

	require.Equal(t, 1, email.callCount())
	require.Equal(t, 1, sms.callCount())
	entry := journal.last(t)
	require.ElementsMatch(t, []string{"email", "sms"}, entry.Channels)
	require.Empty(t, entry.Failures)
}

func TestDispatch_EmailContent(t *testing.T) {
	email := &fakeEmailSender{}
	d := NewDispatcher(fullConfig(), email, nil)

	d.Dispatch(context.Background(), sampleOrder())

	require.Equal(t, 1, email.callCount())
	call := email.calls[0]
	require.Equal(t, DefaultEmailFrom, call.from)
	require.Equal(t, "admin@example.com", call.to)
	require.Equal(t, "New Order #0f8fad5b - Acme Traders", call.subject)
	require.Contains(t, call.html, "Acme Traders")
	require.Contains(t, call.html, "Ravi Kumar")
	require.Contains(t, call.html, "15 Sep 2026")
	require.NotContains(t, call.html, "Notes:")
}

func TestDispatch_SMSContent(t *testing.T) {
	sms := &fakeSMSSender{}
	d := NewDispatcher(fullConfig(), nil, sms)

	d.Dispatch(context.Background(), sampleOrder())

	require.Equal(t, 1, sms.callCount())
	call := sms.calls[0]
	require.Equal(t, "+919876543210", call.to)
	require.Equal(t, "+15550001111", call.from)
	require.Equal(t, "New Order! Acme Traders - Ravi Kumar. 25x 500ml. Delivery: 15 Sep 2026. ID: 0f8fad5b", call.body)
}

func TestDispatch_EmailFailureDoesNotBlockSMS(t *testing.T) {
	email := &fakeEmailSender{err: errors.New("provider down")}
	sms := &fakeSMSSender{}
	journal := &captureJournal{}
	d := NewDispatcher(fullConfig(), email, sms, WithJournal(journal))

	d.Dispatch(context.Background(), sampleOrder())

	require.Equal(t, 1, sms.callCount())
	entry := journal.last(t)
	require.ElementsMatch(t, []string{"email", "sms"}, entry.Channels)
	require.Len(t, entry.Failures, 1)
	require.Contains(t, entry.Failures[0], "email:")
	require.Contains(t, entry.Failures[0], "provider down")
}

func TestDispatch_BothChannelsFail(t *testing.T) {
	email := &fakeEmailSender{err: errors.New("email down")}
	sms := &fakeSMSSender{err: errors.New("sms down")}
	journal := &captureJournal{}
	d := NewDispatcher(fullConfig(), email, sms, WithJournal(journal))

	require.NotPanics(t, func() {
		d.Dispatch(context.Background(), sampleOrder())
	})

	entry := journal.last(t)
	require.Len(t, entry.Failures, 2)
}

func TestDispatch_ChannelPanicIsContained(t *testing.T) {
	email := &fakeEmailSender{panic: "boom"}
	sms := &fakeSMSSender{}
	journal := &captureJournal{}
	d := NewDispatcher(fullConfig(), email, sms, WithJournal(journal))

	require.NotPanics(t, func() {
		d.Dispatch(context.Background(), sampleOrder())
	})

	require.Equal(t, 1, sms.callCount())
	entry := journal.last(t)
	require.Len(t, entry.Failures, 1)
	require.Contains(t, entry.Failures[0], "panicked")
}

func TestDispatch_SlowChannelDoesNotGateTheOther(t *testing.T) {
	email := &fakeEmailSender{delay: 200 * time.Millisecond}
	sms := &fakeSMSSender{}
	d := NewDispatcher(fullConfig(), email, sms)

	start := time.Now()
	d.Dispatch(context.Background(), sampleOrder())
	elapsed := time.Since(start)

	require.Equal(t, 1, email.callCount())
	require.Equal(t, 1, sms.callCount())
	// Sequential sends would take at least twice the injected delay.
	require.Less(t, elapsed, 400*time.Millisecond)
}

func TestDispatch_ChannelGating(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*Config)
		wantEmail int
		wantSMS   int
	}{
		{name: "all configured", mutate: func(*Config) {}, wantEmail: 1, wantSMS: 1},
		{name: "missing email key", mutate: func(c *Config) { c.EmailAPIKey = "" }, wantEmail: 0, wantSMS: 1},
		{name: "missing operator email", mutate: func(c *Config) { c.OperatorEmail = "" }, wantEmail: 0, wantSMS: 1},
		{name: "missing sms token", mutate: func(c *Config) { c.SMSAuthToken = "" }, wantEmail: 1, wantSMS: 0},
		{name: "missing operator phone", mutate: func(c *Config) { c.OperatorPhone = "" }, wantEmail: 1, wantSMS: 0},
		{name: "nothing configured", mutate: func(c *Config) { *c = Config{} }, wantEmail: 0, wantSMS: 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := fullConfig()
			tc.mutate(&cfg)
			email := &fakeEmailSender{}
			sms := &fakeSMSSender{}
			journal := &captureJournal{}
			d := NewDispatcher(cfg, email, sms, WithJournal(journal))

			require.NotPanics(t, func() {
				d.Dispatch(context.Background(), sampleOrder())
			})

			require.Equal(t, tc.wantEmail, email.callCount())
			require.Equal(t, tc.wantSMS, sms.callCount())
			if tc.wantEmail == 0 && tc.wantSMS == 0 {
				require.Empty(t, journal.entries)
			}
		})
	}
}

func TestDispatch_NilSenderDisablesChannel(t *testing.T) {
	sms := &fakeSMSSender{}
	d := NewDispatcher(fullConfig(), nil, sms)

	require.NotPanics(t, func() {
		d.Dispatch(context.Background(), sampleOrder())
	})
	require.Equal(t, 1, sms.callCount())
}

func TestDispatch_JournalFailureIsSwallowed(t *testing.T) {
	email := &fakeEmailSender{}
	journal := &captureJournal{err: errors.New("journal down")}
	d := NewDispatcher(fullConfig(), email, nil, WithJournal(journal))

	require.NotPanics(t, func() {
		d.Dispatch(context.Background(), sampleOrder())
	})
	require.Equal(t, 1, email.callCount())
}
