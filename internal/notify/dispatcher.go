// Package notify delivers best-effort order alerts to the operator over two
// independent channels (email and SMS). Dispatch never reports an outcome to
// its caller; failures are recorded for diagnostics only.
package notify

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"
)

// EmailSender delivers one transactional email.
type EmailSender interface {
	SendEmail(ctx context.Context, from, to, subject, html string) error
}

// SMSSender delivers one text message.
type SMSSender interface {
	SendSMS(ctx context.Context, to, from, body string) error
}

// Dispatcher fans a stored order out to the configured channels.
type Dispatcher struct {
	cfg     Config
	email   EmailSender
	sms     SMSSender
	logger  *slog.Logger
	journal Journal
}

type Option func(*Dispatcher)

func WithLogger(logger *slog.Logger) Option {
	return func(d *Dispatcher) {
		d.logger = logger
	}
}

func WithJournal(journal Journal) Option {
	return func(d *Dispatcher) {
		d.journal = journal
	}
}

// NewDispatcher builds a dispatcher. Senders may be nil; a nil sender
// disables its channel the same way missing credentials do.
func NewDispatcher(cfg Config, email EmailSender, sms SMSSender, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		cfg:     cfg,
		email:   email,
		sms:     sms,
		journal: NoopJournal,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(d)
		}
	}
	return d
}

// Dispatch sends the order alert over both channels concurrently and waits
// for both to settle, for diagnostics only. It never panics out and has no
// result; callers wanting fire-and-forget semantics run it in a goroutine
// with a detached context.
func (d *Dispatcher) Dispatch(ctx context.Context, order OrderPlaced) {
	defer func() {
		if r := recover(); r != nil {
			d.logError(ctx, "order notification dispatch panicked", fmt.Errorf("%v", r), order.OrderID)
		}
	}()

	emailEnabled := d.email != nil && d.cfg.EmailEnabled()
	smsEnabled := d.sms != nil && d.cfg.SMSEnabled()
	if !emailEnabled {
		d.logInfo(ctx, "email channel not configured, skipping", order.OrderID)
	}
	if !smsEnabled {
		d.logInfo(ctx, "sms channel not configured, skipping", order.OrderID)
	}

	// Both sends start before either completes, so a slow channel never
	// gates the other.
	var wg sync.WaitGroup
	var emailErr, smsErr error
	if emailEnabled {
		wg.Add(1)
		go func() {
			defer wg.Done()
			emailErr = d.settle("email", func() error { return d.sendEmail(ctx, order) })
		}()
	}
	if smsEnabled {
		wg.Add(1)
		go func() {
			defer wg.Done()
			smsErr = d.settle("sms", func() error { return d.sendSMS(ctx, order) })
		}()
	}
	wg.Wait()

	entry := JournalEntry{OrderID: order.OrderID, DispatchedAt: time.Now().UTC()}
	if emailEnabled {
		entry.Channels = append(entry.Channels, "email")
		if emailErr != nil {
			entry.Failures = append(entry.Failures, "email: "+emailErr.Error())
			d.logError(ctx, "email notification failed", emailErr, order.OrderID)
		} else {
			d.logInfo(ctx, "email notification sent", order.OrderID)
		}
	}
	if smsEnabled {
		entry.Channels = append(entry.Channels, "sms")
		if smsErr != nil {
			entry.Failures = append(entry.Failures, "sms: "+smsErr.Error())
			d.logError(ctx, "sms notification failed", smsErr, order.OrderID)
		} else {
			d.logInfo(ctx, "sms notification sent", order.OrderID)
		}
	}
	if len(entry.Channels) == 0 {
		return
	}
	if err := d.journal.Record(ctx, entry); err != nil {
		d.logError(ctx, "failed to journal notification dispatch", err, order.OrderID)
	}
}

// settle runs one channel send, converting a panic into a recorded failure.
func (d *Dispatcher) settle(channel string, send func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%s channel panicked: %v", channel, r)
		}
	}()
	return send()
}

func (d *Dispatcher) sendEmail(ctx context.Context, order OrderPlaced) error {
	html, err := renderEmailHTML(order)
	if err != nil {
		return fmt.Errorf("render email: %w", err)
	}
	return d.email.SendEmail(ctx, d.cfg.emailFrom(), d.cfg.OperatorEmail, emailSubject(order), html)
}

func (d *Dispatcher) sendSMS(ctx context.Context, order OrderPlaced) error {
	to := normalizePhone(d.cfg.OperatorPhone, d.cfg.countryCode())
	return d.sms.SendSMS(ctx, to, d.cfg.SMSFromNumber, smsBody(order))
}

func (d *Dispatcher) logInfo(ctx context.Context, msg, orderID string) {
	if d.logger == nil {
		return
	}
	d.logger.LogAttrs(ctx, slog.LevelInfo, msg, slog.String("order.id", orderID))
}

func (d *Dispatcher) logError(ctx context.Context, msg string, err error, orderID string) {
	if d.logger == nil {
		return
	}
	d.logger.LogAttrs(ctx, slog.LevelWarn, msg,
		slog.String("order.id", orderID), slog.String("error", err.Error()))
}
