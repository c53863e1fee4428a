package observability

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	nooptrace "go.opentelemetry.io/otel/trace/noop"

	usersdomain "github.com/amrutdhara/orders-api/internal/domains/users/domain"
	usersports "github.com/amrutdhara/orders-api/internal/domains/users/ports"
)

const tracerName = "github.com/amrutdhara/orders-api/internal/domains/users/adapters/observability/service"

// Service decorates the users service with tracing, logging, and metrics.
// Credentials and tokens never appear in span attributes or log records.
type Service struct {
	inner   usersports.Service
	tracer  trace.Tracer
	logger  *slog.Logger
	metrics serviceMetrics
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithTracer(tr trace.Tracer) Option {
	return func(s *Service) {
		s.tracer = tr
	}
}

func WithMeter(m metric.Meter) Option {
	return func(s *Service) {
		s.metrics = newServiceMetrics(m)
	}
}

// New wraps the core users service.
func New(inner usersports.Service, opts ...Option) usersports.Service {
	s := &Service{
		inner:   inner,
		tracer:  nooptrace.NewTracerProvider().Tracer(tracerName),
		metrics: newServiceMetrics(nil),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	if s.tracer == nil {
		s.tracer = nooptrace.NewTracerProvider().Tracer(tracerName)
	}
	return s
}

func (s *Service) SignIn(ctx context.Context, email, password string) (*usersports.Session, error) {
	ctx, span := s.tracer.Start(ctx, "UserService.SignIn")
	defer span.End()

	session, err := s.inner.SignIn(ctx, email, password)
	if err != nil {
		s.metrics.recordSignIn(ctx, false)
		return nil, s.handleError(ctx, span, err, "sign-in failed")
	}
	span.SetAttributes(attribute.String("user.id", session.User.ID))
	s.metrics.recordSignIn(ctx, true)
	s.logInfo(ctx, "user signed in", slog.String("user.id", session.User.ID))
	return session, nil
}

func (s *Service) SignOut(ctx context.Context, token string) error {
	ctx, span := s.tracer.Start(ctx, "UserService.SignOut")
	defer span.End()

	if err := s.inner.SignOut(ctx, token); err != nil {
		return s.handleError(ctx, span, err, "sign-out failed")
	}
	s.logInfo(ctx, "user signed out")
	return nil
}

func (s *Service) CurrentUser(ctx context.Context, token string) (*usersdomain.User, error) {
	ctx, span := s.tracer.Start(ctx, "UserService.CurrentUser")
	defer span.End()

	user, err := s.inner.CurrentUser(ctx, token)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	span.SetAttributes(attribute.String("user.id", user.ID))
	return user, nil
}

func (s *Service) CreateUser(ctx context.Context, user *usersdomain.User) (*usersdomain.User, error) {
	ctx, span := s.tracer.Start(ctx, "UserService.CreateUser")
	defer span.End()

	created, err := s.inner.CreateUser(ctx, user)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to create user")
	}
	span.SetAttributes(attribute.String("user.id", created.ID))
	s.logInfo(ctx, "user created", slog.String("user.id", created.ID))
	return created, nil
}

func (s *Service) logInfo(ctx context.Context, msg string, attrs ...slog.Attr) {
	if s.logger == nil {
		return
	}
	s.logger.LogAttrs(ctx, slog.LevelInfo, msg, attrs...)
}

func (s *Service) handleError(ctx context.Context, span trace.Span, err error, msg string, attrs ...slog.Attr) error {
	if span != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	if s.logger != nil {
		if err != nil {
			attrs = append(attrs, slog.String("error", err.Error()))
		}
		s.logger.LogAttrs(ctx, slog.LevelError, msg, attrs...)
	}
	return err
}

type serviceMetrics struct {
	signIns metric.Int64Counter
}

func newServiceMetrics(m metric.Meter) serviceMetrics {
	if m == nil {
		return serviceMetrics{}
	}
	signIns, _ := m.Int64Counter("users.service.sign_ins", metric.WithDescription("Number of sign-in attempts"))
	return serviceMetrics{signIns: signIns}
}

func (m serviceMetrics) recordSignIn(ctx context.Context, success bool) {
	if m.signIns != nil {
		m.signIns.Add(ctx, 1, metric.WithAttributes(attribute.Bool("success", success)))
	}
}

var _ usersports.Service = (*Service)(nil)
