package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"github.com/amrutdhara/orders-api/internal/clients/http/resend"
	"github.com/amrutdhara/orders-api/internal/clients/http/twilio"
	ordershttp "github.com/amrutdhara/orders-api/internal/domains/orders/adapters/http"
	ordersmemory "github.com/amrutdhara/orders-api/internal/domains/orders/adapters/memory"
	ordersnotification "github.com/amrutdhara/orders-api/internal/domains/orders/adapters/notification"
	ordersobs "github.com/amrutdhara/orders-api/internal/domains/orders/adapters/observability"
	orderspostgres "github.com/amrutdhara/orders-api/internal/domains/orders/adapters/persistence/postgres"
	ordersapp "github.com/amrutdhara/orders-api/internal/domains/orders/application"
	ordersports "github.com/amrutdhara/orders-api/internal/domains/orders/ports"
	usershttp "github.com/amrutdhara/orders-api/internal/domains/users/adapters/http"
	usersmemory "github.com/amrutdhara/orders-api/internal/domains/users/adapters/memory"
	usersobs "github.com/amrutdhara/orders-api/internal/domains/users/adapters/observability"
	userspostgres "github.com/amrutdhara/orders-api/internal/domains/users/adapters/persistence/postgres"
	usersredis "github.com/amrutdhara/orders-api/internal/domains/users/adapters/persistence/redis"
	usersapp "github.com/amrutdhara/orders-api/internal/domains/users/application"
	usersdomain "github.com/amrutdhara/orders-api/internal/domains/users/domain"
	usersports "github.com/amrutdhara/orders-api/internal/domains/users/ports"
	"github.com/amrutdhara/orders-api/internal/notify"
	notifypostgres "github.com/amrutdhara/orders-api/internal/notify/postgres"
	"github.com/amrutdhara/orders-api/internal/platform/migrations"
	platformobservability "github.com/amrutdhara/orders-api/internal/platform/observability"
	platformpostgres "github.com/amrutdhara/orders-api/internal/platform/postgres"
)

// Run boots the ordering HTTP API with observability, repositories, and the
// notification dispatcher wired.
func Run(ctx context.Context) error {
	const serviceName = "aqua-orders-api"
	instruments, shutdown, err := platformobservability.Init(ctx, serviceName)
	if err != nil {
		return fmt.Errorf("failed to initialize observability: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			instruments.Logger.Error("failed to shutdown observability", slog.String("error", err.Error()))
		}
	}()
	logger := instruments.Logger

	cfg, err := LoadConfig()
	if err != nil {
		return err
	}

	db, cleanupDB := connectPostgres(ctx, cfg, logger)
	defer cleanupDB()

	sessions, cleanupSessions := buildSessionStore(cfg, db, logger)
	defer cleanupSessions()

	userRepo := buildUserRepository(db, logger)
	userCore := usersapp.NewService(userRepo, sessions)
	userCore.OnAuthChange(func(user *usersdomain.User) {
		if user != nil {
			logger.Info("auth state changed", slog.String("user.id", user.ID))
			return
		}
		logger.Info("auth state changed", slog.String("user.id", ""))
	})
	userService := usersobs.New(
		userCore,
		usersobs.WithLogger(logger),
		usersobs.WithTracer(instruments.Tracer("internal.domains.users.application")),
		usersobs.WithMeter(instruments.Meter("internal.domains.users.application")),
	)

	dispatcher := buildDispatcher(cfg, db, logger)
	orderRepo := buildOrderRepository(db, logger)
	orderCore := ordersapp.NewService(orderRepo, ordersnotification.New(dispatcher))
	orderService := ordersobs.New(
		orderCore,
		ordersobs.WithLogger(logger),
		ordersobs.WithTracer(instruments.Tracer("internal.domains.orders.application")),
		ordersobs.WithMeter(instruments.Meter("internal.domains.orders.application")),
	)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(otelgin.Middleware(serviceName))

	usershttp.NewHandler(userService).Register(router)
	authorized := router.Group("/", usershttp.RequireAuth(userService))
	ordershttp.NewHandler(orderService, cfg.BottleTypes).Register(authorized)

	server := &http.Server{Addr: ":" + cfg.Port, Handler: router}
	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		logger.Info("orders API listening", slog.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	group.Go(func() error {
		<-groupCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})
	if purger, ok := sessions.(*userspostgres.SessionStore); ok && cfg.SessionPurgeInterval > 0 {
		group.Go(func() error {
			runSessionPurge(groupCtx, purger, cfg.SessionPurgeInterval, logger)
			return nil
		})
	}
	return group.Wait()
}

func connectPostgres(ctx context.Context, cfg Config, logger *slog.Logger) (*gorm.DB, func()) {
	if cfg.PostgresDSN == "" {
		logger.Warn("POSTGRES_DSN not set, falling back to in-memory repositories")
		return nil, func() {}
	}
	db, err := platformpostgres.Connect(ctx, cfg.PostgresDSN)
	if err != nil {
		logger.Warn("failed to connect to postgres, falling back to in-memory repositories", slog.String("error", err.Error()))
		return nil, func() {}
	}
	if err := migrations.Run(db); err != nil {
		logger.Warn("failed to apply schema, falling back to in-memory repositories", slog.String("error", err.Error()))
		platformpostgres.Close(db)
		return nil, func() {}
	}
	logger.Info("postgres connection established")
	return db, func() { platformpostgres.Close(db) }
}

func buildOrderRepository(db *gorm.DB, logger *slog.Logger) ordersports.Repository {
	if db == nil {
		return ordersmemory.NewRepository()
	}
	logger.Info("order repository configured with postgres")
	return orderspostgres.NewRepository(db)
}

func buildUserRepository(db *gorm.DB, logger *slog.Logger) usersports.Repository {
	if db == nil {
		return usersmemory.NewRepository()
	}
	logger.Info("user repository configured with postgres")
	return userspostgres.NewRepository(db)
}

func buildSessionStore(cfg Config, db *gorm.DB, logger *slog.Logger) (usersports.SessionStore, func()) {
	if cfg.RedisAddr != "" {
		client := goredis.NewClient(&goredis.Options{Addr: cfg.RedisAddr})
		logger.Info("session store configured with redis", slog.String("addr", cfg.RedisAddr))
		return usersredis.NewSessionStore(client, cfg.SessionTTL), func() { _ = client.Close() }
	}
	if db != nil {
		logger.Info("session store configured with postgres")
		return userspostgres.NewSessionStore(db, cfg.SessionTTL), func() {}
	}
	logger.Warn("no session backend configured, using in-memory sessions")
	return usersmemory.NewSessionStore(), func() {}
}

func buildDispatcher(cfg Config, db *gorm.DB, logger *slog.Logger) *notify.Dispatcher {
	var email notify.EmailSender
	if cfg.Notify.EmailAPIKey != "" {
		client, err := resend.New(cfg.Notify.EmailAPIKey)
		if err != nil {
			logger.Warn("email channel unavailable", slog.String("error", err.Error()))
		} else {
			email = client
		}
	}
	var sms notify.SMSSender
	if cfg.Notify.SMSAccountSID != "" && cfg.Notify.SMSAuthToken != "" {
		client, err := twilio.New(cfg.Notify.SMSAccountSID, cfg.Notify.SMSAuthToken)
		if err != nil {
			logger.Warn("sms channel unavailable", slog.String("error", err.Error()))
		} else {
			sms = client
		}
	}
	opts := []notify.Option{notify.WithLogger(logger)}
	if db != nil {
		opts = append(opts, notify.WithJournal(notifypostgres.NewJournal(db)))
	}
	return notify.NewDispatcher(cfg.Notify, email, sms, opts...)
}

func runSessionPurge(ctx context.Context, store *userspostgres.SessionStore, interval time.Duration, logger *slog.Logger) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := store.PurgeExpired(ctx); err != nil {
				logger.Warn("session purge failed", slog.String("error", err.Error()))
				continue
			}
			logger.Info("session purge completed")
		}
	}
}
