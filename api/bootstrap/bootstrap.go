package bootstrap

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/tbeaudouin05/payment-processors/api/config"
	"github.com/tbeaudouin05/payment-processors/api/database"
	"github.com/tbeaudouin05/payment-processors/api/services/processor/adapter"
	"github.com/tbeaudouin05/payment-processors/api/services/processor/app"
	"github.com/tbeaudouin05/payment-processors/api/services/processor/db"
	stripegw "github.com/tbeaudouin05/payment-processors/api/services/processor/gateway/stripe"
	"github.com/tbeaudouin05/payment-processors/api/services/processor/lock"
	"github.com/tbeaudouin05/payment-processors/api/services/processor/reconcile"
)

var processorService app.Service
var closers []io.Closer
var initOnce sync.Once
var initErr error

// Init initializes config, storage, locking, reconciliation and the Stripe client, and wires services.
func Init() error {
	// If a service has already been injected (e.g., tests), do not override or init heavy deps.
	if processorService != nil {
		return nil
	}
	var err error
	if config.AppConfig == nil {
		config.AppConfig, err = config.LoadConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
	}
	cfg := config.AppConfig
	ctx := context.Background()

	deps := app.Dependencies{PruneEmpty: cfg.PruneEmpty()}
	switch cfg.StoreDriver {
	case config.StoreDriverMemory:
		slog.Warn("using in-memory processor store", "module", "bootstrap", "operation", "init")
		users, err := cfg.SeedUsers()
		if err != nil {
			return fmt.Errorf("failed to seed users: %w", err)
		}
		deps.Store = db.NewMemoryStore()
		deps.Users = db.NewMemoryUsers(users)
	default:
		if err := database.Initialize(); err != nil {
			return fmt.Errorf("failed to initialize database: %w", err)
		}
		if err := database.RunMigrations(ctx, database.GetDB()); err != nil {
			return fmt.Errorf("failed to run migrations: %w", err)
		}
		deps.Store = db.NewPostgresStore(database.GetDB())
		deps.Users = db.NewPostgresUsers(database.GetDB())
	}

	if cfg.RedisURL != "" {
		client, err := lock.Connect(ctx, cfg.RedisURL)
		if err != nil {
			return fmt.Errorf("failed to connect to redis: %w", err)
		}
		closers = append(closers, client)
		deps.Locker = lock.NewRedis(client, cfg.LockTTL())
	}

	if brokers := cfg.Brokers(); len(brokers) > 0 {
		pub, err := reconcile.NewKafkaPublisher(brokers, cfg.KafkaReconciliationTopic)
		if err != nil {
			return fmt.Errorf("failed to create kafka publisher: %w", err)
		}
		closers = append(closers, pub)
		deps.Publisher = pub
	}

	stripegw.SetKey(cfg.StripeSecretKey)
	deps.Registry = adapter.NewRegistry(adapter.Config{
		Stripe:       stripegw.New(),
		StripePlanID: cfg.StripePlanID,
	})

	processorService = app.NewService(deps)
	return nil
}

func GetProcessorService() app.Service { return processorService }

// SetProcessorService allows tests to inject a stub implementation.
func SetProcessorService(s app.Service) { processorService = s }

// Ensure runs Init() once per process and returns any initialization error.
func Ensure() error {
	initOnce.Do(func() {
		initErr = Init()
	})
	return initErr
}

// Shutdown closes the clients opened by Init.
func Shutdown() {
	for _, c := range closers {
		if err := c.Close(); err != nil {
			slog.Warn("close failed", "module", "bootstrap", "operation", "shutdown", "err", err)
		}
	}
	closers = nil
	if err := database.Close(); err != nil {
		slog.Warn("database close failed", "module", "bootstrap", "operation", "shutdown", "err", err)
	}
}
