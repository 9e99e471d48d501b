package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	portsrepo "github.com/ARLocke322/Payment-Router/internal/core/ports/repositories"
	portssvc "github.com/ARLocke322/Payment-Router/internal/core/ports/services"
	"github.com/ARLocke322/Payment-Router/internal/core/services"
	"github.com/ARLocke322/Payment-Router/internal/dto"
	"github.com/ARLocke322/Payment-Router/internal/events"
	"github.com/ARLocke322/Payment-Router/internal/handlers"
	"github.com/ARLocke322/Payment-Router/internal/middleware"
	"github.com/ARLocke322/Payment-Router/internal/platform/config"
	"github.com/ARLocke322/Payment-Router/internal/rails"
	"github.com/ARLocke322/Payment-Router/internal/repositories/database/pgsql"
	"github.com/ARLocke322/Payment-Router/internal/repositories/memory"
	"github.com/ARLocke322/Payment-Router/pkg/database"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/ulule/limiter/v3"
)

const version = "1.0.0"

// @title Payment Router API
// @version 1.0
// @description Quotes cross-currency transfers across payment rails and executes the selected route.

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repos, closeStore, err := openStorage(ctx, cfg, logger)
	if err != nil {
		logger.Error("Failed to initialize storage", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer closeStore()

	publisher, closePublisher := newPublisher(cfg, logger)
	defer closePublisher()

	registry := rails.NewRegistry(rails.DefaultRegistryConfig(cfg.BusinessHoursTZ, nil))
	guard := rails.NewGuard(rails.GuardConfig{
		Timeout:             cfg.RailTimeout,
		ConsecutiveFailures: cfg.BreakerConsecutiveFailures,
		OpenTimeout:         cfg.BreakerOpenTimeout,
	}, logger)

	container := services.NewServiceContainer(services.ContainerConfig{
		Version:  version,
		Resolver: registry,
		QuoteOptions: []services.QuoteOption{
			services.WithQuoteTTL(cfg.QuoteTTL),
			services.WithRouteScreen(registry),
		},
		ExecutionOptions: []services.ExecutionOption{
			services.WithRailExecutor(guard),
			services.WithEventPublisher(publisher),
		},
	}, repos)

	rateLimiter, err := newRateLimiter(ctx, cfg, logger)
	if err != nil {
		logger.Error("Failed to initialize rate limiter", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := dto.RegisterValidators(); err != nil {
		logger.Error("Failed to register validators", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, container, rateLimiter)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("Server starting",
			slog.String("port", cfg.Port),
			slog.String("storage", cfg.StorageDriver),
			slog.Bool("auth_enabled", cfg.AuthEnabled))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server failed to run", slog.String("error", err.Error()))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shut down", slog.String("error", err.Error()))
	}
}

// openStorage returns the repositories for the configured driver and a func
// releasing them.
func openStorage(ctx context.Context, cfg *config.Config, logger *slog.Logger) (portsrepo.RepositoryProvider, func(), error) {
	if cfg.StorageDriver == config.StorageMemory {
		logger.Warn("Using in-memory storage; quotes and transactions are lost on restart")
		return memory.NewSeededStore().Provider(), func() {}, nil
	}

	dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, database.PoolOptions{Ping: cfg.EnableDBCheck}, logger)
	if err != nil {
		return portsrepo.RepositoryProvider{}, nil, err
	}
	if err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath, logger); err != nil {
		dbPool.Close()
		return portsrepo.RepositoryProvider{}, nil, err
	}
	return pgsql.NewRepositoryProvider(dbPool), func() { database.ClosePgxPool(dbPool, logger) }, nil
}

func newPublisher(cfg *config.Config, logger *slog.Logger) (portssvc.PaymentEventPublisher, func()) {
	if len(cfg.KafkaBrokers) == 0 {
		return events.NoopPublisher{}, func() {}
	}

	publisher := events.NewKafkaPublisher(events.NewKafkaWriter(cfg.KafkaBrokers, cfg.KafkaTopic), logger)
	logger.Info("Publishing payment events to Kafka", slog.String("topic", cfg.KafkaTopic))
	return publisher, func() {
		if err := publisher.Close(); err != nil {
			logger.Error("Error closing Kafka writer", slog.String("error", err.Error()))
		}
	}
}

// newRateLimiter keeps counters in Redis when REDIS_URL is set, in process memory otherwise.
func newRateLimiter(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*limiter.Limiter, error) {
	var client *redis.Client
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			return nil, err
		}
		client = redis.NewClient(opts)
		if err := client.Ping(ctx).Err(); err != nil {
			return nil, err
		}
		logger.Info("Rate limit counters stored in Redis")
	}
	return middleware.NewLimiter(cfg.RateLimit, client)
}
