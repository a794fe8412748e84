// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package app

import (
	"context"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"

	"github.com/AccelByte/extend-santa-skill/internal/bootstrap"
	"github.com/AccelByte/extend-santa-skill/internal/config"
	"github.com/AccelByte/extend-santa-skill/internal/server"
	"github.com/AccelByte/extend-santa-skill/pkg/common"
	"github.com/AccelByte/extend-santa-skill/pkg/content"
	"github.com/AccelByte/extend-santa-skill/pkg/handler"
	"github.com/AccelByte/extend-santa-skill/pkg/intent/builtin"
	"github.com/AccelByte/extend-santa-skill/pkg/pipeline"
	"github.com/AccelByte/extend-santa-skill/pkg/service"
	"github.com/AccelByte/extend-santa-skill/pkg/state"
)

const healthCheckInterval = 15 * time.Second

// App holds all application dependencies and manages the application lifecycle.
type App struct {
	cfg               *config.Config
	httpServer        *server.HTTPServer
	grpcServer        *server.GRPCServer
	metricsServer     *server.MetricsServer
	redisClient       *redis.Client
	healthChecker     *state.HealthChecker
	shutdownTelemetry func(context.Context) error
}

// New creates and initializes a new application instance.
//
// Components are initialized in dependency order:
// 1. Telemetry (so startup spans are exported)
// 2. Document store (Redis or S3)
// 3. Content catalog and skill configuration
// 4. Handlers and turn manager
// 5. Servers (HTTP webhook, gRPC health, metrics)
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	logrus.Info("initializing application...")

	app := &App{cfg: cfg}

	shutdownTelemetry, err := server.SetupTelemetry(ctx, cfg.ServiceName, cfg.Environment, 0, cfg.OtelEnabled)
	if err != nil {
		return nil, fmt.Errorf("failed to setup telemetry: %w", err)
	}
	app.shutdownTelemetry = shutdownTelemetry

	// ============================================================
	// Document store
	// ============================================================
	if cfg.StoreBackend == config.StoreBackendRedis {
		if err := app.initRedis(ctx); err != nil {
			return nil, fmt.Errorf("failed to init Redis: %w", err)
		}
	}

	var redisClient redis.UniversalClient
	if app.redisClient != nil {
		redisClient = app.redisClient
	}
	docs, checker, err := bootstrap.InitDocumentStore(ctx, cfg, redisClient)
	if err != nil {
		return nil, fmt.Errorf("failed to init document store: %w", err)
	}
	app.healthChecker = checker

	// ============================================================
	// Content and skill configuration
	// ============================================================
	catalog, err := content.LoadDir(cfg.ContentDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load content: %w", err)
	}

	skillConfig, err := pipeline.LoadConfig(cfg.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load skill config from %s: %w", cfg.ConfigPath, err)
	}
	logrus.Infof("loaded skill configuration from %s", cfg.ConfigPath)

	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}

	// ============================================================
	// Handlers and turn manager
	// ============================================================
	seed := cfg.RandomSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	deps := builtin.NewDependencies(service.NewStore(docs), catalog, common.NewRandom(seed))

	registry, err := bootstrap.InitHandlers(skillConfig, deps)
	if err != nil {
		return nil, fmt.Errorf("failed to init handlers: %w", err)
	}
	manager := bootstrap.InitManager(registry, loc)

	// ============================================================
	// Servers
	// ============================================================
	app.httpServer = server.NewHTTPServer(cfg.HTTPPort, cfg.ServiceName, cfg.AllowedOrigins, handler.NewSkill(manager, cfg.SkillID))
	if err := app.httpServer.Setup(); err != nil {
		return nil, fmt.Errorf("failed to setup HTTP server: %w", err)
	}

	app.grpcServer = server.NewGRPCServer(cfg.GRPCPort)
	if err := app.grpcServer.Setup(); err != nil {
		return nil, fmt.Errorf("failed to setup gRPC server: %w", err)
	}

	app.metricsServer = server.NewMetricsServer(cfg.MetricsPort, "/metrics")
	if err := app.metricsServer.Setup(); err != nil {
		return nil, fmt.Errorf("failed to setup metrics server: %w", err)
	}

	logrus.Info("application initialized successfully")

	return app, nil
}

// initRedis initializes the Redis client, retrying the first ping with
// exponential backoff.
func (a *App) initRedis(ctx context.Context) error {
	client := redis.NewClient(&redis.Options{
		Addr:         a.cfg.RedisHost + ":" + a.cfg.RedisPort,
		Password:     a.cfg.RedisPassword,
		DB:           0, // use default DB
		MaxRetries:   3,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = time.Duration(a.cfg.RedisRetryDelayMs) * time.Millisecond
	maxRetries := backoff.WithMaxRetries(b, uint64(a.cfg.RedisMaxRetries))

	err := backoff.Retry(
		func() error {
			_, err := client.Ping(ctx).Result()
			if err != nil {
				logrus.Warnf("Redis connection failed: %v, retrying...", err)
				return err
			}
			return nil
		},
		backoff.WithContext(maxRetries, ctx),
	)

	if err != nil {
		client.Close()
		return err
	}

	a.redisClient = client
	logrus.Info("Redis client initialized")
	return nil
}
