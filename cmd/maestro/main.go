// Maestro orchestrator server — provides the HTTP API, manages queue
// workers, and executes agent sessions.
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

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"github.com/maestro-hq/maestro/pkg/api"
	"github.com/maestro-hq/maestro/pkg/cleanup"
	"github.com/maestro-hq/maestro/pkg/config"
	"github.com/maestro-hq/maestro/pkg/database"
	"github.com/maestro-hq/maestro/pkg/eap"
	"github.com/maestro-hq/maestro/pkg/events"
	"github.com/maestro-hq/maestro/pkg/executil"
	"github.com/maestro-hq/maestro/pkg/executor"
	"github.com/maestro-hq/maestro/pkg/lock"
	"github.com/maestro-hq/maestro/pkg/queue"
	"github.com/maestro-hq/maestro/pkg/registry"
	"github.com/maestro-hq/maestro/pkg/router"
	"github.com/maestro-hq/maestro/pkg/services"
)

func main() {
	ctx := context.Background()

	// 1. Configuration (.env + DB_/REDIS_/ORCH_/OPENCODE_ env)
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}
	podID := cfg.Orch.PodID

	slog.Info("Starting maestro",
		"listen_addr", cfg.Orch.ListenAddr,
		"pod_id", podID,
		"workers", cfg.Orch.WorkerCount)

	// 2. Database
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}
	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// 3. Redis: lock manager and agent registry
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err := redisClient.Ping(ctx).Err(); err != nil {
		slog.Error("Failed to connect to Redis", "addr", cfg.Redis.Addr, "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			slog.Error("Error closing Redis client", "error", err)
		}
	}()
	locks := lock.NewManager(redisClient, podID)
	agentRegistry := registry.NewRegistry(redisClient, nil)
	slog.Info("Connected to Redis", "addr", cfg.Redis.Addr)

	// 4. Services
	eventPublisher := events.NewEventPublisher(dbClient.DB())
	tenantService := services.NewTenantService(dbClient.Client)
	sessionService := services.NewSessionService(dbClient.Client, tenantService, locks, eventPublisher)
	checkpointService := services.NewCheckpointService(dbClient.Client, eventPublisher)
	taskService := services.NewTaskService(dbClient.Client, eventPublisher)
	contextService := services.NewContextService(dbClient.Client)
	finetuningService := services.NewFineTuningService(dbClient.Client, locks)
	slog.Info("Services initialized")

	// 5. One-time startup orphan cleanup for sessions this pod left behind
	if err := queue.CleanupStartupOrphans(ctx, dbClient.Client, sessionService, podID); err != nil {
		slog.Error("Failed to cleanup startup orphans", "error", err)
		// Non-fatal — the periodic orphan sweep catches survivors
	}

	// 6. Execution ports: gRPC sidecar for internal agents, EAP for external.
	// grpc.NewClient dials lazily; the first Execute call connects.
	execPort, err := executil.NewClient(executil.ConfigFromEnv(), nil)
	if err != nil {
		slog.Error("Failed to initialize execution sidecar client", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := execPort.Close(); err != nil {
			slog.Error("Error closing execution sidecar client", "error", err)
		}
	}()
	eapClient := eap.NewClient(nil)

	sessionExecutor := executor.NewSessionExecutor(
		sessionService, agentRegistry, eapClient, execPort, locks, eventPublisher)

	// 7. NOTIFY listener on a dedicated connection
	dispatcher := events.NewDispatcher()
	notifyListener := events.NewNotifyListener(dbConfig.DSN(), dispatcher)
	if err := notifyListener.Start(ctx); err != nil {
		slog.Error("Failed to start NOTIFY listener", "error", err)
		os.Exit(1)
	}
	defer notifyListener.Stop(ctx)
	for _, channel := range []string{events.GlobalSessionsChannel, events.GlobalAgentsChannel} {
		if err := notifyListener.Subscribe(ctx, channel); err != nil {
			slog.Error("Failed to LISTEN on channel", "channel", channel, "error", err)
			os.Exit(1)
		}
	}

	// 8. Worker pool (before the HTTP server takes traffic)
	workerPool := queue.NewWorkerPool(podID, dbClient.Client, sessionService, &cfg.Orch, sessionExecutor)
	if err := workerPool.Start(ctx); err != nil {
		slog.Error("Failed to start worker pool", "error", err)
		os.Exit(1)
	}

	// 9. Background loops: session monitor and retention sweeps
	bgCtx, bgCancel := context.WithCancel(ctx)
	var bg errgroup.Group
	monitor := executor.NewMonitor(dbClient.Client, sessionService, eventPublisher, cfg.Orch.MonitorInterval)
	bg.Go(func() error {
		monitor.Start(bgCtx)
		return nil
	})
	retention := cleanup.NewService(&cfg.Orch, sessionService, contextService,
		agentRegistry, events.NewEventStore(dbClient.DB()))
	retention.Start(bgCtx)
	defer retention.Stop()

	// 10. HTTP server
	httpServer := &http.Server{
		Addr: cfg.Orch.ListenAddr,
		Handler: api.NewServer(api.Deps{
			Client:      dbClient.Client,
			DB:          dbClient.DB(),
			Tenants:     tenantService,
			Sessions:    sessionService,
			Checkpoints: checkpointService,
			Tasks:       taskService,
			Contexts:    contextService,
			FineTuning:  finetuningService,
			Registry:    agentRegistry,
			Router:      router.NewRouter(agentRegistry, nil),
			Pool:        workerPool,
		}).Routes(),
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "addr", cfg.Orch.ListenAddr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	slog.Info("Maestro started successfully", "pod_id", podID)

	// 11. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 12. Graceful shutdown: drain workers first, then the HTTP server
	shutdownCtx, cancel := context.WithTimeout(ctx, cfg.Orch.GracefulShutdownTimeout)
	defer cancel()

	done := make(chan struct{})
	go func() {
		workerPool.Stop()
		close(done)
	}()
	select {
	case <-done:
		slog.Info("Worker pool stopped gracefully")
	case <-shutdownCtx.Done():
		slog.Warn("Shutdown timeout exceeded — incomplete sessions will be orphan-recovered")
	}

	bgCancel()
	_ = bg.Wait()

	httpShutdownCtx, httpCancel := context.WithTimeout(ctx, 5*time.Second)
	defer httpCancel()
	if err := httpServer.Shutdown(httpShutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}
