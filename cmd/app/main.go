package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/osse101/Stockroom_Go/internal/auth"
	"github.com/osse101/Stockroom_Go/internal/bootstrap"
	"github.com/osse101/Stockroom_Go/internal/config"
	"github.com/osse101/Stockroom_Go/internal/database"
	"github.com/osse101/Stockroom_Go/internal/inventory"
	"github.com/osse101/Stockroom_Go/internal/logger"
	"github.com/osse101/Stockroom_Go/internal/scheduler"
	"github.com/osse101/Stockroom_Go/internal/server"
	"github.com/osse101/Stockroom_Go/internal/web"
	"github.com/osse101/Stockroom_Go/internal/worker"
)

// Database pool settings and background job cadence.
const (
	dbMaxConns          = 10
	dbMaxConnIdleTime   = 5 * time.Minute
	dbMaxConnLifetime   = 30 * time.Minute
	sessionPurgeEvery   = time.Hour
	shutdownGracePeriod = 10 * time.Second
)

func main() {
	if err := run(); err != nil {
		slog.Error("Application failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logFile, err := logger.Setup(cfg.LogDir, cfg.LogLevel)
	if err != nil {
		return err
	}
	defer logFile.Close()

	slog.Info(bootstrap.LogMsgStartingStockroom,
		"environment", cfg.Environment,
		"port", cfg.Port,
		"low_quantity", cfg.LowQuantity)

	dbPool, err := database.NewPool(context.Background(), cfg.GetDBConnString(), dbMaxConns, dbMaxConnIdleTime, dbMaxConnLifetime)
	if err != nil {
		return err
	}
	defer dbPool.Close()

	if err := database.Migrate(dbPool); err != nil {
		return err
	}

	repos := bootstrap.InitializeRepositories(dbPool)

	authService := auth.NewService(repos.User, repos.Session, cfg.SessionTTL, cfg.SecureCookies)
	inventoryService := inventory.NewService(repos.Item, repos.Category, cfg.LowQuantity)

	renderer, err := web.NewRenderer()
	if err != nil {
		return err
	}

	// Background session purge keeps the sessions table bounded.
	pool := worker.NewPool(1, 4)
	pool.Start()
	sched := scheduler.New(pool)
	sched.Schedule(sessionPurgeEvery, worker.NewSessionPurgeJob(authService))

	srv := server.NewServer(cfg.Port, cfg.TrustedProxies, dbPool, authService, inventoryService, repos.Category, renderer)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		sched.Stop()
		pool.Stop()
		return err
	case sig := <-stop:
		slog.Info("Received shutdown signal", "signal", sig)
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownGracePeriod)
	defer cancel()

	bootstrap.GracefulShutdown(ctx, bootstrap.ShutdownComponents{
		Server:     srv,
		Scheduler:  sched,
		WorkerPool: pool,
	})

	return nil
}
