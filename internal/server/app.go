// Package server initializes and runs the chat backend: connection pools,
// the account service, the gRPC listener and the metrics endpoint. It owns
// graceful shutdown.
package server

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/ourchat/ourchat/internal/logging"
	"github.com/ourchat/ourchat/internal/pool"
	"github.com/ourchat/ourchat/internal/server/auth"
	"github.com/ourchat/ourchat/internal/server/cache"
	"github.com/ourchat/ourchat/internal/server/config"
	"github.com/ourchat/ourchat/internal/server/database"
	"github.com/ourchat/ourchat/internal/server/observability"
	"github.com/ourchat/ourchat/internal/server/repositories/repomanager"
	"github.com/ourchat/ourchat/internal/server/services"

	gs "github.com/ourchat/ourchat/internal/server/grpc"
)

const shutdownTimeout = 10 * time.Second

type App struct {
	config    *config.Config
	logger    logging.Logger
	closeLog  func() error
	dbPool    *pool.Pool[*database.Client]
	cachePool *pool.Pool[*cache.Client]
	grpc      *gs.GRPCServer
	metrics   *observability.Server
}

// NewLogger builds the process logger from cfg and, when a DSN is set,
// initializes Sentry.
func NewLogger(cfg *config.Config) (*logging.SlogLogger, func() error, error) {
	if err := logging.InitSentry(cfg.Sentry.DSN, cfg.Sentry.Environment); err != nil {
		return nil, nil, fmt.Errorf("sentry init error: %w", err)
	}
	return logging.New(logging.Options{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		File:   cfg.Log.File,
		Sentry: cfg.Sentry.DSN != "",
	})
}

func poolConfig(name string, pc config.PoolConfig) pool.Config {
	return pool.Config{
		Name:           name,
		Size:           pc.PoolSize,
		SweepInterval:  pc.SweepInterval,
		ProbeTimeout:   pc.ProbeTimeout,
		AcquireTimeout: pc.AcquireTimeout,
	}
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {

	logger, closeLog, err := NewLogger(c)
	if err != nil {
		return nil, err
	}

	rm := repomanager.NewPostgresRepositoryManager()

	// Migration failures are logged only; `ourchat-server migrate` reruns them.
	if c.Database.AutoMigrate {
		if err := database.RunMigrations(ctx, c.Database, rm); err != nil {
			logger.Error(ctx, "migration failed, continuing without schema check", "error", err)
		} else {
			logger.Info(ctx, "Migrations applied")
		}
	}

	dbPool, err := pool.New(ctx, poolConfig("database", c.Database.PoolConfig), database.Connector(c.Database), logger)
	if err != nil {
		_ = closeLog()
		return nil, fmt.Errorf("database pool init error: %w", err)
	}

	cachePool, err := pool.New(ctx, poolConfig("cache", c.Cache.PoolConfig), cache.Connector(c.Cache), logger)
	if err != nil {
		dbPool.Close()
		_ = closeLog()
		return nil, fmt.Errorf("cache pool init error: %w", err)
	}

	hasher, err := auth.NewPasswordHasher(c.Auth.PasswordScheme, c.Auth.AcceptLegacyHashes)
	if err != nil {
		dbPool.Close()
		cachePool.Close()
		_ = closeLog()
		return nil, err
	}
	tokens := auth.NewTokenCodec(c.JWT.Secret, c.JWT.Expire)

	as := services.NewAuthService(dbPool, cachePool, rm, hasher, tokens, logger)
	grpcServer := gs.NewGRPCServer(c.Server, logger, as, tokens)

	app := &App{
		config:    c,
		logger:    logger,
		closeLog:  closeLog,
		dbPool:    dbPool,
		cachePool: cachePool,
		grpc:      grpcServer,
	}

	if c.Metrics.Address != "" {
		m, err := observability.NewServer(c.Metrics.Address, logger, app.ready,
			pool.NewCollector(dbPool, cachePool), grpcServer.RequestCounter())
		if err != nil {
			app.close(ctx)
			return nil, err
		}
		app.metrics = m
	}

	return app, nil
}

// ready reports whether both pools hold at least one live resource.
func (app *App) ready() bool {
	return app.dbPool.Size() > 0 && app.cachePool.Size() > 0
}

func (app *App) initSignalHandler(ctx context.Context, cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		defer signal.Stop(sigs)
		select {
		case s := <-sigs:
			app.logger.Info(ctx, "Signal received", "signal", s.String())
			cancelFunc()
		case <-ctx.Done():
		}
	}()
}

func (app *App) startGRPCServer(ctx context.Context, cancelFunc context.CancelFunc) {
	if err := app.grpc.Run(ctx); err != nil {
		app.logger.Error(ctx, "gRPC server error", "error", err)
		cancelFunc()
	}
}

func (app *App) startMetricsServer(ctx context.Context, cancelFunc context.CancelFunc) {
	errCh, err := app.metrics.Start(ctx)
	if err != nil {
		app.logger.Error(ctx, "metrics server error", "error", err)
		cancelFunc()
		return
	}
	select {
	case err, ok := <-errCh:
		if ok && err != nil {
			cancelFunc()
		}
	case <-ctx.Done():
	}
}

// Run serves until ctx is canceled, a signal arrives or a listener fails,
// then releases every resource.
func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...", "service", app.config.Server.ServiceName)

	app.initSignalHandler(ctx, cancelFunc)

	var wg sync.WaitGroup

	if app.metrics != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			app.startMetricsServer(ctx, cancelFunc)
		}()
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startGRPCServer(ctx, cancelFunc)
	}()

	wg.Wait()

	app.close(context.WithoutCancel(ctx))
}

func (app *App) close(ctx context.Context) {
	if app.metrics != nil {
		stopCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
		if err := app.metrics.Stop(stopCtx); err != nil {
			app.logger.Warn(ctx, "error stopping metrics server", "error", err)
		}
		cancel()
	}

	app.dbPool.Close()
	app.cachePool.Close()

	app.logger.Info(ctx, "App stopped")
	logging.FlushSentry()
	_ = app.closeLog()
}
